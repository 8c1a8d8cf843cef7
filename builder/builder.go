package builder

import (
	"context"

	internalbuilder "github.com/goliatone/go-pagebuilder/internal/builder"
	internalpages "github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

// Re-exported errors from the internal builder package.
var (
	ErrSaveInFlight        = internalbuilder.ErrSaveInFlight
	ErrSectionIDRequired   = internalbuilder.ErrSectionIDRequired
	ErrComponentIDRequired = internalbuilder.ErrComponentIDRequired
	ErrInvalidDirection    = internalbuilder.ErrInvalidDirection
)

// Re-exported types from the internal builder package.
type (
	Builder                = internalbuilder.Builder
	Option                 = internalbuilder.Option
	IDGenerator            = internalbuilder.IDGenerator
	AddSectionRequest      = internalbuilder.AddSectionRequest
	UpdateSectionRequest   = internalbuilder.UpdateSectionRequest
	AddComponentRequest    = internalbuilder.AddComponentRequest
	SectionNotFoundError   = internalbuilder.SectionNotFoundError
	ComponentNotFoundError = internalbuilder.ComponentNotFoundError

	Editor       = internalbuilder.Editor
	EditorOption = internalbuilder.EditorOption
	Field        = internalbuilder.Field
	FieldKind    = internalbuilder.FieldKind
)

// DefaultNewPageTitle is the working title of a page started from scratch.
const DefaultNewPageTitle = internalbuilder.DefaultNewPageTitle

// Field kind constants.
const (
	FieldText     = internalbuilder.FieldText
	FieldTextarea = internalbuilder.FieldTextarea
	FieldSelect   = internalbuilder.FieldSelect
	FieldToggle   = internalbuilder.FieldToggle
	FieldMedia    = internalbuilder.FieldMedia
	FieldJSON     = internalbuilder.FieldJSON
)

// Setting keys recognized by the component editor.
const (
	SettingHeadingLevel = internalbuilder.SettingHeadingLevel
	SettingAlt          = internalbuilder.SettingAlt
	SettingURL          = internalbuilder.SettingURL
	SettingButtonStyle  = internalbuilder.SettingButtonStyle
	SettingAutoplay     = internalbuilder.SettingAutoplay
	SettingTitle        = internalbuilder.SettingTitle
	SettingImageURL     = internalbuilder.SettingImageURL
	SettingFormType     = internalbuilder.SettingFormType
	SettingSubmitText   = internalbuilder.SettingSubmitText
)

// Defaults applied when a setting is absent.
const (
	DefaultHeadingLevel = internalbuilder.DefaultHeadingLevel
	DefaultButtonStyle  = internalbuilder.DefaultButtonStyle
	DefaultFormType     = internalbuilder.DefaultFormType
	DefaultSubmitText   = internalbuilder.DefaultSubmitText
)

// Load opens a page builder session. A nil page id starts a new unsaved
// draft.
func Load(ctx context.Context, service internalpages.Service, session interfaces.Session, pageID uuid.UUID, opts ...Option) (*Builder, error) {
	return internalbuilder.Load(ctx, service, session, pageID, opts...)
}

// NewEditor constructs a component editor.
func NewEditor(opts ...EditorOption) *Editor {
	return internalbuilder.NewEditor(opts...)
}

// WithIDGenerator overrides identifier generation for the session.
func WithIDGenerator(generator IDGenerator) Option {
	return internalbuilder.WithIDGenerator(generator)
}

// WithLogger attaches a logger to the session.
func WithLogger(logger interfaces.Logger) Option {
	return internalbuilder.WithLogger(logger)
}

// WithCustomPayloadSchema validates structured custom component payloads
// against a JSON schema on edit.
func WithCustomPayloadSchema(schema map[string]any) EditorOption {
	return internalbuilder.WithCustomPayloadSchema(schema)
}
