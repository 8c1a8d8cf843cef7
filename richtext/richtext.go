package richtext

import (
	internalpages "github.com/goliatone/go-pagebuilder/internal/pages"
	internalrichtext "github.com/goliatone/go-pagebuilder/internal/richtext"
)

// Re-exported errors from the internal richtext package.
var (
	ErrBlockIDRequired     = internalrichtext.ErrBlockIDRequired
	ErrInvalidDirection    = internalrichtext.ErrInvalidDirection
	ErrInvalidHeadingLevel = internalrichtext.ErrInvalidHeadingLevel
)

// Re-exported types from the internal richtext package.
type (
	Editor             = internalrichtext.Editor
	EditorOption       = internalrichtext.EditorOption
	IDGenerator        = internalrichtext.IDGenerator
	UpdateBlockRequest = internalrichtext.UpdateBlockRequest
	BlockNotFoundError = internalrichtext.BlockNotFoundError
)

// DefaultHeadingLevel is applied to new heading blocks.
const DefaultHeadingLevel = internalrichtext.DefaultHeadingLevel

// NewEditor opens a rich text editing session over the given content. A nil
// content starts an empty document.
func NewEditor(content *internalpages.RichTextContent, opts ...EditorOption) *Editor {
	return internalrichtext.NewEditor(content, opts...)
}

// WithIDGenerator overrides block identifier generation.
func WithIDGenerator(generator IDGenerator) EditorOption {
	return internalrichtext.WithIDGenerator(generator)
}
