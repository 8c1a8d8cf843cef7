package builder

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-pagebuilder/internal/pages"
	schema "github.com/goliatone/go-pagebuilder/internal/validation"
)

// FieldKind tells a rendering surface which control to draw for a field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
	FieldToggle   FieldKind = "toggle"
	FieldMedia    FieldKind = "media"
	FieldJSON     FieldKind = "json"
)

// Setting keys recognized by the component editor.
const (
	SettingHeadingLevel = "headingLevel"
	SettingAlt          = "alt"
	SettingURL          = "url"
	SettingButtonStyle  = "buttonStyle"
	SettingAutoplay     = "autoplay"
	SettingTitle        = "title"
	SettingImageURL     = "imageUrl"
	SettingFormType     = "formType"
	SettingSubmitText   = "submitText"
)

var (
	headingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}
	buttonStyles  = []string{"primary", "secondary", "outline", "text"}
	formTypes     = []string{"contact", "newsletter", "custom"}
)

// Defaults applied when a setting is absent.
const (
	DefaultHeadingLevel = "h2"
	DefaultButtonStyle  = "primary"
	DefaultFormType     = "contact"
	DefaultSubmitText   = "Submit"
)

// Field describes one editable input of a component. Media fields are filled
// through the media selector only; free-form edits are rejected.
type Field struct {
	Name    string
	Label   string
	Kind    FieldKind
	Options []string
	Value   any
}

// Editor maps component types to their editable fields and applies validated
// edits. The builder session owns the components; the editor only transforms
// them.
type Editor struct {
	customSchema map[string]any
}

// EditorOption configures the editor at construction time.
type EditorOption func(*Editor)

// WithCustomPayloadSchema constrains structured custom-component payloads to
// the given JSON schema. Raw string payloads are not validated.
func WithCustomPayloadSchema(schema map[string]any) EditorOption {
	return func(e *Editor) {
		e.customSchema = schema
	}
}

// NewEditor constructs a component editor.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FieldsFor returns the editable fields of the component, with current values
// and defaults filled in.
func (e *Editor) FieldsFor(component pages.Component) []Field {
	switch component.Type {
	case pages.ComponentHeading:
		return []Field{
			{Name: "content", Label: "Heading Text", Kind: FieldText, Value: component.Content.Text},
			{Name: SettingHeadingLevel, Label: "Heading Level", Kind: FieldSelect, Options: headingLevels, Value: settingString(component, SettingHeadingLevel, DefaultHeadingLevel)},
		}
	case pages.ComponentText:
		return []Field{
			{Name: "content", Label: "Text Content", Kind: FieldTextarea, Value: component.Content.Text},
		}
	case pages.ComponentImage:
		return []Field{
			{Name: "content", Label: "Image URL", Kind: FieldMedia, Value: component.Content.Text},
			{Name: SettingAlt, Label: "Alt Text", Kind: FieldText, Value: settingString(component, SettingAlt, "")},
		}
	case pages.ComponentVideo:
		return []Field{
			{Name: "content", Label: "Video URL", Kind: FieldMedia, Value: component.Content.Text},
			{Name: SettingAutoplay, Label: "Autoplay", Kind: FieldToggle, Value: settingBool(component, SettingAutoplay)},
		}
	case pages.ComponentButton:
		return []Field{
			{Name: "content", Label: "Button Text", Kind: FieldText, Value: component.Content.Text},
			{Name: SettingURL, Label: "Button URL", Kind: FieldText, Value: settingString(component, SettingURL, "")},
			{Name: SettingButtonStyle, Label: "Button Style", Kind: FieldSelect, Options: buttonStyles, Value: settingString(component, SettingButtonStyle, DefaultButtonStyle)},
		}
	case pages.ComponentCard:
		return []Field{
			{Name: SettingTitle, Label: "Card Title", Kind: FieldText, Value: settingString(component, SettingTitle, "")},
			{Name: "content", Label: "Card Content", Kind: FieldTextarea, Value: component.Content.Text},
			{Name: SettingImageURL, Label: "Card Image", Kind: FieldMedia, Value: settingString(component, SettingImageURL, "")},
		}
	case pages.ComponentForm:
		return []Field{
			{Name: SettingFormType, Label: "Form Type", Kind: FieldSelect, Options: formTypes, Value: settingString(component, SettingFormType, DefaultFormType)},
			{Name: SettingSubmitText, Label: "Submit Button Text", Kind: FieldText, Value: settingString(component, SettingSubmitText, DefaultSubmitText)},
		}
	case pages.ComponentRichText:
		// Rich text is edited through the block editor, not flat fields.
		return nil
	default:
		return []Field{
			{Name: "content", Label: "Content", Kind: FieldJSON, Value: customFieldValue(component.Content)},
		}
	}
}

// Apply validates the supplied field values against the component type and
// returns the updated component. Unknown fields and enum violations are
// reported as validation.Errors keyed by field name. Media fields are
// rejected; use ApplyMediaSelection for those.
func (e *Editor) Apply(component pages.Component, values map[string]any) (pages.Component, error) {
	updated := pages.CloneComponent(component)
	errs := validation.Errors{}

	for name, value := range values {
		if err := e.applyField(&updated, name, value); err != nil {
			errs[name] = err
		}
	}

	if len(errs) > 0 {
		return pages.Component{}, errs
	}
	return updated, nil
}

// ApplyMediaSelection writes a media URL into the component's media field:
// the content of image and video components, the image setting of cards, and
// the background image is handled at the section level.
func (e *Editor) ApplyMediaSelection(component pages.Component, url string) (pages.Component, error) {
	updated := pages.CloneComponent(component)

	switch component.Type {
	case pages.ComponentImage, pages.ComponentVideo:
		updated.Content = pages.TextContent(url)
	case pages.ComponentCard:
		setSetting(&updated, SettingImageURL, url)
	default:
		return pages.Component{}, validation.Errors{
			"media": validation.NewError("pagebuilder.component.media_not_supported", "component type does not accept media"),
		}
	}

	return updated, nil
}

// SetAnimation attaches animation metadata, filling in the default duration
// when one is enabled without an explicit duration. The none type clears the
// animation entirely.
func (e *Editor) SetAnimation(component pages.Component, animation pages.Animation) pages.Component {
	updated := pages.CloneComponent(component)

	if animation.Type == "" || animation.Type == pages.AnimationNone {
		updated.Animation = nil
		return updated
	}

	if animation.Duration <= 0 {
		animation.Duration = pages.DefaultAnimationDuration
	}
	if animation.Delay < 0 {
		animation.Delay = 0
	}
	updated.Animation = &animation
	return updated
}

// SetStyles attaches style tokens. An all-zero value clears them.
func (e *Editor) SetStyles(component pages.Component, styles pages.Styles) pages.Component {
	updated := pages.CloneComponent(component)
	if styles == (pages.Styles{}) {
		updated.Styles = nil
		return updated
	}
	updated.Styles = &styles
	return updated
}

func (e *Editor) applyField(component *pages.Component, name string, value any) error {
	if name == "content" {
		return e.applyContent(component, value)
	}

	switch name {
	case SettingHeadingLevel:
		if component.Type != pages.ComponentHeading {
			return unknownField(name)
		}
		return applyEnumSetting(component, name, value, headingLevels)
	case SettingAlt:
		if component.Type != pages.ComponentImage {
			return unknownField(name)
		}
		return applyStringSetting(component, name, value)
	case SettingURL:
		if component.Type != pages.ComponentButton {
			return unknownField(name)
		}
		return applyStringSetting(component, name, value)
	case SettingButtonStyle:
		if component.Type != pages.ComponentButton {
			return unknownField(name)
		}
		return applyEnumSetting(component, name, value, buttonStyles)
	case SettingAutoplay:
		if component.Type != pages.ComponentVideo {
			return unknownField(name)
		}
		enabled, ok := value.(bool)
		if !ok {
			return validation.NewError("pagebuilder.component.autoplay_invalid", "autoplay must be a boolean")
		}
		setSetting(component, name, enabled)
		return nil
	case SettingTitle:
		if component.Type != pages.ComponentCard {
			return unknownField(name)
		}
		return applyStringSetting(component, name, value)
	case SettingImageURL:
		return validation.NewError("pagebuilder.component.media_only", "image fields are set through the media selector")
	case SettingFormType:
		if component.Type != pages.ComponentForm {
			return unknownField(name)
		}
		return applyEnumSetting(component, name, value, formTypes)
	case SettingSubmitText:
		if component.Type != pages.ComponentForm {
			return unknownField(name)
		}
		return applyStringSetting(component, name, value)
	default:
		return unknownField(name)
	}
}

func (e *Editor) applyContent(component *pages.Component, value any) error {
	switch component.Type {
	case pages.ComponentImage, pages.ComponentVideo:
		return validation.NewError("pagebuilder.component.media_only", "media URLs are set through the media selector")
	case pages.ComponentRichText:
		switch typed := value.(type) {
		case *pages.RichTextContent:
			component.Content = pages.RichContent(typed)
		case pages.RichTextContent:
			component.Content = pages.RichContent(&typed)
		default:
			return validation.NewError("pagebuilder.component.richtext_invalid", "rich text content must be a block document")
		}
		return nil
	case pages.ComponentCustom:
		content := pages.DataContent(value)
		if text, ok := value.(string); ok {
			content = parseCustomContent(text)
		}
		if content.Data != nil && e.customSchema != nil {
			if err := schema.ValidatePayload(e.customSchema, content.Data); err != nil {
				return validation.NewError("pagebuilder.component.custom_invalid", err.Error())
			}
		}
		component.Content = content
		return nil
	default:
		text, ok := value.(string)
		if !ok {
			return validation.NewError("pagebuilder.component.content_invalid", "content must be a string")
		}
		component.Content = pages.TextContent(text)
		return nil
	}
}

// parseCustomContent keeps structured payloads structured: input that parses
// as a JSON object or array is stored as data, everything else stays a raw
// string.
func parseCustomContent(text string) pages.ComponentContent {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var value any
		if err := json.Unmarshal([]byte(trimmed), &value); err == nil {
			return pages.DataContent(value)
		}
	}
	return pages.TextContent(text)
}

func customFieldValue(content pages.ComponentContent) any {
	if content.Data != nil {
		raw, err := json.MarshalIndent(content.Data, "", "  ")
		if err == nil {
			return string(raw)
		}
	}
	return content.Text
}

func applyStringSetting(component *pages.Component, name string, value any) error {
	text, ok := value.(string)
	if !ok {
		return validation.NewError("pagebuilder.component."+name+"_invalid", name+" must be a string")
	}
	setSetting(component, name, text)
	return nil
}

func applyEnumSetting(component *pages.Component, name string, value any, allowed []string) error {
	text, ok := value.(string)
	if !ok {
		return validation.NewError("pagebuilder.component."+name+"_invalid", name+" must be a string")
	}
	for _, option := range allowed {
		if text == option {
			setSetting(component, name, text)
			return nil
		}
	}
	return validation.NewError("pagebuilder.component."+name+"_invalid", name+" must be one of "+strings.Join(allowed, ", "))
}

func setSetting(component *pages.Component, name string, value any) {
	if component.Settings == nil {
		component.Settings = map[string]any{}
	}
	component.Settings[name] = value
}

func settingString(component pages.Component, name, fallback string) string {
	if component.Settings == nil {
		return fallback
	}
	if text, ok := component.Settings[name].(string); ok && text != "" {
		return text
	}
	return fallback
}

func settingBool(component pages.Component, name string) bool {
	if component.Settings == nil {
		return false
	}
	enabled, _ := component.Settings[name].(bool)
	return enabled
}

func unknownField(name string) error {
	return validation.NewError("pagebuilder.component.field_unknown", name+" is not editable for this component type")
}
