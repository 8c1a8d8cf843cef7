package pages

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SectionType categorizes a section of the marketing site.
type SectionType string

const (
	SectionHero       SectionType = "hero"
	SectionServices   SectionType = "services"
	SectionTechnology SectionType = "technology"
	SectionInnovation SectionType = "innovation"
	SectionTimeline   SectionType = "timeline"
	SectionClients    SectionType = "clients"
	SectionCTA        SectionType = "cta"
	SectionContact    SectionType = "contact"
	SectionCustom     SectionType = "custom"
)

// LayoutType controls how a section occupies the page width.
type LayoutType string

const (
	LayoutFull      LayoutType = "full"
	LayoutContained LayoutType = "contained"
	LayoutSplit     LayoutType = "split"
)

// ComponentType discriminates the payload shape carried in Component.Content.
type ComponentType string

const (
	ComponentHeading  ComponentType = "heading"
	ComponentText     ComponentType = "text"
	ComponentImage    ComponentType = "image"
	ComponentVideo    ComponentType = "video"
	ComponentButton   ComponentType = "button"
	ComponentCard     ComponentType = "card"
	ComponentForm     ComponentType = "form"
	ComponentRichText ComponentType = "richText"
	ComponentCustom   ComponentType = "custom"
)

// BlockType identifies the kind of a rich text block.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading   BlockType = "heading"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockImage     BlockType = "image"
	BlockCode      BlockType = "code"
)

// AnimationType enumerates the entrance animations a component may declare.
type AnimationType string

const (
	AnimationNone   AnimationType = "none"
	AnimationFade   AnimationType = "fade"
	AnimationSlide  AnimationType = "slide"
	AnimationScale  AnimationType = "scale"
	AnimationRotate AnimationType = "rotate"
)

// DefaultAnimationDuration is applied when an animation is enabled without an
// explicit duration.
const DefaultAnimationDuration = 500

// Page is the routable document. It is persisted as a single row with the
// full section tree serialized into the sections column, so a save is always
// a cascading write of the whole subtree.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID              uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Title           string     `bun:"title,notnull" json:"title"`
	Slug            string     `bun:"slug,notnull" json:"slug"`
	Description     *string    `bun:"description" json:"description,omitempty"`
	MetaTitle       *string    `bun:"meta_title" json:"meta_title,omitempty"`
	MetaDescription *string    `bun:"meta_description" json:"meta_description,omitempty"`
	Status          string     `bun:"status,notnull,default:'draft'" json:"status"`
	IsHomepage      bool       `bun:"is_homepage,notnull,default:false" json:"is_homepage"`
	Sections        []Section  `bun:"sections,type:jsonb,notnull" json:"sections"`
	Version         int        `bun:"version,notnull,default:1" json:"version"`
	PublishedAt     *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedBy       uuid.UUID  `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy       uuid.UUID  `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Section is an ordered group of components. Order is the durable sort key,
// kept equal to the section's index after every structural mutation.
type Section struct {
	ID              uuid.UUID   `json:"id"`
	Title           *string     `json:"title,omitempty"`
	Type            SectionType `json:"type"`
	Layout          LayoutType  `json:"layout"`
	BackgroundColor *string     `json:"background_color,omitempty"`
	BackgroundImage *string     `json:"background_image,omitempty"`
	Components      []Component `json:"components"`
	Order           int         `json:"order"`
}

// Component is a single content unit. The shape of Content depends on Type;
// see ComponentContent.
type Component struct {
	ID        uuid.UUID        `json:"id"`
	Type      ComponentType    `json:"type"`
	Content   ComponentContent `json:"content"`
	Settings  map[string]any   `json:"settings,omitempty"`
	Order     int              `json:"order"`
	Animation *Animation       `json:"animation,omitempty"`
	Styles    *Styles          `json:"styles,omitempty"`
}

// ComponentContent is the tagged union behind Component.Content. Exactly one
// member is populated, selected by the owning component's Type: Text for the
// string-payload variants, RichText for richText components, Data for custom
// components carrying structured JSON. The zero value serializes as "".
type ComponentContent struct {
	Text     string
	RichText *RichTextContent
	Data     any
}

// TextContent builds a plain string payload.
func TextContent(text string) ComponentContent {
	return ComponentContent{Text: text}
}

// RichContent builds a rich text payload.
func RichContent(content *RichTextContent) ComponentContent {
	return ComponentContent{RichText: content}
}

// DataContent builds a structured custom payload.
func DataContent(data any) ComponentContent {
	return ComponentContent{Data: data}
}

// MarshalJSON writes the populated union member in the document wire shape: a
// bare JSON string, a rich text object, or the raw structured value.
func (c ComponentContent) MarshalJSON() ([]byte, error) {
	switch {
	case c.RichText != nil:
		return json.Marshal(c.RichText)
	case c.Data != nil:
		return json.Marshal(c.Data)
	default:
		return json.Marshal(c.Text)
	}
}

// UnmarshalJSON restores the union from the wire shape. Without the sibling
// type discriminator it keeps the raw decoding: strings land in Text, objects
// shaped like rich text land in RichText, everything else in Data. Component
// and its UnmarshalJSON re-dispatch by type afterwards.
func (c *ComponentContent) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = ComponentContent{Text: text}
		return nil
	}

	var probe struct {
		Blocks *[]RichTextBlock `json:"blocks"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Blocks != nil {
		rich := &RichTextContent{Blocks: *probe.Blocks}
		*c = ComponentContent{RichText: rich}
		return nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("pages: decode component content: %w", err)
	}
	*c = ComponentContent{Data: value}
	return nil
}

// UnmarshalJSON decodes the component and then normalizes Content against the
// declared type, so documents round-trip deterministically regardless of how
// the payload was stored.
func (c *Component) UnmarshalJSON(data []byte) error {
	type alias Component
	var aux struct {
		alias
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = Component(aux.alias)
	if len(aux.Content) == 0 {
		c.Content = ComponentContent{}
		return nil
	}

	content, err := decodeContent(c.Type, aux.Content)
	if err != nil {
		return err
	}
	c.Content = content
	return nil
}

func decodeContent(t ComponentType, raw json.RawMessage) (ComponentContent, error) {
	switch t {
	case ComponentRichText:
		var rich RichTextContent
		if err := json.Unmarshal(raw, &rich); err != nil {
			return ComponentContent{}, fmt.Errorf("pages: decode rich text content: %w", err)
		}
		return ComponentContent{RichText: &rich}, nil
	case ComponentCustom:
		// Custom payloads keep their structure verbatim, even when they
		// happen to carry a "blocks" key.
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return ComponentContent{Text: text}, nil
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return ComponentContent{}, fmt.Errorf("pages: decode component content: %w", err)
		}
		return ComponentContent{Data: value}, nil
	default:
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return ComponentContent{Text: text}, nil
		}
		// Tolerate legacy documents that stored structured payloads under a
		// string-typed component.
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return ComponentContent{}, fmt.Errorf("pages: decode component content: %w", err)
		}
		return ComponentContent{Data: value}, nil
	}
}

// Animation is presentation metadata shared by every component variant.
type Animation struct {
	Type     AnimationType `json:"type"`
	Duration int           `json:"duration,omitempty"`
	Delay    int           `json:"delay,omitempty"`
}

// Styles carries free-form spacing and color tokens shared by every variant.
type Styles struct {
	Margin     string `json:"margin,omitempty"`
	Padding    string `json:"padding,omitempty"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
}

// RichTextContent is the sub-document edited inside a richText component.
// Blocks are ordered purely by position; they carry no order field.
type RichTextContent struct {
	Blocks []RichTextBlock `json:"blocks"`
}

// RichTextBlock is one typed unit of rich text. Level applies to heading
// blocks, Alt to image blocks.
type RichTextBlock struct {
	ID      uuid.UUID `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
	Level   int       `json:"level,omitempty"`
	Alt     string    `json:"alt,omitempty"`
}

// ClonePage deep-copies a page including its section tree.
func ClonePage(src *Page) *Page {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Sections = CloneSections(src.Sections)
	copied.Description = cloneStringPtr(src.Description)
	copied.MetaTitle = cloneStringPtr(src.MetaTitle)
	copied.MetaDescription = cloneStringPtr(src.MetaDescription)
	copied.PublishedAt = cloneTimePtr(src.PublishedAt)
	return &copied
}

// CloneSections deep-copies an ordered section sequence.
func CloneSections(src []Section) []Section {
	if src == nil {
		return nil
	}
	out := make([]Section, len(src))
	for i, section := range src {
		out[i] = CloneSection(section)
	}
	return out
}

// CloneSection deep-copies one section and its components.
func CloneSection(src Section) Section {
	copied := src
	copied.Title = cloneStringPtr(src.Title)
	copied.BackgroundColor = cloneStringPtr(src.BackgroundColor)
	copied.BackgroundImage = cloneStringPtr(src.BackgroundImage)
	if src.Components != nil {
		copied.Components = make([]Component, len(src.Components))
		for i, component := range src.Components {
			copied.Components[i] = CloneComponent(component)
		}
	}
	return copied
}

// CloneComponent deep-copies one component including its payload.
func CloneComponent(src Component) Component {
	copied := src
	if src.Settings != nil {
		copied.Settings = make(map[string]any, len(src.Settings))
		for k, v := range src.Settings {
			copied.Settings[k] = v
		}
	}
	if src.Animation != nil {
		animation := *src.Animation
		copied.Animation = &animation
	}
	if src.Styles != nil {
		styles := *src.Styles
		copied.Styles = &styles
	}
	copied.Content = cloneContent(src.Content)
	return copied
}

func cloneContent(src ComponentContent) ComponentContent {
	if src.RichText != nil {
		rich := &RichTextContent{}
		if src.RichText.Blocks != nil {
			rich.Blocks = make([]RichTextBlock, len(src.RichText.Blocks))
			copy(rich.Blocks, src.RichText.Blocks)
		}
		return ComponentContent{RichText: rich}
	}
	if src.Data != nil {
		return ComponentContent{Data: cloneValue(src.Data)}
	}
	return src
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = cloneValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = cloneValue(v)
		}
		return out
	default:
		return value
	}
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func cloneTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
