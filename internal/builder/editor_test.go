package builder_test

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-pagebuilder/internal/builder"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/google/uuid"
)

func TestEditorFieldsForHeading(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{
		ID:      uuid.New(),
		Type:    pages.ComponentHeading,
		Content: pages.TextContent("Welcome"),
	}

	fields := editor.FieldsFor(component)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "content" || fields[0].Value != "Welcome" {
		t.Fatalf("unexpected content field: %+v", fields[0])
	}
	if fields[1].Name != builder.SettingHeadingLevel || fields[1].Value != builder.DefaultHeadingLevel {
		t.Fatalf("expected default heading level %s, got %+v", builder.DefaultHeadingLevel, fields[1])
	}
}

func TestEditorApplyHeading(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentHeading}

	updated, err := editor.Apply(component, map[string]any{
		"content":                   "Our Services",
		builder.SettingHeadingLevel: "h1",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Content.Text != "Our Services" {
		t.Fatalf("content not applied")
	}
	if updated.Settings[builder.SettingHeadingLevel] != "h1" {
		t.Fatalf("heading level not applied")
	}

	_, err = editor.Apply(component, map[string]any{builder.SettingHeadingLevel: "h7"})
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if _, found := errs[builder.SettingHeadingLevel]; !found {
		t.Fatalf("expected heading level violation, got %v", errs)
	}
}

func TestEditorApplyRejectsUnknownFields(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentText}

	_, err := editor.Apply(component, map[string]any{builder.SettingAutoplay: true})
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if _, found := errs[builder.SettingAutoplay]; !found {
		t.Fatalf("expected autoplay rejection for text component")
	}
}

func TestEditorApplyButtonStyleEnum(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentButton}

	updated, err := editor.Apply(component, map[string]any{
		"content":                  "Get Started",
		builder.SettingURL:         "/contact",
		builder.SettingButtonStyle: "outline",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Settings[builder.SettingButtonStyle] != "outline" {
		t.Fatalf("button style not applied")
	}

	if _, err := editor.Apply(component, map[string]any{builder.SettingButtonStyle: "ghost"}); err == nil {
		t.Fatalf("expected enum violation for unknown button style")
	}
}

func TestEditorMediaFieldsSelectorOnly(t *testing.T) {
	editor := builder.NewEditor()
	image := pages.Component{ID: uuid.New(), Type: pages.ComponentImage}

	if _, err := editor.Apply(image, map[string]any{"content": "https://cdn.example.com/sneaky.png"}); err == nil {
		t.Fatalf("expected image URL edits to be rejected")
	}

	updated, err := editor.ApplyMediaSelection(image, "https://cdn.example.com/hero.png")
	if err != nil {
		t.Fatalf("apply media: %v", err)
	}
	if updated.Content.Text != "https://cdn.example.com/hero.png" {
		t.Fatalf("media URL not applied")
	}

	card := pages.Component{ID: uuid.New(), Type: pages.ComponentCard}
	updated, err = editor.ApplyMediaSelection(card, "https://cdn.example.com/card.png")
	if err != nil {
		t.Fatalf("apply media: %v", err)
	}
	if updated.Settings[builder.SettingImageURL] != "https://cdn.example.com/card.png" {
		t.Fatalf("card image not applied")
	}

	form := pages.Component{ID: uuid.New(), Type: pages.ComponentForm}
	if _, err := editor.ApplyMediaSelection(form, "https://cdn.example.com/nope.png"); err == nil {
		t.Fatalf("expected media selection rejection for form component")
	}
}

func TestEditorApplyCustomContentHeuristic(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentCustom}

	structured, err := editor.Apply(component, map[string]any{
		"content": `{"widget":"pricing","tiers":["basic","pro"]}`,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	data, ok := structured.Content.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected structured payload, got %+v", structured.Content)
	}
	if data["widget"] != "pricing" {
		t.Fatalf("structured payload lost")
	}

	raw, err := editor.Apply(component, map[string]any{"content": "plain markup"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if raw.Content.Text != "plain markup" {
		t.Fatalf("expected raw string payload, got %+v", raw.Content)
	}

	// Malformed JSON that merely looks structured stays a raw string.
	broken, err := editor.Apply(component, map[string]any{"content": `{"widget":`})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if broken.Content.Text != `{"widget":` {
		t.Fatalf("expected malformed JSON to stay raw, got %+v", broken.Content)
	}
}

func TestEditorCustomPayloadSchema(t *testing.T) {
	editor := builder.NewEditor(builder.WithCustomPayloadSchema(map[string]any{
		"type":     "object",
		"required": []any{"widget"},
		"properties": map[string]any{
			"widget": map[string]any{"type": "string"},
		},
	}))
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentCustom}

	if _, err := editor.Apply(component, map[string]any{
		"content": `{"widget":"pricing"}`,
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := editor.Apply(component, map[string]any{
		"content": `{"other":"thing"}`,
	}); err == nil {
		t.Fatalf("expected schema violation for missing widget key")
	}

	// Raw strings bypass the schema.
	if _, err := editor.Apply(component, map[string]any{"content": "raw markup"}); err != nil {
		t.Fatalf("apply raw: %v", err)
	}
}

func TestEditorSetAnimationDefaults(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentText}

	updated := editor.SetAnimation(component, pages.Animation{Type: pages.AnimationFade})
	if updated.Animation == nil {
		t.Fatalf("expected animation to be set")
	}
	if updated.Animation.Duration != pages.DefaultAnimationDuration {
		t.Fatalf("expected default duration %d, got %d", pages.DefaultAnimationDuration, updated.Animation.Duration)
	}

	cleared := editor.SetAnimation(updated, pages.Animation{Type: pages.AnimationNone})
	if cleared.Animation != nil {
		t.Fatalf("expected none to clear the animation")
	}
}

func TestEditorApplyDoesNotMutateInput(t *testing.T) {
	editor := builder.NewEditor()
	component := pages.Component{
		ID:       uuid.New(),
		Type:     pages.ComponentHeading,
		Content:  pages.TextContent("before"),
		Settings: map[string]any{builder.SettingHeadingLevel: "h3"},
	}

	if _, err := editor.Apply(component, map[string]any{
		"content":                   "after",
		builder.SettingHeadingLevel: "h2",
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if component.Content.Text != "before" {
		t.Fatalf("apply mutated the input component content")
	}
	if component.Settings[builder.SettingHeadingLevel] != "h3" {
		t.Fatalf("apply mutated the input component settings")
	}
}
