package validation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/validation"
)

func widgetSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"widget"},
		"properties": map[string]any{
			"widget": map[string]any{"type": "string"},
			"count":  map[string]any{"type": "integer", "minimum": float64(0)},
		},
		"additionalProperties": false,
	}
}

func TestValidatePayloadSuccess(t *testing.T) {
	err := validation.ValidatePayload(widgetSchema(), map[string]any{
		"widget": "pricing",
		"count":  float64(3),
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidatePayloadCollectsIssues(t *testing.T) {
	err := validation.ValidatePayload(widgetSchema(), map[string]any{
		"count": float64(-1),
	})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := validation.Issues(err)
	if len(issues) == 0 {
		t.Fatalf("expected issues to be collected")
	}
}

func TestValidatePayloadNilSchemaAcceptsEverything(t *testing.T) {
	if err := validation.ValidatePayload(nil, map[string]any{"anything": true}); err != nil {
		t.Fatalf("nil schema must accept all payloads, got %v", err)
	}
}

func TestValidateSchemaRejectsBrokenSchemas(t *testing.T) {
	err := validation.ValidateSchema(map[string]any{
		"type": "not-a-type",
	})
	if !errors.Is(err, validation.ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}
