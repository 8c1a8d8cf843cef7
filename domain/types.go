package domain

import internaldomain "github.com/goliatone/go-pagebuilder/internal/domain"

// Status represents lifecycle states for pages and media.
type Status = internaldomain.Status

const (
	// StatusDraft indicates a document still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies a document visible to site visitors.
	StatusPublished = internaldomain.StatusPublished
	// StatusArchived marks a document retained for history but hidden.
	StatusArchived = internaldomain.StatusArchived
)

// ParseStatus normalizes a raw status string, defaulting to draft.
func ParseStatus(value string) Status {
	return internaldomain.ParseStatus(value)
}

// Direction identifies the neighbour targeted by a move operation.
type Direction = internaldomain.Direction

const (
	// DirectionUp moves an element toward the start of its sequence.
	DirectionUp = internaldomain.DirectionUp
	// DirectionDown moves an element toward the end of its sequence.
	DirectionDown = internaldomain.DirectionDown
)
