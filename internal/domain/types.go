package domain

import "strings"

// Status represents lifecycle states for pages and media.
type Status string

const (
	// StatusDraft indicates a document still under preparation.
	StatusDraft Status = "draft"
	// StatusPublished identifies a document visible to site visitors.
	StatusPublished Status = "published"
	// StatusArchived marks a document retained for history but hidden.
	StatusArchived Status = "archived"
)

// ParseStatus normalizes a raw status string, defaulting to draft.
func ParseStatus(value string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusPublished:
		return StatusPublished
	case StatusArchived:
		return StatusArchived
	default:
		return StatusDraft
	}
}

// Direction identifies the neighbour targeted by a move operation.
type Direction string

const (
	// DirectionUp moves an element toward the start of its sequence.
	DirectionUp Direction = "up"
	// DirectionDown moves an element toward the end of its sequence.
	DirectionDown Direction = "down"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}
