package builder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrSaveInFlight is returned when Save is called while a previous save
	// has not finished.
	ErrSaveInFlight = errors.New("builder: save already in progress")
	// ErrSectionIDRequired is returned when an operation is missing the
	// section id.
	ErrSectionIDRequired = errors.New("builder: section id is required")
	// ErrComponentIDRequired is returned when an operation is missing the
	// component id.
	ErrComponentIDRequired = errors.New("builder: component id is required")
	// ErrInvalidDirection is returned when a move direction is unknown.
	ErrInvalidDirection = errors.New("builder: direction must be up or down")
)

// SectionNotFoundError reports a missing section by id.
type SectionNotFoundError struct {
	ID uuid.UUID
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("builder: section %q not found", e.ID)
}

// ComponentNotFoundError reports a missing component by id.
type ComponentNotFoundError struct {
	ID uuid.UUID
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("builder: component %q not found", e.ID)
}
