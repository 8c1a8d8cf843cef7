package pages

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleRequired is returned when a page is created without a title.
	ErrTitleRequired = errors.New("pages: title is required")
	// ErrSlugRequired is returned when a page has no usable slug.
	ErrSlugRequired = errors.New("pages: slug is required")
	// ErrInvalidSlug is returned when the provided slug fails validation.
	ErrInvalidSlug = errors.New("pages: slug must contain lowercase letters, numbers, and hyphens only")
	// ErrSlugExists is returned when the slug is already taken by another page.
	ErrSlugExists = errors.New("pages: slug already exists")
	// ErrIDRequired is returned when an operation is missing the page id.
	ErrIDRequired = errors.New("pages: page id is required")
	// ErrActorRequired is returned when a mutation carries no actor identity.
	ErrActorRequired = errors.New("pages: actor id is required")
	// ErrVersionConflict is returned when an update carries a stale base
	// version.
	ErrVersionConflict = errors.New("pages: page was modified by another editor")
	// ErrNotPublished is returned when unpublish targets a page that is not
	// published.
	ErrNotPublished = errors.New("pages: page is not published")
)

// NotFoundError reports a missing page by id or slug.
type NotFoundError struct {
	Resource string
	Key      string
}

// Error satisfies the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pages: %s %q not found", e.Resource, e.Key)
}

// Is enables errors.Is comparisons against other not-found errors.
func (e *NotFoundError) Is(target error) bool {
	other, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return other.Resource == e.Resource && (other.Key == "" || other.Key == e.Key)
}

// NewNotFound builds a NotFoundError for the given resource and lookup key.
func NewNotFound(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}
