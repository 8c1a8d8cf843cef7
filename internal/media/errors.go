package media

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired is returned when an upload carries no file name.
	ErrNameRequired = errors.New("media: file name is required")
	// ErrBodyRequired is returned when an upload carries no content.
	ErrBodyRequired = errors.New("media: file body is required")
	// ErrIDRequired is returned when an operation is missing the media id.
	ErrIDRequired = errors.New("media: media id is required")
	// ErrActorRequired is returned when an upload carries no actor identity.
	ErrActorRequired = errors.New("media: actor id is required")
	// ErrStoreUnavailable is returned when no object store is configured.
	ErrStoreUnavailable = errors.New("media: object store unavailable")
	// ErrSelectorClosed is returned when a closed selector is used.
	ErrSelectorClosed = errors.New("media: selector is closed")
)

// NotFoundError reports a missing media record.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("media: asset %q not found", e.Key)
}
