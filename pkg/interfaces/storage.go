package interfaces

import (
	"context"
	"io"
)

// ObjectStore abstracts the binary asset backend (cloud bucket, local disk).
// The page builder never owns binary persistence; it writes uploads through
// this interface and stores only the resulting public URL.
type ObjectStore interface {
	// Put writes the object body under the given path and returns an opaque
	// handle that can be exchanged for a public URL. Size is advisory;
	// implementations may ignore it when the backend streams.
	Put(ctx context.Context, path string, body io.Reader, size int64) (ObjectHandle, error)
	// PublicURL resolves a previously returned handle to an addressable URL.
	PublicURL(ctx context.Context, handle ObjectHandle) (string, error)
	// Delete removes the object identified by its public URL.
	Delete(ctx context.Context, url string) error
}

// ObjectHandle is an opaque reference to a stored object. Its contents are
// meaningful only to the ObjectStore that issued it.
type ObjectHandle string

// ProgressFunc receives true byte counts while an upload is streamed to the
// object store. Implementations that cannot observe transfer progress simply
// never invoke it; callers should then render an indeterminate indicator
// rather than a fabricated percentage.
type ProgressFunc func(written, total int64)
