package media

import (
	"time"

	internalmedia "github.com/goliatone/go-pagebuilder/internal/media"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Re-exported errors from the internal media package.
var (
	ErrNameRequired     = internalmedia.ErrNameRequired
	ErrBodyRequired     = internalmedia.ErrBodyRequired
	ErrIDRequired       = internalmedia.ErrIDRequired
	ErrActorRequired    = internalmedia.ErrActorRequired
	ErrStoreUnavailable = internalmedia.ErrStoreUnavailable
	ErrSelectorClosed   = internalmedia.ErrSelectorClosed
)

// Re-exported types from the internal media package.
type (
	Media                 = internalmedia.Media
	Type                  = internalmedia.Type
	Service               = internalmedia.Service
	Repository            = internalmedia.Repository
	ServiceOption         = internalmedia.ServiceOption
	IDGenerator           = internalmedia.IDGenerator
	NotFoundError         = internalmedia.NotFoundError
	UploadRequest         = internalmedia.UploadRequest
	ListRequest           = internalmedia.ListRequest
	UpdateMetadataRequest = internalmedia.UpdateMetadataRequest
	Selector              = internalmedia.Selector
	SelectorOption        = internalmedia.SelectorOption
	MemoryRepository      = internalmedia.MemoryRepository
	MemoryObjectStore     = internalmedia.MemoryObjectStore
	BunRepository         = internalmedia.BunRepository
)

// Media type constants.
const (
	TypeImage    = internalmedia.TypeImage
	TypeVideo    = internalmedia.TypeVideo
	TypeDocument = internalmedia.TypeDocument
)

// DefaultFolder is where uploads land when no folder is given.
const DefaultFolder = internalmedia.DefaultFolder

// NewService constructs a media service backed by the given repository and
// object store.
func NewService(repo Repository, store interfaces.ObjectStore, opts ...ServiceOption) Service {
	return internalmedia.NewService(repo, store, opts...)
}

// NewMemoryRepository builds an in-memory media repository.
func NewMemoryRepository() *MemoryRepository {
	return internalmedia.NewMemoryRepository()
}

// NewMemoryObjectStore builds an in-memory object store.
func NewMemoryObjectStore() *MemoryObjectStore {
	return internalmedia.NewMemoryObjectStore()
}

// NewBunRepository builds a media repository backed by a bun database handle.
func NewBunRepository(db *bun.DB) *BunRepository {
	return internalmedia.NewBunRepository(db)
}

// NewBunRepositoryWithCache wraps the bun repository with a read-through cache.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	return internalmedia.NewBunRepositoryWithCache(db, cacheService, keySerializer)
}

// NewSelector constructs a media selector over the given service.
func NewSelector(service Service, opts ...SelectorOption) *Selector {
	return internalmedia.NewSelector(service, opts...)
}

// DeriveType maps a MIME content type onto a media type.
func DeriveType(contentType string) Type {
	return internalmedia.DeriveType(contentType)
}

// Clone performs a deep copy of a media record.
func Clone(src *Media) *Media {
	return internalmedia.Clone(src)
}

// WithClock overrides the service clock.
func WithClock(clock func() time.Time) ServiceOption {
	return internalmedia.WithClock(clock)
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return internalmedia.WithIDGenerator(generator)
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return internalmedia.WithLogger(logger)
}

// WithDefaultFolder overrides the object-store prefix used when an upload
// does not name a folder.
func WithDefaultFolder(folder string) ServiceOption {
	return internalmedia.WithDefaultFolder(folder)
}

// WithSelectorFilter scopes the assets a selector loads.
func WithSelectorFilter(filter ListRequest) SelectorOption {
	return internalmedia.WithSelectorFilter(filter)
}

// WithSelectorLogger attaches a logger to the selector.
func WithSelectorLogger(logger interfaces.Logger) SelectorOption {
	return internalmedia.WithSelectorLogger(logger)
}
