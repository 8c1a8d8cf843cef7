package media

import (
	"context"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// DefaultFolder is where uploads land when no folder is given.
const DefaultFolder = "cms"

// Service exposes the media library use-cases.
type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*Media, error)
	Get(ctx context.Context, id uuid.UUID) (*Media, error)
	List(ctx context.Context, req ListRequest) ([]*Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateMetadata(ctx context.Context, req UpdateMetadataRequest) (*Media, error)
}

// UploadRequest captures one file upload. Progress, when set, receives real
// byte counts as the body is copied into the object store.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Folder      string
	Tags        []string
	UploadedBy  uuid.UUID
	Progress    interfaces.ProgressFunc
}

// ListRequest filters the library listing. Zero values list everything.
type ListRequest struct {
	Type   Type
	Folder string
}

// UpdateMetadataRequest carries a partial metadata update. Nil fields are
// left untouched.
type UpdateMetadataRequest struct {
	ID   uuid.UUID
	Name *string
	Tags []string
}

// Repository abstracts storage operations for media records.
type Repository interface {
	Create(ctx context.Context, record *Media) (*Media, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Media, error)
	List(ctx context.Context) ([]*Media, error)
	Update(ctx context.Context, record *Media) (*Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new records and object keys.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultFolder overrides the object-store prefix used when an upload
// does not name a folder.
func WithDefaultFolder(folder string) ServiceOption {
	return func(s *service) {
		if trimmed := strings.Trim(strings.TrimSpace(folder), "/"); trimmed != "" {
			s.folder = trimmed
		}
	}
}

type service struct {
	repo   Repository
	store  interfaces.ObjectStore
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
	folder string
}

// NewService constructs a media service backed by the given record
// repository and object store.
func NewService(repo Repository, store interfaces.ObjectStore, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		store:  store,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
		folder: DefaultFolder,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Upload stores the file body under a generated key and records the asset.
// The object key keeps the original extension so public URLs stay typed.
func (s *service) Upload(ctx context.Context, req UploadRequest) (*Media, error) {
	name := strings.TrimSpace(req.FileName)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.Body == nil {
		return nil, ErrBodyRequired
	}
	if (req.UploadedBy == uuid.UUID{}) {
		return nil, ErrActorRequired
	}
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	folder := strings.Trim(strings.TrimSpace(req.Folder), "/")
	if folder == "" {
		folder = s.folder
	}

	id := s.id()
	key := folder + "/" + id.String() + path.Ext(name)

	body := req.Body
	if req.Progress != nil {
		body = &progressReader{
			inner:    req.Body,
			total:    req.Size,
			progress: req.Progress,
		}
	}

	handle, err := s.store.Put(ctx, key, body, req.Size)
	if err != nil {
		return nil, err
	}
	url, err := s.store.PublicURL(ctx, handle)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &Media{
		ID:          id,
		Name:        name,
		URL:         url,
		ObjectKey:   key,
		Type:        DeriveType(req.ContentType),
		ContentType: req.ContentType,
		Size:        req.Size,
		Folder:      folder,
		Tags:        req.Tags,
		UploadedBy:  req.UploadedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		// The object is already stored; drop it so failed uploads do not
		// leak blobs.
		if cleanupErr := s.store.Delete(ctx, url); cleanupErr != nil {
			s.logger.Warn("orphaned object after failed upload", "key", key, "error", cleanupErr)
		}
		return nil, err
	}

	s.logger.Info("media uploaded", "media_id", created.ID, "key", key, "type", created.Type)
	return created, nil
}

// Get retrieves one asset by id.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Media, error) {
	if (id == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

// List returns assets matching the filter, most recent first.
func (s *service) List(ctx context.Context, req ListRequest) ([]*Media, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := records[:0]
	for _, record := range records {
		if req.Type != "" && record.Type != req.Type {
			continue
		}
		if req.Folder != "" && record.Folder != req.Folder {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// Delete removes the stored object first and then the record, so a failed
// object delete never leaves a record pointing at nothing.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if (id == uuid.UUID{}) {
		return ErrIDRequired
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.Delete(ctx, record.URL); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("media deleted", "media_id", id, "key", record.ObjectKey)
	return nil
}

// UpdateMetadata renames or retags an asset without touching the stored
// object.
func (s *service) UpdateMetadata(ctx context.Context, req UpdateMetadataRequest) (*Media, error) {
	if (req.ID == uuid.UUID{}) {
		return nil, ErrIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		record.Name = name
	}
	if req.Tags != nil {
		record.Tags = req.Tags
	}
	record.UpdatedAt = s.now()

	return s.repo.Update(ctx, record)
}

// progressReader reports cumulative bytes read to the progress callback.
type progressReader struct {
	inner    io.Reader
	written  int64
	total    int64
	progress interfaces.ProgressFunc
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		r.written += int64(n)
		r.progress(r.written, r.total)
	}
	return n, err
}
