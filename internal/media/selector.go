package media

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// Selector is a short-lived browsing session over the media library, opened
// when an editor picks an asset for an image field. Load failures degrade to
// an empty library so the picker still opens.
type Selector struct {
	mu sync.Mutex

	service Service
	logger  interfaces.Logger
	filter  ListRequest

	items  []*Media
	closed bool
}

// SelectorOption configures the selector at construction time.
type SelectorOption func(*Selector)

// WithSelectorLogger attaches a logger to the selector.
func WithSelectorLogger(logger interfaces.Logger) SelectorOption {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSelectorFilter restricts the selector to one asset type or folder.
func WithSelectorFilter(filter ListRequest) SelectorOption {
	return func(s *Selector) {
		s.filter = filter
	}
}

// NewSelector constructs a selector over the given media service.
func NewSelector(service Service, opts ...SelectorOption) *Selector {
	s := &Selector{
		service: service,
		logger:  logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches the library snapshot. A failed fetch logs and leaves the
// selector empty rather than blocking the editing flow.
func (s *Selector) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSelectorClosed
	}

	items, err := s.service.List(ctx, s.filter)
	if err != nil {
		s.logger.Error("media library load failed", "error", err)
		s.items = []*Media{}
		return nil
	}
	s.items = items
	return nil
}

// Items returns the current snapshot.
func (s *Selector) Items() []*Media {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Media, len(s.items))
	for i, item := range s.items {
		out[i] = Clone(item)
	}
	return out
}

// Search filters the snapshot by case-insensitive match on name or tags. An
// empty query returns everything.
func (s *Selector) Search(query string) []*Media {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]*Media, len(s.items))
		for i, item := range s.items {
			out[i] = Clone(item)
		}
		return out
	}

	out := []*Media{}
	for _, item := range s.items {
		if matchesQuery(item, query) {
			out = append(out, Clone(item))
		}
	}
	return out
}

// Select resolves the chosen asset from the snapshot.
func (s *Selector) Select(id uuid.UUID) (*Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSelectorClosed
	}
	for _, item := range s.items {
		if item.ID == id {
			return Clone(item), nil
		}
	}
	return nil, &NotFoundError{Key: id.String()}
}

// Upload sends a new asset through the media service and prepends it to the
// snapshot, so the picker shows it first without a reload.
func (s *Selector) Upload(ctx context.Context, req UploadRequest) (*Media, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSelectorClosed
	}
	s.mu.Unlock()

	record, err := s.service.Upload(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSelectorClosed
	}
	s.items = append([]*Media{Clone(record)}, s.items...)
	return record, nil
}

// Close ends the browsing session and releases the snapshot.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.items = nil
}

func matchesQuery(item *Media, query string) bool {
	if strings.Contains(strings.ToLower(item.Name), query) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
