package admin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/internal/media"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// Service exposes the read-side of the admin dashboard: page summaries,
// library stats, and the links into the editor and public site.
type Service interface {
	ListPages(ctx context.Context, req ListPagesRequest) ([]PageSummary, error)
	Stats(ctx context.Context) (Stats, error)
	EditURL(pageID uuid.UUID) (string, error)
	NewPageURL() (string, error)
	PreviewURL(ctx context.Context, pageID uuid.UUID) (string, error)
}

// ListPagesRequest filters the dashboard listing.
type ListPagesRequest struct {
	Status domain.Status
}

// PageSummary is the dashboard row for one page.
type PageSummary struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Status       string     `json:"status"`
	IsHomepage   bool       `json:"is_homepage"`
	SectionCount int        `json:"section_count"`
	Version      int        `json:"version"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Stats aggregates page and media counts for the dashboard header.
// MediaAssets stays zero when no media service is wired in.
type Stats struct {
	Total       int `json:"total"`
	Published   int `json:"published"`
	Drafts      int `json:"drafts"`
	Archived    int `json:"archived"`
	MediaAssets int `json:"media_assets"`
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMediaService wires the media library into Stats so the dashboard can
// report the asset count.
func WithMediaService(mediaService media.Service) ServiceOption {
	return func(s *service) {
		s.media = mediaService
	}
}

type service struct {
	pages  pages.Service
	media  media.Service
	urls   *URLResolver
	logger interfaces.Logger
}

// NewService constructs the admin read service.
func NewService(pageService pages.Service, urls *URLResolver, opts ...ServiceOption) Service {
	s := &service{
		pages:  pageService,
		urls:   urls,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListPages returns dashboard summaries, most recently updated first.
func (s *service) ListPages(ctx context.Context, req ListPagesRequest) ([]PageSummary, error) {
	records, err := s.pages.List(ctx, pages.ListPagesRequest{Status: req.Status})
	if err != nil {
		return nil, err
	}

	summaries := make([]PageSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, PageSummary{
			ID:           record.ID,
			Title:        record.Title,
			Slug:         record.Slug,
			Status:       record.Status,
			IsHomepage:   record.IsHomepage,
			SectionCount: len(record.Sections),
			Version:      record.Version,
			PublishedAt:  record.PublishedAt,
			UpdatedAt:    record.UpdatedAt,
		})
	}
	return summaries, nil
}

// Stats aggregates page counts across all statuses plus the media library
// size when a media service is wired in.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	records, err := s.pages.List(ctx, pages.ListPagesRequest{})
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(records)}
	for _, record := range records {
		switch domain.ParseStatus(record.Status) {
		case domain.StatusPublished:
			stats.Published++
		case domain.StatusArchived:
			stats.Archived++
		default:
			stats.Drafts++
		}
	}

	if s.media != nil {
		assets, err := s.media.List(ctx, media.ListRequest{})
		if err != nil {
			return Stats{}, err
		}
		stats.MediaAssets = len(assets)
	}
	return stats, nil
}

// EditURL returns the editor address for a page.
func (s *service) EditURL(pageID uuid.UUID) (string, error) {
	return s.urls.EditURL(pageID)
}

// NewPageURL returns the address that opens a fresh editing session.
func (s *service) NewPageURL() (string, error) {
	return s.urls.NewPageURL()
}

// PreviewURL returns the public address of a page.
func (s *service) PreviewURL(ctx context.Context, pageID uuid.UUID) (string, error) {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return "", err
	}
	return s.urls.PreviewURL(page.Slug, page.IsHomepage)
}
