package pages

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// Service exposes page management use-cases.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context, req ListPagesRequest) ([]*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	Publish(ctx context.Context, req PublishPageRequest) (*Page, error)
	Unpublish(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*Page, error)
	Archive(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*Page, error)
	Duplicate(ctx context.Context, req DuplicatePageRequest) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreatePageRequest captures the information required to create a page. When
// Slug is empty it is derived from the title.
type CreatePageRequest struct {
	Title           string
	Slug            string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Sections        []Section
	CreatedBy       uuid.UUID
}

// ListPagesRequest filters the page listing. A zero value lists everything.
type ListPagesRequest struct {
	Status domain.Status
}

// UpdatePageRequest carries a partial update. Nil fields are left untouched.
// BaseVersion enables optimistic concurrency; zero skips the check.
type UpdatePageRequest struct {
	ID              uuid.UUID
	Title           *string
	Slug            *string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Sections        []Section
	BaseVersion     int
	UpdatedBy       uuid.UUID
}

// PublishPageRequest captures the publish operation. AsHomepage promotes the
// page to the site homepage, demoting any previous one.
type PublishPageRequest struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	AsHomepage bool
}

// DuplicatePageRequest captures the duplicate operation. Title and Slug
// default to copies derived from the source page.
type DuplicatePageRequest struct {
	ID      uuid.UUID
	ActorID uuid.UUID
	Title   string
	Slug    string
}

// Repository abstracts storage operations for page documents.
type Repository interface {
	Create(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	GetHomepage(ctx context.Context) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, record *Page) (*Page, error)
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

// IDGenerator produces identifiers for new records.
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

type service struct {
	repo   Repository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs a page service with the required dependencies.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create stores a new draft page. The slug is derived from the title when
// absent, and must be unique across all pages.
func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if (req.CreatedBy == uuid.UUID{}) {
		return nil, ErrActorRequired
	}

	pageSlug, err := s.resolveSlug(req.Slug, title)
	if err != nil {
		return nil, err
	}

	if err := s.ensureSlugAvailable(ctx, pageSlug, uuid.Nil); err != nil {
		return nil, err
	}

	sections := CloneSections(req.Sections)
	if sections == nil {
		sections = []Section{}
	}
	NormalizeSectionOrder(sections)

	now := s.now()
	record := &Page{
		ID:              s.id(),
		Title:           title,
		Slug:            pageSlug,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Status:          string(domain.StatusDraft),
		Sections:        sections,
		Version:         1,
		CreatedBy:       req.CreatedBy,
		UpdatedBy:       req.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("page created", "page_id", created.ID, "slug", created.Slug)
	return created, nil
}

// Get retrieves a page by identifier regardless of status.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if (id == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

// GetBySlug resolves a published page for public routing. Draft and archived
// pages are reported as not found.
func (s *service) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}

	page, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page.Status != string(domain.StatusPublished) {
		return nil, NewNotFound("page", slug)
	}
	return page, nil
}

// List returns pages matching the filter, most recently updated first.
func (s *service) List(ctx context.Context, req ListPagesRequest) ([]*Page, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		filtered := records[:0]
		for _, record := range records {
			if record.Status == string(req.Status) {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}

// Update applies a partial update, bumping the version. A non-zero
// BaseVersion that does not match the stored version fails with
// ErrVersionConflict.
func (s *service) Update(ctx context.Context, req UpdatePageRequest) (*Page, error) {
	if (req.ID == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	if (req.UpdatedBy == uuid.UUID{}) {
		return nil, ErrActorRequired
	}

	page, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.BaseVersion != 0 && req.BaseVersion != page.Version {
		return nil, ErrVersionConflict
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		page.Title = title
	}
	if req.Slug != nil {
		pageSlug, err := s.resolveSlug(*req.Slug, page.Title)
		if err != nil {
			return nil, err
		}
		if pageSlug != page.Slug {
			if err := s.ensureSlugAvailable(ctx, pageSlug, page.ID); err != nil {
				return nil, err
			}
			page.Slug = pageSlug
		}
	}
	if req.Description != nil {
		page.Description = req.Description
	}
	if req.MetaTitle != nil {
		page.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		page.MetaDescription = req.MetaDescription
	}
	if req.Sections != nil {
		sections := CloneSections(req.Sections)
		NormalizeSectionOrder(sections)
		page.Sections = sections
	}

	page.Version++
	page.UpdatedBy = req.UpdatedBy
	page.UpdatedAt = s.now()

	return s.repo.Update(ctx, page)
}

// Publish transitions the page to published. Promoting a page to homepage
// demotes the previous homepage so at most one exists.
func (s *service) Publish(ctx context.Context, req PublishPageRequest) (*Page, error) {
	if (req.ID == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	if (req.ActorID == uuid.UUID{}) {
		return nil, ErrActorRequired
	}

	page, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.AsHomepage {
		if err := s.demoteHomepage(ctx, page.ID, req.ActorID); err != nil {
			return nil, err
		}
		page.IsHomepage = true
	}

	now := s.now()
	page.Status = string(domain.StatusPublished)
	page.PublishedAt = &now
	page.Version++
	page.UpdatedBy = req.ActorID
	page.UpdatedAt = now

	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return nil, err
	}

	s.logger.Info("page published", "page_id", updated.ID, "slug", updated.Slug, "homepage", updated.IsHomepage)
	return updated, nil
}

// Unpublish reverts a published page to draft.
func (s *service) Unpublish(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*Page, error) {
	if (id == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	if (actorID == uuid.UUID{}) {
		return nil, ErrActorRequired
	}

	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page.Status != string(domain.StatusPublished) {
		return nil, ErrNotPublished
	}

	page.Status = string(domain.StatusDraft)
	page.PublishedAt = nil
	page.Version++
	page.UpdatedBy = actorID
	page.UpdatedAt = s.now()

	return s.repo.Update(ctx, page)
}

// Archive retires a page. Archived pages keep their content but stop
// resolving by slug.
func (s *service) Archive(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*Page, error) {
	if (id == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	if (actorID == uuid.UUID{}) {
		return nil, ErrActorRequired
	}

	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	page.Status = string(domain.StatusArchived)
	page.PublishedAt = nil
	page.IsHomepage = false
	page.Version++
	page.UpdatedBy = actorID
	page.UpdatedAt = s.now()

	return s.repo.Update(ctx, page)
}

// Duplicate copies a page into a new draft with fresh identifiers throughout
// the section tree.
func (s *service) Duplicate(ctx context.Context, req DuplicatePageRequest) (*Page, error) {
	if (req.ID == uuid.UUID{}) {
		return nil, ErrIDRequired
	}
	if (req.ActorID == uuid.UUID{}) {
		return nil, ErrActorRequired
	}

	source, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = source.Title + " (copy)"
	}

	slugInput := req.Slug
	if strings.TrimSpace(slugInput) == "" {
		slugInput = source.Slug + "-copy"
	}
	pageSlug, err := s.resolveSlug(slugInput, title)
	if err != nil {
		return nil, err
	}
	pageSlug, err = s.dedupeSlug(ctx, pageSlug)
	if err != nil {
		return nil, err
	}

	sections := CloneSections(source.Sections)
	s.reassignIDs(sections)

	now := s.now()
	record := &Page{
		ID:              s.id(),
		Title:           title,
		Slug:            pageSlug,
		Description:     source.Description,
		MetaTitle:       source.MetaTitle,
		MetaDescription: source.MetaDescription,
		Status:          string(domain.StatusDraft),
		Sections:        sections,
		Version:         1,
		CreatedBy:       req.ActorID,
		UpdatedBy:       req.ActorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return s.repo.Create(ctx, record)
}

// Delete removes a page permanently.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if (id == uuid.UUID{}) {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("page deleted", "page_id", id)
	return nil
}

func (s *service) resolveSlug(input, title string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		input = title
	}
	if IsValidSlug(input) {
		return input, nil
	}
	normalized, err := NormalizeSlug(input)
	if err != nil || normalized == "" {
		return "", ErrInvalidSlug
	}
	return normalized, nil
}

func (s *service) ensureSlugAvailable(ctx context.Context, slug string, selfID uuid.UUID) error {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err == nil && existing != nil && existing.ID != selfID {
		return ErrSlugExists
	}
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func (s *service) dedupeSlug(ctx context.Context, slug string) (string, error) {
	candidate := slug
	for i := 2; ; i++ {
		err := s.ensureSlugAvailable(ctx, candidate, uuid.Nil)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, ErrSlugExists) {
			return "", err
		}
		candidate = slug + "-" + strconv.Itoa(i)
	}
}

func (s *service) demoteHomepage(ctx context.Context, exceptID uuid.UUID, actorID uuid.UUID) error {
	current, err := s.repo.GetHomepage(ctx)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	if current.ID == exceptID {
		return nil
	}

	current.IsHomepage = false
	current.Version++
	current.UpdatedBy = actorID
	current.UpdatedAt = s.now()
	_, err = s.repo.Update(ctx, current)
	return err
}

func (s *service) reassignIDs(sections []Section) {
	for i := range sections {
		sections[i].ID = s.id()
		for j := range sections[i].Components {
			sections[i].Components[j].ID = s.id()
			if rich := sections[i].Components[j].Content.RichText; rich != nil {
				for k := range rich.Blocks {
					rich.Blocks[k].ID = s.id()
				}
			}
		}
	}
}
