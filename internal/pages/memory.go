package pages

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	pages     map[uuid.UUID]*Page
	slugIndex map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory page repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		pages:     make(map[uuid.UUID]*Page),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied page.
func (m *MemoryRepository) Create(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := ClonePage(record)
	m.pages[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return ClonePage(copied), nil
}

// GetByID retrieves a page by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.pages[id]
	if !ok {
		return nil, NewNotFound("page", id.String())
	}
	return ClonePage(rec), nil
}

// GetBySlug retrieves a page by slug, returning NotFoundError when absent.
func (m *MemoryRepository) GetBySlug(_ context.Context, slug string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, NewNotFound("page", slug)
	}
	return ClonePage(m.pages[id]), nil
}

// GetHomepage returns the page currently flagged as homepage.
func (m *MemoryRepository) GetHomepage(_ context.Context) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.pages {
		if rec.IsHomepage {
			return ClonePage(rec), nil
		}
	}
	return nil, NewNotFound("homepage", "")
}

// List returns all pages.
func (m *MemoryRepository) List(_ context.Context) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Page, 0, len(m.pages))
	for _, rec := range m.pages {
		out = append(out, ClonePage(rec))
	}
	return out, nil
}

// Update replaces the stored page.
func (m *MemoryRepository) Update(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.pages[record.ID]
	if !ok {
		return nil, NewNotFound("page", record.ID.String())
	}
	if existing.Slug != record.Slug {
		delete(m.slugIndex, existing.Slug)
	}

	copied := ClonePage(record)
	m.pages[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return ClonePage(copied), nil
}

// Delete removes the page.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.pages[id]
	if !ok {
		return NewNotFound("page", id.String())
	}
	delete(m.slugIndex, rec.Slug)
	delete(m.pages, id)
	return nil
}
