package media

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Media
}

// NewMemoryRepository creates an empty in-memory media repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[uuid.UUID]*Media),
	}
}

// Create inserts the supplied record.
func (m *MemoryRepository) Create(_ context.Context, record *Media) (*Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := Clone(record)
	m.records[copied.ID] = copied
	return Clone(copied), nil
}

// GetByID retrieves a record by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return Clone(rec), nil
}

// List returns all records.
func (m *MemoryRepository) List(_ context.Context) ([]*Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Media, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, Clone(rec))
	}
	return out, nil
}

// Update replaces the stored record.
func (m *MemoryRepository) Update(_ context.Context, record *Media) (*Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	copied := Clone(record)
	m.records[copied.ID] = copied
	return Clone(copied), nil
}

// Delete removes the record.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// MemoryObjectStore keeps objects in process memory for scaffolding and
// tests. Public URLs use the memory scheme so deletes can resolve keys back.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

const memoryURLPrefix = "memory://"

// NewMemoryObjectStore creates an empty in-memory object store.
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{
		objects: make(map[string][]byte),
	}
}

// Put stores the body under the given key.
func (m *MemoryObjectStore) Put(_ context.Context, key string, body io.Reader, _ int64) (interfaces.ObjectHandle, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = buf.Bytes()
	return interfaces.ObjectHandle(key), nil
}

// PublicURL returns the memory-scheme address of the object.
func (m *MemoryObjectStore) PublicURL(_ context.Context, handle interfaces.ObjectHandle) (string, error) {
	return memoryURLPrefix + string(handle), nil
}

// Delete removes the object addressed by the given URL.
func (m *MemoryObjectStore) Delete(_ context.Context, url string) error {
	key := strings.TrimPrefix(url, memoryURLPrefix)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return &NotFoundError{Key: key}
	}
	delete(m.objects, key)
	return nil
}

// Object returns a stored object's bytes, for tests.
func (m *MemoryObjectStore) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Len reports how many objects are stored, for tests.
func (m *MemoryObjectStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
