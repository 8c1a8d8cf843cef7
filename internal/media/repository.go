package media

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewMediaRepository builds the generic bun repository for media records.
func NewMediaRepository(db *bun.DB) repository.Repository[*Media] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Media]{
		NewRecord: func() *Media { return &Media{} },
		GetID: func(m *Media) uuid.UUID {
			return m.ID
		},
		SetID: func(m *Media, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "object_key"
		},
		GetIdentifierValue: func(m *Media) string {
			return m.ObjectKey
		},
	})
}
