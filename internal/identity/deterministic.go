package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PageUUID derives the id for a seeded page from its slug.
func PageUUID(slug string) uuid.UUID {
	return UUID("go-pagebuilder:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// SectionUUID derives the id for a seeded section from its owning page and
// section type.
func SectionUUID(pageID uuid.UUID, sectionKey string) uuid.UUID {
	return UUID("go-pagebuilder:section:" + pageID.String() + ":" + strings.ToLower(strings.TrimSpace(sectionKey)))
}

// ComponentUUID derives the id for a seeded component from its owning
// section and position.
func ComponentUUID(sectionID uuid.UUID, key string) uuid.UUID {
	return UUID("go-pagebuilder:component:" + sectionID.String() + ":" + strings.ToLower(strings.TrimSpace(key)))
}

// BlockUUID derives the id for a seeded rich text block from its owning
// component and position.
func BlockUUID(componentID uuid.UUID, key string) uuid.UUID {
	return UUID("go-pagebuilder:block:" + componentID.String() + ":" + strings.ToLower(strings.TrimSpace(key)))
}
