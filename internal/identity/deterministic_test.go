package identity_test

import (
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/identity"
	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := identity.UUID("go-pagebuilder:page:home")
	second := identity.UUID("go-pagebuilder:page:home")
	if first == uuid.Nil {
		t.Fatalf("expected a derived id")
	}
	if first != second {
		t.Fatalf("same key must derive the same id: %s != %s", first, second)
	}
	if identity.UUID("go-pagebuilder:page:about") == first {
		t.Fatalf("different keys must not collide")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if identity.UUID("   ") != uuid.Nil {
		t.Fatalf("blank keys must derive the nil id")
	}
}

func TestScopedDerivations(t *testing.T) {
	pageID := identity.PageUUID("Home")
	if pageID != identity.PageUUID("  home  ") {
		t.Fatalf("page ids must normalize case and whitespace")
	}

	sectionID := identity.SectionUUID(pageID, "hero")
	componentID := identity.ComponentUUID(sectionID, "heading")
	blockID := identity.BlockUUID(componentID, "intro")

	ids := map[uuid.UUID]string{
		pageID:      "page",
		sectionID:   "section",
		componentID: "component",
		blockID:     "block",
	}
	if len(ids) != 4 {
		t.Fatalf("scoped derivations must not collide: %v", ids)
	}
}
