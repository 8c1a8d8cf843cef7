package builder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-pagebuilder/internal/builder"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

func newSessionFixture(t *testing.T) (pages.Service, interfaces.Session) {
	t.Helper()
	store := pages.NewMemoryRepository()
	svc := pages.NewService(store, pages.WithClock(func() time.Time {
		return time.Unix(1700000000, 0).UTC()
	}))
	return svc, interfaces.StaticSession{ID: uuid.New()}
}

func TestBuilderNewPageComposeAndSave(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	b.SetTitle("Landing")
	hero := b.AddSection(builder.AddSectionRequest{Type: pages.SectionHero, Layout: pages.LayoutFull})
	if b.ActiveSection() != hero.ID {
		t.Fatalf("expected new section to become active")
	}

	component, err := b.AddComponent(hero.ID, builder.AddComponentRequest{Type: pages.ComponentHeading})
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
	if b.ActiveComponent() != component.ID {
		t.Fatalf("expected new component to become active")
	}

	editor := builder.NewEditor()
	updated, err := editor.Apply(component, map[string]any{"content": "Hello"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := b.ReplaceComponent(updated); err != nil {
		t.Fatalf("replace: %v", err)
	}

	saved, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if (saved.ID == uuid.UUID{}) {
		t.Fatalf("expected saved page to carry an id")
	}
	if b.Dirty() {
		t.Fatalf("expected save to clear the dirty flag")
	}

	stored, err := svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := stored.Sections[0].Components[0].Content.Text; got != "Hello" {
		t.Fatalf("expected persisted content Hello, got %q", got)
	}
}

func TestBuilderSecondSaveUpdatesInsteadOfCreating(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b.SetTitle("About")

	first, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	b.AddSection(builder.AddSectionRequest{})
	second, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected second save to update the same page")
	}
	if second.Version != first.Version+1 {
		t.Fatalf("expected version bump on update, got %d", second.Version)
	}

	listed, err := svc.List(ctx, pages.ListPagesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected a single page, got %d", len(listed))
	}
}

func TestBuilderSectionDefaultsAndOrder(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	section := b.AddSection(builder.AddSectionRequest{})
	if section.Type != pages.SectionCustom {
		t.Fatalf("expected custom default type, got %q", section.Type)
	}
	if section.Layout != pages.LayoutContained {
		t.Fatalf("expected contained default layout, got %q", section.Layout)
	}
	if section.Order != 0 {
		t.Fatalf("expected first section order 0, got %d", section.Order)
	}

	second := b.AddSection(builder.AddSectionRequest{Type: pages.SectionCTA})
	if second.Order != 1 {
		t.Fatalf("expected appended section order 1, got %d", second.Order)
	}
}

func TestBuilderMoveSectionRenormalizesOrder(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	first := b.AddSection(builder.AddSectionRequest{Type: pages.SectionHero})
	second := b.AddSection(builder.AddSectionRequest{Type: pages.SectionServices})
	third := b.AddSection(builder.AddSectionRequest{Type: pages.SectionCTA})

	// Boundary moves are no-ops.
	if err := b.MoveSection(first.ID, domain.DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := b.MoveSection(third.ID, domain.DirectionDown); err != nil {
		t.Fatalf("move: %v", err)
	}

	if err := b.MoveSection(third.ID, domain.DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}

	page := b.Page()
	wantOrder := []uuid.UUID{first.ID, third.ID, second.ID}
	for i, want := range wantOrder {
		if page.Sections[i].ID != want {
			t.Fatalf("section %d out of place", i)
		}
		if page.Sections[i].Order != i {
			t.Fatalf("section %d order not renormalized: %d", i, page.Sections[i].Order)
		}
	}

	if err := b.MoveSection(second.ID, domain.Direction("left")); !errors.Is(err, builder.ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestBuilderDeleteSectionRenormalizesOrder(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	first := b.AddSection(builder.AddSectionRequest{})
	second := b.AddSection(builder.AddSectionRequest{})
	third := b.AddSection(builder.AddSectionRequest{})

	if err := b.SetActiveSection(second.ID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if err := b.DeleteSection(second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if b.ActiveSection() != uuid.Nil {
		t.Fatalf("expected selection cleared after deleting active section")
	}

	page := b.Page()
	if len(page.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(page.Sections))
	}
	if page.Sections[0].ID != first.ID || page.Sections[0].Order != 0 {
		t.Fatalf("first section misplaced after delete")
	}
	if page.Sections[1].ID != third.ID || page.Sections[1].Order != 1 {
		t.Fatalf("remaining section order not renormalized")
	}
}

func TestBuilderComponentDefaultsAndMoves(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	section := b.AddSection(builder.AddSectionRequest{})

	first, err := b.AddComponent(section.ID, builder.AddComponentRequest{})
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
	if first.Type != pages.ComponentText {
		t.Fatalf("expected text default type, got %q", first.Type)
	}
	if first.Content.Text != "New component" {
		t.Fatalf("expected placeholder content, got %q", first.Content.Text)
	}

	second, err := b.AddComponent(section.ID, builder.AddComponentRequest{Type: pages.ComponentButton})
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
	if second.Order != 1 {
		t.Fatalf("expected appended component order 1, got %d", second.Order)
	}

	if err := b.MoveComponent(second.ID, domain.DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	page := b.Page()
	components := page.Sections[0].Components
	if components[0].ID != second.ID || components[0].Order != 0 {
		t.Fatalf("expected button first after move")
	}
	if components[1].ID != first.ID || components[1].Order != 1 {
		t.Fatalf("expected text second after move")
	}

	var notFound *builder.ComponentNotFoundError
	if err := b.MoveComponent(uuid.New(), domain.DirectionUp); !errors.As(err, &notFound) {
		t.Fatalf("expected ComponentNotFoundError, got %v", err)
	}
}

func TestBuilderLoadExistingPage(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pages.CreatePageRequest{
		Title:     "Existing",
		CreatedBy: session.ActorID(),
		Sections: []pages.Section{
			{ID: uuid.New(), Type: pages.SectionHero, Layout: pages.LayoutFull},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	b, err := builder.Load(ctx, svc, session, created.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	page := b.Page()
	if page.ID != created.ID || len(page.Sections) != 1 {
		t.Fatalf("loaded page does not match stored record")
	}
	if b.Dirty() {
		t.Fatalf("freshly loaded session should not be dirty")
	}

	var notFound *pages.NotFoundError
	if _, err := builder.Load(ctx, svc, session, uuid.New()); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

// blockingService wraps a page service and parks Create calls until released,
// so overlapping saves can be provoked deterministically.
type blockingService struct {
	pages.Service
	enter   chan struct{}
	release chan struct{}
}

func (s *blockingService) Create(ctx context.Context, req pages.CreatePageRequest) (*pages.Page, error) {
	close(s.enter)
	<-s.release
	return s.Service.Create(ctx, req)
}

func TestBuilderSaveGuardsAgainstOverlap(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	blocked := &blockingService{
		Service: svc,
		enter:   make(chan struct{}),
		release: make(chan struct{}),
	}

	b, err := builder.Load(ctx, blocked, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b.SetTitle("Guarded")

	done := make(chan error, 1)
	go func() {
		_, err := b.Save(ctx)
		done <- err
	}()

	<-blocked.enter
	if _, err := b.Save(ctx); !errors.Is(err, builder.ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}
	close(blocked.release)

	if err := <-done; err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestBuilderKeepsEditsMadeDuringSave(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	blocked := &blockingService{
		Service: svc,
		enter:   make(chan struct{}),
		release: make(chan struct{}),
	}

	b, err := builder.Load(ctx, blocked, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b.SetTitle("In Flight")

	done := make(chan error, 1)
	go func() {
		_, err := b.Save(ctx)
		done <- err
	}()

	<-blocked.enter
	section := b.AddSection(builder.AddSectionRequest{Type: pages.SectionHero})
	close(blocked.release)
	if err := <-done; err != nil {
		t.Fatalf("save: %v", err)
	}

	page := b.Page()
	if len(page.Sections) != 1 || page.Sections[0].ID != section.ID {
		t.Fatalf("expected section added during save to survive, got %d sections", len(page.Sections))
	}
	if (page.ID == uuid.UUID{}) {
		t.Fatalf("expected working copy to absorb the stored id")
	}
	if !b.Dirty() {
		t.Fatalf("expected dirty flag to stay set while edits remain unpersisted")
	}

	second, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if len(second.Sections) != 1 || second.Sections[0].ID != section.ID {
		t.Fatalf("expected second save to persist the section")
	}
	if b.Dirty() {
		t.Fatalf("expected second save to clear the dirty flag")
	}
}

func TestBuilderSetSlugPersists(t *testing.T) {
	svc, session := newSessionFixture(t)
	ctx := context.Background()

	b, err := builder.Load(ctx, svc, session, uuid.Nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b.SetTitle("Pricing")
	b.SetSlug("plans")

	first, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Slug != "plans" {
		t.Fatalf("expected created slug plans, got %q", first.Slug)
	}

	b.SetSlug("pricing-plans")
	second, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.Slug != "pricing-plans" {
		t.Fatalf("expected updated slug pricing-plans, got %q", second.Slug)
	}

	stored, err := svc.GetBySlug(ctx, "pricing-plans")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if stored.ID != first.ID {
		t.Fatalf("expected slug change to stay on the same page")
	}
}
