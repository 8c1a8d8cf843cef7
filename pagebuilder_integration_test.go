package pagebuilder_test

import (
	"context"
	"errors"
	"io/fs"
	"sort"
	"strings"
	"testing"

	pagebuilder "github.com/goliatone/go-pagebuilder"
	"github.com/goliatone/go-pagebuilder/builder"
	"github.com/goliatone/go-pagebuilder/domain"
	pagescmd "github.com/goliatone/go-pagebuilder/internal/commands/pages"
	"github.com/goliatone/go-pagebuilder/media"
	"github.com/goliatone/go-pagebuilder/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/goliatone/go-pagebuilder/pkg/testsupport"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newTestModule(t *testing.T) *pagebuilder.Module {
	t.Helper()

	cfg := pagebuilder.DefaultConfig()
	cfg.Logging.Level = "error"

	module, err := pagebuilder.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func applyMigrations(t *testing.T, db *bun.DB) {
	t.Helper()

	migrations := pagebuilder.GetMigrationsFS()
	entries, err := fs.Glob(migrations, "data/sql/migrations/*.sql")
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	sort.Strings(entries)
	for _, entry := range entries {
		contents, err := fs.ReadFile(migrations, entry)
		if err != nil {
			t.Fatalf("read %s: %v", entry, err)
		}
		if _, err := db.ExecContext(context.Background(), string(contents)); err != nil {
			t.Fatalf("apply %s: %v", entry, err)
		}
	}
}

func TestModuleSeedAndEditWithBun(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)
	applyMigrations(t, bunDB)

	cfg := pagebuilder.DefaultConfig()
	cfg.Logging.Level = "error"

	module, err := pagebuilder.New(cfg,
		pagebuilder.WithPageRepository(pages.NewBunRepository(bunDB)),
		pagebuilder.WithMediaRepository(media.NewBunRepository(bunDB)),
	)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	actor := uuid.New()
	page, err := pagebuilder.SeedHomepage(ctx, module.Pages(), actor)
	if err != nil {
		t.Fatalf("seed homepage: %v", err)
	}
	if len(page.Sections) != 8 {
		t.Fatalf("expected 8 seeded sections, got %d", len(page.Sections))
	}
	if !page.IsHomepage {
		t.Fatalf("seeded page must be the homepage")
	}
	if page.Status != string(domain.StatusPublished) {
		t.Fatalf("seeded page must be published, got %q", page.Status)
	}

	// Seeding twice returns the stored page untouched.
	again, err := pagebuilder.SeedHomepage(ctx, module.Pages(), actor)
	if err != nil {
		t.Fatalf("seed homepage again: %v", err)
	}
	if again.ID != page.ID || again.Version != page.Version {
		t.Fatalf("second seed must be a no-op, got %+v", again)
	}

	session := interfaces.StaticSession{ID: actor}
	b, err := module.OpenBuilder(ctx, session, page.ID)
	if err != nil {
		t.Fatalf("open builder: %v", err)
	}
	b.SetTitle("Home v2")
	if _, err := b.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := module.Pages().GetBySlug(ctx, pagebuilder.HomepageSlug)
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if stored.Title != "Home v2" {
		t.Fatalf("builder edit not persisted, got %q", stored.Title)
	}
	if stored.Version != page.Version+1 {
		t.Fatalf("expected version bump to %d, got %d", page.Version+1, stored.Version)
	}
}

func TestModuleBuilderScratchToDashboard(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)
	actor := uuid.New()
	session := interfaces.StaticSession{ID: actor}

	b, err := module.OpenBuilder(ctx, session, uuid.Nil)
	if err != nil {
		t.Fatalf("open builder: %v", err)
	}
	b.SetTitle("Services")
	section := b.AddSection(builder.AddSectionRequest{Type: pages.SectionServices})
	if _, err := b.AddComponent(section.ID, builder.AddComponentRequest{Type: pages.ComponentHeading}); err != nil {
		t.Fatalf("add component: %v", err)
	}
	saved, err := b.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	summaries, err := module.Admin().ListPages(ctx, pagebuilder.AdminListPagesRequest{})
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != saved.ID {
		t.Fatalf("dashboard must list the saved draft, got %+v", summaries)
	}
	if summaries[0].SectionCount != 1 {
		t.Fatalf("expected 1 section in summary, got %d", summaries[0].SectionCount)
	}

	editURL, err := module.Admin().EditURL(saved.ID)
	if err != nil {
		t.Fatalf("edit url: %v", err)
	}
	if !strings.Contains(editURL, saved.ID.String()) {
		t.Fatalf("edit url must embed the page id, got %q", editURL)
	}

	stats, err := module.Admin().Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 1 || stats.Drafts != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestModuleCommandsRoundTrip(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)
	actor := uuid.New()

	page, err := pagebuilder.SeedHomepage(ctx, module.Pages(), actor)
	if err != nil {
		t.Fatalf("seed homepage: %v", err)
	}

	commands := module.Commands()

	if err := commands.DuplicatePage.Execute(ctx, pagescmd.DuplicatePageCommand{
		PageID:  page.ID,
		ActorID: actor,
	}); err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	listed, err := module.Pages().List(ctx, pages.ListPagesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected original and copy, got %d pages", len(listed))
	}
}

func TestModuleFeatureGates(t *testing.T) {
	cfg := pagebuilder.DefaultConfig()
	cfg.Logging.Level = "error"
	cfg.Features.MediaLibrary = false
	cfg.Features.MarkdownImport = false

	module, err := pagebuilder.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	if module.Media() != nil {
		t.Fatalf("media service must be nil when the library is disabled")
	}
	if module.Importer() != nil {
		t.Fatalf("importer must be nil when markdown import is disabled")
	}
	if _, err := module.OpenMediaSelector(context.Background(), media.ListRequest{}); !errors.Is(err, pagebuilder.ErrMediaLibraryDisabled) {
		t.Fatalf("expected ErrMediaLibraryDisabled, got %v", err)
	}
	if module.Commands().CleanupMedia != nil {
		t.Fatalf("cleanup handler must be nil when the library is disabled")
	}
}

func TestModuleMediaSelectorFlow(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)
	actor := uuid.New()

	uploaded, err := module.Media().Upload(ctx, media.UploadRequest{
		FileName:    "hero.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
		UploadedBy:  actor,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	selector, err := module.OpenMediaSelector(ctx, media.ListRequest{Type: media.TypeImage})
	if err != nil {
		t.Fatalf("open selector: %v", err)
	}
	selected, err := selector.Select(uploaded.ID)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	editor := builder.NewEditor()
	component := pages.Component{ID: uuid.New(), Type: pages.ComponentImage}
	updated, err := editor.ApplyMediaSelection(component, selected.URL)
	if err != nil {
		t.Fatalf("apply media: %v", err)
	}
	if updated.Content.Text != uploaded.URL {
		t.Fatalf("selected URL not applied, got %q", updated.Content.Text)
	}

	stats, err := module.Admin().Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.MediaAssets != 1 {
		t.Fatalf("expected dashboard to count the uploaded asset, got %d", stats.MediaAssets)
	}
}
