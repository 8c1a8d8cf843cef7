package media_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/media"
	"github.com/google/uuid"
)

// failingService trips every listing so degradation paths can be observed.
type failingService struct {
	media.Service
}

func (failingService) List(context.Context, media.ListRequest) ([]*media.Media, error) {
	return nil, errors.New("backend offline")
}

func seedSelectorFixture(t *testing.T) (media.Service, []*media.Media) {
	t.Helper()
	svc, _, _ := newMediaFixture()
	ctx := context.Background()
	actor := uuid.New()

	var items []*media.Media
	for _, seed := range []struct {
		name, contentType string
		tags              []string
	}{
		{"hero-banner.png", "image/png", []string{"homepage"}},
		{"team-photo.jpg", "image/jpeg", []string{"about", "people"}},
		{"intro.mp4", "video/mp4", nil},
	} {
		item, err := svc.Upload(ctx, media.UploadRequest{
			FileName:    seed.name,
			ContentType: seed.contentType,
			Size:        4,
			Body:        strings.NewReader("data"),
			Tags:        seed.tags,
			UploadedBy:  actor,
		})
		if err != nil {
			t.Fatalf("upload %s: %v", seed.name, err)
		}
		items = append(items, item)
	}
	return svc, items
}

func TestSelectorLoadAndSelect(t *testing.T) {
	svc, items := seedSelectorFixture(t)
	ctx := context.Background()

	selector := media.NewSelector(svc)
	if err := selector.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(selector.Items()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(selector.Items()))
	}

	chosen, err := selector.Select(items[0].ID)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if chosen.URL != items[0].URL {
		t.Fatalf("selected wrong asset")
	}

	var notFound *media.NotFoundError
	if _, err := selector.Select(uuid.New()); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSelectorSearchMatchesNameAndTags(t *testing.T) {
	svc, _ := seedSelectorFixture(t)
	selector := media.NewSelector(svc)
	if err := selector.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	byName := selector.Search("HERO")
	if len(byName) != 1 || byName[0].Name != "hero-banner.png" {
		t.Fatalf("name search failed: %d results", len(byName))
	}

	byTag := selector.Search("people")
	if len(byTag) != 1 || byTag[0].Name != "team-photo.jpg" {
		t.Fatalf("tag search failed: %d results", len(byTag))
	}

	if got := selector.Search(""); len(got) != 3 {
		t.Fatalf("empty query should return everything, got %d", len(got))
	}
}

func TestSelectorFilterRestrictsType(t *testing.T) {
	svc, _ := seedSelectorFixture(t)
	selector := media.NewSelector(svc, media.WithSelectorFilter(media.ListRequest{Type: media.TypeImage}))
	if err := selector.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, item := range selector.Items() {
		if item.Type != media.TypeImage {
			t.Fatalf("expected images only, got %q", item.Type)
		}
	}
	if len(selector.Items()) != 2 {
		t.Fatalf("expected 2 images, got %d", len(selector.Items()))
	}
}

func TestSelectorLoadDegradesToEmpty(t *testing.T) {
	selector := media.NewSelector(failingService{})
	if err := selector.Load(context.Background()); err != nil {
		t.Fatalf("load should degrade, got %v", err)
	}
	if len(selector.Items()) != 0 {
		t.Fatalf("expected empty library after failed load")
	}
}

func TestSelectorUploadPrependsWithoutReload(t *testing.T) {
	svc, _ := seedSelectorFixture(t)
	ctx := context.Background()

	selector := media.NewSelector(svc)
	if err := selector.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	uploaded, err := selector.Upload(ctx, media.UploadRequest{
		FileName:    "fresh-shot.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
		UploadedBy:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	items := selector.Items()
	if len(items) != 4 {
		t.Fatalf("expected 4 items after upload, got %d", len(items))
	}
	if items[0].ID != uploaded.ID {
		t.Fatalf("expected the new asset first, got %q", items[0].Name)
	}

	chosen, err := selector.Select(uploaded.ID)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if chosen.Name != "fresh-shot.png" {
		t.Fatalf("selected wrong asset: %q", chosen.Name)
	}

	selector.Close()
	if _, err := selector.Upload(ctx, media.UploadRequest{}); !errors.Is(err, media.ErrSelectorClosed) {
		t.Fatalf("expected ErrSelectorClosed, got %v", err)
	}
}

func TestSelectorClose(t *testing.T) {
	svc, items := seedSelectorFixture(t)
	selector := media.NewSelector(svc)
	if err := selector.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	selector.Close()
	if err := selector.Load(context.Background()); !errors.Is(err, media.ErrSelectorClosed) {
		t.Fatalf("expected ErrSelectorClosed, got %v", err)
	}
	if _, err := selector.Select(items[0].ID); !errors.Is(err, media.ErrSelectorClosed) {
		t.Fatalf("expected ErrSelectorClosed, got %v", err)
	}
}
