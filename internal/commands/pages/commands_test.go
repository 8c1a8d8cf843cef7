package pagescmd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	pagescmd "github.com/goliatone/go-pagebuilder/internal/commands/pages"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/google/uuid"
)

func newCommandFixture(t *testing.T) (pages.Service, *pages.Page, uuid.UUID) {
	t.Helper()
	store := pages.NewMemoryRepository()
	svc := pages.NewService(store, pages.WithClock(func() time.Time {
		return time.Unix(1700000000, 0).UTC()
	}))

	actor := uuid.New()
	page, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Title:     "Campaign",
		CreatedBy: actor,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return svc, page, actor
}

func TestPublishPageCommand(t *testing.T) {
	svc, page, actor := newCommandFixture(t)
	ctx := context.Background()

	handler := pagescmd.NewPublishPageHandler(svc, nil)
	if err := handler.Execute(ctx, pagescmd.PublishPageCommand{
		PageID:     page.ID,
		ActorID:    actor,
		AsHomepage: true,
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	published, err := svc.Get(ctx, page.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if published.Status != string(domain.StatusPublished) {
		t.Fatalf("expected published status, got %q", published.Status)
	}
	if !published.IsHomepage {
		t.Fatalf("expected homepage promotion")
	}
}

func TestPublishPageCommandValidation(t *testing.T) {
	svc, _, actor := newCommandFixture(t)
	handler := pagescmd.NewPublishPageHandler(svc, nil)

	err := handler.Execute(context.Background(), pagescmd.PublishPageCommand{ActorID: actor})
	if err == nil {
		t.Fatalf("expected validation failure for missing page_id")
	}
}

func TestDuplicatePageCommand(t *testing.T) {
	svc, page, actor := newCommandFixture(t)
	ctx := context.Background()

	handler := pagescmd.NewDuplicatePageHandler(svc, nil)
	if err := handler.Execute(ctx, pagescmd.DuplicatePageCommand{
		PageID:  page.ID,
		ActorID: actor,
		Title:   "Campaign B",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	listed, err := svc.List(ctx, pages.ListPagesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 pages after duplicate, got %d", len(listed))
	}
}

func TestDeletePageCommand(t *testing.T) {
	svc, page, _ := newCommandFixture(t)
	ctx := context.Background()

	handler := pagescmd.NewDeletePageHandler(svc, nil)
	if err := handler.Execute(ctx, pagescmd.DeletePageCommand{PageID: page.ID}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var notFound *pages.NotFoundError
	if _, err := svc.Get(ctx, page.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
