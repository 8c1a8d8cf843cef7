package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

const duplicatePageMessageType = "pagebuilder.pages.duplicate"

// DuplicatePageCommand requests a draft copy of an existing page.
type DuplicatePageCommand struct {
	PageID  uuid.UUID `json:"page_id"`
	ActorID uuid.UUID `json:"actor_id"`
	Title   string    `json:"title,omitempty"`
	Slug    string    `json:"slug,omitempty"`
}

// Type implements command.Message.
func (DuplicatePageCommand) Type() string { return duplicatePageMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m DuplicatePageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("pagebuilder.pages.duplicate.page_id_required", "page_id is required")
	}
	if m.ActorID == uuid.Nil {
		errs["actor_id"] = validation.NewError("pagebuilder.pages.duplicate.actor_id_required", "actor_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DuplicatePageHandler copies pages via the page service using the shared
// command handler foundation.
type DuplicatePageHandler struct {
	inner *commands.Handler[DuplicatePageCommand]
}

// NewDuplicatePageHandler constructs a handler wired to the provided page
// service.
func NewDuplicatePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DuplicatePageCommand]) *DuplicatePageHandler {
	exec := func(ctx context.Context, msg DuplicatePageCommand) error {
		_, err := service.Duplicate(ctx, pages.DuplicatePageRequest{
			ID:      msg.PageID,
			ActorID: msg.ActorID,
			Title:   msg.Title,
			Slug:    msg.Slug,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[DuplicatePageCommand]{
		commands.WithLogger[DuplicatePageCommand](logger),
		commands.WithOperation[DuplicatePageCommand]("pages.duplicate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DuplicatePageHandler{
		inner: commands.NewHandler[DuplicatePageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DuplicatePageCommand].
func (h *DuplicatePageHandler) Execute(ctx context.Context, msg DuplicatePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
