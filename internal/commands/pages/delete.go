package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

const deletePageMessageType = "pagebuilder.pages.delete"

// DeletePageCommand requests permanent removal of a page.
type DeletePageCommand struct {
	PageID uuid.UUID `json:"page_id"`
}

// Type implements command.Message.
func (DeletePageCommand) Type() string { return deletePageMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m DeletePageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("pagebuilder.pages.delete.page_id_required", "page_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeletePageHandler removes pages via the page service using the shared
// command handler foundation.
type DeletePageHandler struct {
	inner *commands.Handler[DeletePageCommand]
}

// NewDeletePageHandler constructs a handler wired to the provided page
// service.
func NewDeletePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeletePageCommand]) *DeletePageHandler {
	exec := func(ctx context.Context, msg DeletePageCommand) error {
		return service.Delete(ctx, msg.PageID)
	}

	handlerOpts := []commands.HandlerOption[DeletePageCommand]{
		commands.WithLogger[DeletePageCommand](logger),
		commands.WithOperation[DeletePageCommand]("pages.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeletePageHandler{
		inner: commands.NewHandler[DeletePageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeletePageCommand].
func (h *DeletePageHandler) Execute(ctx context.Context, msg DeletePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
