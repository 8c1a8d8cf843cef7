package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

const publishPageMessageType = "pagebuilder.pages.publish"

// PublishPageCommand requests publication of a page, optionally promoting it
// to homepage.
type PublishPageCommand struct {
	PageID     uuid.UUID `json:"page_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	AsHomepage bool      `json:"as_homepage,omitempty"`
}

// Type implements command.Message.
func (PublishPageCommand) Type() string { return publishPageMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m PublishPageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("pagebuilder.pages.publish.page_id_required", "page_id is required")
	}
	if m.ActorID == uuid.Nil {
		errs["actor_id"] = validation.NewError("pagebuilder.pages.publish.actor_id_required", "actor_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishPageHandler publishes pages via the page service using the shared
// command handler foundation.
type PublishPageHandler struct {
	inner *commands.Handler[PublishPageCommand]
}

// NewPublishPageHandler constructs a handler wired to the provided page
// service.
func NewPublishPageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPageCommand]) *PublishPageHandler {
	exec := func(ctx context.Context, msg PublishPageCommand) error {
		_, err := service.Publish(ctx, pages.PublishPageRequest{
			ID:         msg.PageID,
			ActorID:    msg.ActorID,
			AsHomepage: msg.AsHomepage,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishPageCommand]{
		commands.WithLogger[PublishPageCommand](logger),
		commands.WithOperation[PublishPageCommand]("pages.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishPageHandler{
		inner: commands.NewHandler[PublishPageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishPageCommand].
func (h *PublishPageHandler) Execute(ctx context.Context, msg PublishPageCommand) error {
	return h.inner.Execute(ctx, msg)
}
