package mediacmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/internal/media"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/google/uuid"
)

const cleanupMessageType = "pagebuilder.media.cleanup"

// CleanupCommand removes library assets that no page references anymore.
// DryRun reports what would be removed without touching storage.
type CleanupCommand struct {
	ActorID uuid.UUID `json:"actor_id"`
	DryRun  bool      `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (CleanupCommand) Type() string { return cleanupMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m CleanupCommand) Validate() error {
	errs := validation.Errors{}
	if m.ActorID == uuid.Nil {
		errs["actor_id"] = validation.NewError("pagebuilder.media.cleanup.actor_id_required", "actor_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanupHandler walks every page's section tree, collects the media URLs in
// use, and deletes library assets that appear in none of them.
type CleanupHandler struct {
	inner *commands.Handler[CleanupCommand]
}

// NewCleanupHandler constructs a handler wired to the page and media
// services.
func NewCleanupHandler(pageService pages.Service, mediaService media.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanupCommand]) *CleanupHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanupCommand) error {
		referenced, err := referencedURLs(ctx, pageService)
		if err != nil {
			return err
		}

		assets, err := mediaService.List(ctx, media.ListRequest{})
		if err != nil {
			return err
		}

		orphans := make([]*media.Media, 0)
		for _, asset := range assets {
			if _, used := referenced[asset.URL]; !used {
				orphans = append(orphans, asset)
			}
		}

		if msg.DryRun {
			logging.WithFields(baseLogger, map[string]any{
				"orphans": len(orphans),
				"in_use":  len(assets) - len(orphans),
			}).Info("media.command.cleanup.dry_run")
			return nil
		}

		for _, orphan := range orphans {
			if err := mediaService.Delete(ctx, orphan.ID); err != nil {
				return err
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"removed": len(orphans),
		}).Info("media.command.cleanup.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[CleanupCommand]{
		commands.WithLogger[CleanupCommand](baseLogger),
		commands.WithOperation[CleanupCommand]("media.cleanup"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanupHandler{
		inner: commands.NewHandler[CleanupCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanupCommand].
func (h *CleanupHandler) Execute(ctx context.Context, msg CleanupCommand) error {
	return h.inner.Execute(ctx, msg)
}

// referencedURLs collects every media URL reachable from any page: section
// backgrounds, image and video component content, card images, and image
// blocks inside rich text.
func referencedURLs(ctx context.Context, pageService pages.Service) (map[string]struct{}, error) {
	records, err := pageService.List(ctx, pages.ListPagesRequest{})
	if err != nil {
		return nil, err
	}

	urls := make(map[string]struct{})
	add := func(url string) {
		if url != "" {
			urls[url] = struct{}{}
		}
	}

	for _, record := range records {
		for _, section := range record.Sections {
			if section.BackgroundImage != nil {
				add(*section.BackgroundImage)
			}
			for _, component := range section.Components {
				switch component.Type {
				case pages.ComponentImage, pages.ComponentVideo:
					add(component.Content.Text)
				case pages.ComponentCard:
					if imageURL, ok := component.Settings["imageUrl"].(string); ok {
						add(imageURL)
					}
				case pages.ComponentRichText:
					if component.Content.RichText == nil {
						continue
					}
					for _, block := range component.Content.RichText.Blocks {
						if block.Type == pages.BlockImage {
							add(block.Content)
						}
					}
				}
			}
		}
	}
	return urls, nil
}
