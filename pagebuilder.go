package pagebuilder

import (
	"context"
	"errors"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/admin"
	"github.com/goliatone/go-pagebuilder/internal/builder"
	mediacmd "github.com/goliatone/go-pagebuilder/internal/commands/media"
	pagescmd "github.com/goliatone/go-pagebuilder/internal/commands/pages"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/internal/logging/gologger"
	"github.com/goliatone/go-pagebuilder/internal/markdown"
	"github.com/goliatone/go-pagebuilder/internal/media"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// PageService exports the page service contract for consumers of the module.
type PageService = pages.Service

// MediaService exports the media library contract.
type MediaService = media.Service

// AdminService exports the admin dashboard contract.
type AdminService = admin.Service

// AdminListPagesRequest exports the dashboard listing filter.
type AdminListPagesRequest = admin.ListPagesRequest

// AdminPageSummary exports the dashboard row DTO.
type AdminPageSummary = admin.PageSummary

// AdminStats exports the dashboard counters DTO.
type AdminStats = admin.Stats

// Session exports the actor session contract.
type Session = interfaces.Session

// ErrMediaLibraryDisabled is returned when the media library feature is off.
var ErrMediaLibraryDisabled = errors.New("pagebuilder: media library feature disabled")

// Module is the top level page builder runtime facade. It wires the
// services together from a Config plus optional overrides.
type Module struct {
	config Config

	loggers interfaces.LoggerProvider

	pageRepo  pages.Repository
	mediaRepo media.Repository
	store     interfaces.ObjectStore

	pageService  pages.Service
	mediaService media.Service
	adminService admin.Service
	urls         *admin.URLResolver
	importer     *markdown.Importer
}

// Option overrides a module dependency before the services are built.
type Option func(*Module)

// WithPageRepository swaps the page persistence backend.
func WithPageRepository(repo pages.Repository) Option {
	return func(m *Module) {
		if repo != nil {
			m.pageRepo = repo
		}
	}
}

// WithMediaRepository swaps the media record backend.
func WithMediaRepository(repo media.Repository) Option {
	return func(m *Module) {
		if repo != nil {
			m.mediaRepo = repo
		}
	}
}

// WithObjectStore swaps the binary asset backend.
func WithObjectStore(store interfaces.ObjectStore) Option {
	return func(m *Module) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLoggerProvider swaps the logging backend.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.loggers = provider
		}
	}
}

// New constructs a page builder module. Without overrides the module runs on
// in-memory storage, which suits tests and previews; production hosts inject
// bun-backed repositories and a real object store.
func New(cfg Config, opts ...Option) (*Module, error) {
	m := &Module{config: cfg}

	for _, opt := range opts {
		opt(m)
	}

	if m.loggers == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.loggers = provider
	}

	if m.pageRepo == nil {
		m.pageRepo = pages.NewMemoryRepository()
	}
	if m.mediaRepo == nil {
		m.mediaRepo = media.NewMemoryRepository()
	}
	if m.store == nil {
		m.store = media.NewMemoryObjectStore()
	}

	m.pageService = pages.NewService(m.pageRepo,
		pages.WithLogger(logging.PagesLogger(m.loggers)),
	)

	if cfg.Features.MediaLibrary {
		mediaOpts := []media.ServiceOption{
			media.WithLogger(logging.MediaLogger(m.loggers)),
		}
		if cfg.Storage.Folder != "" {
			mediaOpts = append(mediaOpts, media.WithDefaultFolder(cfg.Storage.Folder))
		}
		m.mediaService = media.NewService(m.mediaRepo, m.store, mediaOpts...)
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: admin.DefaultRouteConfig(cfg.Routes.AdminBaseURL, cfg.Routes.PublicBaseURL),
	})
	m.urls = admin.NewURLResolver(manager)

	adminOpts := []admin.ServiceOption{
		admin.WithLogger(logging.AdminLogger(m.loggers)),
	}
	if m.mediaService != nil {
		adminOpts = append(adminOpts, admin.WithMediaService(m.mediaService))
	}
	m.adminService = admin.NewService(m.pageService, m.urls, adminOpts...)

	if cfg.Features.MarkdownImport {
		m.importer = markdown.NewImporter(m.pageService,
			markdown.WithImporterLogger(logging.MarkdownLogger(m.loggers)),
		)
	}

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.config
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.pageService
}

// Media returns the configured media service, or nil when the media library
// feature is disabled.
func (m *Module) Media() MediaService {
	return m.mediaService
}

// Admin returns the dashboard read service.
func (m *Module) Admin() AdminService {
	return m.adminService
}

// URLs returns the admin and public URL resolver.
func (m *Module) URLs() *admin.URLResolver {
	return m.urls
}

// Importer returns the Markdown page importer, or nil when the markdown
// import feature is disabled.
func (m *Module) Importer() *markdown.Importer {
	return m.importer
}

// OpenBuilder starts a page builder session for the given page. A nil page
// id starts a new unsaved draft.
func (m *Module) OpenBuilder(ctx context.Context, session Session, pageID uuid.UUID) (*builder.Builder, error) {
	return builder.Load(ctx, m.pageService, session, pageID,
		builder.WithLogger(logging.BuilderLogger(m.loggers)),
	)
}

// OpenMediaSelector loads the media picker over the current library.
func (m *Module) OpenMediaSelector(ctx context.Context, filter media.ListRequest) (*media.Selector, error) {
	if m.mediaService == nil {
		return nil, ErrMediaLibraryDisabled
	}
	selector := media.NewSelector(m.mediaService,
		media.WithSelectorFilter(filter),
		media.WithSelectorLogger(logging.MediaLogger(m.loggers)),
	)
	if err := selector.Load(ctx); err != nil {
		return nil, err
	}
	return selector, nil
}

// Commands bundles the write-side command handlers.
type Commands struct {
	PublishPage   *pagescmd.PublishPageHandler
	DuplicatePage *pagescmd.DuplicatePageHandler
	DeletePage    *pagescmd.DeletePageHandler
	CleanupMedia  *mediacmd.CleanupHandler
}

// Commands constructs the command handlers bound to the module services.
// CleanupMedia is nil when the media library feature is disabled.
func (m *Module) Commands() Commands {
	logger := logging.CommandsLogger(m.loggers)
	bundle := Commands{
		PublishPage:   pagescmd.NewPublishPageHandler(m.pageService, logger),
		DuplicatePage: pagescmd.NewDuplicatePageHandler(m.pageService, logger),
		DeletePage:    pagescmd.NewDeletePageHandler(m.pageService, logger),
	}
	if m.mediaService != nil {
		bundle.CleanupMedia = mediacmd.NewCleanupHandler(m.pageService, m.mediaService, logger)
	}
	return bundle
}
