package pages

import (
	"time"

	internalpages "github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Re-exported errors from the internal pages package.
var (
	ErrTitleRequired   = internalpages.ErrTitleRequired
	ErrSlugRequired    = internalpages.ErrSlugRequired
	ErrInvalidSlug     = internalpages.ErrInvalidSlug
	ErrSlugExists      = internalpages.ErrSlugExists
	ErrIDRequired      = internalpages.ErrIDRequired
	ErrActorRequired   = internalpages.ErrActorRequired
	ErrVersionConflict = internalpages.ErrVersionConflict
	ErrNotPublished    = internalpages.ErrNotPublished
)

// Re-exported types from the internal pages package.
type (
	Page             = internalpages.Page
	Section          = internalpages.Section
	Component        = internalpages.Component
	ComponentContent = internalpages.ComponentContent
	RichTextContent  = internalpages.RichTextContent
	RichTextBlock    = internalpages.RichTextBlock
	Animation        = internalpages.Animation
	Styles           = internalpages.Styles

	SectionType   = internalpages.SectionType
	LayoutType    = internalpages.LayoutType
	ComponentType = internalpages.ComponentType
	BlockType     = internalpages.BlockType
	AnimationType = internalpages.AnimationType

	Service              = internalpages.Service
	Repository           = internalpages.Repository
	MemoryRepository     = internalpages.MemoryRepository
	BunRepository        = internalpages.BunRepository
	ServiceOption        = internalpages.ServiceOption
	IDGenerator          = internalpages.IDGenerator
	NotFoundError        = internalpages.NotFoundError
	CreatePageRequest    = internalpages.CreatePageRequest
	UpdatePageRequest    = internalpages.UpdatePageRequest
	ListPagesRequest     = internalpages.ListPagesRequest
	PublishPageRequest   = internalpages.PublishPageRequest
	DuplicatePageRequest = internalpages.DuplicatePageRequest
)

// Section type constants.
const (
	SectionHero       = internalpages.SectionHero
	SectionServices   = internalpages.SectionServices
	SectionTechnology = internalpages.SectionTechnology
	SectionInnovation = internalpages.SectionInnovation
	SectionTimeline   = internalpages.SectionTimeline
	SectionClients    = internalpages.SectionClients
	SectionCTA        = internalpages.SectionCTA
	SectionContact    = internalpages.SectionContact
	SectionCustom     = internalpages.SectionCustom
)

// Layout constants.
const (
	LayoutFull      = internalpages.LayoutFull
	LayoutContained = internalpages.LayoutContained
	LayoutSplit     = internalpages.LayoutSplit
)

// Component type constants.
const (
	ComponentHeading  = internalpages.ComponentHeading
	ComponentText     = internalpages.ComponentText
	ComponentImage    = internalpages.ComponentImage
	ComponentVideo    = internalpages.ComponentVideo
	ComponentButton   = internalpages.ComponentButton
	ComponentCard     = internalpages.ComponentCard
	ComponentForm     = internalpages.ComponentForm
	ComponentRichText = internalpages.ComponentRichText
	ComponentCustom   = internalpages.ComponentCustom
)

// Rich text block type constants.
const (
	BlockParagraph = internalpages.BlockParagraph
	BlockHeading   = internalpages.BlockHeading
	BlockList      = internalpages.BlockList
	BlockQuote     = internalpages.BlockQuote
	BlockImage     = internalpages.BlockImage
	BlockCode      = internalpages.BlockCode
)

// NewService constructs a page service backed by the given repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	return internalpages.NewService(repo, opts...)
}

// NewMemoryRepository builds an in-memory page repository.
func NewMemoryRepository() *MemoryRepository {
	return internalpages.NewMemoryRepository()
}

// NewBunRepository builds a page repository backed by a bun database handle.
func NewBunRepository(db *bun.DB) *BunRepository {
	return internalpages.NewBunRepository(db)
}

// NewBunRepositoryWithCache wraps the bun repository with a read-through cache.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	return internalpages.NewBunRepositoryWithCache(db, cacheService, keySerializer)
}

// WithClock overrides the service clock.
func WithClock(clock func() time.Time) ServiceOption {
	return internalpages.WithClock(clock)
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return internalpages.WithIDGenerator(generator)
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return internalpages.WithLogger(logger)
}

// NormalizeSlug converts free-form text into a URL-safe slug.
func NormalizeSlug(value string) (string, error) {
	return internalpages.NormalizeSlug(value)
}

// IsValidSlug reports whether the value is already a valid slug.
func IsValidSlug(value string) bool {
	return internalpages.IsValidSlug(value)
}

// ClonePage performs a deep copy of a page and its sections.
func ClonePage(src *Page) *Page {
	return internalpages.ClonePage(src)
}

// NormalizeSectionOrder rewrites section order values to match position.
func NormalizeSectionOrder(sections []Section) {
	internalpages.NormalizeSectionOrder(sections)
}
