package pagebuilder

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/identity"
	"github.com/goliatone/go-pagebuilder/internal/pages"
)

// ErrSeedActorRequired is returned when SeedHomepage is called without an
// actor id.
var ErrSeedActorRequired = errors.New("pagebuilder: seed actor is required")

// HomepageSlug is the slug of the seeded marketing homepage.
const HomepageSlug = "home"

// SeedHomepage creates the marketing homepage with its canonical sections.
// Ids are derived deterministically from slugs and section keys, so the seed
// is idempotent: when the slug already exists the stored page is returned
// unchanged.
func SeedHomepage(ctx context.Context, service PageService, actor uuid.UUID) (*pages.Page, error) {
	if (actor == uuid.UUID{}) {
		return nil, ErrSeedActorRequired
	}

	if existing, err := service.GetBySlug(ctx, HomepageSlug); err == nil {
		return existing, nil
	} else {
		var notFound *pages.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	pageID := identity.PageUUID(HomepageSlug)

	page, err := service.Create(ctx, pages.CreatePageRequest{
		Title:           "Home",
		Slug:            HomepageSlug,
		Description:     ptr("Marketing homepage"),
		MetaTitle:       ptr("Home | Example Studio"),
		MetaDescription: ptr("Digital products, engineering, and design for ambitious teams."),
		Sections:        homepageSections(pageID),
		CreatedBy:       actor,
	})
	if err != nil {
		if errors.Is(err, pages.ErrSlugExists) {
			if existing, gerr := service.GetBySlug(ctx, HomepageSlug); gerr == nil {
				return existing, nil
			}
		}
		return nil, err
	}

	if _, err := service.Publish(ctx, pages.PublishPageRequest{
		ID:         page.ID,
		ActorID:    actor,
		AsHomepage: true,
	}); err != nil {
		return nil, err
	}

	return service.Get(ctx, page.ID)
}

func homepageSections(pageID uuid.UUID) []pages.Section {
	sections := []sectionSeed{
		{
			key:    "hero",
			typ:    pages.SectionHero,
			layout: pages.LayoutFull,
			title:  "We build digital products",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "We build digital products", settings: map[string]any{"headingLevel": "h1"}},
				{key: "intro", typ: pages.ComponentText, content: "Strategy, engineering, and design under one roof."},
				{key: "cta", typ: pages.ComponentButton, content: "Start a project", settings: map[string]any{"url": "/contact", "buttonStyle": "primary"}},
			},
		},
		{
			key:    "services",
			typ:    pages.SectionServices,
			layout: pages.LayoutContained,
			title:  "What we do",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "What we do"},
				{key: "web", typ: pages.ComponentCard, content: "Web platforms built for scale.", settings: map[string]any{"title": "Web"}},
				{key: "mobile", typ: pages.ComponentCard, content: "Native and cross-platform apps.", settings: map[string]any{"title": "Mobile"}},
				{key: "cloud", typ: pages.ComponentCard, content: "Cloud architecture and operations.", settings: map[string]any{"title": "Cloud"}},
			},
		},
		{
			key:    "technology",
			typ:    pages.SectionTechnology,
			layout: pages.LayoutSplit,
			title:  "Technology",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "Technology that lasts"},
				{key: "body", typ: pages.ComponentText, content: "We choose boring, proven tools and invest where it matters."},
			},
		},
		{
			key:    "innovation",
			typ:    pages.SectionInnovation,
			layout: pages.LayoutContained,
			title:  "Innovation",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "Research and prototyping"},
				{key: "body", typ: pages.ComponentText, content: "Small bets, fast feedback, honest write-ups."},
			},
		},
		{
			key:    "timeline",
			typ:    pages.SectionTimeline,
			layout: pages.LayoutContained,
			title:  "How we work",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "How we work"},
				{key: "steps", typ: pages.ComponentText, content: "Discover. Design. Build. Ship. Iterate."},
			},
		},
		{
			key:    "clients",
			typ:    pages.SectionClients,
			layout: pages.LayoutFull,
			title:  "Clients",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "Teams we work with"},
				{key: "quote", typ: pages.ComponentText, content: "They shipped in weeks what we had planned for quarters."},
			},
		},
		{
			key:    "cta",
			typ:    pages.SectionCTA,
			layout: pages.LayoutFull,
			title:  "Ready when you are",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "Ready when you are"},
				{key: "button", typ: pages.ComponentButton, content: "Talk to us", settings: map[string]any{"url": "/contact", "buttonStyle": "secondary"}},
			},
		},
		{
			key:    "contact",
			typ:    pages.SectionContact,
			layout: pages.LayoutContained,
			title:  "Contact",
			components: []componentSeed{
				{key: "heading", typ: pages.ComponentHeading, content: "Get in touch"},
				{key: "form", typ: pages.ComponentForm, content: "", settings: map[string]any{"formType": "contact", "submitText": "Send message"}},
			},
		},
	}

	out := make([]pages.Section, 0, len(sections))
	for idx, seed := range sections {
		sectionID := identity.SectionUUID(pageID, seed.key)
		title := seed.title
		section := pages.Section{
			ID:     sectionID,
			Title:  &title,
			Type:   seed.typ,
			Layout: seed.layout,
			Order:  idx,
		}
		for cidx, comp := range seed.components {
			section.Components = append(section.Components, pages.Component{
				ID:       identity.ComponentUUID(sectionID, comp.key),
				Type:     comp.typ,
				Content:  pages.TextContent(comp.content),
				Settings: comp.settings,
				Order:    cidx,
			})
		}
		out = append(out, section)
	}
	return out
}

type sectionSeed struct {
	key        string
	typ        pages.SectionType
	layout     pages.LayoutType
	title      string
	components []componentSeed
}

type componentSeed struct {
	key      string
	typ      pages.ComponentType
	content  string
	settings map[string]any
}

func ptr(value string) *string {
	return &value
}
