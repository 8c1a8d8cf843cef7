package builder

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// DefaultNewPageTitle seeds the title of an unsaved page so a first save can
// succeed before the editor names it.
const DefaultNewPageTitle = "Untitled Page"

// Builder is a stateful editing session over a single page. Mutations are
// applied to an in-memory working copy; Save persists the whole document
// through the page service. All structural mutations renormalize order values
// so they always equal positions.
type Builder struct {
	mu sync.Mutex

	service pages.Service
	session interfaces.Session
	logger  interfaces.Logger
	id      IDGenerator

	page   *pages.Page
	isNew  bool
	dirty  bool
	saving bool
	gen    uint64

	activeSectionID   uuid.UUID
	activeComponentID uuid.UUID
}

// IDGenerator produces identifiers for new sections and components.
type IDGenerator func() uuid.UUID

// Option configures the builder at construction time.
type Option func(*Builder)

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator IDGenerator) Option {
	return func(b *Builder) {
		if generator != nil {
			b.id = generator
		}
	}
}

// WithLogger attaches a logger to the session.
func WithLogger(logger interfaces.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// AddSectionRequest captures a new section. Zero values take editor defaults:
// custom type, contained layout, appended last.
type AddSectionRequest struct {
	Title           *string
	Type            pages.SectionType
	Layout          pages.LayoutType
	BackgroundColor *string
	BackgroundImage *string
}

// UpdateSectionRequest carries a partial section update. Nil fields are left
// untouched.
type UpdateSectionRequest struct {
	Title           *string
	Type            *pages.SectionType
	Layout          *pages.LayoutType
	BackgroundColor *string
	BackgroundImage *string
}

// AddComponentRequest captures a new component. A zero value appends a text
// component with placeholder content.
type AddComponentRequest struct {
	Type     pages.ComponentType
	Content  *pages.ComponentContent
	Settings map[string]any
}

// Load starts an editing session. Passing uuid.Nil as the page id starts a
// new unsaved draft; any other id loads the stored page.
func Load(ctx context.Context, service pages.Service, session interfaces.Session, pageID uuid.UUID, opts ...Option) (*Builder, error) {
	b := &Builder{
		service: service,
		session: session,
		logger:  logging.NoOp(),
		id:      uuid.New,
	}

	for _, opt := range opts {
		opt(b)
	}

	if (pageID == uuid.UUID{}) {
		b.page = &pages.Page{
			Title:    DefaultNewPageTitle,
			Status:   string(domain.StatusDraft),
			Sections: []pages.Section{},
		}
		b.isNew = true
		return b, nil
	}

	page, err := service.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}
	b.page = page
	return b, nil
}

// Page returns a snapshot of the working copy.
func (b *Builder) Page() *pages.Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	return pages.ClonePage(b.page)
}

// Dirty reports whether the working copy has unsaved changes.
func (b *Builder) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// touch marks the working copy as mutated. The generation counter lets Save
// detect edits applied while a persist call was in flight. Callers hold b.mu.
func (b *Builder) touch() {
	b.dirty = true
	b.gen++
}

// SetTitle renames the working copy.
func (b *Builder) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page.Title = title
	b.touch()
}

// SetSlug overrides the page slug. The service normalizes and validates the
// value on Save; an empty slug re-derives one from the title.
func (b *Builder) SetSlug(slug string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page.Slug = slug
	b.touch()
}

// SetMetadata updates the page-level SEO fields. Nil fields are left
// untouched.
func (b *Builder) SetMetadata(description, metaTitle, metaDescription *string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if description != nil {
		b.page.Description = description
	}
	if metaTitle != nil {
		b.page.MetaTitle = metaTitle
	}
	if metaDescription != nil {
		b.page.MetaDescription = metaDescription
	}
	b.touch()
}

// ActiveSection returns the id of the section currently selected, or uuid.Nil.
func (b *Builder) ActiveSection() uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activeSectionID
}

// ActiveComponent returns the id of the component currently selected, or
// uuid.Nil.
func (b *Builder) ActiveComponent() uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activeComponentID
}

// SetActiveSection selects a section for editing and clears any component
// selection. Passing uuid.Nil clears the selection.
func (b *Builder) SetActiveSection(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if (id == uuid.UUID{}) {
		b.activeSectionID = uuid.Nil
		b.activeComponentID = uuid.Nil
		return nil
	}
	if _, err := b.sectionIndex(id); err != nil {
		return err
	}
	b.activeSectionID = id
	b.activeComponentID = uuid.Nil
	return nil
}

// SetActiveComponent selects a component for editing, selecting its owning
// section as well.
func (b *Builder) SetActiveComponent(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if (id == uuid.UUID{}) {
		b.activeComponentID = uuid.Nil
		return nil
	}
	si, _, err := b.componentIndex(id)
	if err != nil {
		return err
	}
	b.activeSectionID = b.page.Sections[si].ID
	b.activeComponentID = id
	return nil
}

// AddSection appends a new section, selects it, and returns it.
func (b *Builder) AddSection(req AddSectionRequest) pages.Section {
	b.mu.Lock()
	defer b.mu.Unlock()

	sectionType := req.Type
	if sectionType == "" {
		sectionType = pages.SectionCustom
	}
	layout := req.Layout
	if layout == "" {
		layout = pages.LayoutContained
	}

	section := pages.Section{
		ID:              b.id(),
		Title:           req.Title,
		Type:            sectionType,
		Layout:          layout,
		BackgroundColor: req.BackgroundColor,
		BackgroundImage: req.BackgroundImage,
		Components:      []pages.Component{},
		Order:           len(b.page.Sections),
	}

	b.page.Sections = append(b.page.Sections, section)
	pages.NormalizeSectionOrder(b.page.Sections)
	b.activeSectionID = section.ID
	b.activeComponentID = uuid.Nil
	b.touch()
	return pages.CloneSection(section)
}

// UpdateSection applies a partial update to the identified section.
func (b *Builder) UpdateSection(id uuid.UUID, req UpdateSectionRequest) (pages.Section, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sectionIndex(id)
	if err != nil {
		return pages.Section{}, err
	}

	section := &b.page.Sections[idx]
	if req.Title != nil {
		section.Title = req.Title
	}
	if req.Type != nil {
		section.Type = *req.Type
	}
	if req.Layout != nil {
		section.Layout = *req.Layout
	}
	if req.BackgroundColor != nil {
		section.BackgroundColor = req.BackgroundColor
	}
	if req.BackgroundImage != nil {
		section.BackgroundImage = req.BackgroundImage
	}

	b.touch()
	return pages.CloneSection(*section), nil
}

// DeleteSection removes the identified section and renormalizes order.
func (b *Builder) DeleteSection(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sectionIndex(id)
	if err != nil {
		return err
	}

	b.page.Sections = append(b.page.Sections[:idx], b.page.Sections[idx+1:]...)
	pages.NormalizeSectionOrder(b.page.Sections)

	if b.activeSectionID == id {
		b.activeSectionID = uuid.Nil
		b.activeComponentID = uuid.Nil
	}
	b.touch()
	return nil
}

// MoveSection swaps the identified section with its neighbor in the given
// direction. Moves past either end are no-ops.
func (b *Builder) MoveSection(id uuid.UUID, direction domain.Direction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !direction.Valid() {
		return ErrInvalidDirection
	}
	idx, err := b.sectionIndex(id)
	if err != nil {
		return err
	}

	target := idx - 1
	if direction == domain.DirectionDown {
		target = idx + 1
	}
	if target < 0 || target >= len(b.page.Sections) {
		return nil
	}

	sections := b.page.Sections
	sections[idx].Order, sections[target].Order = sections[target].Order, sections[idx].Order
	pages.NormalizeSectionOrder(sections)
	b.touch()
	return nil
}

// AddComponent appends a new component to the identified section, selects it,
// and returns it. Text-like components start with placeholder content so the
// canvas renders something clickable.
func (b *Builder) AddComponent(sectionID uuid.UUID, req AddComponentRequest) (pages.Component, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sectionIndex(sectionID)
	if err != nil {
		return pages.Component{}, err
	}

	componentType := req.Type
	if componentType == "" {
		componentType = pages.ComponentText
	}

	component := pages.Component{
		ID:       b.id(),
		Type:     componentType,
		Settings: req.Settings,
		Order:    len(b.page.Sections[idx].Components),
	}
	if req.Content != nil {
		component.Content = *req.Content
	} else {
		component.Content = defaultContent(componentType)
	}

	section := &b.page.Sections[idx]
	section.Components = append(section.Components, component)
	pages.NormalizeComponentOrder(section.Components)

	b.activeSectionID = sectionID
	b.activeComponentID = component.ID
	b.touch()
	return pages.CloneComponent(component), nil
}

// Component returns a snapshot of the identified component.
func (b *Builder) Component(id uuid.UUID) (pages.Component, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	si, ci, err := b.componentIndex(id)
	if err != nil {
		return pages.Component{}, err
	}
	return pages.CloneComponent(b.page.Sections[si].Components[ci]), nil
}

// ReplaceComponent swaps the stored component for the supplied one, keeping
// id and order. The component editor produces the replacement.
func (b *Builder) ReplaceComponent(component pages.Component) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	si, ci, err := b.componentIndex(component.ID)
	if err != nil {
		return err
	}

	component.Order = b.page.Sections[si].Components[ci].Order
	b.page.Sections[si].Components[ci] = pages.CloneComponent(component)
	b.touch()
	return nil
}

// DeleteComponent removes the identified component and renormalizes order
// within its section.
func (b *Builder) DeleteComponent(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	si, ci, err := b.componentIndex(id)
	if err != nil {
		return err
	}

	section := &b.page.Sections[si]
	section.Components = append(section.Components[:ci], section.Components[ci+1:]...)
	pages.NormalizeComponentOrder(section.Components)

	if b.activeComponentID == id {
		b.activeComponentID = uuid.Nil
	}
	b.touch()
	return nil
}

// MoveComponent swaps the identified component with its neighbor within its
// section. Moves past either end are no-ops.
func (b *Builder) MoveComponent(id uuid.UUID, direction domain.Direction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !direction.Valid() {
		return ErrInvalidDirection
	}
	si, ci, err := b.componentIndex(id)
	if err != nil {
		return err
	}

	components := b.page.Sections[si].Components
	target := ci - 1
	if direction == domain.DirectionDown {
		target = ci + 1
	}
	if target < 0 || target >= len(components) {
		return nil
	}

	components[ci].Order, components[target].Order = components[target].Order, components[ci].Order
	pages.NormalizeComponentOrder(components)
	b.touch()
	return nil
}

// Save persists the working copy through the page service. The first save of
// a new session creates the page and rebinds the session to the stored
// record; later saves update it using the loaded version as the concurrency
// base. Only one save may run at a time.
func (b *Builder) Save(ctx context.Context) (*pages.Page, error) {
	b.mu.Lock()
	if b.saving {
		b.mu.Unlock()
		return nil, ErrSaveInFlight
	}
	b.saving = true
	working := pages.ClonePage(b.page)
	isNew := b.isNew
	snapshot := b.gen
	b.mu.Unlock()

	saved, err := b.persist(ctx, working, isNew)

	b.mu.Lock()
	b.saving = false
	if err == nil {
		b.isNew = false
		if b.gen == snapshot {
			b.page = pages.ClonePage(saved)
			b.dirty = false
		} else {
			// Edits landed while the persist call was in flight. Keep them
			// and absorb only the store-assigned fields; dirty stays set so
			// the next Save picks the edits up.
			b.page.ID = saved.ID
			b.page.Slug = saved.Slug
			b.page.Status = saved.Status
			b.page.Version = saved.Version
			b.page.IsHomepage = saved.IsHomepage
			b.page.PublishedAt = saved.PublishedAt
			b.page.CreatedBy = saved.CreatedBy
			b.page.UpdatedBy = saved.UpdatedBy
			b.page.CreatedAt = saved.CreatedAt
			b.page.UpdatedAt = saved.UpdatedAt
		}
	}
	b.mu.Unlock()

	if err != nil {
		return nil, err
	}

	b.logger.Info("page saved", "page_id", saved.ID, "version", saved.Version)
	return saved, nil
}

func (b *Builder) persist(ctx context.Context, working *pages.Page, isNew bool) (*pages.Page, error) {
	actor := b.session.ActorID()

	if isNew {
		return b.service.Create(ctx, pages.CreatePageRequest{
			Title:           working.Title,
			Slug:            working.Slug,
			Description:     working.Description,
			MetaTitle:       working.MetaTitle,
			MetaDescription: working.MetaDescription,
			Sections:        working.Sections,
			CreatedBy:       actor,
		})
	}

	return b.service.Update(ctx, pages.UpdatePageRequest{
		ID:              working.ID,
		Title:           &working.Title,
		Slug:            &working.Slug,
		Description:     working.Description,
		MetaTitle:       working.MetaTitle,
		MetaDescription: working.MetaDescription,
		Sections:        working.Sections,
		BaseVersion:     working.Version,
		UpdatedBy:       actor,
	})
}

func (b *Builder) sectionIndex(id uuid.UUID) (int, error) {
	if (id == uuid.UUID{}) {
		return 0, ErrSectionIDRequired
	}
	for i := range b.page.Sections {
		if b.page.Sections[i].ID == id {
			return i, nil
		}
	}
	return 0, &SectionNotFoundError{ID: id}
}

func (b *Builder) componentIndex(id uuid.UUID) (int, int, error) {
	if (id == uuid.UUID{}) {
		return 0, 0, ErrComponentIDRequired
	}
	for si := range b.page.Sections {
		for ci := range b.page.Sections[si].Components {
			if b.page.Sections[si].Components[ci].ID == id {
				return si, ci, nil
			}
		}
	}
	return 0, 0, &ComponentNotFoundError{ID: id}
}

func defaultContent(componentType pages.ComponentType) pages.ComponentContent {
	switch componentType {
	case pages.ComponentRichText:
		return pages.RichContent(&pages.RichTextContent{Blocks: []pages.RichTextBlock{}})
	case pages.ComponentImage, pages.ComponentVideo:
		return pages.TextContent("")
	default:
		return pages.TextContent("New component")
	}
}
