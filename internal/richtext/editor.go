package richtext

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/pages"
)

var (
	// ErrBlockIDRequired is returned when an operation is missing the block id.
	ErrBlockIDRequired = errors.New("richtext: block id is required")
	// ErrInvalidDirection is returned when a move direction is unknown.
	ErrInvalidDirection = errors.New("richtext: direction must be up or down")
	// ErrInvalidHeadingLevel is returned when a heading level is out of range.
	ErrInvalidHeadingLevel = errors.New("richtext: heading level must be between 1 and 6")
)

// DefaultHeadingLevel is applied to new heading blocks.
const DefaultHeadingLevel = 2

// BlockNotFoundError reports a missing block by id.
type BlockNotFoundError struct {
	ID uuid.UUID
}

func (e *BlockNotFoundError) Error() string {
	return fmt.Sprintf("richtext: block %q not found", e.ID)
}

// UpdateBlockRequest carries a partial block update. Nil fields are left
// untouched.
type UpdateBlockRequest struct {
	Content *string
	Level   *int
	Alt     *string
}

// EditorOption configures the editor at construction time.
type EditorOption func(*Editor)

// IDGenerator produces identifiers for new blocks.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator IDGenerator) EditorOption {
	return func(e *Editor) {
		if generator != nil {
			e.id = generator
		}
	}
}

// Editor edits the block list of one rich text payload. It owns a private
// copy of the content; callers read the result back through Content. Blocks
// are ordered by position only, so moves splice the slice directly.
type Editor struct {
	blocks   []pages.RichTextBlock
	activeID uuid.UUID
	id       IDGenerator
}

// NewEditor starts an editing session over the given content. A nil content
// starts an empty document.
func NewEditor(content *pages.RichTextContent, opts ...EditorOption) *Editor {
	e := &Editor{
		blocks: []pages.RichTextBlock{},
		id:     uuid.New,
	}
	if content != nil && len(content.Blocks) > 0 {
		e.blocks = make([]pages.RichTextBlock, len(content.Blocks))
		copy(e.blocks, content.Blocks)
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Content returns a snapshot of the edited document.
func (e *Editor) Content() *pages.RichTextContent {
	blocks := make([]pages.RichTextBlock, len(e.blocks))
	copy(blocks, e.blocks)
	return &pages.RichTextContent{Blocks: blocks}
}

// Blocks returns a snapshot of the block list.
func (e *Editor) Blocks() []pages.RichTextBlock {
	blocks := make([]pages.RichTextBlock, len(e.blocks))
	copy(blocks, e.blocks)
	return blocks
}

// ActiveBlock returns the id of the block currently selected for editing, or
// uuid.Nil when none is.
func (e *Editor) ActiveBlock() uuid.UUID {
	return e.activeID
}

// SetActiveBlock marks a block as selected. Passing uuid.Nil clears the
// selection.
func (e *Editor) SetActiveBlock(id uuid.UUID) error {
	if (id == uuid.UUID{}) {
		e.activeID = uuid.Nil
		return nil
	}
	if _, err := e.indexOf(id); err != nil {
		return err
	}
	e.activeID = id
	return nil
}

// AddBlock appends a new block of the given type, selects it, and returns it.
// Heading blocks start at the default level.
func (e *Editor) AddBlock(blockType pages.BlockType) pages.RichTextBlock {
	block := pages.RichTextBlock{
		ID:   e.id(),
		Type: blockType,
	}
	if blockType == pages.BlockHeading {
		block.Level = DefaultHeadingLevel
	}

	e.blocks = append(e.blocks, block)
	e.activeID = block.ID
	return block
}

// UpdateBlock applies a partial update to the identified block.
func (e *Editor) UpdateBlock(id uuid.UUID, req UpdateBlockRequest) (pages.RichTextBlock, error) {
	idx, err := e.indexOf(id)
	if err != nil {
		return pages.RichTextBlock{}, err
	}

	block := e.blocks[idx]
	if req.Content != nil {
		block.Content = *req.Content
	}
	if req.Level != nil {
		if *req.Level < 1 || *req.Level > 6 {
			return pages.RichTextBlock{}, ErrInvalidHeadingLevel
		}
		block.Level = *req.Level
	}
	if req.Alt != nil {
		block.Alt = *req.Alt
	}

	e.blocks[idx] = block
	return block, nil
}

// DeleteBlock removes the identified block, clearing the selection when it
// pointed at the removed block.
func (e *Editor) DeleteBlock(id uuid.UUID) error {
	idx, err := e.indexOf(id)
	if err != nil {
		return err
	}

	e.blocks = append(e.blocks[:idx], e.blocks[idx+1:]...)
	if e.activeID == id {
		e.activeID = uuid.Nil
	}
	return nil
}

// MoveBlock swaps the identified block with its neighbor in the given
// direction. Moves past either end are no-ops.
func (e *Editor) MoveBlock(id uuid.UUID, direction domain.Direction) error {
	if !direction.Valid() {
		return ErrInvalidDirection
	}

	idx, err := e.indexOf(id)
	if err != nil {
		return err
	}

	target := idx - 1
	if direction == domain.DirectionDown {
		target = idx + 1
	}
	if target < 0 || target >= len(e.blocks) {
		return nil
	}

	e.blocks[idx], e.blocks[target] = e.blocks[target], e.blocks[idx]
	return nil
}

func (e *Editor) indexOf(id uuid.UUID) (int, error) {
	if (id == uuid.UUID{}) {
		return 0, ErrBlockIDRequired
	}
	for i := range e.blocks {
		if e.blocks[i].ID == id {
			return i, nil
		}
	}
	return 0, &BlockNotFoundError{ID: id}
}
