package richtext_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/internal/richtext"
	"github.com/google/uuid"
)

func TestEditorAddBlockDefaults(t *testing.T) {
	editor := richtext.NewEditor(nil)

	heading := editor.AddBlock(pages.BlockHeading)
	if heading.Level != richtext.DefaultHeadingLevel {
		t.Fatalf("expected heading level %d, got %d", richtext.DefaultHeadingLevel, heading.Level)
	}
	if editor.ActiveBlock() != heading.ID {
		t.Fatalf("expected new block to become active")
	}

	paragraph := editor.AddBlock(pages.BlockParagraph)
	if paragraph.Level != 0 {
		t.Fatalf("paragraph should carry no heading level")
	}

	blocks := editor.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].ID != heading.ID || blocks[1].ID != paragraph.ID {
		t.Fatalf("blocks out of order")
	}
}

func TestEditorUpdateBlock(t *testing.T) {
	editor := richtext.NewEditor(nil)
	block := editor.AddBlock(pages.BlockHeading)

	content := "Welcome"
	level := 3
	updated, err := editor.UpdateBlock(block.ID, richtext.UpdateBlockRequest{
		Content: &content,
		Level:   &level,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "Welcome" || updated.Level != 3 {
		t.Fatalf("update not applied: %+v", updated)
	}

	bad := 7
	if _, err := editor.UpdateBlock(block.ID, richtext.UpdateBlockRequest{Level: &bad}); !errors.Is(err, richtext.ErrInvalidHeadingLevel) {
		t.Fatalf("expected ErrInvalidHeadingLevel, got %v", err)
	}

	var notFound *richtext.BlockNotFoundError
	if _, err := editor.UpdateBlock(uuid.New(), richtext.UpdateBlockRequest{Content: &content}); !errors.As(err, &notFound) {
		t.Fatalf("expected BlockNotFoundError, got %v", err)
	}
}

func TestEditorMoveBlockBoundaries(t *testing.T) {
	editor := richtext.NewEditor(nil)
	first := editor.AddBlock(pages.BlockHeading)
	second := editor.AddBlock(pages.BlockParagraph)
	third := editor.AddBlock(pages.BlockQuote)

	// Moving the first block up is a no-op.
	if err := editor.MoveBlock(first.ID, domain.DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	if editor.Blocks()[0].ID != first.ID {
		t.Fatalf("boundary move should not reorder")
	}

	if err := editor.MoveBlock(third.ID, domain.DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	blocks := editor.Blocks()
	if blocks[1].ID != third.ID || blocks[2].ID != second.ID {
		t.Fatalf("expected neighbor swap, got %v %v", blocks[1].Type, blocks[2].Type)
	}

	if err := editor.MoveBlock(second.ID, domain.Direction("sideways")); !errors.Is(err, richtext.ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestEditorDeleteBlockClearsSelection(t *testing.T) {
	editor := richtext.NewEditor(nil)
	block := editor.AddBlock(pages.BlockImage)

	if err := editor.DeleteBlock(block.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if editor.ActiveBlock() != uuid.Nil {
		t.Fatalf("expected selection to be cleared")
	}
	if len(editor.Blocks()) != 0 {
		t.Fatalf("expected empty document")
	}
}

func TestEditorContentSnapshotIsDetached(t *testing.T) {
	seed := &pages.RichTextContent{
		Blocks: []pages.RichTextBlock{
			{ID: uuid.New(), Type: pages.BlockParagraph, Content: "original"},
		},
	}

	editor := richtext.NewEditor(seed)
	snapshot := editor.Content()
	snapshot.Blocks[0].Content = "mutated"

	if editor.Blocks()[0].Content != "original" {
		t.Fatalf("snapshot mutation leaked into editor")
	}
	if seed.Blocks[0].Content != "original" {
		t.Fatalf("editor mutation leaked into seed content")
	}
}
