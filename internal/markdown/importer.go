package markdown

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

var (
	ErrSourceRequired = errors.New("markdown: source is required")
	ErrTitleRequired  = errors.New("markdown: document has no title")
)

// IDGenerator produces identifiers for imported blocks.
type IDGenerator func() uuid.UUID

// ImporterOption customizes an Importer.
type ImporterOption func(*Importer)

// WithImporterIDGenerator overrides block identifier generation.
func WithImporterIDGenerator(gen IDGenerator) ImporterOption {
	return func(i *Importer) {
		if gen != nil {
			i.id = gen
		}
	}
}

// WithImporterLogger attaches a logger to the importer.
func WithImporterLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// Importer turns Markdown documents into draft pages. The document body
// becomes a single rich text component inside a custom section; frontmatter
// supplies the page metadata.
type Importer struct {
	service pages.Service
	id      IDGenerator
	logger  interfaces.Logger
}

// NewImporter builds an importer backed by the given page service.
func NewImporter(service pages.Service, opts ...ImporterOption) *Importer {
	importer := &Importer{
		service: service,
		id:      uuid.New,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

// ImportRequest carries a Markdown document to import.
type ImportRequest struct {
	Source  []byte
	ActorID uuid.UUID
}

// Import creates a draft page from the Markdown document. The title comes
// from frontmatter, falling back to the first heading in the body.
func (i *Importer) Import(ctx context.Context, req ImportRequest) (*pages.Page, error) {
	if len(req.Source) == 0 {
		return nil, ErrSourceRequired
	}

	meta, body, err := ParseFrontMatter(req.Source)
	if err != nil {
		return nil, err
	}

	blocks := i.Blocks(body)

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = firstHeading(blocks)
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	create := pages.CreatePageRequest{
		Title:     title,
		Slug:      meta.Slug,
		CreatedBy: req.ActorID,
		Sections: []pages.Section{
			{
				ID:     i.id(),
				Type:   pages.SectionCustom,
				Layout: pages.LayoutContained,
				Title:  &title,
				Components: []pages.Component{
					{
						ID:      i.id(),
						Type:    pages.ComponentRichText,
						Content: pages.RichContent(&pages.RichTextContent{Blocks: blocks}),
					},
				},
			},
		},
	}
	if meta.Description != "" {
		create.Description = &meta.Description
	}
	if meta.MetaTitle != "" {
		create.MetaTitle = &meta.MetaTitle
	}
	if meta.MetaDescription != "" {
		create.MetaDescription = &meta.MetaDescription
	}

	page, err := i.service.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	logging.WithFields(i.logger, map[string]any{
		"page_id": page.ID.String(),
		"slug":    page.Slug,
		"blocks":  len(blocks),
	}).Info("markdown.import.completed")

	return page, nil
}

// Blocks converts a Markdown body into ordered rich text blocks. Unsupported
// node kinds are skipped.
func (i *Importer) Blocks(body []byte) []pages.RichTextBlock {
	engine := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
	)
	doc := engine.Parser().Parse(text.NewReader(body))

	blocks := []pages.RichTextBlock{}
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		block, ok := i.blockFromNode(node, body)
		if !ok {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func (i *Importer) blockFromNode(node ast.Node, source []byte) (pages.RichTextBlock, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		return pages.RichTextBlock{
			ID:      i.id(),
			Type:    pages.BlockHeading,
			Content: nodeText(n, source),
			Level:   n.Level,
		}, true
	case *ast.Paragraph:
		if image, ok := paragraphImage(n); ok {
			return pages.RichTextBlock{
				ID:      i.id(),
				Type:    pages.BlockImage,
				Content: string(image.Destination),
				Alt:     nodeText(image, source),
			}, true
		}
		content := nodeText(n, source)
		if content == "" {
			return pages.RichTextBlock{}, false
		}
		return pages.RichTextBlock{
			ID:      i.id(),
			Type:    pages.BlockParagraph,
			Content: content,
		}, true
	case *ast.Blockquote:
		return pages.RichTextBlock{
			ID:      i.id(),
			Type:    pages.BlockQuote,
			Content: nodeText(n, source),
		}, true
	case *ast.FencedCodeBlock:
		return pages.RichTextBlock{
			ID:      i.id(),
			Type:    pages.BlockCode,
			Content: linesText(n, source),
		}, true
	case *ast.CodeBlock:
		return pages.RichTextBlock{
			ID:      i.id(),
			Type:    pages.BlockCode,
			Content: linesText(n, source),
		}, true
	case *ast.List:
		items := listItems(n, source)
		if len(items) == 0 {
			return pages.RichTextBlock{}, false
		}
		return pages.RichTextBlock{
			ID:      i.id(),
			Type:    pages.BlockList,
			Content: strings.Join(items, "\n"),
		}, true
	default:
		return pages.RichTextBlock{}, false
	}
}

func firstHeading(blocks []pages.RichTextBlock) string {
	for _, block := range blocks {
		if block.Type == pages.BlockHeading {
			return block.Content
		}
	}
	return ""
}

// paragraphImage reports the image node when the paragraph holds nothing but
// a single image, the common Markdown figure idiom.
func paragraphImage(paragraph *ast.Paragraph) (*ast.Image, bool) {
	child := paragraph.FirstChild()
	if child == nil || child.NextSibling() != nil {
		return nil, false
	}
	image, ok := child.(*ast.Image)
	return image, ok
}

func nodeText(node ast.Node, source []byte) string {
	return strings.TrimSpace(string(node.Text(source)))
}

func linesText(node ast.Node, source []byte) string {
	var builder strings.Builder
	lines := node.Lines()
	for idx := 0; idx < lines.Len(); idx++ {
		segment := lines.At(idx)
		builder.Write(segment.Value(source))
	}
	return strings.TrimRight(builder.String(), "\n")
}

func listItems(list *ast.List, source []byte) []string {
	items := []string{}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		content := nodeText(item, source)
		if content == "" {
			continue
		}
		items = append(items, content)
	}
	return items
}
