package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the page metadata carried at the top of an import document.
type FrontMatter struct {
	Title           string   `yaml:"title"`
	Slug            string   `yaml:"slug"`
	Description     string   `yaml:"description"`
	MetaTitle       string   `yaml:"meta_title"`
	MetaDescription string   `yaml:"meta_description"`
	Tags            []string `yaml:"tags"`
	Draft           bool     `yaml:"draft"`
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. Documents without a frontmatter block return empty metadata
// and the source unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
