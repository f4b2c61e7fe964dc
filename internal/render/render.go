package render

import (
	"github.com/gerunddev/lessontex/internal/config"
	"github.com/gerunddev/lessontex/internal/latex"
	"github.com/gerunddev/lessontex/internal/styles"
)

// UnavailableText is shown for topics whose content could not be loaded.
const UnavailableText = "Content not available. This topic hasn't been written yet."

// Renderer turns parsed blocks into displayable text
type Renderer interface {
	Render(blocks []latex.Block) string
}

// MarkdownRenderer outputs plain Markdown
type MarkdownRenderer struct{}

// Render implements Renderer.
func (MarkdownRenderer) Render(blocks []latex.Block) string {
	return Markdown(blocks)
}

// New returns the renderer for one of the config output formats.
// Unknown formats fall back to the terminal renderer.
func New(format string, width int, codeStyle string) Renderer {
	switch format {
	case config.FormatMarkdown:
		return MarkdownRenderer{}
	case config.FormatGlamour:
		return &Glamour{Width: width}
	default:
		return &Terminal{Width: width, CodeStyle: codeStyle}
	}
}

// Unavailable returns the styled placeholder for missing content.
func Unavailable() string {
	return styles.PlaceholderStyle.Render(UnavailableText)
}

// Document renders a document, or the placeholder when content is empty.
func Document(r Renderer, content string) string {
	if content == "" {
		return Unavailable()
	}
	return r.Render(latex.ParseDocument(content).Blocks)
}
