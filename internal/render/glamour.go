package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/gerunddev/lessontex/internal/latex"
)

// rendererCache provides width-keyed caching of glamour renderers.
// Creating a renderer is expensive; caching by width avoids recreation.
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width, creating one if needed.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Glamour renders blocks by converting them to Markdown and passing that to glamour
type Glamour struct {
	Width int
}

// Render renders blocks. On error the plain Markdown is returned.
func (g *Glamour) Render(blocks []latex.Block) string {
	md := Markdown(blocks)
	if md == "" {
		return ""
	}

	rendered, err := RenderMarkdown(md, g.Width)
	if err != nil {
		return md
	}
	return rendered
}

// RenderMarkdown renders markdown content with glamour.
func RenderMarkdown(content string, width int) (string, error) {
	renderer, err := getRenderer(width)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(rendered), nil
}
