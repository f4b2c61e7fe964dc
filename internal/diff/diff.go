package diff

import (
	"fmt"

	"github.com/gerunddev/lessontex/internal/latex"
	"github.com/gerunddev/lessontex/internal/render"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Format represents what a lesson diff compares
type Format int

const (
	// FormatMarkdown compares the parsed lessons as Markdown (default)
	FormatMarkdown Format = iota
	// FormatSource compares the raw markup
	FormatSource
)

// Generate creates a diff between the last read version of a lesson and the
// current one, rendered for the terminal. An empty string means no changes.
func Generate(name, previous, current string, format Format, width int) (string, error) {
	switch format {
	case FormatMarkdown:
		previous = render.Markdown(latex.ParseDocument(previous).Blocks)
		current = render.Markdown(latex.ParseDocument(current).Blocks)
	case FormatSource:
	default:
		return "", fmt.Errorf("unsupported diff format: %d", format)
	}

	unified := Unified(name, previous, current)
	if unified == "" {
		return "", nil
	}

	// Wrap in diff code fence for proper syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	rendered, err := render.RenderMarkdown(diffMarkdown, width)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown, nil
	}

	return rendered, nil
}

// Unified returns a unified diff of two texts, or "" when they are equal.
func Unified(name, previous, current string) string {
	if previous == current {
		return ""
	}

	edits := myers.ComputeEdits(span.URIFromPath(name), previous, current)
	return fmt.Sprint(gotextdiff.ToUnified(name+" (last read)", name+" (current)", previous, edits))
}
