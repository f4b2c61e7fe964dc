package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/lessontex/internal/latex"
	"github.com/gerunddev/lessontex/internal/styles"
)

// Terminal renders blocks with lipgloss styles and chroma highlighting
type Terminal struct {
	Width     int
	CodeStyle string
}

// Render lays out blocks separated by blank lines.
func (t *Terminal) Render(blocks []latex.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if out := t.renderBlock(block); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (t *Terminal) renderBlock(block latex.Block) string {
	switch b := block.(type) {
	case latex.Heading:
		return t.heading(b)
	case latex.MathBlock:
		return lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, styles.MathStyle.Render(b.LaTeX))
	case latex.List:
		return t.list(b)
	case latex.CodeBlock:
		return t.code(b)
	case latex.Image:
		return lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, styles.ImageStyle.Render("[image: "+b.Path+"]"))
	case latex.Paragraph:
		return lipgloss.NewStyle().Width(t.Width).Render(Inline(b.Spans))
	default:
		return ""
	}
}

func (t *Terminal) heading(h latex.Heading) string {
	switch h.Level {
	case 1:
		return styles.SectionStyle.Width(t.Width).Render(h.Text)
	case 2:
		return styles.SubsectionStyle.Render(h.Text)
	default:
		return styles.SubsubsectionStyle.Render(h.Text)
	}
}

func (t *Terminal) list(l latex.List) string {
	body := lipgloss.NewStyle().Width(max(t.Width-6, 10))

	items := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		marker := "•"
		if l.Ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		marker = styles.ListMarkerStyle.Width(4).Align(lipgloss.Right).Render(marker) + " "
		items = append(items, lipgloss.JoinHorizontal(lipgloss.Top, marker, body.Render(Inline(item))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// code renders a code block. Known languages get highlighting, line numbers
// and an uppercase language badge.
func (t *Terminal) code(c latex.CodeBlock) string {
	h := NewHighlighter(c.Language, t.CodeStyle)
	code := h.Highlight(c.Code)

	if c.Language == "text" {
		return styles.CodeBoxStyle.Render(code)
	}

	lines := strings.Split(code, "\n")
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		num := styles.LineNumberStyle.Render(fmt.Sprintf("%*d", width, i+1))
		lines[i] = num + "  " + line
	}

	badge := lipgloss.PlaceHorizontal(t.Width, lipgloss.Right, styles.BadgeStyle.Render(strings.ToUpper(c.Language)))
	return lipgloss.JoinVertical(lipgloss.Left, badge, styles.CodeBoxStyle.Render(strings.Join(lines, "\n")))
}

// Inline styles a span sequence for the terminal.
func Inline(spans []latex.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case latex.Math:
			b.WriteString(styles.MathStyle.Render(s.Text))
		case latex.Bold:
			b.WriteString(styles.BoldStyle.Render(s.Text))
		case latex.Italic:
			b.WriteString(styles.ItalicStyle.Render(s.Text))
		case latex.Code:
			b.WriteString(styles.InlineCodeStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
