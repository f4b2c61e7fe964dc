package render

import (
	"fmt"
	"strings"

	"github.com/gerunddev/lessontex/internal/latex"
)

// Markdown converts parsed blocks to CommonMark with $...$ math.
func Markdown(blocks []latex.Block) string {
	var md strings.Builder

	for i, block := range blocks {
		if i > 0 {
			md.WriteString("\n")
		}

		switch b := block.(type) {
		case latex.Heading:
			md.WriteString(strings.Repeat("#", b.Level) + " " + b.Text + "\n")
		case latex.MathBlock:
			md.WriteString("$$\n" + b.LaTeX + "\n$$\n")
		case latex.List:
			for n, item := range b.Items {
				marker := "- "
				if b.Ordered {
					marker = fmt.Sprintf("%d. ", n+1)
				}
				md.WriteString(marker + InlineMarkdown(item) + "\n")
			}
		case latex.CodeBlock:
			lang := b.Language
			if lang == "text" {
				lang = ""
			}
			md.WriteString("```" + lang + "\n" + b.Code + "\n```\n")
		case latex.Image:
			md.WriteString("![Diagram](" + b.Path + ")\n")
		case latex.Paragraph:
			md.WriteString(InlineMarkdown(b.Spans) + "\n")
		}
	}

	return md.String()
}

// InlineMarkdown converts spans to Markdown emphasis, code and math.
func InlineMarkdown(spans []latex.Span) string {
	var md strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case latex.Bold:
			md.WriteString("**" + s.Text + "**")
		case latex.Italic:
			md.WriteString("*" + s.Text + "*")
		case latex.Code:
			md.WriteString("`" + s.Text + "`")
		case latex.Math:
			md.WriteString("$" + s.Text + "$")
		default:
			md.WriteString(s.Text)
		}
	}
	return md.String()
}
