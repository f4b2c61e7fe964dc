package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// Highlighter applies syntax highlighting to code blocks
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter creates a highlighter for a code block language.
// Returns nil for "text" or when the language is not recognized.
func NewHighlighter(language, styleName string) *Highlighter {
	if language == "" || language == "text" {
		return nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}

	return &Highlighter{
		lexer: lexer,
		style: style,
	}
}

// Highlight returns code with ANSI colors. Escape sequences never span a newline,
// so the result can be split into lines safely. On failure code is returned as is.
func (h *Highlighter) Highlight(code string) string {
	if h == nil {
		return code
	}

	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	formatter := &ansiFormatter{style: h.style}
	if err := formatter.Format(&buf, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// ansiFormatter is a Chroma formatter that applies foreground colors and font styles
type ansiFormatter struct {
	style *chroma.Style
}

func (f *ansiFormatter) Format(w io.Writer, iterator chroma.Iterator) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := f.style.Get(token.Type)

		var codes []string
		if entry.Colour.IsSet() {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		}
		if entry.Bold == chroma.Yes {
			codes = append(codes, "1")
		}
		if entry.Italic == chroma.Yes {
			codes = append(codes, "3")
		}
		if entry.Underline == chroma.Yes {
			codes = append(codes, "4")
		}

		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if part == "" {
				continue
			}

			var err error
			if len(codes) > 0 {
				_, err = fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), part)
			} else {
				_, err = io.WriteString(w, part)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
