package render

import (
	"strings"
	"testing"

	"github.com/gerunddev/lessontex/internal/config"
	"github.com/gerunddev/lessontex/internal/latex"
)

func TestNew(t *testing.T) {
	if _, ok := New(config.FormatMarkdown, 80, "monokai").(MarkdownRenderer); !ok {
		t.Error("Expected MarkdownRenderer")
	}
	if _, ok := New(config.FormatGlamour, 80, "monokai").(*Glamour); !ok {
		t.Error("Expected Glamour renderer")
	}
	if r, ok := New(config.FormatTerminal, 80, "dracula").(*Terminal); !ok || r.CodeStyle != "dracula" {
		t.Error("Expected Terminal renderer")
	}
	if _, ok := New("unknown", 80, "monokai").(*Terminal); !ok {
		t.Error("Expected Terminal fallback")
	}
}

func TestDocumentPlaceholder(t *testing.T) {
	out := stripANSI(Document(MarkdownRenderer{}, ""))
	if out != UnavailableText {
		t.Errorf("Expected placeholder, got %q", out)
	}

	out = Document(MarkdownRenderer{}, `\section{Hi}`)
	if out != "# Hi\n" {
		t.Errorf("Unexpected document output: %q", out)
	}
}

func TestGlamourRender(t *testing.T) {
	g := &Glamour{Width: 80}
	blocks := latex.ParseDocument("\\section{Queues}\n\nMessages wait in \\textbf{order}.").Blocks

	out := stripANSI(g.Render(blocks))
	for _, want := range []string{"Queues", "Messages", "order"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in glamour output:\n%s", want, out)
		}
	}

	if got := g.Render(nil); got != "" {
		t.Errorf("Expected empty output for no blocks, got %q", got)
	}
}
