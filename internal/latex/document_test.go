package latex

import (
	"os"
	"reflect"
	"testing"
)

func TestParseDocumentFixture(t *testing.T) {
	content, err := os.ReadFile("testdata/load-balancing.tex")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	doc := ParseDocument(string(content))

	if len(doc.Diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, got %v", doc.Diagnostics)
	}

	kinds := make([]BlockKind, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind())
	}
	expected := []BlockKind{
		HeadingBlock,
		ParagraphBlock,
		HeadingBlock,
		ListBlock,
		ParagraphBlock,
		MathBlockKind,
		HeadingBlock,
		CodeBlockKind,
		ImageBlock,
		ListBlock,
	}
	if !reflect.DeepEqual(kinds, expected) {
		t.Fatalf("Block kinds = %v, want %v", kinds, expected)
	}

	code := doc.Blocks[7].(CodeBlock)
	if code.Language != "nginx" {
		t.Errorf("Expected nginx language, got %q", code.Language)
	}
	wantCode := "upstream backend {\n    server app1:8080;\n    server app2:8080;\n}"
	if code.Code != wantCode {
		t.Errorf("Code = %q, want %q", code.Code, wantCode)
	}

	math := doc.Blocks[5].(MathBlock)
	if math.LaTeX != `L = \frac{R}{N}` {
		t.Errorf("Unexpected math: %q", math.LaTeX)
	}

	img := doc.Blocks[8].(Image)
	if img.Path != "/images/load-balancer.png" {
		t.Errorf("Unexpected image path: %q", img.Path)
	}

	list := doc.Blocks[3].(List)
	if !list.Ordered || len(list.Items) != 3 {
		t.Errorf("Expected ordered list with 3 items, got %+v", list)
	}

	stats := doc.Stats()
	if stats[HeadingBlock] != 3 || stats[ListBlock] != 2 || stats[ParagraphBlock] != 2 {
		t.Errorf("Unexpected stats: %v", stats)
	}

	outline := doc.Outline()
	if len(outline) != 3 || outline[0].Text != "Load Balancing" || outline[2].Level != 3 {
		t.Errorf("Unexpected outline: %+v", outline)
	}
}

func TestParseDocumentMatchesParse(t *testing.T) {
	content, err := os.ReadFile("testdata/load-balancing.tex")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	doc := ParseDocument(string(content))
	blocks := Parse(SplitLines(string(content)))

	if !reflect.DeepEqual(doc.Blocks, blocks) {
		t.Error("ParseDocument blocks differ from Parse")
	}
}

func TestParseDocumentDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Diagnostic
	}{
		{
			name:     "clean input",
			input:    "\\section{Fine}\nText",
			expected: nil,
		},
		{
			name:     "unterminated list",
			input:    "Intro\n\\begin{itemize}\n\\item One",
			expected: []Diagnostic{{Line: 2, Message: "unterminated itemize environment"}},
		},
		{
			name:     "unterminated code",
			input:    "\\begin{minted}{go}\nx",
			expected: []Diagnostic{{Line: 1, Message: "unterminated minted environment"}},
		},
		{
			name:     "unterminated math",
			input:    "\n\n$$\nx",
			expected: []Diagnostic{{Line: 3, Message: "unterminated display math"}},
		},
		{
			name:     "malformed image",
			input:    `\includegraphics[scale=2]`,
			expected: []Diagnostic{{Line: 1, Message: "malformed image directive"}},
		},
		{
			name:     "unterminated heading",
			input:    "\\section{Ok}\n\\subsection{Oops",
			expected: []Diagnostic{{Line: 2, Message: "unterminated heading argument"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseDocument(tt.input)
			if !reflect.DeepEqual(doc.Diagnostics, tt.expected) {
				t.Errorf("Diagnostics = %v, want %v", doc.Diagnostics, tt.expected)
			}
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 4, Message: "unterminated display math"}
	if got := d.String(); got != "line 4: unterminated display math" {
		t.Errorf("String() = %q", got)
	}
}
