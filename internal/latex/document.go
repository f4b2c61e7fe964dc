package latex

import "fmt"

// Diagnostic is a non-fatal finding from a parse. Line is 1-based.
type Diagnostic struct {
	Line    int
	Message string
}

func newDiagnostic(line int, format string, args ...any) Diagnostic {
	return Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Document is a parsed lesson ready for rendering.
type Document struct {
	Blocks      []Block
	Diagnostics []Diagnostic
}

// ParseDocument parses lesson markup. Blocks are exactly Parse(SplitLines(text));
// Diagnostics describe input that was recovered from.
func ParseDocument(text string) *Document {
	s := &scanner{lines: SplitLines(text)}
	s.run()
	return &Document{
		Blocks:      s.blocks,
		Diagnostics: s.diags,
	}
}

// Stats counts blocks by kind.
func (d *Document) Stats() map[BlockKind]int {
	counts := make(map[BlockKind]int)
	for _, b := range d.Blocks {
		counts[b.Kind()]++
	}
	return counts
}

// Outline returns the document headings in order.
func (d *Document) Outline() []Heading {
	var headings []Heading
	for _, b := range d.Blocks {
		if h, ok := b.(Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}
