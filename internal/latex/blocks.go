package latex

// BlockKind identifies the variant of a Block.
type BlockKind int

const (
	HeadingBlock BlockKind = iota
	MathBlockKind
	ListBlock
	CodeBlockKind
	ImageBlock
	ParagraphBlock
)

func (k BlockKind) String() string {
	switch k {
	case HeadingBlock:
		return "heading"
	case MathBlockKind:
		return "math"
	case ListBlock:
		return "list"
	case CodeBlockKind:
		return "code"
	case ImageBlock:
		return "image"
	case ParagraphBlock:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Block is one top-level unit of a parsed lesson. The set of implementations is
// closed: Heading, MathBlock, List, CodeBlock, Image and Paragraph.
type Block interface {
	Kind() BlockKind
	block()
}

// Heading is a \section (level 1), \subsection (2) or \subsubsection (3).
type Heading struct {
	Level int
	Text  string
}

// MathBlock is display math between $$ lines.
type MathBlock struct {
	LaTeX string
}

// List is an itemize (unordered) or enumerate (ordered) environment.
// Each item is the inline span sequence of one \item line.
type List struct {
	Ordered bool
	Items   [][]Span
}

// CodeBlock is a verbatim, lstlisting or minted environment.
// Language is lowercase and "text" when unknown.
type CodeBlock struct {
	Language string
	Code     string
}

// Image is an \includegraphics directive. Options holds the raw bracket
// argument, if any.
type Image struct {
	Path    string
	Options string
}

// Paragraph is a run of consecutive text lines.
type Paragraph struct {
	Spans []Span
}

func (Heading) Kind() BlockKind   { return HeadingBlock }
func (MathBlock) Kind() BlockKind { return MathBlockKind }
func (List) Kind() BlockKind      { return ListBlock }
func (CodeBlock) Kind() BlockKind { return CodeBlockKind }
func (Image) Kind() BlockKind     { return ImageBlock }
func (Paragraph) Kind() BlockKind { return ParagraphBlock }

func (Heading) block()   {}
func (MathBlock) block() {}
func (List) block()      {}
func (CodeBlock) block() {}
func (Image) block()     {}
func (Paragraph) block() {}
