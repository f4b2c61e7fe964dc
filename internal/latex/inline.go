package latex

import (
	"regexp"
	"sort"
	"strings"
)

// SpanKind identifies the formatting of a Span.
type SpanKind int

const (
	PlainText SpanKind = iota
	Math
	Bold
	Italic
	Code
)

func (k SpanKind) String() string {
	switch k {
	case PlainText:
		return "text"
	case Math:
		return "math"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// Span is a fragment of paragraph or list item text with a single formatting kind.
// Text never includes the markup delimiters.
type Span struct {
	Kind SpanKind
	Text string
}

// Plain builds a PlainText span.
func Plain(text string) Span { return Span{Kind: PlainText, Text: text} }

type inlinePattern struct {
	re   *regexp.Regexp
	kind SpanKind
}

// Order matters: on equal start offsets the earlier pattern wins.
var inlinePatterns = []inlinePattern{
	{regexp.MustCompile(`\$([^$]+)\$`), Math},
	{regexp.MustCompile(`\\textbf\{([^}]+)\}`), Bold},
	{regexp.MustCompile(`\\textit\{([^}]+)\}`), Italic},
	{regexp.MustCompile(`\\texttt\{([^}]+)\}`), Code},
}

type match struct {
	kind       SpanKind
	start, end int
	content    string
}

// findMatches runs every inline pattern over text and returns all matches ordered
// by start offset.
func findMatches(text string) []match {
	var matches []match
	for _, p := range inlinePatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			matches = append(matches, match{
				kind:    p.kind,
				start:   loc[0],
				end:     loc[1],
				content: text[loc[2]:loc[3]],
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})
	return matches
}

// FormatInline splits text into spans for inline math ($...$), \textbf, \textit and
// \texttt. Text without markup yields a single PlainText span.
//
// Inline markers must not overlap. When they do, the match that starts first is kept
// and any match beginning inside it is dropped, so no text is emitted twice.
func FormatInline(text string) []Span {
	matches := findMatches(text)
	if len(matches) == 0 {
		return []Span{Plain(text)}
	}

	var spans []Span
	cursor := 0
	for _, m := range matches {
		if m.start < cursor {
			continue
		}
		if m.start > cursor {
			spans = append(spans, Plain(text[cursor:m.start]))
		}
		spans = append(spans, Span{Kind: m.kind, Text: m.content})
		cursor = m.end
	}
	if cursor < len(text) {
		spans = append(spans, Plain(text[cursor:]))
	}

	return spans
}

// SpanText concatenates the text of spans, dropping their formatting.
func SpanText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
