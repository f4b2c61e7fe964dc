package latex

import (
	"regexp"
	"strings"
	"unicode"
)

var headingCommands = []struct {
	prefix string
	level  int
}{
	{`\section{`, 1},
	{`\subsection{`, 2},
	{`\subsubsection{`, 3},
}

// Lines starting with any of these end a paragraph.
var commandPrefixes = []string{
	`\section{`,
	`\subsection{`,
	`\subsubsection{`,
	`\begin{`,
	`\end{`,
	`$$`,
	`\item`,
}

const includeGraphics = `\includegraphics`

var lstLanguage = regexp.MustCompile(`(?i)\[.*?language\s*=\s*(\w+)`)

// scanner walks a Source once, front to back.
type scanner struct {
	lines  Source
	i      int
	blocks []Block
	diags  []Diagnostic
}

// Parse converts a lesson into its block sequence. It never fails: unterminated
// environments and arguments are closed at the end of input and malformed image
// directives are skipped.
func Parse(src Source) []Block {
	s := &scanner{lines: src}
	s.run()
	return s.blocks
}

func (s *scanner) run() {
	for s.i < len(s.lines) {
		line := strings.TrimSpace(s.lines[s.i])

		if line == "" {
			s.i++
			continue
		}

		if level, prefix, ok := headingPrefix(line); ok {
			s.heading(line, prefix, level)
			continue
		}

		switch {
		case strings.HasPrefix(line, "$$"):
			s.displayMath(line)
		case strings.HasPrefix(line, `\begin{itemize}`):
			s.list("itemize", false)
		case strings.HasPrefix(line, `\begin{enumerate}`):
			s.list("enumerate", true)
		case strings.HasPrefix(line, `\begin{verbatim}`):
			s.code("verbatim", "text")
		case strings.HasPrefix(line, `\begin{lstlisting}`):
			s.code("lstlisting", lstlistingLanguage(line))
		case strings.HasPrefix(line, `\begin{minted}`):
			s.code("minted", mintedLanguage(line))
		case strings.Contains(line, includeGraphics):
			s.image(line)
		default:
			s.paragraph(line)
		}
	}
}

func (s *scanner) emit(b Block) {
	s.blocks = append(s.blocks, b)
}

func (s *scanner) warn(line int, format string, args ...any) {
	s.diags = append(s.diags, newDiagnostic(line+1, format, args...))
}

func headingPrefix(line string) (int, string, bool) {
	for _, h := range headingCommands {
		if strings.HasPrefix(line, h.prefix) {
			return h.level, h.prefix, true
		}
	}
	return 0, "", false
}

func (s *scanner) heading(line, prefix string, level int) {
	text, closed := extractBalanced(line, len(prefix))
	if !closed {
		s.warn(s.i, "unterminated heading argument")
	}
	s.emit(Heading{Level: level, Text: text})
	s.i++
}

// displayMath handles $$ blocks. "$$x$$" on one line is a complete block; otherwise
// lines are taken verbatim until the next line starting with $$.
func (s *scanner) displayMath(line string) {
	start := s.i
	rest := strings.TrimSpace(line[2:])

	if end := strings.Index(rest, "$$"); end >= 0 {
		s.emit(MathBlock{LaTeX: strings.TrimSpace(rest[:end])})
		s.i++
		return
	}

	body, next, closed := collectUntil(s.lines, s.i+1, "$$")
	if rest != "" {
		body = append([]string{rest}, body...)
	}
	if !closed {
		s.warn(start, "unterminated display math")
	}

	s.emit(MathBlock{LaTeX: strings.TrimSpace(strings.Join(body, "\n"))})
	s.i = next
}

func (s *scanner) list(env string, ordered bool) {
	start := s.i
	body, next, closed := collectUntil(s.lines, s.i+1, `\end{`+env+`}`)
	if !closed {
		s.warn(start, "unterminated %s environment", env)
	}

	var items [][]Span
	for _, raw := range body {
		item := strings.TrimSpace(raw)
		if strings.HasPrefix(item, `\item `) {
			items = append(items, FormatInline(item[len(`\item `):]))
		}
	}

	s.emit(List{Ordered: ordered, Items: items})
	s.i = next
}

// code collects an environment body as raw text. Markup inside is not interpreted.
func (s *scanner) code(env, language string) {
	start := s.i
	body, next, closed := collectUntil(s.lines, s.i+1, `\end{`+env+`}`)
	if !closed {
		s.warn(start, "unterminated %s environment", env)
	}

	code := strings.TrimRightFunc(strings.Join(body, "\n"), unicode.IsSpace)
	s.emit(CodeBlock{Language: language, Code: code})
	s.i = next
}

func lstlistingLanguage(line string) string {
	m := lstLanguage.FindStringSubmatch(line)
	if m == nil {
		return "text"
	}
	return strings.ToLower(m[1])
}

// mintedLanguage reads the {lang} argument of \begin{minted}, skipping an
// optional [options] bracket.
func mintedLanguage(line string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(line, `\begin{minted}`))
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "text"
		}
		rest = strings.TrimSpace(rest[end+1:])
	}
	if !strings.HasPrefix(rest, "{") {
		return "text"
	}

	lang := strings.TrimSpace(ExtractBraces(rest, 1))
	if lang == "" {
		return "text"
	}
	return strings.ToLower(lang)
}

func (s *scanner) image(line string) {
	path, options, ok := imageArgument(line)
	if ok {
		s.emit(Image{Path: path, Options: options})
	} else {
		s.warn(s.i, "malformed image directive")
	}
	s.i++
}

// imageArgument parses \includegraphics[options]{path}. Paths use the same
// balanced brace rules as headings; a path whose brace never closes is malformed.
func imageArgument(line string) (path, options string, ok bool) {
	idx := strings.Index(line, includeGraphics)
	if idx < 0 {
		return "", "", false
	}
	rest := line[idx+len(includeGraphics):]

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", "", false
		}
		options = rest[1:end]
		rest = rest[end+1:]
	}
	if !strings.HasPrefix(rest, "{") {
		return "", "", false
	}

	path, closed := extractBalanced(rest, 1)
	path = strings.TrimSpace(path)
	if !closed || path == "" {
		return "", "", false
	}
	return path, options, true
}

func (s *scanner) paragraph(line string) {
	parts := []string{line}
	s.i++

	for s.i < len(s.lines) {
		next := strings.TrimSpace(s.lines[s.i])
		if next == "" || isCommand(next) {
			break
		}
		parts = append(parts, next)
		s.i++
	}

	s.emit(Paragraph{Spans: FormatInline(strings.Join(parts, " "))})
}

// isCommand reports whether a trimmed line starts a structural construct.
func isCommand(line string) bool {
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return strings.Contains(line, includeGraphics)
}
