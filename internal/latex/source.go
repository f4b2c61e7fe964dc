package latex

import "strings"

// Source is a lesson split into lines. It is never modified after SplitLines.
type Source []string

// SplitLines splits text on newlines, dropping the carriage return of CRLF endings.
func SplitLines(text string) Source {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Source(lines)
}

// CollectUntil gathers raw lines from start until a line whose trimmed form begins
// with endTag. The end tag line is not included. It returns the index just past the
// end tag, or len(lines) when the tag never appears.
func CollectUntil(lines Source, start int, endTag string) ([]string, int) {
	collected, next, _ := collectUntil(lines, start, endTag)
	return collected, next
}

func collectUntil(lines Source, start int, endTag string) ([]string, int, bool) {
	var collected []string

	i := max(start, 0)
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), endTag) {
			return collected, i + 1, true
		}
		collected = append(collected, lines[i])
		i++
	}

	return collected, len(lines), false
}
