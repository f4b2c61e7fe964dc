package content

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonAlnum        = regexp.MustCompile(`[^a-z0-9]+`)
	sectionIDRe     = regexp.MustCompile(`(?i)section-(\d+)`)
	sectionRomanRe  = regexp.MustCompile(`(?i)SECTION ([IVX]+)`)
	sectionHeaderRe = regexp.MustCompile(`(?i)SECTION [IVX]+:\s*(.+)`)
	chapterIDRe     = regexp.MustCompile(`ch-(\d+)-(\d+)`)
)

// Slug converts a title to a lowercase, hyphen separated path segment.
// "What is System Design?" → "what-is-system-design"
func Slug(text string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50,
	'C': 100, 'D': 500, 'M': 1000,
}

// RomanToInt parses a Roman numeral using subtractive notation.
// Empty or invalid input yields 0.
func RomanToInt(roman string) int {
	roman = strings.ToUpper(roman)

	result := 0
	for i := 0; i < len(roman); i++ {
		current, ok := romanValues[roman[i]]
		if !ok {
			return 0
		}
		next := 0
		if i+1 < len(roman) {
			next = romanValues[roman[i+1]]
		}

		if current < next {
			result -= current
		} else {
			result += current
		}
	}
	return result
}

// SectionNumber derives the number of a section from a "section-N" id, or from a
// "SECTION <roman>" prefix in the id or the title.
func SectionNumber(id, title string) (int, bool) {
	if m := sectionIDRe.FindStringSubmatch(id); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}

	for _, s := range []string{id, title} {
		if m := sectionRomanRe.FindStringSubmatch(s); m != nil {
			if n := RomanToInt(m[1]); n > 0 {
				return n, true
			}
		}
	}

	return 0, false
}

// SectionSlug slugs the name part of a "SECTION I: FOUNDATIONS" title, or the
// whole title when it has no such prefix.
func SectionSlug(title string) string {
	if m := sectionHeaderRe.FindStringSubmatch(title); m != nil {
		return Slug(m[1])
	}
	return Slug(title)
}

// ChapterNumbers extracts the section and chapter numbers of a "ch-N-M" id.
func ChapterNumbers(id string) (section, chapter int, ok bool) {
	m := chapterIDRe.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, false
	}

	section, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	chapter, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return section, chapter, true
}
