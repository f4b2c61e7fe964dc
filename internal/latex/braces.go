package latex

// ExtractBraces returns the text of a brace argument. after is the index just past
// the opening '{'. Nested pairs are kept verbatim; when the argument never closes the
// rest of text is returned.
func ExtractBraces(text string, after int) string {
	arg, _ := extractBalanced(text, after)
	return arg
}

// extractBalanced is ExtractBraces that also reports whether the closing brace was found.
func extractBalanced(text string, after int) (string, bool) {
	if after < 0 {
		after = 0
	}
	if after > len(text) {
		return "", false
	}

	depth := 1
	for i := after; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[after:i], true
			}
		}
	}

	return text[after:], false
}
