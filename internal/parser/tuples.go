package parser

import "strings"

// SplitTuples splits the payload of a VALUES clause into individual
// parenthesized tuples. A character-level scan tracks single-quoted strings,
// backslash escapes inside them, and paren depth outside them; only a comma
// at depth zero outside any string separates tuples. The scan is permissive:
// unterminated strings and unbalanced parens end with a final flush, never
// an error.
func SplitTuples(payload string) []string {
	var tuples []string
	var current strings.Builder
	inString := false
	escape := false
	depth := 0

	flush := func() {
		if tuple := strings.TrimSpace(current.String()); tuple != "" {
			tuples = append(tuples, tuple)
		}
		current.Reset()
	}

	for _, ch := range payload {
		if ch == '\'' && !escape {
			inString = !inString
		}
		if ch == '\\' && inString {
			escape = !escape
		} else {
			escape = false
		}
		if !inString {
			switch ch {
			case '(':
				depth++
			case ')':
				depth--
			case ',':
				if depth == 0 {
					flush()
					continue
				}
			}
		}
		current.WriteRune(ch)
	}
	flush()
	return tuples
}
