package parser

import "strings"

// constraintPrefixes mark body fragments that declare indexes or constraints
// rather than columns. The test is a plain case-insensitive prefix match.
var constraintPrefixes = []string{"PRIMARY KEY", "KEY", "UNIQUE KEY", "CONSTRAINT"}

// ParseColumns extracts ordered column names from a CREATE TABLE body. The
// body is split on top-level commas, constraint and index fragments are
// discarded, and each remaining fragment contributes its leading identifier.
// A fragment with no identifiable leading token yields nothing.
func ParseColumns(body string) []string {
	var columns []string
	for _, fragment := range splitTopLevel(body) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if isConstraintFragment(fragment) {
			continue
		}
		if name, ok := leadingIdentifier(fragment); ok {
			columns = append(columns, name)
		}
	}
	return columns
}

// splitTopLevel splits a definition body on commas at paren depth zero, so
// commas inside type arguments like ENUM('a','b') or DECIMAL(10,2) never
// separate fragments.
func splitTopLevel(body string) []string {
	var parts []string
	depth := 0
	var current strings.Builder

	for _, ch := range body {
		switch ch {
		case '(':
			depth++
			current.WriteRune(ch)
		case ')':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func isConstraintFragment(fragment string) bool {
	upper := strings.ToUpper(fragment)
	for _, prefix := range constraintPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// leadingIdentifier reads the column name from the start of a fragment:
// optional backtick, word characters, optional backtick, then mandatory
// whitespace before the type. A bare name with nothing after it is not a
// column definition.
func leadingIdentifier(fragment string) (string, bool) {
	name, p, ok := scanIdentifier(fragment, 0)
	if !ok {
		return "", false
	}
	if skipSpace(fragment, p) == p {
		return "", false
	}
	return name, true
}
