package parser

import (
	"strconv"
	"strings"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// ParseTuple decodes one parenthesized tuple into typed values. Coercion is
// total: every token becomes exactly one of NULL, integer, float, or text,
// with anything unrecognized kept as text verbatim.
func ParseTuple(tuple string) models.Row {
	var row models.Row
	for _, token := range tokenizeValues(stripOuterParens(tuple)) {
		raw := strings.TrimSpace(token)
		if raw == "" {
			continue
		}
		row = append(row, decodeValue(raw))
	}
	return row
}

// stripOuterParens removes the single enclosing paren pair of a tuple. One
// layer only: nested parens in the interior stay intact.
func stripOuterParens(tuple string) string {
	tuple = strings.TrimPrefix(tuple, "(")
	return strings.TrimSuffix(tuple, ")")
}

// tokenizeValues splits a tuple interior into value tokens. At each
// position, in order of preference: a single-quoted string token, the
// keyword NULL, or a bare run ending at the next comma outside quotes and
// parens. Commas and whitespace between tokens are skipped.
func tokenizeValues(interior string) []string {
	var tokens []string
	i := 0
	for i < len(interior) {
		c := interior[i]
		if c == ',' || isASCIISpace(c) {
			i++
			continue
		}
		if c == '\'' {
			if token, next, ok := scanQuoted(interior, i); ok {
				tokens = append(tokens, token)
				i = next
				continue
			}
		}
		if len(interior) >= i+4 && strings.EqualFold(interior[i:i+4], "NULL") {
			tokens = append(tokens, interior[i:i+4])
			i += 4
			continue
		}
		token, next := scanBareRun(interior, i)
		tokens = append(tokens, token)
		i = next
	}
	return tokens
}

// scanQuoted reads a single-quoted string token starting at the opening
// quote. A backslash toggles the escape state, so \' stays inside the token
// and \\ does not hide a closing quote. Reports failure when the quote never
// closes; the caller falls back to a bare run.
func scanQuoted(s string, start int) (string, int, bool) {
	escape := false
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		if c == '\'' && !escape {
			return s[start : i+1], i + 1, true
		}
		if c == '\\' {
			escape = !escape
		} else {
			escape = false
		}
	}
	return "", 0, false
}

// scanBareRun reads an unquoted token: everything up to the next comma at
// paren depth zero outside a string. This keeps numeric literals, hex
// literals, and function-call expressions like CONCAT('a','b') whole.
func scanBareRun(s string, start int) (string, int) {
	inString := false
	escape := false
	depth := 0
	i := start
	for ; i < len(s); i++ {
		c := s[i]
		if c == '\'' && !escape {
			inString = !inString
		}
		if c == '\\' && inString {
			escape = !escape
		} else {
			escape = false
		}
		if !inString {
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			case ',':
				if depth == 0 {
					return s[start:i], i
				}
			}
		}
	}
	return s[start:i], i
}

// decodeValue maps one trimmed token to its typed value, in fixed precedence
// order: NULL, quoted text, integer, decimal, verbatim text.
func decodeValue(raw string) models.Value {
	if strings.EqualFold(raw, "NULL") {
		return models.NullValue()
	}
	if len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") {
		return models.TextValue(unescape(raw[1 : len(raw)-1]))
	}
	if looksLikeInteger(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return models.IntegerValue(n)
		}
		return models.TextValue(raw)
	}
	if looksLikeDecimal(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.FloatValue(f)
		}
		return models.TextValue(raw)
	}
	return models.TextValue(raw)
}

// unescape reverses the dump's escape sequences: escaped quotes first, then
// escaped backslashes, in that order.
func unescape(s string) string {
	s = strings.ReplaceAll(s, `\'`, `'`)
	return strings.ReplaceAll(s, `\\`, `\`)
}

// looksLikeInteger reports whether the token is an optional minus sign
// followed by one or more digits.
func looksLikeInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// looksLikeDecimal reports whether the token is an optional minus sign, one
// or more digits, a dot, then zero or more digits; a trailing "3." counts.
func looksLikeDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	dot := strings.IndexByte(s, '.')
	if dot <= 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == dot {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
