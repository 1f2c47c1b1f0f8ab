package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SchemaStatement is one recognized CREATE TABLE statement: the table name
// and the raw text between the opening paren and the closing paren that
// precedes the storage-engine marker.
type SchemaStatement struct {
	Name string
	Body string
}

// InsertStatement is one recognized INSERT INTO statement. Columns is the
// explicit column list, nil when the statement does not carry one.
// ValuesBody is the raw text between the VALUES keyword and the terminating
// semicolon.
type InsertStatement struct {
	Table      string
	Columns    []string
	ValuesBody string
}

// Statement markers. Matching is case-insensitive but otherwise literal:
// the single space inside each marker is required, and there is no word
// boundary requirement.
const (
	createTableMarker = "CREATE TABLE"
	insertIntoMarker  = "INSERT INTO"
	engineMarker      = "ENGINE="
	valuesKeyword     = "VALUES"
)

// ScanSchemaStatements finds every CREATE TABLE statement in the dump text,
// in order of appearance. A statement is recognized only when its body's
// closing paren is followed, modulo whitespace, by a storage-engine marker;
// a statement without the marker is never matched.
func ScanSchemaStatements(text string) []SchemaStatement {
	upper := foldUpper(text)
	var stmts []SchemaStatement

	pos := 0
	for {
		rel := strings.Index(upper[pos:], createTableMarker)
		if rel < 0 {
			return stmts
		}
		start := pos + rel
		stmt, next, ok := scanSchemaAt(text, upper, start+len(createTableMarker))
		if ok {
			stmts = append(stmts, stmt)
			pos = next
		} else {
			pos = start + 1
		}
	}
}

// scanSchemaAt completes a schema-statement match starting just after the
// CREATE TABLE marker. Returns the statement and the position scanning
// resumes from.
func scanSchemaAt(text, upper string, p int) (SchemaStatement, int, bool) {
	q := skipSpace(text, p)
	if q == p {
		return SchemaStatement{}, 0, false
	}
	name, q, ok := scanIdentifier(text, q)
	if !ok {
		return SchemaStatement{}, 0, false
	}
	q = skipSpace(text, q)
	if q >= len(text) || text[q] != '(' {
		return SchemaStatement{}, 0, false
	}
	bodyStart := q + 1

	// Depth-blind search for the first ')' whose next non-space text is the
	// engine marker, mirroring the lazy body capture this replaces.
	for i := bodyStart; i < len(text); i++ {
		if text[i] != ')' {
			continue
		}
		after := skipSpace(text, i+1)
		if strings.HasPrefix(upper[after:], engineMarker) {
			stmt := SchemaStatement{Name: name, Body: text[bodyStart:i]}
			return stmt, after + len(engineMarker), true
		}
	}
	return SchemaStatement{}, 0, false
}

// ScanInsertStatements finds every INSERT INTO ... VALUES ... ; statement in
// the dump text, in order of appearance. The values body runs to the first
// semicolon after VALUES wherever it falls, even inside a quoted string; a
// statement with no terminator is never matched.
func ScanInsertStatements(text string) []InsertStatement {
	upper := foldUpper(text)
	var stmts []InsertStatement

	pos := 0
	for {
		rel := strings.Index(upper[pos:], insertIntoMarker)
		if rel < 0 {
			return stmts
		}
		start := pos + rel
		stmt, next, ok := scanInsertAt(text, upper, start+len(insertIntoMarker))
		if ok {
			stmts = append(stmts, stmt)
			pos = next
		} else {
			pos = start + 1
		}
	}
}

// scanInsertAt completes an insert-statement match starting just after the
// INSERT INTO marker.
func scanInsertAt(text, upper string, p int) (InsertStatement, int, bool) {
	q := skipSpace(text, p)
	if q == p {
		return InsertStatement{}, 0, false
	}
	table, q, ok := scanIdentifier(text, q)
	if !ok {
		return InsertStatement{}, 0, false
	}
	afterName := skipSpace(text, q)
	hadSpace := afterName > q
	q = afterName

	var columns []string
	if q < len(text) && text[q] == '(' {
		end := strings.IndexByte(text[q+1:], ')')
		if end <= 0 {
			// Empty or unterminated column list: no match.
			return InsertStatement{}, 0, false
		}
		columns = splitColumnList(text[q+1 : q+1+end])
		q += end + 2
		r := skipSpace(text, q)
		if r == q {
			return InsertStatement{}, 0, false
		}
		q = r
	} else if !hadSpace {
		return InsertStatement{}, 0, false
	}

	if !strings.HasPrefix(upper[q:], valuesKeyword) {
		return InsertStatement{}, 0, false
	}
	q += len(valuesKeyword)
	r := skipSpace(text, q)
	if r == q {
		return InsertStatement{}, 0, false
	}
	q = r

	// The terminator is the first semicolon strictly after the body's first
	// character, so the body is never empty.
	rel := strings.IndexByte(text[q+1:], ';')
	if rel < 0 {
		return InsertStatement{}, 0, false
	}
	semi := q + 1 + rel
	stmt := InsertStatement{Table: table, Columns: columns, ValuesBody: text[q:semi]}
	return stmt, semi + 1, true
}

// splitColumnList splits an explicit INSERT column list on commas, trimming
// spaces and backticks from each name. Empty names are kept so the arity
// check counts them.
func splitColumnList(list string) []string {
	parts := strings.Split(list, ",")
	cols := make([]string, len(parts))
	for i, part := range parts {
		cols[i] = strings.Trim(part, " `")
	}
	return cols
}

// Scanning helpers

// foldUpper returns the text with ASCII letters uppercased. Byte offsets are
// preserved, so positions in the folded copy are valid in the original.
func foldUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// skipSpace advances past any run of whitespace and returns the new position.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// scanIdentifier reads an optionally backtick-quoted run of word characters.
// Each backtick is independently optional; the bare name is returned along
// with the position after the identifier.
func scanIdentifier(s string, i int) (string, int, bool) {
	if i < len(s) && s[i] == '`' {
		i++
	}
	start := i
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	if i == start {
		return "", 0, false
	}
	name := s[start:i]
	if i < len(s) && s[i] == '`' {
		i++
	}
	return name, i, true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
