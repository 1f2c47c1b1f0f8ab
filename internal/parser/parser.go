// Package parser reconstructs tables from a MySQL-style SQL dump without a
// database engine. Recognition is keyword and structure driven over raw
// text: CREATE TABLE and INSERT INTO ... VALUES statements are extracted
// with explicit scanners and everything else in the dump is ignored.
package parser

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// Options configures a parse run.
type Options struct {
	Verbose bool      // emit informational and warning diagnostics
	Log     io.Writer // diagnostic sink, os.Stderr when nil
}

func (o Options) logf(format string, args ...any) {
	if !o.Verbose {
		return
	}
	w := o.Log
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Parse reconstructs the table registry from dump text. All schema
// statements are processed before any insert statement, so an insert that
// precedes its table's definition in the file still lands. Dump content is
// never a parse error: statements that cannot be applied are skipped with a
// diagnostic, and Parse always returns a registry.
func Parse(text string, opts Options) *models.Registry {
	registry := models.NewRegistry()

	for _, stmt := range ScanSchemaStatements(text) {
		columns := ParseColumns(stmt.Body)
		if len(columns) == 0 {
			opts.logf("warning: no columns found for table %q, keeping empty definition", stmt.Name)
		} else {
			opts.logf("found table %s with columns %v", stmt.Name, columns)
		}
		registry.Define(stmt.Name, columns)
	}

	for _, stmt := range ScanInsertStatements(text) {
		tuples := SplitTuples(stmt.ValuesBody)
		rows := make([]models.Row, 0, len(tuples))
		for _, tuple := range tuples {
			rows = append(rows, ParseTuple(tuple))
		}
		appended, err := registry.Insert(stmt.Table, stmt.Columns, rows)
		if err != nil {
			opts.logf("warning: skipping INSERT: %v", err)
			continue
		}
		opts.logf("inserted %d rows into table %s", appended, stmt.Table)
	}

	opts.logf("parsing complete: %d tables", registry.Len())
	return registry
}

// ParseFile reads and parses a dump file. The only fatal conditions are an
// unreadable file and content that is not valid UTF-8.
func ParseFile(path string, opts Options) (*models.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read dump: %s is not valid UTF-8", path)
	}
	return Parse(string(data), opts), nil
}
