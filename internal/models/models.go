// Package models defines the data types reconstructed from a SQL dump:
// typed cell values, rows, table schemas, and the ordered table registry.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the variants a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindText
)

var kindNames = map[Kind]string{
	KindNull:    "NULL",
	KindInteger: "INTEGER",
	KindFloat:   "FLOAT",
	KindText:    "TEXT",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a single cell decoded from a dump. Exactly one payload field is
// meaningful, selected by Kind. Values are comparable with ==.
type Value struct {
	Kind  Kind
	Int   int64   // set when Kind == KindInteger
	Float float64 // set when Kind == KindFloat
	Str   string  // set when Kind == KindText
}

// NullValue returns the NULL value.
func NullValue() Value {
	return Value{Kind: KindNull}
}

// IntegerValue returns an integer value.
func IntegerValue(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

// FloatValue returns a floating-point value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// TextValue returns a text value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// String renders the value the way the navigator displays it: the word NULL
// for nulls, shortest round-trip formatting for numbers, text verbatim.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindText:
		return v.Str
	}
	return fmt.Sprintf("Value(%d)", int(v.Kind))
}

// MarshalJSON encodes the value as JSON null, number, or string by kind.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindInteger:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	default:
		return json.Marshal(v.Str)
	}
}

// Row is one record's values in column order.
type Row []Value

// TableSchema names a table and its ordered columns.
type TableSchema struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// TableData couples a schema with the rows accumulated for it.
type TableData struct {
	Schema TableSchema `json:"schema"`
	Rows   []Row       `json:"rows"`
}

// RowCount returns the number of stored rows.
func (t *TableData) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of schema columns.
func (t *TableData) ColumnCount() int {
	return len(t.Schema.Columns)
}

// Registry holds every table reconstructed from a dump, preserving the order
// in which their defining statements appeared.
type Registry struct {
	order  []string
	tables map[string]*TableData
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*TableData)}
}

// Define registers a table schema. Redefining an existing table replaces its
// columns and discards any accumulated rows but keeps its original position.
func (r *Registry) Define(name string, columns []string) *TableData {
	if existing, ok := r.tables[name]; ok {
		existing.Schema.Columns = columns
		existing.Rows = nil
		return existing
	}
	t := &TableData{Schema: TableSchema{Name: name, Columns: columns}}
	r.tables[name] = t
	r.order = append(r.order, name)
	return t
}

// Lookup returns the named table, if defined.
func (r *Registry) Lookup(name string) (*TableData, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Names returns table names in definition order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Tables returns all tables in definition order.
func (r *Registry) Tables() []*TableData {
	out := make([]*TableData, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tables[name])
	}
	return out
}

// Len returns the number of defined tables.
func (r *Registry) Len() int {
	return len(r.order)
}

// Insert applies one INSERT statement's parsed rows to the named table.
// columns is the statement's explicit column list, nil for positional
// inserts. The whole statement is rejected when the table is unknown or when
// an explicit list's length differs from the schema's. Explicit-list rows
// are re-projected into schema column order, with NULL substituted for any
// schema column the list omits; positional rows are appended exactly as
// parsed, without an arity check. Empty rows are dropped. Returns the number
// of rows appended.
func (r *Registry) Insert(table string, columns []string, rows []Row) (int, error) {
	t, ok := r.tables[table]
	if !ok {
		return 0, fmt.Errorf("table %q not defined in schema", table)
	}
	if columns != nil && len(columns) != len(t.Schema.Columns) {
		return 0, fmt.Errorf("column count mismatch for %q: statement names %d, schema has %d",
			table, len(columns), len(t.Schema.Columns))
	}
	appended := 0
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if columns != nil {
			row = reorder(row, columns, t.Schema.Columns)
		}
		t.Rows = append(t.Rows, row)
		appended++
	}
	return appended, nil
}

// reorder projects an explicit-column row into schema column order. Pairing
// stops at the shorter of list and row; schema columns the statement does
// not cover read as NULL.
func reorder(row Row, columns, schema []string) Row {
	byName := make(map[string]Value, len(columns))
	for i, col := range columns {
		if i >= len(row) {
			break
		}
		byName[col] = row[i]
	}
	out := make(Row, len(schema))
	for i, col := range schema {
		if v, ok := byName[col]; ok {
			out[i] = v
		} else {
			out[i] = NullValue()
		}
	}
	return out
}
