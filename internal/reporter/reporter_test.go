package reporter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// -- Test helpers -------------------------------------------------------------

func sampleReport() *Report {
	reg := models.NewRegistry()
	reg.Define("users", []string{"id", "name", "balance"})
	reg.Insert("users", nil, []models.Row{
		{models.IntegerValue(1), models.TextValue("Alice"), models.FloatValue(120.5)},
		{models.IntegerValue(2), models.TextValue("O'Brien"), models.NullValue()},
	})
	reg.Define("audit_log", nil)

	return &Report{
		Source:    "shop.sql",
		Timestamp: time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC),
		Registry:  reg,
	}
}

func decodeJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var data map[string]any
	if err := json.Unmarshal([]byte(output), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return data
}

// -- Dispatch -----------------------------------------------------------------

func TestRenderKnownFormats(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown"} {
		out, err := Render(sampleReport(), format, false)
		if err != nil {
			t.Errorf("Render(%q) error: %v", format, err)
		}
		if out == "" {
			t.Errorf("Render(%q) produced empty output", format)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleReport(), "xml", false)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error = %v, should mention unknown format", err)
	}
}

// -- JSON Reporter ------------------------------------------------------------

func TestJSONHasRequiredKeys(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), false))
	for _, key := range []string{"meta", "summary", "tables"} {
		if _, ok := data[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestJSONMetaFields(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), false))
	meta := data["meta"].(map[string]any)
	if meta["tool"] != "sqlnav" {
		t.Errorf("tool = %v, want sqlnav", meta["tool"])
	}
	if meta["source"] != "shop.sql" {
		t.Errorf("source = %v, want shop.sql", meta["source"])
	}
	if meta["timestamp"] != "2026-01-27T12:00:00+00:00" {
		t.Errorf("timestamp = %v", meta["timestamp"])
	}
}

func TestJSONSummaryCounts(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), false))
	s := data["summary"].(map[string]any)
	checks := map[string]float64{
		"total_tables":  2,
		"total_columns": 3,
		"total_rows":    2,
	}
	for k, want := range checks {
		got := s[k].(float64)
		if got != want {
			t.Errorf("summary[%q] = %v, want %v", k, got, want)
		}
	}
}

func TestJSONTableFields(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), false))
	tables := data["tables"].([]any)
	if len(tables) != 2 {
		t.Fatalf("tables count = %d, want 2", len(tables))
	}
	users := tables[0].(map[string]any)
	if users["name"] != "users" {
		t.Errorf("name = %v, want users", users["name"])
	}
	if users["row_count"].(float64) != 2 {
		t.Errorf("row_count = %v, want 2", users["row_count"])
	}
	columns := users["columns"].([]any)
	if len(columns) != 3 || columns[0] != "id" {
		t.Errorf("columns = %v", columns)
	}
}

func TestJSONColumnlessTableHasEmptyColumns(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), false))
	tables := data["tables"].([]any)
	audit := tables[1].(map[string]any)
	columns, ok := audit["columns"].([]any)
	if !ok {
		t.Fatalf("columns should be an array, got %T", audit["columns"])
	}
	if len(columns) != 0 {
		t.Errorf("columns = %v, want empty", columns)
	}
}

func TestJSONRowsOmittedByDefault(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), false))
	users := data["tables"].([]any)[0].(map[string]any)
	if _, ok := users["rows"]; ok {
		t.Error("rows should be omitted unless requested")
	}
}

func TestJSONRowsIncluded(t *testing.T) {
	data := decodeJSON(t, RenderJSON(sampleReport(), true))
	users := data["tables"].([]any)[0].(map[string]any)
	rows := users["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("rows count = %d, want 2", len(rows))
	}
	first := rows[0].([]any)
	if first[0].(float64) != 1 {
		t.Errorf("first cell = %v, want 1", first[0])
	}
	if first[1] != "Alice" {
		t.Errorf("second cell = %v, want Alice", first[1])
	}
	if first[2].(float64) != 120.5 {
		t.Errorf("third cell = %v, want 120.5", first[2])
	}
	second := rows[1].([]any)
	if second[2] != nil {
		t.Errorf("NULL cell = %v, want nil", second[2])
	}
}

// -- Text Reporter ------------------------------------------------------------

func TestTextContainsSummary(t *testing.T) {
	out := RenderText(sampleReport(), false)
	if !strings.Contains(out, "Source:    shop.sql") {
		t.Error("text should contain the source file")
	}
	if !strings.Contains(out, "Tables: 2   Columns: 3   Rows: 2") {
		t.Error("text should contain the summary line")
	}
}

func TestTextListsTables(t *testing.T) {
	out := RenderText(sampleReport(), false)
	if !strings.Contains(out, "users") {
		t.Error("text should list the users table")
	}
	if !strings.Contains(out, "users (id, name, balance)") {
		t.Error("text should list the users schema")
	}
	if !strings.Contains(out, "audit_log (no columns)") {
		t.Error("text should mark the columnless table")
	}
}

func TestTextRowsOnlyWhenRequested(t *testing.T) {
	without := RenderText(sampleReport(), false)
	if strings.Contains(without, "Alice") {
		t.Error("row data should not appear unless requested")
	}
	with := RenderText(sampleReport(), true)
	if !strings.Contains(with, "1 | Alice | 120.5") {
		t.Error("text should contain the first row")
	}
	if !strings.Contains(with, "2 | O'Brien | NULL") {
		t.Error("text should render NULL cells as NULL")
	}
}

func TestTextEmptyRegistry(t *testing.T) {
	rep := &Report{
		Source:    "empty.sql",
		Timestamp: time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC),
		Registry:  models.NewRegistry(),
	}
	out := RenderText(rep, false)
	if !strings.Contains(out, "Tables: 0") {
		t.Error("text should report zero tables")
	}
}

// -- Markdown Reporter --------------------------------------------------------

func TestMarkdownContainsHeader(t *testing.T) {
	out := RenderMarkdown(sampleReport(), false)
	if !strings.Contains(out, "# SQL Dump Report") {
		t.Error("markdown should contain the document header")
	}
	if !strings.Contains(out, "shop.sql") {
		t.Error("markdown should contain the source file")
	}
}

func TestMarkdownSummaryTable(t *testing.T) {
	out := RenderMarkdown(sampleReport(), false)
	if !strings.Contains(out, "| 2 | 3 | 2 |") {
		t.Error("markdown should contain the summary counts")
	}
}

func TestMarkdownTableSections(t *testing.T) {
	out := RenderMarkdown(sampleReport(), false)
	if !strings.Contains(out, "### users") {
		t.Error("markdown should contain a users section")
	}
	if !strings.Contains(out, "| id | name | balance |") {
		t.Error("markdown should contain the users column header")
	}
	if !strings.Contains(out, "No columns were recognized") {
		t.Error("markdown should mark the columnless table")
	}
}

func TestMarkdownRowsOnlyWhenRequested(t *testing.T) {
	without := RenderMarkdown(sampleReport(), false)
	if strings.Contains(without, "Alice") {
		t.Error("row data should not appear unless requested")
	}
	with := RenderMarkdown(sampleReport(), true)
	if !strings.Contains(with, "| 1 | Alice | 120.5 |") {
		t.Error("markdown should contain the first row")
	}
	if !strings.Contains(with, "| 2 | O'Brien | NULL |") {
		t.Error("markdown should render NULL cells as NULL")
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	reg := models.NewRegistry()
	reg.Define("notes", []string{"body"})
	reg.Insert("notes", nil, []models.Row{{models.TextValue("a|b")}})
	rep := &Report{
		Source:    "notes.sql",
		Timestamp: time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC),
		Registry:  reg,
	}
	out := RenderMarkdown(rep, true)
	if !strings.Contains(out, `a\|b`) {
		t.Error("pipe characters in cells should be escaped")
	}
}

func TestMarkdownEmptyRegistry(t *testing.T) {
	rep := &Report{
		Source:    "empty.sql",
		Timestamp: time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC),
		Registry:  models.NewRegistry(),
	}
	out := RenderMarkdown(rep, false)
	if !strings.Contains(out, "No tables were found in the dump.") {
		t.Error("markdown should state that no tables were found")
	}
}
