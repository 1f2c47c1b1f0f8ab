package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the CLI with the given arguments, capturing combined
// output. Flag state is reset afterwards so tests stay independent.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		rootConfigPath = ""
		rootVerbose = false
		rootNoTUI = false
		reportOut = outputFlags{Format: "text"}
		reportIncludeRows = false
		reportVerbose = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// -- report subcommand --------------------------------------------------------

func TestReportTextToStdout(t *testing.T) {
	out, err := runCommand(t, "report", "testdata/mini.sql")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "SQL dump report") {
		t.Errorf("output should contain the report header, got:\n%s", out)
	}
	if !strings.Contains(out, "Tables: 1   Columns: 2   Rows: 2") {
		t.Errorf("output should contain the summary line, got:\n%s", out)
	}
	if !strings.Contains(out, "pets (id, name)") {
		t.Errorf("output should list the pets table, got:\n%s", out)
	}
	if strings.Contains(out, "Rex") {
		t.Errorf("rows should be omitted by default, got:\n%s", out)
	}
}

func TestReportIncludesRows(t *testing.T) {
	out, err := runCommand(t, "report", "testdata/mini.sql", "--include-rows")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "1 | Rex") {
		t.Errorf("output should contain the first row, got:\n%s", out)
	}
	if !strings.Contains(out, "2 | NULL") {
		t.Errorf("output should render NULL cells, got:\n%s", out)
	}
}

func TestReportJSON(t *testing.T) {
	out, err := runCommand(t, "report", "testdata/mini.sql", "--format", "json")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	summary, ok := doc["summary"].(map[string]any)
	if !ok {
		t.Fatalf("JSON output missing summary: %s", out)
	}
	if summary["total_tables"] != float64(1) {
		t.Errorf("total_tables = %v, want 1", summary["total_tables"])
	}
	if summary["total_rows"] != float64(2) {
		t.Errorf("total_rows = %v, want 2", summary["total_rows"])
	}
}

func TestReportMarkdown(t *testing.T) {
	out, err := runCommand(t, "report", "testdata/mini.sql", "--format", "markdown")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "# SQL Dump Report") {
		t.Errorf("output should contain the markdown title, got:\n%s", out)
	}
	if !strings.Contains(out, "### pets") {
		t.Errorf("output should contain a pets section, got:\n%s", out)
	}
}

func TestReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	out, err := runCommand(t, "report", "testdata/mini.sql", "--format", "json", "--output", path)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Report written to") {
		t.Errorf("should announce the output path, got:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(data), `"total_tables": 1`) {
		t.Errorf("report file should contain the summary, got:\n%s", data)
	}
}

func TestReportToDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCommand(t, "report", "testdata/mini.sql", "--output", dir); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one report file in %s, found %d", dir, len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "mini_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("derived file name %q should be mini_<timestamp>.txt", name)
	}
}

func TestReportUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "report", "testdata/mini.sql", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}

func TestReportMissingFile(t *testing.T) {
	_, err := runCommand(t, "report", "testdata/nope.sql")
	if err == nil || !strings.Contains(err.Error(), "read dump") {
		t.Errorf("expected read error, got %v", err)
	}
}

// -- root command -------------------------------------------------------------

func TestViewEmptyDump(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	out, err := runCommand(t, "testdata/empty.sql")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if !strings.Contains(out, "No tables found in the SQL dump.") {
		t.Errorf("should report an empty dump, got:\n%s", out)
	}
}

func TestViewMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := runCommand(t, "testdata/nope.sql")
	if err == nil || !strings.Contains(err.Error(), "read dump") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("version output %q should contain %q", out, version)
	}
}
