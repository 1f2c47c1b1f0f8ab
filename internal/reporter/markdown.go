package reporter

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the report as a Markdown document with a summary
// table, a per-table count table, and a schema section for each table. Row
// data is appended only when requested.
func RenderMarkdown(report *Report, includeRows bool) string {
	var b strings.Builder

	b.WriteString("# SQL Dump Report\n\n")
	fmt.Fprintf(&b, "- **Source:** %s\n", report.Source)
	fmt.Fprintf(&b, "- **Generated:** %s\n", report.Timestamp.Format("2006-01-02 15:04:05"))
	b.WriteString("- **Tool:** sqlnav\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Tables | Columns | Rows |\n")
	b.WriteString("|--------|---------|------|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n",
		report.Registry.Len(), report.TotalColumns(), report.TotalRows())

	b.WriteString("## Tables\n\n")
	if report.Registry.Len() == 0 {
		b.WriteString("No tables were found in the dump.\n")
		return b.String()
	}

	b.WriteString("| Table | Columns | Rows |\n")
	b.WriteString("|-------|---------|------|\n")
	for _, table := range report.Registry.Tables() {
		fmt.Fprintf(&b, "| %s | %d | %d |\n",
			table.Schema.Name, table.ColumnCount(), table.RowCount())
	}

	for _, table := range report.Registry.Tables() {
		fmt.Fprintf(&b, "\n### %s\n\n", table.Schema.Name)
		if table.ColumnCount() == 0 {
			b.WriteString("No columns were recognized for this table.\n")
			continue
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(table.Schema.Columns, " | "))
		b.WriteString("|" + strings.Repeat("---|", table.ColumnCount()) + "\n")
		if !includeRows {
			continue
		}
		for _, row := range table.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = escapeMarkdownCell(v.String())
			}
			fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
		}
	}

	return b.String()
}

// escapeMarkdownCell keeps cell text from breaking table syntax.
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
