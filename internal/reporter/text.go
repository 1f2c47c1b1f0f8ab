package reporter

import (
	"fmt"
	"strings"
)

// RenderText renders the report as plain terminal text: a header, a summary
// line, a count table, and one schema line per table. Row data is appended
// only when requested.
func RenderText(report *Report, includeRows bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SQL dump report\n")
	fmt.Fprintf(&b, "Source:    %s\n", report.Source)
	fmt.Fprintf(&b, "Generated: %s\n", report.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "\nTables: %d   Columns: %d   Rows: %d\n",
		report.Registry.Len(), report.TotalColumns(), report.TotalRows())

	if report.Registry.Len() == 0 {
		return b.String()
	}

	nameWidth := len("TABLE")
	for _, table := range report.Registry.Tables() {
		if n := len(table.Schema.Name); n > nameWidth {
			nameWidth = n
		}
	}

	fmt.Fprintf(&b, "\n%-*s  %7s  %7s\n", nameWidth, "TABLE", "COLUMNS", "ROWS")
	for _, table := range report.Registry.Tables() {
		fmt.Fprintf(&b, "%-*s  %7d  %7d\n",
			nameWidth, table.Schema.Name, table.ColumnCount(), table.RowCount())
	}

	for _, table := range report.Registry.Tables() {
		columns := "no columns"
		if table.ColumnCount() > 0 {
			columns = strings.Join(table.Schema.Columns, ", ")
		}
		fmt.Fprintf(&b, "\n%s (%s)\n", table.Schema.Name, columns)
		if !includeRows {
			continue
		}
		for _, row := range table.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = v.String()
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(cells, " | "))
		}
	}

	return b.String()
}
