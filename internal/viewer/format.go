package viewer

import (
	"strings"
	"unicode/utf8"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// pageCount returns how many pages of the given size the total fills, at
// least one so page indexes always have a valid range.
func pageCount(total, size int) int {
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// pageBounds returns the [start, end) slice window for a page.
func pageBounds(total, size, page int) (int, int) {
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}

// clipRows trims every row to the [start, end) column window. Rows shorter
// than the window yield what they have.
func clipRows(rows []models.Row, start, end int) []models.Row {
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		if start >= len(row) {
			out[i] = models.Row{}
			continue
		}
		stop := end
		if stop > len(row) {
			stop = len(row)
		}
		out[i] = row[start:stop]
	}
	return out
}

// columnWidths sizes each column to its widest visible cell, capped at
// cellCap, never narrower than its header, plus two spaces of padding.
func columnWidths(columns []string, rows []models.Row, cellCap int) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		w := utf8.RuneCountInString(col)
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			n := utf8.RuneCountInString(row[i].String())
			if n > cellCap {
				n = cellCap
			}
			if n > w {
				w = n
			}
		}
		widths[i] = w + 2
	}
	return widths
}

// truncateCell shortens a display string to the cell cap, marking the cut
// with an ellipsis when there is room for one.
func truncateCell(s string, cellCap int) string {
	runes := []rune(s)
	if len(runes) <= cellCap {
		return s
	}
	if cellCap <= 3 {
		return string(runes[:cellCap])
	}
	return string(runes[:cellCap-3]) + "..."
}

// pad right-pads a string with spaces to the given display width.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// renderGrid lays out a column window of rows as fixed-width text: header,
// dashed separator, then one line per row.
func renderGrid(columns []string, rows []models.Row, cellCap int) string {
	widths := columnWidths(columns, rows, cellCap)

	var b strings.Builder
	for i, col := range columns {
		b.WriteString(pad(col, widths[i]))
		if i < len(columns)-1 {
			b.WriteString("| ")
		}
	}
	b.WriteString("\n")
	for i := range columns {
		b.WriteString(strings.Repeat("-", widths[i]))
		if i < len(columns)-1 {
			b.WriteString("+ ")
		}
	}
	for _, row := range rows {
		b.WriteString("\n")
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = truncateCell(row[i].String(), cellCap)
			}
			b.WriteString(pad(cell, widths[i]))
			if i < len(columns)-1 {
				b.WriteString("| ")
			}
		}
	}
	return b.String()
}

// rowMatches reports whether any non-NULL cell's display string contains the
// already-lowercased query.
func rowMatches(row models.Row, loweredQuery string) bool {
	for _, v := range row {
		if v.Kind == models.KindNull {
			continue
		}
		if strings.Contains(strings.ToLower(v.String()), loweredQuery) {
			return true
		}
	}
	return false
}

// filterRows keeps the rows with at least one cell matching the query,
// case-insensitively. NULL cells never match.
func filterRows(rows []models.Row, query string) []models.Row {
	lowered := strings.ToLower(query)
	var out []models.Row
	for _, row := range rows {
		if rowMatches(row, lowered) {
			out = append(out, row)
		}
	}
	return out
}
