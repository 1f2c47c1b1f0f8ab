// Package reporter renders a parsed table registry into various output
// formats.
package reporter

import (
	"fmt"
	"time"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// Report couples a parsed registry with the metadata the renderers emit.
type Report struct {
	Source    string
	Timestamp time.Time
	Registry  *models.Registry
}

// TotalColumns sums the column counts of every table.
func (r *Report) TotalColumns() int {
	total := 0
	for _, table := range r.Registry.Tables() {
		total += table.ColumnCount()
	}
	return total
}

// TotalRows sums the row counts of every table.
func (r *Report) TotalRows() int {
	total := 0
	for _, table := range r.Registry.Tables() {
		total += table.RowCount()
	}
	return total
}

// Render dispatches to the appropriate renderer based on format.
func Render(report *Report, format string, includeRows bool) (string, error) {
	switch format {
	case "text":
		return RenderText(report, includeRows), nil
	case "json":
		return RenderJSON(report, includeRows), nil
	case "markdown":
		return RenderMarkdown(report, includeRows), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}
