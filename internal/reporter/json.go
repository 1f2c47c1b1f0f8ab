package reporter

import (
	"encoding/json"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

type jsonReport struct {
	Meta    jsonMeta    `json:"meta"`
	Summary jsonSummary `json:"summary"`
	Tables  []jsonTable `json:"tables"`
}

type jsonMeta struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

type jsonSummary struct {
	TotalTables  int `json:"total_tables"`
	TotalColumns int `json:"total_columns"`
	TotalRows    int `json:"total_rows"`
}

type jsonTable struct {
	Name        string       `json:"name"`
	Columns     []string     `json:"columns"`
	ColumnCount int          `json:"column_count"`
	RowCount    int          `json:"row_count"`
	Rows        []models.Row `json:"rows,omitempty"`
}

// RenderJSON renders the report as a JSON string.
func RenderJSON(report *Report, includeRows bool) string {
	data := jsonReport{
		Meta: jsonMeta{
			Tool:      "sqlnav",
			Version:   "0.1.0",
			Source:    report.Source,
			Timestamp: report.Timestamp.Format("2006-01-02T15:04:05-07:00"),
		},
		Summary: jsonSummary{
			TotalTables:  report.Registry.Len(),
			TotalColumns: report.TotalColumns(),
			TotalRows:    report.TotalRows(),
		},
		Tables: make([]jsonTable, 0, report.Registry.Len()),
	}

	for _, table := range report.Registry.Tables() {
		columns := table.Schema.Columns
		if columns == nil {
			columns = []string{}
		}
		entry := jsonTable{
			Name:        table.Schema.Name,
			Columns:     columns,
			ColumnCount: table.ColumnCount(),
			RowCount:    table.RowCount(),
		}
		if includeRows {
			entry.Rows = table.Rows
		}
		data.Tables = append(data.Tables, entry)
	}

	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
