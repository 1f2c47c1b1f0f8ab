package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// dataState drives the table data screen.
type dataState struct {
	table   *models.TableData
	allRows []models.Row
	rows    []models.Row // current view, shrunk while a search is active

	rowPage int
	colPage int

	query        string
	searchActive bool
	searching    bool // the search prompt is capturing keystrokes
	searchInput  string

	message string
}

func newDataState(table *models.TableData) dataState {
	return dataState{
		table:   table,
		allRows: table.Rows,
		rows:    table.Rows,
	}
}

func (s *dataState) applySearch(query string) {
	s.rows = filterRows(s.allRows, query)
	s.query = query
	s.searchActive = true
	s.rowPage = 0
}

func (s *dataState) clearSearch() {
	s.rows = s.allRows
	s.query = ""
	s.searchActive = false
	s.rowPage = 0
}

func (m Model) updateData(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.data
	s.message = ""

	if s.searching {
		switch msg.String() {
		case "esc":
			s.searching = false
			s.searchInput = ""
		case "enter":
			s.searching = false
			query := strings.TrimSpace(s.searchInput)
			s.searchInput = ""
			if query == "" {
				s.message = "Empty search query. No changes made."
				break
			}
			s.applySearch(query)
			if len(s.rows) == 0 {
				s.message = "No rows match the search query."
			}
		case "backspace":
			if s.searchInput != "" {
				s.searchInput = s.searchInput[:len(s.searchInput)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				s.searchInput += string(msg.Runes)
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "t":
		m.scr = screenTables
		m.tables.page = 0
		m.tables.cursor = 0
		m.tables.digits = ""
		return m, nil
	case "n":
		if (s.rowPage+1)*m.cfg.RowsPerPage < len(s.rows) {
			s.rowPage++
		} else {
			s.message = "You are on the last page."
		}
	case "p":
		if s.rowPage > 0 {
			s.rowPage--
		} else {
			s.message = "You are on the first page."
		}
	case "r", "right":
		if s.colPage+1 < pageCount(s.table.ColumnCount(), m.cfg.ColumnsPerPage) {
			s.colPage++
		} else {
			s.message = "You are on the last column page."
		}
	case "l", "left":
		if s.colPage > 0 {
			s.colPage--
		} else {
			s.message = "You are on the first column page."
		}
	case "/":
		s.searching = true
		s.searchInput = ""
	case "c":
		if s.searchActive {
			s.clearSearch()
			s.message = "Search filter cleared. Displaying all rows."
		}
	}
	return m, nil
}

func (m Model) viewData() string {
	s := &m.data

	totalRows := len(s.rows)
	startRow, endRow := pageBounds(totalRows, m.cfg.RowsPerPage, s.rowPage)

	columns := s.table.Schema.Columns
	startCol, endCol := pageBounds(len(columns), m.cfg.ColumnsPerPage, s.colPage)

	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n\n", s.table.Schema.Name)

	if len(columns) == 0 {
		b.WriteString("This table has no columns.\n")
	} else {
		grid := renderGrid(columns[startCol:endCol],
			clipRows(s.rows[startRow:endRow], startCol, endCol), m.cfg.MaxCellWidth)
		b.WriteString(grid)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Rows: %d-%d of %d | Pages: %d/%d",
		startRow+1, endRow, totalRows, s.rowPage+1, pageCount(totalRows, m.cfg.RowsPerPage))))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Columns: %d-%d of %d | Column Pages: %d/%d",
		startCol+1, endCol, len(columns), s.colPage+1, pageCount(len(columns), m.cfg.ColumnsPerPage))))
	b.WriteString("\n")
	if s.searchActive {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Search: Active (%s)", s.query)))
	} else {
		b.WriteString(statusStyle.Render("Search: Inactive"))
	}
	b.WriteString("\n")
	if s.searching {
		b.WriteString(promptStyle.Render("Enter search query (searches all columns): "+s.searchInput) + "\n")
	}
	if s.message != "" {
		b.WriteString(messageStyle.Render(s.message) + "\n")
	}
	b.WriteString(helpStyle.Render("[n] next page  [p] previous page  [l] left columns  [r] right columns  [/] search rows  [c] clear search  [t] tables  [q] quit"))
	return b.String()
}
