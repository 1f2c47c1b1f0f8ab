package viewer

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// tableListState drives the table selection screen.
type tableListState struct {
	names     []string // every table name in definition order
	page      int
	cursor    int    // highlighted entry within the visible page
	digits    string // typed table number, committed with enter
	filter    string
	filtering bool // the filter prompt is capturing keystrokes
	message   string
}

func newTableListState(registry *models.Registry) tableListState {
	return tableListState{names: registry.Names()}
}

// visibleNames returns the names matching the current filter.
func (s *tableListState) visibleNames() []string {
	if s.filter == "" {
		return s.names
	}
	lowered := strings.ToLower(s.filter)
	var out []string
	for _, name := range s.names {
		if strings.Contains(strings.ToLower(name), lowered) {
			out = append(out, name)
		}
	}
	return out
}

func (m Model) updateTables(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.tables
	s.message = ""

	if s.filtering {
		switch msg.String() {
		case "esc":
			s.filtering = false
			s.filter = ""
			s.page = 0
			s.cursor = 0
		case "enter":
			s.filtering = false
			s.page = 0
			s.cursor = 0
		case "backspace":
			if s.filter != "" {
				s.filter = s.filter[:len(s.filter)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				s.filter += string(msg.Runes)
			}
		}
		return m, nil
	}

	size := m.cfg.TablesPerPage
	names := s.visibleNames()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		s.filtering = true
		s.filter = ""
		s.digits = ""
		s.page = 0
		s.cursor = 0
	case "n":
		if s.page+1 < pageCount(len(names), size) {
			s.page++
			s.cursor = 0
		} else {
			s.message = "You are on the last table page."
		}
	case "p":
		if s.page > 0 {
			s.page--
			s.cursor = 0
		} else {
			s.message = "You are on the first table page."
		}
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down":
		start, end := pageBounds(len(names), size, s.page)
		if s.cursor < end-start-1 {
			s.cursor++
		}
	case "backspace":
		if s.digits != "" {
			s.digits = s.digits[:len(s.digits)-1]
		}
	case "enter":
		start, end := pageBounds(len(names), size, s.page)
		onPage := names[start:end]
		if len(onPage) == 0 {
			s.message = "No tables to select."
			break
		}
		idx := s.cursor
		if s.digits != "" {
			n, err := strconv.Atoi(s.digits)
			s.digits = ""
			if err != nil || n < 1 || n > len(onPage) {
				s.message = "Invalid table number. Please try again."
				break
			}
			idx = n - 1
		}
		if next, ok := m.openTable(onPage[idx]); ok {
			return next, nil
		}
		s.message = "Invalid table number. Please try again."
	default:
		if msg.Type == tea.KeyRunes && allDigits(msg.Runes) {
			s.digits += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) viewTables() string {
	s := &m.tables
	size := m.cfg.TablesPerPage
	names := s.visibleNames()
	start, end := pageBounds(len(names), size, s.page)

	var b strings.Builder
	b.WriteString("Available Tables:\n\n")
	if start == end {
		b.WriteString("  (no tables match)\n")
	}
	for i, name := range names[start:end] {
		line := fmt.Sprintf("%d. %s", i+1, name)
		if i == s.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Table Pages: %d/%d", s.page+1, pageCount(len(names), size))))
	b.WriteString("\n")
	if s.filtering {
		b.WriteString(promptStyle.Render("Filter: "+s.filter) + "\n")
	} else if s.filter != "" {
		b.WriteString(statusStyle.Render("Filter: "+s.filter) + "\n")
	}
	if s.digits != "" {
		b.WriteString(statusStyle.Render("Table number: "+s.digits) + "\n")
	}
	if s.message != "" {
		b.WriteString(messageStyle.Render(s.message) + "\n")
	}
	b.WriteString(helpStyle.Render("[n] next tables  [p] previous tables  [/] filter  [enter] select  [q] quit"))
	return b.String()
}

func allDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
