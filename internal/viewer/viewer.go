// Package viewer presents a parsed table registry as an interactive
// spreadsheet-style browser. The full-screen TUI is built on Bubble Tea
// with two screens, table selection and table data; a line-oriented
// fallback covers terminals where the full-screen mode is unwanted.
package viewer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/config"
	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// screen identifies which view the TUI is showing.
type screen int

const (
	screenTables screen = iota
	screenData
)

// Model is the root Bubble Tea model.
type Model struct {
	source   string
	registry *models.Registry
	cfg      config.ViewerConfig

	scr    screen
	tables tableListState
	data   dataState

	width  int
	height int
}

// New creates the root viewer model.
func New(source string, registry *models.Registry, cfg config.ViewerConfig) Model {
	return Model{
		source:   source,
		registry: registry,
		cfg:      cfg,
		scr:      screenTables,
		tables:   newTableListState(registry),
	}
}

// Run opens the full-screen viewer and blocks until the user quits.
func Run(source string, registry *models.Registry, cfg config.ViewerConfig) error {
	_, err := tea.NewProgram(New(source, registry, cfg), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenTables:
			return m.updateTables(msg)
		default:
			return m.updateData(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	title := titleStyle.Render("sqlnav " + m.source)
	var body string
	switch m.scr {
	case screenTables:
		body = m.viewTables()
	default:
		body = m.viewData()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// openTable switches to the data screen for the named table.
func (m Model) openTable(name string) (Model, bool) {
	table, ok := m.registry.Lookup(name)
	if !ok {
		return m, false
	}
	m.data = newDataState(table)
	m.scr = screenData
	return m, true
}
