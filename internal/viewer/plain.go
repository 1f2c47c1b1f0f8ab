package viewer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/config"
	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
)

// plainNavigator is the line-oriented fallback for terminals where the
// full-screen viewer is unwanted.
type plainNavigator struct {
	registry *models.Registry
	cfg      config.ViewerConfig
	out      io.Writer

	tablePage int

	table        *models.TableData
	allRows      []models.Row
	rows         []models.Row
	rowPage      int
	colPage      int
	query        string
	searchActive bool
}

// RunPlain drives the fallback navigator: it prints the current table list
// or data page, reads one command per line, and returns when the user quits
// or the input ends.
func RunPlain(registry *models.Registry, cfg config.ViewerConfig, in io.Reader, out io.Writer) error {
	nav := &plainNavigator{registry: registry, cfg: cfg, out: out}
	scanner := bufio.NewScanner(in)

	nav.show()
	for {
		fmt.Fprint(out, "Enter command: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := nav.dispatch(line); quit {
			return nil
		}
		nav.show()
	}
}

func (nav *plainNavigator) dispatch(line string) bool {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	if strings.HasPrefix(cmd, "/") {
		// Accept both "/ query" and "/query".
		cmd, arg = "/", strings.TrimSpace(strings.TrimPrefix(line, "/"))
	}
	cmd = strings.ToLower(cmd)

	switch cmd {
	case "q":
		return true
	case "h":
		nav.printHelp()
	case "t":
		nav.table = nil
		nav.tablePage = 0
	case "n":
		nav.nextPage()
	case "p":
		nav.previousPage()
	case "l":
		nav.columnsLeft()
	case "r":
		nav.columnsRight()
	case "s":
		if arg == "" {
			fmt.Fprintln(nav.out, "Usage: s <table>")
			break
		}
		nav.open(arg)
	case "/":
		nav.search(arg)
	case "c":
		nav.clearSearch()
	default:
		if n, err := strconv.Atoi(cmd); err == nil {
			nav.selectByNumber(n)
		} else {
			fmt.Fprintln(nav.out, "Invalid command. Please try again.")
		}
	}
	return false
}

func (nav *plainNavigator) open(name string) {
	table, ok := nav.registry.Lookup(name)
	if !ok {
		fmt.Fprintf(nav.out, "Unknown table %q.\n", name)
		return
	}
	nav.table = table
	nav.allRows = table.Rows
	nav.rows = table.Rows
	nav.rowPage = 0
	nav.colPage = 0
	nav.query = ""
	nav.searchActive = false
	nav.tablePage = 0
}

func (nav *plainNavigator) selectByNumber(n int) {
	names := nav.registry.Names()
	start, end := pageBounds(len(names), nav.cfg.TablesPerPage, nav.tablePage)
	onPage := names[start:end]
	if n < 1 || n > len(onPage) {
		fmt.Fprintln(nav.out, "Invalid table number. Please try again.")
		return
	}
	nav.open(onPage[n-1])
}

func (nav *plainNavigator) nextPage() {
	if nav.table == nil {
		if nav.tablePage+1 < pageCount(nav.registry.Len(), nav.cfg.TablesPerPage) {
			nav.tablePage++
		} else {
			fmt.Fprintln(nav.out, "You are on the last table page.")
		}
		return
	}
	if (nav.rowPage+1)*nav.cfg.RowsPerPage < len(nav.rows) {
		nav.rowPage++
	} else {
		fmt.Fprintln(nav.out, "You are on the last page.")
	}
}

func (nav *plainNavigator) previousPage() {
	if nav.table == nil {
		if nav.tablePage > 0 {
			nav.tablePage--
		} else {
			fmt.Fprintln(nav.out, "You are on the first table page.")
		}
		return
	}
	if nav.rowPage > 0 {
		nav.rowPage--
	} else {
		fmt.Fprintln(nav.out, "You are on the first page.")
	}
}

func (nav *plainNavigator) columnsLeft() {
	if nav.table == nil {
		fmt.Fprintln(nav.out, "Select a table first.")
		return
	}
	if nav.colPage > 0 {
		nav.colPage--
	} else {
		fmt.Fprintln(nav.out, "You are on the first column page.")
	}
}

func (nav *plainNavigator) columnsRight() {
	if nav.table == nil {
		fmt.Fprintln(nav.out, "Select a table first.")
		return
	}
	if nav.colPage+1 < pageCount(nav.table.ColumnCount(), nav.cfg.ColumnsPerPage) {
		nav.colPage++
	} else {
		fmt.Fprintln(nav.out, "You are on the last column page.")
	}
}

func (nav *plainNavigator) search(query string) {
	if nav.table == nil {
		fmt.Fprintln(nav.out, "Select a table first.")
		return
	}
	if query == "" {
		fmt.Fprintln(nav.out, "Empty search query. No changes made.")
		return
	}
	nav.rows = filterRows(nav.allRows, query)
	nav.query = query
	nav.searchActive = true
	nav.rowPage = 0
	if len(nav.rows) == 0 {
		fmt.Fprintln(nav.out, "No rows match the search query.")
	}
}

func (nav *plainNavigator) clearSearch() {
	if nav.table == nil {
		fmt.Fprintln(nav.out, "Select a table first.")
		return
	}
	if !nav.searchActive {
		return
	}
	nav.rows = nav.allRows
	nav.query = ""
	nav.searchActive = false
	nav.rowPage = 0
	fmt.Fprintln(nav.out, "Search filter cleared. Displaying all rows.")
}

func (nav *plainNavigator) show() {
	if nav.table == nil {
		nav.showTables()
		return
	}
	nav.showData()
}

func (nav *plainNavigator) showTables() {
	names := nav.registry.Names()
	start, end := pageBounds(len(names), nav.cfg.TablesPerPage, nav.tablePage)

	fmt.Fprintln(nav.out, "\nAvailable Tables:")
	for i, name := range names[start:end] {
		fmt.Fprintf(nav.out, "%d. %s\n", i+1, name)
	}
	fmt.Fprintf(nav.out, "Table Pages: %d/%d\n",
		nav.tablePage+1, pageCount(len(names), nav.cfg.TablesPerPage))
	fmt.Fprintln(nav.out, "Commands: [n] Next Tables | [p] Previous Tables | [s <table>] Open | [h] Help | [q] Quit")
}

func (nav *plainNavigator) showData() {
	columns := nav.table.Schema.Columns
	totalRows := len(nav.rows)
	startRow, endRow := pageBounds(totalRows, nav.cfg.RowsPerPage, nav.rowPage)
	startCol, endCol := pageBounds(len(columns), nav.cfg.ColumnsPerPage, nav.colPage)

	fmt.Fprintf(nav.out, "\nTable: %s\n", nav.table.Schema.Name)
	if len(columns) == 0 {
		fmt.Fprintln(nav.out, "This table has no columns.")
	} else {
		grid := renderGrid(columns[startCol:endCol],
			clipRows(nav.rows[startRow:endRow], startCol, endCol), nav.cfg.MaxCellWidth)
		fmt.Fprintln(nav.out, grid)
	}
	fmt.Fprintf(nav.out, "Rows: %d-%d of %d | Pages: %d/%d\n",
		startRow+1, endRow, totalRows, nav.rowPage+1, pageCount(totalRows, nav.cfg.RowsPerPage))
	fmt.Fprintf(nav.out, "Columns: %d-%d of %d | Column Pages: %d/%d\n",
		startCol+1, endCol, len(columns), nav.colPage+1, pageCount(len(columns), nav.cfg.ColumnsPerPage))
	if nav.searchActive {
		fmt.Fprintf(nav.out, "Search: Active (%s)\n", nav.query)
	} else {
		fmt.Fprintln(nav.out, "Search: Inactive")
	}
	fmt.Fprintln(nav.out, "Commands: [n] Next Page | [p] Previous Page | [l] Left Columns | [r] Right Columns | [t] Tables | [/ <query>] Search | [c] Clear | [q] Quit")
}

func (nav *plainNavigator) printHelp() {
	fmt.Fprintln(nav.out, `Commands:
  t            show the table list
  <number>     open a table from the list page
  s <table>    open a table by name
  n / p        next / previous page
  l / r        previous / next column page
  / <query>    filter rows by substring
  c            clear the row filter
  h            show this help
  q            quit`)
}
