package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/reporter"
)

var reportOut outputFlags
var reportIncludeRows bool
var reportVerbose bool

var reportCmd = &cobra.Command{
	Use:   "report <dump-file>",
	Short: "Summarize a SQL dump without opening the viewer",
	Long: "report parses a SQL dump file and prints a summary of the tables it " +
		"defines: names, columns, and row counts, optionally with the rows themselves.",
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

// Output flags shared by report and any future non-interactive commands.
type outputFlags struct {
	Format string
	Output string
}

func addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	cmd.Flags().StringVarP(&f.Format, "format", "f", "text", "Report format (text, json, markdown)")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "Output file or directory (default: stdout)")
}

func init() {
	addOutputFlags(reportCmd, &reportOut)
	reportCmd.Flags().BoolVar(&reportIncludeRows, "include-rows", false, "Include table rows in the report")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print parser diagnostics to stderr")
}

func runReport(cmd *cobra.Command, args []string) error {
	registry, err := loadDump(args[0], reportVerbose)
	if err != nil {
		return err
	}

	report := &reporter.Report{
		Source:    args[0],
		Timestamp: time.Now(),
		Registry:  registry,
	}
	output, err := reporter.Render(report, reportOut.Format, reportIncludeRows)
	if err != nil {
		return err
	}
	return writeReport(cmd, output, reportOut, args[0])
}

func writeReport(cmd *cobra.Command, output string, of outputFlags, source string) error {
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	if of.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	path := MakeOutputPath(of.Output, of.Format, source)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
	return nil
}
