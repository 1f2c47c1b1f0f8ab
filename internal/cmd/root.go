// Package cmd implements the CLI commands for sqlnav.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirkbowe/sql-dump-file-navigator/internal/config"
	"github.com/kirkbowe/sql-dump-file-navigator/internal/models"
	"github.com/kirkbowe/sql-dump-file-navigator/internal/parser"
	"github.com/kirkbowe/sql-dump-file-navigator/internal/viewer"
)

const version = "0.1.0"

var rootConfigPath string
var rootVerbose bool
var rootNoTUI bool

var rootCmd = &cobra.Command{
	Use:   "sqlnav <dump-file>",
	Short: "Browse the tables of a SQL dump file",
	Long: "sqlnav parses a SQL dump file (CREATE TABLE and INSERT INTO statements) " +
		"and opens an interactive viewer over the reconstructed tables, without " +
		"loading the dump into a database.",
	Args: cobra.ExactArgs(1),
	RunE: runView,

	// main prints returned errors, so keep cobra from printing them too.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "",
		"Path to a YAML config file (default: <user config dir>/sqlnav/config.yaml)")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print parser diagnostics to stderr")
	rootCmd.Flags().BoolVar(&rootNoTUI, "no-tui", false, "Use the line-oriented viewer instead of the full-screen one")

	rootCmd.AddCommand(reportCmd)
}

// Execute runs the root command. Called from main().
func Execute() error {
	return rootCmd.Execute()
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return err
	}

	registry, err := loadDump(args[0], rootVerbose)
	if err != nil {
		return err
	}
	if registry.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tables found in the SQL dump.")
		return nil
	}

	if rootNoTUI {
		return viewer.RunPlain(registry, cfg.Viewer, os.Stdin, cmd.OutOrStdout())
	}
	return viewer.Run(args[0], registry, cfg.Viewer)
}

// loadDump parses the dump file. Diagnostics go to stderr when verbose.
func loadDump(path string, verbose bool) (*models.Registry, error) {
	return parser.ParseFile(path, parser.Options{Verbose: verbose})
}
