// Package cli provides the Cobra command structure for gomatlex.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomatlex/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomatlex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomatlex",
		Short: "An incremental lexer and code folder for MATLAB-family languages",
		Long: `gomatlex tokenizes and structurally folds MATLAB, Octave, Scilab,
Gnuplot, and Julia source. It classifies every byte of input into spans
(keywords, strings, comments, numbers, operators) and computes the fold
region tree that editors use to collapse functions, control blocks, and
comment runs.

Output formats cover interactive use (highlighted source, fold outlines)
and machine consumers (span listings, JSON).`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newFoldCommand())
	rootCmd.AddCommand(newDialectsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
