package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomatlex/pkg/config"
)

type foldFlags struct {
	format       string
	dialect      string
	tables       string
	output       string
	ignore       []string
	jobs         int
	markdown     bool
	foldComments bool
	compact      bool
}

func newFoldCommand() *cobra.Command {
	flags := &foldFlags{}

	cmd := &cobra.Command{
		Use:   "fold [paths...]",
		Short: "Compute fold regions and print the structure outline",
		Long:  foldLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			cfg.Dialect = flags.dialect
			cfg.Tables = flags.tables
			cfg.Output = flags.output
			cfg.Ignore = flags.ignore
			cfg.Jobs = flags.jobs
			cfg.Markdown = flags.markdown
			cfg.Format = config.OutputFormat(flags.format)
			if !cfg.Format.IsValid() {
				return errInvalidFormat(flags.format)
			}
			applyColorFlag(cmd, cfg)
			foldFlagOverrides(cmd, cfg, &flags.foldComments, &flags.compact)
			return runScan(cmd, args, cfg)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "outline",
		"output format: outline, json, spans, text")
	cmd.Flags().StringVarP(&flags.dialect, "dialect", "d", "",
		"force a dialect: matlab, octave, scilab, gnuplot, julia")
	cmd.Flags().StringVar(&flags.tables, "tables", "",
		"path to a keyword-table file overriding the embedded defaults")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false,
		"scan fenced code blocks inside Markdown files")
	cmd.Flags().BoolVar(&flags.foldComments, "fold-comments", false,
		"fold comment blocks and runs in addition to code structure")
	cmd.Flags().BoolVar(&flags.compact, "compact", true,
		"attach blank lines to the preceding fold region")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to a file instead of stdout")

	return cmd
}

const foldLongDescription = `Compute fold regions and print the structure outline.

Each line that opens a region (a function or classdef definition, a
control block, a bracket construct, or with --fold-comments a comment
run) appears as an outline entry, indented by its nesting depth.

Examples:
  gomatlex fold src/                  # Outline every file under src/
  gomatlex fold solver.m              # Outline a single file
  gomatlex fold --fold-comments a.m   # Also fold comment blocks
  gomatlex fold --format json a.m     # Per-line fold levels as JSON`
