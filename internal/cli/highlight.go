package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomatlex/pkg/config"
)

type highlightFlags struct {
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

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [paths...]",
		Short: "Tokenize source files and print highlighted output",
		Long:  highlightLongDescription,
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

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, spans, json, outline")
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

const highlightLongDescription = `Tokenize source files and print highlighted output.

By default, scans all recognized source files (.m, .sci, .sce, .jl, .plt,
.gp, and friends) in the current directory and subdirectories. The dialect
of each file is detected from its extension and content; .m files are
disambiguated between MATLAB and Octave.

Examples:
  gomatlex highlight                   # Highlight current directory
  gomatlex highlight src/solver.m      # Highlight a single file
  gomatlex highlight -d octave run.m   # Force the Octave dialect
  gomatlex highlight --format spans    # One classified span per line
  gomatlex highlight --format json     # Machine-readable spans and folds
  gomatlex highlight --markdown docs/  # Include fenced code in Markdown`
