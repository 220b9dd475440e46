package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomatlex/internal/logging"
	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gomatlex configuration file",
		Long: `Create a new .gomatlex.yml configuration file in the current directory
with a commented starter template. The file can be customized to force a
dialect, override extension mappings, tune folding, and point at custom
keyword tables.

Examples:
  gomatlex init                      Create .gomatlex.yml
  gomatlex init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gomatlex.yml)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	if ctx == nil {
		ctx = context.Background()
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gomatlex.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, config.Template(), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'gomatlex dialects' to see the supported dialects")

	return nil
}
