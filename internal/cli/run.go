package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomatlex/internal/configloader"
	"github.com/yaklabco/gomatlex/internal/logging"
	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/reporter"
	"github.com/yaklabco/gomatlex/pkg/runner"
	"github.com/yaklabco/gomatlex/pkg/scan"
)

// ErrScanFailed is returned when one or more files could not be scanned.
var ErrScanFailed = errors.New("scan failed")

// runScan loads configuration, scans the given paths, and reports the
// result with the format carried in the resolved config.
func runScan(cmd *cobra.Command, args []string, cliCfg *config.Config) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldDialect, cfg.Dialect,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)

	pipeline, err := scan.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Jobs:       cfg.Jobs,
		Config:     cfg,
	}
	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(pipeline).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan run failed"), err)
	}
	logger.Debug("scan finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldSpans, result.Stats.SpansTotal,
	)

	if err := reportResult(ctx, cmd, cfg, workDir, result); err != nil {
		return err
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrScanFailed
	}
	return nil
}

// reportResult writes the run result to stdout or the configured output
// file.
func reportResult(ctx context.Context, cmd *cobra.Command, cfg *config.Config, workDir string, result *runner.Result) error {
	var writer io.Writer = cmd.OutOrStdout()
	colorMode := string(cfg.Color)

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer f.Close()
		writer = f
		// File output never carries escape sequences unless forced.
		if colorMode == "auto" || colorMode == "" {
			colorMode = "never"
		}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      writer,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      cfg.Format,
		Color:       colorMode,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// errInvalidFormat reports an unknown output format with the valid set.
func errInvalidFormat(format string) error {
	known := config.Formats()
	names := make([]string, len(known))
	for i, f := range known {
		names[i] = string(f)
	}
	return fmt.Errorf("unknown format %q; valid formats: %s",
		format, strings.Join(names, ", "))
}

// applyColorFlag copies the persistent color flag into the CLI config.
func applyColorFlag(cmd *cobra.Command, cfg *config.Config) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	cfg.Color = config.ColorMode(colorMode)
}

// foldFlagOverrides maps explicitly set fold flags into the CLI config so
// unset flags do not mask file or env settings.
func foldFlagOverrides(cmd *cobra.Command, cfg *config.Config, comment, compact *bool) {
	if cmd.Flags().Changed("fold-comments") {
		cfg.Fold.Comment = comment
	}
	if cmd.Flags().Changed("compact") {
		cfg.Fold.Compact = compact
	}
}
