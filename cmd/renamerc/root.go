package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	findFlag    string
	replaceFlag string
	pathFlag    string
	configFile  string
	noRecursive bool
	dryRun      bool
	yesFlag     bool
	verbose     bool
	debug       bool
	noColor     bool
)

// NewRootCmd creates the renamerc root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renamerc",
		Short: "Bulk-rename files by literal substring replacement",
		Long: `renamerc finds files whose names contain a literal substring, shows the
proposed renames, checks the whole batch for conflicts, and applies the
renames only when the batch is conflict-free and confirmed.

A batch with any conflict is rejected as a whole: either every rename is
eligible, or nothing is touched.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().StringVarP(&findFlag, "find", "f", "", "literal substring to find in filenames")
	cmd.Flags().StringVarP(&replaceFlag, "replace", "r", "", "literal replacement (may be empty)")
	cmd.Flags().StringVarP(&pathFlag, "path", "p", ".", "directory to search")
	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultFileName, "config file path")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "do not descend into subdirectories")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be renamed without doing it")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show extra detail")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")

	_ = cmd.MarkFlagRequired("find")
	_ = cmd.MarkFlagRequired("replace")

	return cmd
}

// run drives the pipeline: plan, preview, gate on conflicts and confirmation,
// then apply.
func run(cmd *cobra.Command) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	ctx := setupLogging(cmd.Context(), level)

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	colorOn := colorEnabled(cfg)
	formatter := status.NewTextFormatter(status.Config{
		Color:   colorOn,
		Verbose: verbose,
	})
	userLog := log.New(cmd.OutOrStdout(), level, formatter, colorOn)

	plan, err := rename.BuildPlan(ctx, buildOptions(cmd, cfg))
	if err != nil {
		return errors.Errorf("planning renames: %w", err)
	}

	if verbose {
		userLog.Infof("scanned %d candidate file(s)", len(plan.Files))
	}

	if len(plan.Pairs) == 0 {
		userLog.Info("no matching files found")
		return nil
	}

	userLog.Header(fmt.Sprintf("replacing %q with %q in %s", findFlag, replaceFlag, pathFlag))
	for _, pair := range plan.Pairs {
		userLog.LogPair(ctx, pair)
	}
	userLog.LogNewline()

	if plan.Conflicts.HasConflicts() {
		userLog.LogConflicts(ctx, plan.Conflicts)
		return errors.Errorf("%d conflict(s) detected, nothing was renamed", plan.Conflicts.Count())
	}

	if dryRun {
		userLog.Successf("dry run: %d file(s) would be renamed", len(plan.Pairs))
		return nil
	}

	if !yesFlag {
		confirmed, err := confirmApply(len(plan.Pairs))
		if err != nil {
			return errors.Errorf("reading confirmation: %w", err)
		}
		if !confirmed {
			userLog.Warning("aborted, nothing was renamed")
			return nil
		}
	}

	results := rename.Apply(ctx, plan.Pairs)
	for i, result := range results {
		userLog.LogResult(ctx, result)
		if verbose {
			userLog.LogProgress(i+1, len(results))
		}
	}

	summary := rename.Summarize(results)
	userLog.LogSummary(ctx, summary)
	if summary.Failed > 0 {
		return errors.Errorf("%d rename(s) failed", summary.Failed)
	}
	return nil
}

// setupLogging configures zerolog on the context
func setupLogging(ctx context.Context, level zerolog.Level) context.Context {
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// loadConfig loads the config file; a missing default config is not an error
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.Default(), nil
		}
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildOptions merges flags over config file defaults
func buildOptions(cmd *cobra.Command, cfg *config.Config) rename.Options {
	recursive := !noRecursive
	if cfg.Recursive != nil && !cmd.Flags().Changed("no-recursive") {
		recursive = *cfg.Recursive
	}

	return rename.Options{
		Find:      findFlag,
		Replace:   replaceFlag,
		Root:      pathFlag,
		Recursive: recursive,
		Excludes:  cfg.Excludes,
	}
}

// colorEnabled resolves the color setting from flag and config
func colorEnabled(cfg *config.Config) bool {
	if noColor {
		return false
	}
	if cfg.Color != nil {
		return *cfg.Color
	}
	return true
}

// confirmApply asks the user to confirm before mutating the filesystem
func confirmApply(count int) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(fmt.Sprintf("Rename %d file(s)?", count))
}

// TODO(dr.methodical): 🧪 Add tests for the confirmation prompt
