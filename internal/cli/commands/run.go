package commands

import (
	"fmt"
	"time"

	"qsnap/internal/build"
	"qsnap/internal/config"
	"qsnap/internal/harness"
	"qsnap/internal/storage"
	"qsnap/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	builder  build.Builder
	harness  *harness.Harness
	reporter *ui.Reporter
	storage  storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, builder build.Builder, h *harness.Harness, reporter *ui.Reporter, st storage.Storage) *RunCommand {
	return &RunCommand{
		config:   cfg,
		builder:  builder,
		harness:  h,
		reporter: reporter,
		storage:  st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Arguments are valid by now; a failing run is not a usage error.
	cmd.SilenceUsage = true
	dir := rc.config.GetTestRoot(args)

	if !rc.config.Flags.NoBuild {
		if err := rc.builder.Build(); err != nil {
			color.Yellow("build failed: %v (continuing with existing artifact)", err)
		}
	}

	var progress *ui.ProgressBar
	if total := rc.harness.CountCases(dir); total > 0 {
		progress = ui.NewProgressBar(total)
		rc.harness.SetProgress(progress)
	}

	start := time.Now()
	results, sum := rc.harness.Run(dir)
	elapsed := time.Since(start)
	if progress != nil {
		progress.Finish()
	}

	rc.reporter.PrintResults(results, true)
	rc.reporter.PrintRunSummary(sum, elapsed)

	if !rc.config.Flags.NoSave {
		if err := rc.storage.Save(results, elapsed); err != nil {
			color.Yellow("failed to save run results: %v", err)
		}
	}

	// Nonzero exit when any case failed, so CI picks up regressions.
	if failures := sum.Failures(); failures > 0 {
		return fmt.Errorf("%d of %d case(s) failed", failures, sum.Total())
	}
	return nil
}
