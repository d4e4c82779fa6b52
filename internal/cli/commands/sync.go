package commands

import (
	"qsnap/internal/build"
	"qsnap/internal/config"
	"qsnap/internal/harness"
	"qsnap/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SyncCommand handles the sync command
type SyncCommand struct {
	config   *config.Config
	builder  build.Builder
	harness  *harness.Harness
	reporter *ui.Reporter
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(cfg *config.Config, builder build.Builder, h *harness.Harness, reporter *ui.Reporter) *SyncCommand {
	return &SyncCommand{
		config:   cfg,
		builder:  builder,
		harness:  h,
		reporter: reporter,
	}
}

// Execute runs the command
func (sc *SyncCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := sc.config.GetTestRoot(args)

	// Build failures are not fatal: every case then fails naturally
	// against the stale or absent artifact.
	if !sc.config.Flags.NoBuild {
		if err := sc.builder.Build(); err != nil {
			color.Yellow("build failed: %v (continuing with existing artifact)", err)
		}
	}

	var progress *ui.ProgressBar
	if total := sc.harness.CountCases(dir); total > 0 {
		progress = ui.NewProgressBar(total)
		sc.harness.SetProgress(progress)
	}

	results, sum := sc.harness.Sync(dir)
	if progress != nil {
		progress.Finish()
	}

	sc.reporter.PrintResults(results, false)
	sc.reporter.PrintSyncSummary(sum)
	return nil
}
