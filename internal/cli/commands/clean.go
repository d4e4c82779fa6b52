package commands

import (
	"qsnap/internal/config"
	"qsnap/internal/harness"
	"qsnap/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CleanCommand handles the clean command
type CleanCommand struct {
	config   *config.Config
	harness  *harness.Harness
	reporter *ui.Reporter
}

// NewCleanCommand creates a new CleanCommand
func NewCleanCommand(cfg *config.Config, h *harness.Harness, reporter *ui.Reporter) *CleanCommand {
	return &CleanCommand{
		config:   cfg,
		harness:  h,
		reporter: reporter,
	}
}

// Execute runs the command
func (cc *CleanCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := cc.config.GetTestRoot(args)

	if err := cc.harness.Clean(dir); err != nil {
		// Traversal failures are reported, not fatal.
		cc.reporter.TraversalError(err)
		return nil
	}
	color.Green("✓ cleaned snapshots under %s", dir)
	return nil
}
