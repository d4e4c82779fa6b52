package commands

import (
	"qsnap/internal/config"
	"qsnap/internal/harness"
	"qsnap/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	harness  *harness.Harness
	reporter *ui.Reporter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, h *harness.Harness, reporter *ui.Reporter) *ListCommand {
	return &ListCommand{
		config:   cfg,
		harness:  h,
		reporter: reporter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := lc.config.GetTestRoot(args)

	cases, err := lc.harness.ListCases(dir)
	if err != nil {
		lc.reporter.TraversalError(err)
	}
	if len(cases) == 0 {
		if err == nil {
			color.Yellow("No test cases found under %s", dir)
		}
		return nil
	}
	lc.reporter.PrintCaseList(cases)
	return nil
}
