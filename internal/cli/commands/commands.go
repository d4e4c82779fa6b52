package commands

import (
	"os"

	"qsnap/internal/build"
	"qsnap/internal/cli"
	"qsnap/internal/config"
	"qsnap/internal/discovery"
	"qsnap/internal/execution"
	"qsnap/internal/harness"
	"qsnap/internal/snapshot"
	"qsnap/internal/storage"
	"qsnap/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Sync  *SyncCommand
	Run   *RunCommand
	Clean *CleanCommand
	List  *ListCommand
	View  *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	walker := discovery.NewWalker(config.CaseExtension, config.ResultsDirName)
	filter := discovery.NewFilter()
	store := snapshot.NewStore(walker, config.ResultsDirName, config.SnapshotExtension)
	spawner := execution.NewArtifactSpawner(cfg.ArtifactPath)
	executor := execution.NewExecutor(spawner)
	builder := build.NewCommandBuilder(cfg.BuildCommand)
	reporter := ui.NewReporter(os.Stdout)
	h := harness.New(cfg, walker, filter, store, executor, reporter)
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewDiffViewer(jsonStorage)

	return &Commands{
		Sync:  NewSyncCommand(cfg, builder, h, reporter),
		Run:   NewRunCommand(cfg, builder, h, reporter, jsonStorage),
		Clean: NewCleanCommand(cfg, h, reporter),
		List:  NewListCommand(cfg, h, reporter),
		View:  NewViewCommand(jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Sync command
	syncCmd := &cobra.Command{
		Use:     "sync [dir]",
		Short:   "Execute all test cases and record their snapshots",
		Long:    "Run every test case under the directory (default " + config.DefaultTestRoot + ") and record the observed behavior as the trusted baseline, replacing prior snapshots.",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Sync.Execute,
		PreRunE: applyFlags,
	}
	syncCmd.Flags().BoolVar(&flags.NoBuild, "no-build", false, "Skip the toolchain build before executing cases")
	syncCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'fib*' or '*loops*')")
	rootCmd.AddCommand(syncCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run [dir]",
		Short:   "Execute all test cases and compare against snapshots",
		Long:    "Run every test case under the directory and compare the observed behavior with the stored snapshots, printing a line diff per mismatch.",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().BoolVar(&flags.NoBuild, "no-build", false, "Skip the toolchain build before executing cases")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'fib*' or '*loops*')")
	runCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not persist run results for the view command")
	rootCmd.AddCommand(runCmd)

	// Clean command
	cleanCmd := &cobra.Command{
		Use:     "clean [dir]",
		Short:   "Remove all snapshots under the directory",
		Long:    "Recursively remove every snapshot container under the directory. Test cases and unrelated files are untouched.",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Clean.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(cleanCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [dir]",
		Short:   "List discovered test cases",
		Long:    "Discover and list all test cases without executing them",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'fib*' or '*loops*')")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View the last run's failures interactively",
		Long:  "Display failures from the last saved run in an interactive viewer with per-case diffs",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
