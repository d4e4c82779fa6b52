package main

import (
	"fmt"
	"os"

	"qsnap/internal/cli"
	"qsnap/internal/cli/commands"
	"qsnap/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "qsnap",
		Short:   "Snapshot regression harness for the Qatam toolchain",
		Long:    `A golden-file regression harness for the Qatam toolchain. Execute test-case source files against the compiled interpreter and record or compare their behavior as snapshots.`,
		Version: version,
	}
	// Errors are printed once, below. Usage stays on for argument and
	// flag errors; commands silence it themselves once execution starts.
	rootCmd.SilenceErrors = true

	// Create initial config with defaults and env overrides
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
