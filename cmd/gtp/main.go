package main

import (
	"fmt"
	"os"

	"gtp/internal/cli"
	"gtp/internal/cli/commands"
	"gtp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "gtp",
		Short:   "Minimal test discovery and execution engine",
		Long:    `A minimal test-discovery-and-execution engine. Tests are callables registered under a naming convention; gtp selects them, runs each in isolation, classifies the outcome and renders a deterministic report.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands over the built-in suite
	cmds := commands.NewCommands(cfg, builtinSuite())

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
