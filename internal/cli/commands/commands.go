package commands

import (
	"gtp/internal/cli"
	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/storage"
	"gtp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Fails *FailsCommand
}

// NewCommands creates all commands with dependencies.
// The suite is the discovery collaborator's output: the ordered triples the
// binary's author registered.
func NewCommands(cfg *config.Config, suite *discovery.Set) *Commands {
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:   NewRunCommand(cfg, suite, filter, jsonStorage, formatter, viewer),
		List:  NewListCommand(cfg, suite, filter, formatter),
		Fails: NewFailsCommand(jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [test names...]",
		Short: "Run discovered tests",
		Long:  "Execute discovered tests and report every outcome. With no arguments all discovered tests run; with names only those run, in the requested order.",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
		SilenceUsage: true,
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of workers to run tests on (default 1, strictly sequential)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'test_add*' or '*division*')")
	runCmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Naming-convention prefix for eligible tests (default test_)")
	runCmd.Flags().StringVar(&flags.SkipToken, "skip-token", "", "Annotation token marking a test as skipped (default test:skip)")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop scheduling tests after the first failure")
	runCmd.Flags().BoolVar(&flags.OpenFails, "open-fails", false, "Open the fails viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Discover and list all eligible tests without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards)")
	listCmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Naming-convention prefix for eligible tests (default test_)")
	rootCmd.AddCommand(listCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Fails.Execute,
	}
	rootCmd.AddCommand(failsCmd)
}
