package commands

import (
	"fmt"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/execution"
	"gtp/internal/registry"
	"gtp/internal/report"
	"gtp/internal/selection"
	"gtp/internal/storage"
	"gtp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	suite     *discovery.Set
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.FailureViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	suite *discovery.Set,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.FailureViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		suite:     suite,
		filter:    filter,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command. Positional arguments are explicit test names;
// without them every discovered test runs.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Discovery populates a fresh registry for this run. A duplicate name
	// is fatal here, before anything executes.
	reg := registry.New()
	if err := discovery.Populate(reg, rc.suite, rc.config.Prefix); err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	sel := selection.Select(reg, args)
	sel.Descriptors = rc.filter.Apply(sel.Descriptors, rc.config.Flags.NameFilter)

	if len(sel.Descriptors) == 0 && len(sel.Unknown) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	runner := execution.NewRunner(rc.config.SkipToken)
	pool := execution.NewPool(runner, rc.config.Workers)
	if len(sel.Descriptors) > 0 {
		pool.SetProgress(ui.NewProgressBar(len(sel.Descriptors)))
	}

	results, duration := pool.ExecuteWithOptions(sel.Descriptors, rc.config.Flags.FailFast)

	reporter := report.New()
	for _, r := range results {
		if err := reporter.Record(r.Descriptor.Name, r.Outcome); err != nil {
			return err
		}
	}
	for _, name := range sel.Unknown {
		if err := reporter.RecordUnknown(name); err != nil {
			return err
		}
	}
	if err := reporter.Finalize(); err != nil {
		return err
	}

	rc.formatter.PrintReport(reporter)

	output := reporter.Output(duration, rc.config.Workers)
	if err := rc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save run output: %w", err)
	}

	// Run history is best effort: a broken database never fails the run
	if sink := storage.NewHistorySink(rc.config.HistoryDSN()); sink != nil {
		if err := sink.Append(output); err != nil {
			color.Yellow("warning: could not record run history: %v", err)
		}
	}

	rc.formatter.PrintSummary(output.Meta)

	if rc.config.Flags.OpenFails && output.Meta.FailedTests > 0 {
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}

	if !reporter.Ok() {
		c := reporter.Counts()
		return fmt.Errorf("test run failed: %d failed, %d unknown", c.Failed, c.UnknownRequested)
	}
	return nil
}
