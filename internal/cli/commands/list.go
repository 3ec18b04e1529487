package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/registry"
	"gtp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	suite     *discovery.Set
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	suite *discovery.Set,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		suite:     suite,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	if err := discovery.Populate(reg, lc.suite, lc.config.Prefix); err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	descs := lc.filter.Apply(reg.All(), lc.config.Flags.NameFilter)
	if len(descs) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintTestList(descs, lc.config.SkipToken)
	return nil
}
