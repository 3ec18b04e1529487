package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gtp/internal/storage"
	"gtp/internal/ui"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(st storage.Storage, viewer *ui.FailureViewer) *FailsCommand {
	return &FailsCommand{storage: st, viewer: viewer}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved run found, run 'gtp run' first: %w", err)
	}
	return fc.viewer.View(output)
}
