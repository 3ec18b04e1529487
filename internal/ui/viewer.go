package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtp/internal/domain"
	"gtp/internal/storage"
)

// FailureViewer displays the failures of the last run in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the run's failures in an interactive TUI.
// 'r' toggles a failure as resolved, which is written back to storage so the
// marks survive across viewer sessions.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	failures := output.Failures()
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	// Indices of the failed entries inside output.Results, so resolved
	// toggles land on the right persisted record.
	failureIndex := make([]int, 0, len(failures))
	for i, r := range output.Results {
		if r.Status == string(domain.StatusFailed) {
			failureIndex = append(failureIndex, i)
		}
	}

	saveResolved := func() error {
		return fv.storage.Save(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(i int) string {
		rec := output.Results[failureIndex[i]]
		if rec.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", i+1, rec.Name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", i+1, rec.Name)
	}

	for i := range failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for _, idx := range failureIndex {
			if !output.Results[idx].Resolved {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(failures), countUnresolved()))
	}
	updateHeader()

	updateDetails := func() {
		i := list.GetCurrentItem()
		if i >= 0 && i < len(failureIndex) {
			detailsView.SetText(formatFailureDetails(output.Results[failureIndex[i]]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				i := list.GetCurrentItem()
				if i >= 0 && i < len(failureIndex) {
					rec := &output.Results[failureIndex[i]]
					rec.Resolved = !rec.Resolved
					list.SetItemText(i, getListItemText(i), "")
					updateHeader()
					updateDetails()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats a failure for display using tview color tags
func formatFailureDetails(rec domain.RecordedOutcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", rec.Name)
	fmt.Fprintf(&b, "[cyan]Cause: %s[white]\n\n", rec.Cause)

	if rec.Detail != "" {
		fmt.Fprintf(&b, "[yellow]Detail:[white]\n%s\n\n", rec.Detail)
	}

	if len(rec.Stack) > 0 {
		fmt.Fprintf(&b, "[yellow]Stack Trace:[white]\n")
		for i, line := range rec.Stack {
			if i >= 10 {
				fmt.Fprintf(&b, "  [gray]... and %d more lines[white]\n", len(rec.Stack)-10)
				break
			}
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	return b.String()
}
