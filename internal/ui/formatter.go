package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"gtp/internal/domain"
	"gtp/internal/report"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintReport prints the per-test status lines, the count line and the
// unknown-name lines of a finalized report. The line text is exactly the
// reporter's stable render format; color is layered on top and disappears
// when stdout is not a terminal, so piped output stays machine-parseable.
func (f *Formatter) PrintReport(r *report.Reporter) {
	for _, e := range r.Entries() {
		// Details may contain % signs, so the line is never used as a format string
		line := report.StatusLine(e)
		switch e.Outcome.Status {
		case domain.StatusPassed:
			color.Green("%s", line)
		case domain.StatusFailed:
			color.Red("%s", line)
		case domain.StatusSkipped:
			color.Yellow("%s", line)
		}
	}

	c := r.Counts()
	fmt.Printf("%d passed, %d failed, %d skipped\n", c.Passed, c.Failed, c.Skipped)
	for _, name := range r.Unknown() {
		color.Red("unknown test: %s", name)
	}
}

// PrintSummary displays the run statistics table
func (f *Formatter) PrintSummary(meta domain.RunMeta) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Test Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", meta.SkippedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Unknown Requested")
	color.Red("%-27d │\n", meta.UnknownRequested)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 && meta.UnknownRequested == 0 {
		color.Green("✓ All tests passed!")
	} else if meta.FailedTests > 0 {
		color.Red("✗ %d test(s) failed", meta.FailedTests)
	} else {
		color.Red("✗ %d requested test(s) could not be found", meta.UnknownRequested)
	}
}

// PrintTestList displays discovered tests without executing them
func (f *Formatter) PrintTestList(descs []domain.TestDescriptor, skipToken string) {
	color.Cyan("Discovered %d test(s):\n", len(descs))
	for _, d := range descs {
		if skipToken != "" && strings.Contains(d.Annotation, skipToken) {
			color.Yellow("  %s (skip)", d.Name)
			continue
		}
		fmt.Printf("  %s\n", d.Name)
	}
}
