package report

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gtp/internal/domain"
)

// ReportClosedError is returned when a mutating call arrives after
// Finalize. That is a protocol violation in the driving code, not a
// test-run condition.
type ReportClosedError struct {
	Op string
}

func (e *ReportClosedError) Error() string {
	return fmt.Sprintf("report already finalized: %s rejected", e.Op)
}

// Entry is one recorded (name, outcome) pair
type Entry struct {
	Name    string
	Outcome domain.Outcome
}

// Counts are the frozen summary numbers of a finalized report
type Counts struct {
	Passed           int
	Failed           int
	Skipped          int
	UnknownRequested int
}

// Reporter accumulates per-test outcomes into a run report.
//
// Record calls are serialized behind a mutex so outcomes are never
// interleaved mid-write; callers still must guarantee that call order equals
// execution order, which the execution pool does by handing over results in
// canonical selection order.
type Reporter struct {
	mu        sync.Mutex
	entries   []Entry
	unknown   []string
	counts    Counts
	finalized bool
}

// New creates an empty, open Reporter
func New() *Reporter {
	return &Reporter{}
}

// Record appends one outcome to the report, in call order
func (r *Reporter) Record(name string, outcome domain.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		return &ReportClosedError{Op: "record"}
	}
	r.entries = append(r.entries, Entry{Name: name, Outcome: outcome})
	return nil
}

// RecordUnknown notes a requested name that does not exist in the registry
func (r *Reporter) RecordUnknown(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		return &ReportClosedError{Op: "record unknown"}
	}
	r.unknown = append(r.unknown, name)
	return nil
}

// Finalize computes and freezes the summary counts. Any mutating call after
// this, including a second Finalize, fails with a *ReportClosedError.
func (r *Reporter) Finalize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		return &ReportClosedError{Op: "finalize"}
	}
	for _, e := range r.entries {
		switch e.Outcome.Status {
		case domain.StatusPassed:
			r.counts.Passed++
		case domain.StatusFailed:
			r.counts.Failed++
		case domain.StatusSkipped:
			r.counts.Skipped++
		}
	}
	r.counts.UnknownRequested = len(r.unknown)
	r.finalized = true
	return nil
}

// Finalized reports whether the summary has been frozen
func (r *Reporter) Finalized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finalized
}

// Counts returns the summary counts. Before Finalize they are all zero.
func (r *Reporter) Counts() Counts {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts
}

// Entries returns the recorded entries in record order
func (r *Reporter) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Unknown returns the unknown requested names in record order
func (r *Reporter) Unknown() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.unknown))
	copy(out, r.unknown)
	return out
}

// Ok reports whether the run should exit zero: nothing failed and no
// unknown name was requested.
func (r *Reporter) Ok() bool {
	c := r.Counts()
	return c.Failed == 0 && c.UnknownRequested == 0
}

// Render produces the deterministic textual summary: one status line per
// recorded test in record order, a count line, then one line per unknown
// requested name. Line formats are stable:
//
//	<name>: passed
//	<name>: failed (assertion|unexpected): <detail>
//	<name>: skipped: <reason>
//	N passed, N failed, N skipped
//	unknown test: <name>
func (r *Reporter) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(StatusLine(e))
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("%d passed, %d failed, %d skipped\n",
		r.counts.Passed, r.counts.Failed, r.counts.Skipped))
	for _, name := range r.unknown {
		b.WriteString(fmt.Sprintf("unknown test: %s\n", name))
	}
	return b.String()
}

// StatusLine formats the stable status line for one entry
func StatusLine(e Entry) string {
	switch e.Outcome.Status {
	case domain.StatusFailed:
		return fmt.Sprintf("%s: failed (%s): %s", e.Name, e.Outcome.Cause, e.Outcome.Detail)
	case domain.StatusSkipped:
		return fmt.Sprintf("%s: skipped: %s", e.Name, e.Outcome.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Name, e.Outcome.Status)
	}
}

// Output converts the finalized report into the persisted run output shape
func (r *Reporter) Output(duration time.Duration, workers int) *domain.RunOutput {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]domain.RecordedOutcome, 0, len(r.entries))
	for _, e := range r.entries {
		results = append(results, domain.RecordedOutcome{
			Name:            e.Name,
			Status:          string(e.Outcome.Status),
			Cause:           string(e.Outcome.Cause),
			Detail:          e.Outcome.Detail,
			Stack:           e.Outcome.Stack,
			DurationSeconds: e.Outcome.Duration.Seconds(),
		})
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:       len(r.entries),
			PassedTests:      r.counts.Passed,
			FailedTests:      r.counts.Failed,
			SkippedTests:     r.counts.Skipped,
			UnknownRequested: r.counts.UnknownRequested,
			Duration:         duration.String(),
			DurationSeconds:  duration.Seconds(),
			Workers:          workers,
			Timestamp:        time.Now().Format(time.RFC3339),
		},
		Results: results,
		Unknown: append([]string(nil), r.unknown...),
	}
}
