package execution

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"gtp/internal/assert"
	"gtp/internal/domain"
)

// DefaultSkipReason is reported when the skip directive carries no extra text
const DefaultSkipReason = "marked as skip"

// Runner executes a single test descriptor. It holds no mutable state, so
// one Runner can serve any number of sequential or concurrent Run calls.
type Runner struct {
	skipToken string
}

// NewRunner creates a Runner recognizing the given skip directive token
func NewRunner(skipToken string) *Runner {
	return &Runner{skipToken: skipToken}
}

// Run executes one descriptor and returns its outcome.
//
// The skip check happens before any invocation: a skipped test has zero
// observable side effects. Everything the callable raises stays inside this
// call; an assertion failure and any other panic both come back as Failed
// outcomes so one broken test can never abort the rest of the run.
func (r *Runner) Run(desc domain.TestDescriptor) domain.Outcome {
	if reason, skip := r.skipReason(desc.Annotation); skip {
		return domain.Skipped(reason)
	}
	return r.invoke(desc)
}

// skipReason checks the annotation for the skip directive token.
// The reason is the annotation text around the token, or a default when the
// directive carries nothing else.
func (r *Runner) skipReason(annotation string) (string, bool) {
	if r.skipToken == "" || !strings.Contains(annotation, r.skipToken) {
		return "", false
	}
	reason := strings.TrimSpace(strings.Replace(annotation, r.skipToken, "", 1))
	reason = strings.TrimLeft(reason, ":")
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultSkipReason
	}
	return reason, true
}

// invoke runs the callable under a scoped error boundary
func (r *Runner) invoke(desc domain.TestDescriptor) (out domain.Outcome) {
	start := time.Now()
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		elapsed := time.Since(start)
		if failure, ok := rec.(*assert.Failure); ok {
			out = domain.FailedAssertion(failure.Message, elapsed)
			return
		}
		out = domain.FailedUnexpected(fmt.Sprintf("%v", rec), trimStack(debug.Stack()), elapsed)
	}()

	desc.Callable()
	return domain.Passed(time.Since(start))
}

// trimStack drops the runtime panic machinery and this package's own frames
// from a captured stack so the trace starts inside the test body.
func trimStack(stack []byte) []string {
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	if len(lines) == 0 {
		return nil
	}

	// Frames come in pairs after the goroutine header; skip pairs belonging
	// to the runtime and to this package.
	trimmed := []string{lines[0]}
	for i := 1; i+1 < len(lines); i += 2 {
		fn := lines[i]
		if strings.HasPrefix(fn, "runtime/debug.Stack") ||
			strings.HasPrefix(fn, "panic") ||
			strings.HasPrefix(fn, "runtime.") ||
			strings.Contains(fn, "internal/execution.") {
			continue
		}
		trimmed = append(trimmed, strings.TrimSpace(fn), strings.TrimSpace(lines[i+1]))
	}
	return trimmed
}
