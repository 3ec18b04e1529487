package domain

import "time"

// Status classifies the result of executing a test
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// FailureCause distinguishes why a test failed
type FailureCause string

const (
	// CauseAssertion means the test raised the assertion collaborator's failure signal
	CauseAssertion FailureCause = "assertion"
	// CauseUnexpected means the test raised any other runtime error
	CauseUnexpected FailureCause = "unexpected"
)

// Outcome is the result of executing a single TestDescriptor.
// Produced exactly once per execution, immutable thereafter.
type Outcome struct {
	Status   Status
	Cause    FailureCause  // Set only when Status is StatusFailed
	Detail   string        // Failure description or skip reason
	Stack    []string      // Trimmed stack trace for unexpected errors
	Duration time.Duration // Time taken to execute (zero for skipped)
}

// Passed returns a passing outcome
func Passed(d time.Duration) Outcome {
	return Outcome{Status: StatusPassed, Duration: d}
}

// FailedAssertion returns a failed outcome caused by an assertion failure
func FailedAssertion(detail string, d time.Duration) Outcome {
	return Outcome{Status: StatusFailed, Cause: CauseAssertion, Detail: detail, Duration: d}
}

// FailedUnexpected returns a failed outcome caused by any other runtime error
func FailedUnexpected(detail string, stack []string, d time.Duration) Outcome {
	return Outcome{Status: StatusFailed, Cause: CauseUnexpected, Detail: detail, Stack: stack, Duration: d}
}

// Skipped returns a skipped outcome with the given reason
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Detail: reason}
}
