package domain

// RecordedOutcome is one (name, outcome) pair of a run, as persisted to storage
type RecordedOutcome struct {
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	Cause           string   `json:"cause,omitempty"`
	Detail          string   `json:"detail,omitempty"`
	Stack           []string `json:"stack,omitempty"`
	DurationSeconds float64  `json:"duration_seconds"`
	Resolved        bool     `json:"resolved,omitempty"` // Track if a failure is marked as resolved in the viewer
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	TotalTests       int     `json:"total_tests"`
	PassedTests      int     `json:"passed_tests"`
	FailedTests      int     `json:"failed_tests"`
	SkippedTests     int     `json:"skipped_tests"`
	UnknownRequested int     `json:"unknown_requested"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Workers          int     `json:"workers"`
	Timestamp        string  `json:"timestamp"`
}

// RunOutput is the complete persisted output of one test run
type RunOutput struct {
	Meta    RunMeta           `json:"meta"`
	Results []RecordedOutcome `json:"results"`
	Unknown []string          `json:"unknown,omitempty"`
}

// Failures returns the failed results only, in recorded order
func (o *RunOutput) Failures() []RecordedOutcome {
	var failures []RecordedOutcome
	for _, r := range o.Results {
		if r.Status == string(StatusFailed) {
			failures = append(failures, r)
		}
	}
	return failures
}
