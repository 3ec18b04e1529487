package config

const (
	// DefaultPrefix is the naming-convention prefix for eligible tests
	DefaultPrefix = "test_"
	// DefaultSkipToken is the literal substring that marks a test skipped
	DefaultSkipToken = "test:skip"
	// DefaultWorkers is the default number of workers (1 = strict sequential)
	DefaultWorkers = 1
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "run-report.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)
