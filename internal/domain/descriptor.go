package domain

// TestDescriptor represents one discoverable unit of test code
type TestDescriptor struct {
	Name       string // Unique name following the naming convention
	Callable   func() // The test body; takes no arguments
	Annotation string // Free-text metadata, may carry a skip directive
}
