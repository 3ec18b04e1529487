package execution

import "gtp/internal/domain"

// Executor runs one descriptor to completion and classifies the outcome
type Executor interface {
	Run(desc domain.TestDescriptor) domain.Outcome
}

// Result pairs a descriptor with its outcome
type Result struct {
	Descriptor domain.TestDescriptor
	Outcome    domain.Outcome
}
