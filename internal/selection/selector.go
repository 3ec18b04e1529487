package selection

import (
	"gtp/internal/domain"
	"gtp/internal/registry"
)

// Result is the output of selecting tests to run: the ordered execution
// sequence plus the requested names that do not exist in the registry.
type Result struct {
	Descriptors []domain.TestDescriptor
	Unknown     []string
}

// Select computes which descriptors run and in what order.
//
// With no requested names the sequence is the whole registry in
// registration order. With requested names the sequence follows the request
// order; a name requested twice executes twice (the selector does not
// deduplicate), and names absent from the registry are collected as unknown
// rather than aborting the run of the names that do exist.
//
// Select never executes anything and never mutates the registry.
func Select(reg *registry.Registry, requested []string) Result {
	if len(requested) == 0 {
		return Result{Descriptors: reg.All()}
	}

	var result Result
	seenUnknown := make(map[string]bool)
	for _, name := range requested {
		desc, ok := reg.Lookup(name)
		if !ok {
			if !seenUnknown[name] {
				seenUnknown[name] = true
				result.Unknown = append(result.Unknown, name)
			}
			continue
		}
		result.Descriptors = append(result.Descriptors, desc)
	}
	return result
}
