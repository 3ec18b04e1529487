package cli

import "gtp/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers    int
	Prefix     string
	SkipToken  string
	NameFilter string
	FailFast   bool
	OpenFails  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:    f.Workers,
		Prefix:     f.Prefix,
		SkipToken:  f.SkipToken,
		NameFilter: f.NameFilter,
		FailFast:   f.FailFast,
		OpenFails:  f.OpenFails,
	}
}
