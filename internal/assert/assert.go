// Package assert is the assertion collaborator for test bodies run by the
// engine. Checks that do not hold panic with a *Failure, which the executor
// recognizes and classifies separately from any other runtime error.
package assert

import "fmt"

// Failure is the distinguished signal raised when a check does not hold
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// True fails the running test when cond is false. The format string should
// describe the condition being checked, e.g. "15 %% 4 == 0".
func True(cond bool, format string, args ...any) {
	if !cond {
		fail(format, args...)
	}
}

// Equal fails the running test when got != want
func Equal[T comparable](got, want T, label string) {
	if got != want {
		fail("%s: got %v, want %v", label, got, want)
	}
}

// Fail unconditionally fails the running test
func Fail(format string, args ...any) {
	fail(format, args...)
}

func fail(format string, args ...any) {
	panic(&Failure{Message: fmt.Sprintf(format, args...)})
}
