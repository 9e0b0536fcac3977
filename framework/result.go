package framework

import (
	"fmt"
	"strings"
)

// Results is the accumulated outcome of a full suite run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the terminal outcome of one test step.
type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
}

// OK returns true if no step failed. Skipped steps do not count as failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of passed, failed, and skipped steps.
func (r Results) Counts() (passed, failed, skipped int) {
	for _, t := range r.Tests {
		switch {
		case t.Skipped:
			skipped++
		case len(t.Errors) > 0:
			failed++
		default:
			passed++
		}
	}
	return
}

// TestID identifies a test step within the suite hierarchy.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
