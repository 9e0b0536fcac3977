// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the booking API domain.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// pass/fail/skip results. A step can skip itself, with a reason, if some state it
// depends on was never produced by an earlier step.
//
// 2. Each step has its own capturing debug logger; the accumulated output can be dumped
// by the reporting layer depending on the step's outcome.
//
// 3. Results are reported through a TestLogger interface, printed as a console summary,
// and optionally written as a machine-readable report for CI artifacts.
//
// The domain-specific code that knows what is being tested is responsible for providing
// the HTTP interactions and a domain-specific test API on top of the test context.
package framework
