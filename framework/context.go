package framework

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/booking-qa/booking-contract-tests/logging"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a running test step. It implements the TestingT interface used by
// the assert and require packages, so standard assertions can be made against it.
//
// A step can terminate in one of three ways: normal return (passed, unless Errorf was
// called), FailNow (failed immediately), or Skip/SkipWithReason (skipped). The last two
// use panic to unwind the step function; the recover boundary in run also converts any
// unexpected panic into a step failure, so a broken step can never abort the rest of
// the suite.
type Context struct {
	env         *environment
	id          TestID
	debugLogger logging.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a top-level suite function, which should use Context.Run to execute each
// step, and returns the accumulated results.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		if len(c.id.Path) == 0 {
			return // the root context is not itself a step
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped, SkipReason: c.skipReason}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes a subtest or step within this context.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf reports a failure without terminating the step.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow terminates the step immediately. It is called by the require package.
func (c *Context) FailNow() {
	panic(c)
}

// Skip terminates the step immediately, marking it as skipped rather than failed.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is Skip with an explanation that will appear in the results.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug writes a line to the step's capturing debug logger.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns the step's capturing debug logger.
func (c *Context) DebugLogger() logging.Logger {
	return &c.debugLogger
}
