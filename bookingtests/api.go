package bookingtests

import (
	"github.com/booking-qa/booking-contract-tests/client"
	"github.com/booking-qa/booking-contract-tests/framework"
	"github.com/booking-qa/booking-contract-tests/logging"
)

// Name values submitted by the update step. The update is verified by checking that
// the service echoes UpdatedFirstName back, never the fixture's original name.
const (
	UpdatedFirstName = "UpdatedName"
	UpdatedLastName  = "UpdatedLastName"
)

type environment struct {
	client      *client.BookingServiceClient
	credentials client.Credentials
	state       *RunState
}

// T represents a step in the booking test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment
// that is outside of the Go test runner; that functionality is provided by the
// lower-level framework package. To make test assertions, you can use the assert and
// require packages, passing the *T as if it were a *testing.T.
//
// Unlike an ordinary test tree, every T in one suite run shares a single environment:
// the steps are dependent by design, and the RunState is how state produced by one
// step reaches the ones after it. The RequireX methods turn a missing piece of that
// state into a skip with an explanation, so preconditions are declared at the top of
// a step rather than scattered through it.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The
// methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs one step of the suite. The step function receives a new T sharing the same
// environment and run state.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the step. The output will be passed to the test
// logger at the end of the step.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// DebugLogger returns the step's capturing logger, for passing to client operations.
func (t *T) DebugLogger() logging.Logger {
	return t.context.DebugLogger()
}

func (t *T) Client() *client.BookingServiceClient {
	return t.env.client
}

func (t *T) Credentials() client.Credentials {
	return t.env.credentials
}

func (t *T) State() *RunState {
	return t.env.state
}

// RequireAuthToken skips this step if the authentication step never stored a token.
func (t *T) RequireAuthToken() string {
	if !t.env.state.AuthToken.IsDefined() {
		t.context.SkipWithReason("no authentication token")
	}
	return t.env.state.AuthToken.StringValue()
}

// RequireBookingID skips this step if the creation step never stored a booking ID.
func (t *T) RequireBookingID() int {
	if !t.env.state.BookingID.IsDefined() {
		t.context.SkipWithReason("no booking ID available (creation likely failed)")
	}
	return t.env.state.BookingID.IntValue()
}

// RequireBookingIDAndToken skips this step unless both the booking ID and the token
// were produced by earlier steps.
func (t *T) RequireBookingIDAndToken() (int, string) {
	if !t.env.state.BookingID.IsDefined() || !t.env.state.AuthToken.IsDefined() {
		t.context.SkipWithReason("missing booking ID or token")
	}
	return t.env.state.BookingID.IntValue(), t.env.state.AuthToken.StringValue()
}
