package bookingtests

import (
	"net/http"

	"github.com/booking-qa/booking-contract-tests/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoAvailabilityTest probes the base endpoint. It has no precondition; a transport
// failure here is a hard failure, not a skip.
func DoAvailabilityTest(t *T) {
	err := t.Client().Ping(t.DebugLogger())
	require.NoError(t, err, "API not reachable")
}

// DoAuthenticationTest obtains a session token and stores it in the run state. If it
// fails, the token stays unset and every downstream step that needs one will skip.
func DoAuthenticationTest(t *T) {
	token, err := t.Client().CreateToken(t.Credentials(), t.DebugLogger())
	require.NoError(t, err, "authentication failed")
	require.NotEmpty(t, token, "authentication returned an empty token")

	t.State().AuthToken = ldvalue.NewOptionalString(token)
	t.Debug("Stored session token: %s...", token[:min(len(token), 5)])
}

// DoCreateBookingTest creates the fixture booking and stores its ID. The creation
// endpoint itself does not take an auth header, but the step still requires the token
// so that a broken login shows up as one failure and a chain of skips.
func DoCreateBookingTest(t *T) {
	t.RequireAuthToken()

	id, _, err := t.Client().CreateBooking(t.State().Fixture, t.DebugLogger())
	require.NoError(t, err, "booking creation failed")
	require.Greater(t, id, 0, "booking ID should be a positive integer")

	t.State().BookingID = ldvalue.NewOptionalInt(id)
	t.Debug("Stored booking ID: %d", id)
}

// DoGetBookingTest retrieves the created booking and verifies it against the fixture.
// It does not mutate the run state.
func DoGetBookingTest(t *T) {
	id := t.RequireBookingID()

	booking, err := t.Client().GetBooking(id, t.DebugLogger())
	require.NoError(t, err, "failed to get booking")

	assert.Equal(t, t.State().Fixture.FirstName, booking.FirstName, "firstname doesn't match")
}

// DoUpdateBookingTest submits a full-replace update with sentinel names and verifies
// that the service echoes the new first name back.
func DoUpdateBookingTest(t *T) {
	id, token := t.RequireBookingIDAndToken()

	updated := t.State().Fixture.WithName(UpdatedFirstName, UpdatedLastName)
	result, err := t.Client().UpdateBooking(id, token, updated, t.DebugLogger())
	require.NoError(t, err, "update failed")

	assert.Equal(t, UpdatedFirstName, result.FirstName, "firstname not updated")
}

// DoDeleteBookingTest deletes the booking and then confirms removal with an
// unauthenticated GET, which must return 404. A lingering 200 fails the step even
// though the delete itself was accepted.
func DoDeleteBookingTest(t *T) {
	id, token := t.RequireBookingIDAndToken()

	err := t.Client().DeleteBooking(id, token, t.DebugLogger())
	require.NoError(t, err, "delete failed")

	_, err = t.Client().GetBooking(id, t.DebugLogger())
	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr, "booking still exists after deletion")
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode, "booking still exists after deletion")
}
