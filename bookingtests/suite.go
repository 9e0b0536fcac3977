package bookingtests

import (
	"github.com/booking-qa/booking-contract-tests/client"
	"github.com/booking-qa/booking-contract-tests/framework"
)

// RunTestSuite runs the full booking flow against the configured service. The step
// order is significant and fixed: every step is always attempted, and a step whose
// precondition is unmet reports itself as skipped rather than failed.
func RunTestSuite(
	apiClient *client.BookingServiceClient,
	credentials client.Credentials,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env: &environment{
				client:      apiClient,
				credentials: credentials,
				state:       NewRunState(DefaultFixture()),
			},
		}

		t.Run("availability", DoAvailabilityTest)
		t.Run("authentication", DoAuthenticationTest)
		t.Run("create booking", DoCreateBookingTest)
		t.Run("get booking", DoGetBookingTest)
		t.Run("update booking", DoUpdateBookingTest)
		t.Run("delete booking", DoDeleteBookingTest)
	})
}
