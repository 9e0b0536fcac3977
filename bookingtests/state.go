package bookingtests

import (
	"fmt"
	"time"

	"github.com/booking-qa/booking-contract-tests/client"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const isoDateFormat = "2006-01-02"

// RunState is the mutable state shared by the steps of one suite run. Each field is
// written by exactly one step and read by the steps after it; the optional types make
// "was this ever produced" an explicit question rather than a zero-value guess.
//
// The fixture is constructed once at suite start and never mutated; steps that need a
// variation derive a copy.
type RunState struct {
	AuthToken ldvalue.OptionalString
	BookingID ldvalue.OptionalInt
	Fixture   client.Booking
}

func NewRunState(fixture client.Booking) *RunState {
	return &RunState{Fixture: fixture}
}

// NewBookingFixture validates and builds a booking fixture. The price must be
// non-negative and the dates must be ISO-8601 with checkin no later than checkout.
func NewBookingFixture(
	firstName, lastName string,
	totalPrice int,
	depositPaid bool,
	checkIn, checkOut string,
	additionalNeeds string,
) (client.Booking, error) {
	if totalPrice < 0 {
		return client.Booking{}, fmt.Errorf("total price must be non-negative, got %d", totalPrice)
	}
	in, err := time.Parse(isoDateFormat, checkIn)
	if err != nil {
		return client.Booking{}, fmt.Errorf("invalid checkin date %q: %w", checkIn, err)
	}
	out, err := time.Parse(isoDateFormat, checkOut)
	if err != nil {
		return client.Booking{}, fmt.Errorf("invalid checkout date %q: %w", checkOut, err)
	}
	if in.After(out) {
		return client.Booking{}, fmt.Errorf("checkin %s is after checkout %s", checkIn, checkOut)
	}
	return client.Booking{
		FirstName:       firstName,
		LastName:        lastName,
		TotalPrice:      totalPrice,
		DepositPaid:     depositPaid,
		BookingDates:    client.BookingDates{CheckIn: checkIn, CheckOut: checkOut},
		AdditionalNeeds: additionalNeeds,
	}, nil
}

// DefaultFixture returns the canonical booking payload the suite creates and verifies.
func DefaultFixture() client.Booking {
	return client.Booking{
		FirstName:   "Ebrahim",
		LastName:    "Hossain",
		TotalPrice:  100,
		DepositPaid: true,
		BookingDates: client.BookingDates{
			CheckIn:  "2023-01-01",
			CheckOut: "2023-01-05",
		},
		AdditionalNeeds: "Breakfast",
	}
}
