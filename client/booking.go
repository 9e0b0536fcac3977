package client

// Credentials are the username/password pair posted to the auth endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BookingDates holds the stay dates of a booking as ISO-8601 date strings.
type BookingDates struct {
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
}

// Booking is the wire representation of a booking. Field names must match the API
// contract exactly.
type Booking struct {
	FirstName       string       `json:"firstname"`
	LastName        string       `json:"lastname"`
	TotalPrice      int          `json:"totalprice"`
	DepositPaid     bool         `json:"depositpaid"`
	BookingDates    BookingDates `json:"bookingdates"`
	AdditionalNeeds string       `json:"additionalneeds"`
}

// WithName returns a copy of the booking with the name fields replaced. The receiver
// is never modified; value semantics keep the original fixture immutable.
func (b Booking) WithName(firstName, lastName string) Booking {
	b.FirstName = firstName
	b.LastName = lastName
	return b
}

type authResponse struct {
	Token string `json:"token"`
}

type createBookingResponse struct {
	BookingID int     `json:"bookingid"`
	Booking   Booking `json:"booking"`
}
