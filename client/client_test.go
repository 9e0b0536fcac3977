package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/booking-qa/booking-contract-tests/logging"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = time.Second * 5

var testBooking = Booking{
	FirstName:   "Ebrahim",
	LastName:    "Hossain",
	TotalPrice:  100,
	DepositPaid: true,
	BookingDates: BookingDates{
		CheckIn:  "2023-01-01",
		CheckOut: "2023-01-05",
	},
	AdditionalNeeds: "Breakfast",
}

func newTestClient(server *httptest.Server) *BookingServiceClient {
	return NewBookingServiceClient(server.URL, testTimeout, logging.NullLogger())
}

func requireRequest(t *testing.T, requests <-chan httphelpers.HTTPRequestInfo) httphelpers.HTTPRequestInfo {
	select {
	case r := <-requests:
		return r
	default:
		require.Fail(t, "no request was received")
		return httphelpers.HTTPRequestInfo{}
	}
}

func TestPingSucceedsOn200(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	defer server.Close()

	err := newTestClient(server).Ping(logging.NullLogger())
	assert.NoError(t, err)
}

func TestPingReturnsStatusErrorOnNon200(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(503))
	defer server.Close()

	err := newTestClient(server).Ping(logging.NullLogger())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 503, statusErr.StatusCode)
}

func TestPingReturnsTransportErrorWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close() // deliberately unreachable

	err := newTestClient(server).Ping(logging.NullLogger())
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestCreateTokenSendsCredentialsAndReturnsToken(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(map[string]string{"token": "abc123"}, nil))
	server := httptest.NewServer(handler)
	defer server.Close()

	token, err := newTestClient(server).CreateToken(
		Credentials{Username: "admin", Password: "password123"}, logging.NullLogger())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	r := requireRequest(t, requests)
	assert.Equal(t, "POST", r.Request.Method)
	assert.Equal(t, "/auth", r.Request.URL.Path)
	assert.JSONEq(t, `{"username": "admin", "password": "password123"}`, string(r.Body))
}

func TestCreateTokenReturnsContractErrorWhenTokenMissing(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(map[string]string{}, nil))
	defer server.Close()

	_, err := newTestClient(server).CreateToken(Credentials{}, logging.NullLogger())
	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	assert.Equal(t, "token", contractErr.Field)
}

func TestCreateTokenReturnsStatusErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(403))
	defer server.Close()

	_, err := newTestClient(server).CreateToken(Credentials{}, logging.NullLogger())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 403, statusErr.StatusCode)
}

func TestCreateBookingReturnsIDAndEchoedBooking(t *testing.T) {
	response := map[string]interface{}{"bookingid": 7, "booking": testBooking}
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(response, nil))
	server := httptest.NewServer(handler)
	defer server.Close()

	id, created, err := newTestClient(server).CreateBooking(testBooking, logging.NullLogger())
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, testBooking, created)

	r := requireRequest(t, requests)
	assert.Equal(t, "POST", r.Request.Method)
	assert.Equal(t, "/booking", r.Request.URL.Path)
	assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
	assert.Empty(t, r.Request.Header.Get("Cookie")) // creation is unauthenticated
	assert.JSONEq(t,
		`{"firstname": "Ebrahim", "lastname": "Hossain", "totalprice": 100, "depositpaid": true,`+
			`"bookingdates": {"checkin": "2023-01-01", "checkout": "2023-01-05"}, "additionalneeds": "Breakfast"}`,
		string(r.Body))
}

func TestCreateBookingReturnsContractErrorWhenIDMissing(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(map[string]interface{}{"booking": testBooking}, nil))
	defer server.Close()

	_, _, err := newTestClient(server).CreateBooking(testBooking, logging.NullLogger())
	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	assert.Equal(t, "bookingid", contractErr.Field)
}

func TestGetBookingReturnsBooking(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(testBooking, nil))
	server := httptest.NewServer(handler)
	defer server.Close()

	booking, err := newTestClient(server).GetBooking(7, logging.NullLogger())
	require.NoError(t, err)
	assert.Equal(t, testBooking, booking)

	r := requireRequest(t, requests)
	assert.Equal(t, "GET", r.Request.Method)
	assert.Equal(t, "/booking/7", r.Request.URL.Path)
}

func TestGetBookingReturns404AsStatusError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(404))
	defer server.Close()

	_, err := newTestClient(server).GetBooking(7, logging.NullLogger())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)
}

func TestUpdateBookingSendsCookieTokenHeader(t *testing.T) {
	updated := testBooking.WithName("UpdatedName", "UpdatedLastName")
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(updated, nil))
	server := httptest.NewServer(handler)
	defer server.Close()

	result, err := newTestClient(server).UpdateBooking(7, "abc123", updated, logging.NullLogger())
	require.NoError(t, err)
	assert.Equal(t, "UpdatedName", result.FirstName)

	r := requireRequest(t, requests)
	assert.Equal(t, "PUT", r.Request.Method)
	assert.Equal(t, "/booking/7", r.Request.URL.Path)
	assert.Equal(t, "token=abc123", r.Request.Header.Get("Cookie"))
}

func TestDeleteBookingSucceedsOn201(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(201))
	server := httptest.NewServer(handler)
	defer server.Close()

	err := newTestClient(server).DeleteBooking(7, "abc123", logging.NullLogger())
	require.NoError(t, err)

	r := requireRequest(t, requests)
	assert.Equal(t, "DELETE", r.Request.Method)
	assert.Equal(t, "/booking/7", r.Request.URL.Path)
	assert.Equal(t, "token=abc123", r.Request.Header.Get("Cookie"))
}

func TestDeleteBookingTreatsOtherStatusAsError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	defer server.Close()

	err := newTestClient(server).DeleteBooking(7, "abc123", logging.NullLogger())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 200, statusErr.StatusCode)
}

func TestRequestsAreLoggedForDiagnosis(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(map[string]string{"token": "abc123"}, nil))
	defer server.Close()

	var logger logging.CapturingLogger
	_, err := newTestClient(server).CreateToken(
		Credentials{Username: "admin", Password: "password123"}, &logger)
	require.NoError(t, err)

	var all []string
	for _, m := range logger.Output() {
		all = append(all, m.Message)
	}
	joined := strings.Join(all, "\n")
	assert.Contains(t, joined, "POST "+server.URL+"/auth")
	assert.Contains(t, joined, `"username":"admin"`)
	assert.Contains(t, joined, "Response status: 200")
	assert.Contains(t, joined, `"token":"abc123"`)
	assert.Contains(t, joined, "curl")
}

func TestTimeoutIsReportedAsTransportError(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	c := NewBookingServiceClient(server.URL, time.Millisecond*50, logging.NullLogger())
	err := c.Ping(logging.NullLogger())
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
