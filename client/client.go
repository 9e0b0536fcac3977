package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/booking-qa/booking-contract-tests/logging"

	"github.com/alessio/shellescape"
)

// BookingServiceClient manages communication with the booking API under test. Every
// operation takes a Logger; the full request and response (endpoint, payload, status,
// body) are logged there regardless of outcome, so a failed step can always be
// diagnosed from its captured output.
//
// The underlying http.Client enforces a fixed per-call timeout. There are no retries
// at any layer.
type BookingServiceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewBookingServiceClient creates a client for the service at baseURL. The fallback
// logger receives the debug output of any operation that is not given its own logger.
func NewBookingServiceClient(baseURL string, timeout time.Duration, fallbackLogger logging.Logger) *BookingServiceClient {
	if fallbackLogger == nil {
		fallbackLogger = logging.NullLogger()
	}
	return &BookingServiceClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     fallbackLogger,
	}
}

func (c *BookingServiceClient) BaseURL() string {
	return c.baseURL
}

// Ping checks that the service is reachable. It succeeds only on a 200 response from
// the base endpoint; any transport failure is returned as an error.
func (c *BookingServiceClient) Ping(logger logging.Logger) error {
	status, body, err := c.do("GET", c.baseURL, nil, "", logger)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &StatusError{Method: "GET", URL: c.baseURL, StatusCode: status, Body: string(body)}
	}
	return nil
}

// CreateToken authenticates with the given credentials and returns the session token.
func (c *BookingServiceClient) CreateToken(creds Credentials, logger logging.Logger) (string, error) {
	url := c.baseURL + "/auth"
	status, body, err := c.do("POST", url, creds, "", logger)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", &StatusError{Method: "POST", URL: url, StatusCode: status, Body: string(body)}
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ContractError{Field: "token", Message: fmt.Sprintf("malformed auth response: %s", string(body))}
	}
	if resp.Token == "" {
		return "", &ContractError{Field: "token", Message: "no token in response"}
	}
	return resp.Token, nil
}

// CreateBooking creates a booking from the given payload and returns its new ID along
// with the booking the service echoed back. The API does not require authentication
// for creation.
func (c *BookingServiceClient) CreateBooking(booking Booking, logger logging.Logger) (int, Booking, error) {
	url := c.baseURL + "/booking"
	status, body, err := c.do("POST", url, booking, "", logger)
	if err != nil {
		return 0, Booking{}, err
	}
	if status != http.StatusOK {
		return 0, Booking{}, &StatusError{Method: "POST", URL: url, StatusCode: status, Body: string(body)}
	}
	var resp createBookingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, Booking{}, &ContractError{Field: "bookingid", Message: fmt.Sprintf("malformed create response: %s", string(body))}
	}
	if resp.BookingID == 0 {
		return 0, Booking{}, &ContractError{Field: "bookingid", Message: fmt.Sprintf("no bookingid in response: %s", string(body))}
	}
	return resp.BookingID, resp.Booking, nil
}

// GetBooking fetches a booking by ID. A 404 is returned as a StatusError with that
// code, so callers can distinguish "gone" from other failures.
func (c *BookingServiceClient) GetBooking(id int, logger logging.Logger) (Booking, error) {
	url := c.bookingURL(id)
	status, body, err := c.do("GET", url, nil, "", logger)
	if err != nil {
		return Booking{}, err
	}
	if status != http.StatusOK {
		return Booking{}, &StatusError{Method: "GET", URL: url, StatusCode: status, Body: string(body)}
	}
	var booking Booking
	if err := json.Unmarshal(body, &booking); err != nil {
		return Booking{}, &ContractError{Field: "booking", Message: fmt.Sprintf("malformed booking response: %s", string(body))}
	}
	return booking, nil
}

// UpdateBooking replaces a booking in full. The session token is sent as a cookie-style
// header value ("token=..."), not a bearer authorization header; that is what this API
// requires for mutating requests.
func (c *BookingServiceClient) UpdateBooking(id int, token string, booking Booking, logger logging.Logger) (Booking, error) {
	url := c.bookingURL(id)
	status, body, err := c.do("PUT", url, booking, token, logger)
	if err != nil {
		return Booking{}, err
	}
	if status != http.StatusOK {
		return Booking{}, &StatusError{Method: "PUT", URL: url, StatusCode: status, Body: string(body)}
	}
	var updated Booking
	if err := json.Unmarshal(body, &updated); err != nil {
		return Booking{}, &ContractError{Field: "booking", Message: fmt.Sprintf("malformed update response: %s", string(body))}
	}
	return updated, nil
}

// DeleteBooking deletes a booking using the same cookie-style token header as
// UpdateBooking. This API reports a successful delete with status 201.
func (c *BookingServiceClient) DeleteBooking(id int, token string, logger logging.Logger) error {
	url := c.bookingURL(id)
	status, body, err := c.do("DELETE", url, nil, token, logger)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &StatusError{Method: "DELETE", URL: url, StatusCode: status, Body: string(body)}
	}
	return nil
}

func (c *BookingServiceClient) bookingURL(id int) string {
	return fmt.Sprintf("%s/booking/%d", c.baseURL, id)
}

// do executes a single request and returns the response status and body. A non-nil
// error always means the request itself could not be completed; status checking is
// left to the caller. If token is non-empty it is sent as a Cookie header.
func (c *BookingServiceClient) do(
	method string,
	url string,
	jsonBody interface{},
	token string,
	logger logging.Logger,
) (int, []byte, error) {
	if logger == nil {
		logger = c.logger
	} else {
		// the fallback logger doubles as a real-time mirror of all traffic; the
		// per-step logger only surfaces its capture after the step ends
		logger = logging.MultiLogger(logger, c.logger)
	}

	var payload []byte
	var bodyReader *bytes.Buffer
	if jsonBody != nil {
		data, err := json.Marshal(jsonBody)
		if err != nil {
			return 0, nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		payload = data
		bodyReader = bytes.NewBuffer(data)
	}

	var req *http.Request
	var err error
	if bodyReader != nil {
		req, err = http.NewRequest(method, url, bodyReader)
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return 0, nil, &TransportError{Method: method, URL: url, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Cookie", "token="+token)
	}

	logger.Printf("%s %s", method, url)
	if payload != nil {
		logger.Printf("Request payload: %s", string(payload))
	}
	logger.Printf("Reproduce with: %s", curlCommand(req, payload, token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Printf("Request error: %s", err)
		return 0, nil, &TransportError{Method: method, URL: url, Err: err}
	}

	var body []byte
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			logger.Printf("Error reading response body: %s", err)
			return 0, nil, &TransportError{Method: method, URL: url, Err: err}
		}
	}

	logger.Printf("Response status: %d", resp.StatusCode)
	logger.Printf("Response body: %s", string(body))

	return resp.StatusCode, body, nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

func curlCommand(req *http.Request, payload []byte, token string) string {
	var cmd commandBuilder
	cmd.add("curl", "-s", "-X", req.Method)
	if token != "" {
		cmd.add("-H", "Cookie: token="+token)
	}
	if payload != nil {
		cmd.add("-H", "Content-Type: application/json", "-d", string(payload))
	}
	cmd.add(req.URL.String())
	return cmd.String()
}
