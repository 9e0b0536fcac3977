package client

import (
	"fmt"
)

// TransportError indicates that a request never produced an HTTP response: a connection
// failure, a timeout, or a malformed URL.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError indicates that the service responded with a status code other than the
// one the operation expects.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// ContractError indicates that the response had the expected status but its body did not
// satisfy the API contract, such as a missing or empty required field.
type ContractError struct {
	Field   string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("response violated API contract for %q: %s", e.Field, e.Message)
}
