package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ClientError represents an error encountered when communicating with the PRF API.
// StatusCode 0 = the request never produced an HTTP response (network failure,
// request building, validation), >0 = HTTP response received.
type ClientError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// IsClientSide reports whether the error was raised before any HTTP response arrived
func (e *ClientError) IsClientSide() bool {
	return e.StatusCode == 0
}

// newConnectionError creates a ClientError for network/transport failures
func newConnectionError(err error) *ClientError {
	return &ClientError{
		StatusCode: 0,
		Message:    "Network error occurred",
		Err:        err,
	}
}

// newInternalError creates a ClientError for failures inside the client itself,
// supply the error and what was being done when it occurred
func newInternalError(err error, while string) *ClientError {
	return &ClientError{
		StatusCode: 0,
		Message:    fmt.Sprintf("internal error: %v while %s", err, while),
		Err:        err,
	}
}

// newValidationError creates a ClientError for input rejected before any network call
func newValidationError(msg string) *ClientError {
	return &ClientError{
		StatusCode: 0,
		Message:    msg,
	}
}

// newAPIError creates a ClientError from a non-2xx PRF API response.
// The backend's message field is used when present, otherwise a generic
// "HTTP error! status: N" message is returned.
func newAPIError(res *http.Response) *ClientError {
	var serverErr struct {
		Message string `json:"message"`
	}

	if res.Body != nil {
		// a body that isn't JSON just leaves the message empty
		_ = json.NewDecoder(res.Body).Decode(&serverErr)
	}

	msg := serverErr.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", res.StatusCode)
	}

	return &ClientError{
		StatusCode: res.StatusCode,
		Message:    msg,
	}
}
