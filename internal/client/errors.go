package client

import (
	"errors"
	"fmt"
)

// TransportError means the server could not be reached or its reply could
// not be read: connection failures, timeouts, bodies that are not JSON, and
// error statuses that carry no server message.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError means the server answered and refused the request,
// either with {"success": false, "error": "..."} or a non-2xx status whose
// JSON body names the reason.
type ApplicationError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *ApplicationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

// IsTransport reports whether err carries a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsApplication reports whether err carries an ApplicationError
func IsApplication(err error) bool {
	var ae *ApplicationError
	return errors.As(err, &ae)
}
