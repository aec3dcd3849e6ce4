package app

import (
	"errors"
	"fmt"
	"net/http"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// NotFoundError is returned when requested entity doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// TransportError is returned when fetching data from github fails.
// StatusCode is 0 when no response was received.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

// Error implements error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns wrapped error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport tells that this error is 'transport error'.
// Returns always true.
func (*TransportError) IsTransport() bool {
	return true
}

// IsUpstreamNotFound tells if github responded with 404.
func (e *TransportError) IsUpstreamNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// IsNotFoundError checks if given error is caused by missing entity
func IsNotFoundError(err error) bool {
	var nfe interface {
		IsNotFound() bool
	}
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// IsTransportError checks if given error is caused by failed github call
func IsTransportError(err error) bool {
	var te interface {
		IsTransport() bool
	}
	if errors.As(err, &te) {
		return te.IsTransport()
	}

	return false
}
