package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidDateRange indicates a filter whose start date falls after its
// end date. It is rejected before any request is sent.
var ErrInvalidDateRange = errors.New("start date is after end date")

// NetworkError indicates the request never produced a response: DNS
// failure, refused connection, timeout, canceled context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError indicates the server responded with a non-2xx status. Message
// carries the response envelope's error field when one was decodable and a
// generic "HTTP <status>" string otherwise.
type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// DecodeError indicates a 2xx response whose body was not a valid JSON
// envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an HTTP 404 from the backend.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}
