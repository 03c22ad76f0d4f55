package stacclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is returned when the base URL option is missing or
	// not absolute.
	ErrInvalidBaseURL = errors.New("stacclient: invalid base URL")
	// ErrNilHTTPClient indicates a nil HTTP client was provided.
	ErrNilHTTPClient = errors.New("stacclient: http client cannot be nil")
)

// APIError represents a STAC error payload or plain HTTP failure from a
// non-search endpoint.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Raw    []byte `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Title != "" && e.Detail != "":
		return fmt.Sprintf("stacclient: %s (%s)", e.Title, e.Detail)
	case e.Title != "":
		return fmt.Sprintf("stacclient: %s", e.Title)
	case e.Detail != "":
		return fmt.Sprintf("stacclient: %s", e.Detail)
	default:
		return fmt.Sprintf("stacclient: api error status=%d", e.Status)
	}
}

// Temporary reports whether the error may be retried.
func (e *APIError) Temporary() bool {
	return e != nil && e.Status >= 500 && e.Status < 600
}
