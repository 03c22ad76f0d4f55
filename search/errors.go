package search

import (
	"errors"
	"fmt"
)

// ErrInvalidQueryType is returned by Build when the base query is not
// search-capable. This indicates a programming error, not bad user input.
var ErrInvalidQueryType = errors.New("search: query is not a search query")

// InvalidParameterError reports a single filter field that failed
// validation. The field name matches the wire parameter key.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("search: invalid parameter %q: %s", e.Field, e.Reason)
}

// UnsupportedVerbError reports a query configured with a verb other than
// GET or POST.
type UnsupportedVerbError struct {
	Verb Verb
}

func (e *UnsupportedVerbError) Error() string {
	return fmt.Sprintf("search: unsupported verb %q", string(e.Verb))
}

// UnsupportedCombinationError reports a parameter that cannot be sent with
// the configured verb. The request is never dispatched.
type UnsupportedCombinationError struct {
	Verb   Verb
	Param  string
	Reason string
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("search: parameter %q cannot be sent with %s: %s", e.Param, string(e.Verb), e.Reason)
}

// UnexpectedResponseError reports a response with a non-success status or an
// unrecognized content type. Body carries the raw payload for diagnosis.
type UnexpectedResponseError struct {
	Status      int
	ContentType string
	Body        []byte
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("search: unexpected response status=%d content-type=%q", e.Status, e.ContentType)
}

// MalformedBodyError reports a success response whose body did not decode
// as JSON.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("search: malformed response body: %v", e.Err)
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}
