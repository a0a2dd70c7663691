package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers transport failures, non-2xx responses and malformed JSON
	ErrNetwork = errors.New("network error")
	// ErrNotFound means a detail lookup has no matching record
	ErrNotFound = errors.New("not found")
)

// RequestError describes a failed request against one endpoint.
// Err is ErrNetwork or ErrNotFound, optionally wrapping the underlying cause.
type RequestError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("GET %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("GET %s: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Message returns a short user-facing description of a fetch error
func Message(err error) string {
	var reqErr *RequestError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "No Pokémon matches that id."
	case errors.As(err, &reqErr) && reqErr.Status != 0:
		return fmt.Sprintf("The Pokédex server answered with status %d.", reqErr.Status)
	default:
		return "Could not reach the Pokédex server. Is it running?"
	}
}

// kindError pairs a sentinel with its cause so both satisfy errors.Is
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return fmt.Sprintf("%v: %v", e.kind, e.cause)
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return &kindError{kind: kind, cause: cause}
}
