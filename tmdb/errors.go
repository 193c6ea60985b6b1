package tmdb

import (
	"errors"
	"fmt"
)

// ErrNoCredential is returned before any network call when no API key is configured.
var ErrNoCredential = errors.New("tmdb: api key not configured")

// StatusError reports a non-2xx answer.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d", e.StatusCode)
}

// TransportError wraps a failure to reach TMDB.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps an undecodable response body.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tmdb: decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reason classifies err for structured logs.
func Reason(err error) string {
	var (
		status    *StatusError
		transport *TransportError
		parse     *ParseError
	)

	switch {
	case errors.Is(err, ErrNoCredential):
		return "credential"
	case errors.As(err, &status):
		return "status"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &parse):
		return "parse"
	default:
		return "unknown"
	}
}
