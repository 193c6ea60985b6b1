package vixsrc

import "fmt"

// StatusError reports a non-2xx answer from the listing endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vixsrc: unexpected status %d", e.StatusCode)
}

// TransportError wraps a failure to reach VixSrc.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vixsrc: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps an undecodable listing.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vixsrc: decode listing: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
