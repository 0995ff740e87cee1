package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates a network or IO failure reaching the remote service.
	ErrTransport = errors.New("transport failure")

	// ErrDecoding indicates malformed JSON or an invalid record.
	ErrDecoding = errors.New("decoding failure")

	// ErrNotFound indicates that a record is unknown even after a refresh.
	ErrNotFound = errors.New("record not found")
)

// TransportError describes a failed request against a remote endpoint.
type TransportError struct {
	// Endpoint is the URL that was requested.
	Endpoint string
	// Status is the HTTP status code, or 0 if no response was received.
	Status int
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("GET %s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("GET %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodingError describes a payload or record that could not be decoded.
type DecodingError struct {
	// Record names the record being decoded, e.g. "emoji 7". Empty when the
	// payload itself was malformed.
	Record string
	// Field is the offending field, if known.
	Field string
	// Err is the underlying cause.
	Err error
}

func (e *DecodingError) Error() string {
	msg := "decode"
	if e.Record != "" {
		msg += " " + e.Record
	}
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodingError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecoding.
func (e *DecodingError) Is(target error) bool { return target == ErrDecoding }

// NotFoundError reports a record missing after a refresh.
type NotFoundError struct {
	// Kind is the record kind, e.g. "emoji" or "pack".
	Kind string
	// ID is the identifier that was looked up.
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s with ID [%d] was found", e.Kind, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Decoding builds a DecodingError for a field of a record.
func Decoding(record, field string, err error) error {
	return &DecodingError{Record: record, Field: field, Err: err}
}
