package client

import (
	"errors"
	"strings"
)

var (
	// ErrNoToken: an auth-required operation was attempted with no bearer
	// token available. Nothing is sent over the wire.
	ErrNoToken = errors.New("client: no bearer token available")

	// ErrInvalidData: the response JSON did not match the expected
	// data/nesting key structure. This is a client/schema mismatch, not a
	// business outcome.
	ErrInvalidData = errors.New("client: response shape mismatch")

	// ErrUnimplemented: the operation has no catalog document yet.
	ErrUnimplemented = errors.New("client: operation not implemented")
)

// TransportError wraps a connectivity, timeout, TLS or cancellation failure
// from the transport, unretried and uninterpreted.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "client: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BackendError is a legitimate business failure: the server returned no
// usable payload, with zero or more human-readable messages in server
// order. Callers present the messages; this is not a bug.
type BackendError struct {
	Messages []string
}

func (e *BackendError) Error() string {
	if len(e.Messages) == 0 {
		return "client: backend returned no data"
	}
	return "client: backend: " + strings.Join(e.Messages, "; ")
}

// DecodeError wraps a structural decode failure: a payload was present but
// a field had the wrong type, a date would not parse, or an enum code was
// unrecognized.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "client: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
