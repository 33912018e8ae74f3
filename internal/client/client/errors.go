package client

import (
	"errors"
	"fmt"
)

var (
	ErrTransport        = errors.New("transport error")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// TransportError describes a failed round trip. Status is zero when no
// response was received.
type TransportError struct {
	Op        string
	Method    string
	Path      string
	Status    int
	RequestID string
	Err       error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s %s: status %d: %v", e.Op, e.Method, e.Path, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
