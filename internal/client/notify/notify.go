// Package notify reports operation outcomes to the user.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Sink receives one message per operation outcome. Implementations must not
// block for long; callers ignore whatever happens inside.
type Sink interface {
	Notify(message string, kind Kind)
}

// ConsoleSink writes "[kind] message" lines to w.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Notify(message string, kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, "[%s] %s\n", kind, message)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(message string, kind Kind)

func (f SinkFunc) Notify(message string, kind Kind) { f(message, kind) }

// Multi fans a notification out to every sink, in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(message string, kind Kind) {
		for _, s := range sinks {
			s.Notify(message, kind)
		}
	})
}
