package lifecycle

import "fmt"

// ErrorKind classifies lifecycle failures.
type ErrorKind int

const (
	// Timeout means the primary container never became responsive within
	// the bounded readiness window, across all restart attempts.
	Timeout ErrorKind = iota

	// RuntimeUnavailable means the container runtime itself could not be
	// invoked or kept failing.
	RuntimeUnavailable
)

// Error is a fatal lifecycle failure for this invocation. The
// environment may be left starting or degraded for the next invocation
// to recover; dazel never retries across invocations.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }
