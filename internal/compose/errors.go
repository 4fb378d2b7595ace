package compose

import "fmt"

// ErrorKind classifies descriptor failures.
type ErrorKind int

const (
	// NotFound means the compose descriptor does not exist.
	NotFound ErrorKind = iota

	// Unreadable means the descriptor exists but is not valid YAML.
	Unreadable

	// NoPrimaryContainer means no declared service matches the primary
	// build container convention.
	NoPrimaryContainer
)

// Error is a fatal descriptor error, reported before any container
// action is taken.
type Error struct {
	Kind ErrorKind
	Path string

	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}
