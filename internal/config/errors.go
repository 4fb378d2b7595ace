package config

import "fmt"

// ErrorKind classifies configuration failures.
type ErrorKind int

const (
	// MissingComposeFile means DAZEL_DOCKER_COMPOSE_FILE was unset or does
	// not resolve to an existing file under the workspace root.
	MissingComposeFile ErrorKind = iota

	// ParseFailure means the .dazelrc file is malformed.
	ParseFailure
)

// Error is a fatal configuration error. It is reported before any
// container runtime subprocess is spawned.
type Error struct {
	Kind ErrorKind

	// Key is the configuration key involved, if any.
	Key string

	// Line is the 1-based .dazelrc line number for parse failures, 0 otherwise.
	Line int

	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s line %d: %s", RCFileName, e.Line, e.Message)
	case e.Key != "":
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	default:
		return e.Message
	}
}
