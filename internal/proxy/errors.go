package proxy

import "fmt"

// TranslationError means a configuration value is structurally invalid
// for the exec call. Detection is pure and happens before any container
// action.
type TranslationError struct {
	Field   string
	Value   string
	Message string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
}

// ExecutionError means the subordinate process could not be started at
// all. A subordinate that starts and exits non-zero is not an error;
// its exit code is propagated as dazel's own.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("starting in-container command: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
