package morph

import (
	"errors"
	"fmt"
)

// Sentinel errors for morphology operations.
var (
	// ErrUnknownProvider indicates the requested provider is not registered.
	ErrUnknownProvider = errors.New("unknown morphology provider")

	// ErrBadDictionary indicates a lemma dictionary could not be parsed.
	ErrBadDictionary = errors.New("malformed lemma dictionary")
)

// Error wraps provider errors with context.
type Error struct {
	Provider string // Provider name ("dict", ...)
	Op       string // Operation that failed ("load", "lemma")
	Err      error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
