package document

import (
	"errors"
	"fmt"
)

// Sentinel errors for document reading.
var (
	// ErrUnsupportedEncoding indicates an unknown source encoding name.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrNoContent indicates an EPUB container with no readable chapters.
	ErrNoContent = errors.New("no text content found")
)

// Error wraps a reading failure with the input it concerns.
type Error struct {
	Path string // Input file
	Op   string // Operation that failed ("open", "decode", "parse")
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("read %s: %s: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
