package config

import (
	"errors"
	"fmt"
)

// Errors returned by layout operations.
var (
	// ErrFileNotFound indicates the layout file doesn't exist.
	ErrFileNotFound = errors.New("layout file not found")

	// ErrInvalidLayout indicates the layout fails validation.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrWatcherClosed indicates an operation on a closed watcher.
	ErrWatcherClosed = errors.New("watcher closed")
)

// ParseError represents an error while parsing a layout file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
