// Package errors provides the typed errors shared by the bibledb tools.
//
// Every fatal condition maps to one of four sentinels so callers can
// classify a failure with errors.Is regardless of how deeply it was wrapped:
//
//	ErrConfig  - unusable destination path or directory
//	ErrInput   - source document missing, unreadable or of the wrong shape
//	ErrShape   - a chapter or composite verse key that cannot be parsed
//	ErrStorage - any SQLite failure (constraint violation, disk full, ...)
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes
var (
	// ErrConfig indicates an invalid or inaccessible destination
	ErrConfig = errors.New("configuration error")
	// ErrInput indicates the source document could not be used
	ErrInput = errors.New("invalid input")
	// ErrShape indicates a key inside the document could not be parsed
	ErrShape = errors.New("malformed document shape")
	// ErrStorage indicates the database rejected an operation
	ErrStorage = errors.New("storage error")
)

// ConfigError reports a path or directory that cannot be used
type ConfigError struct {
	Setting string // Setting being applied (e.g., "db", "source")
	Path    string // Offending path
	Message string // Human-readable reason
	Err     error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("invalid %s path %q: %s", e.Setting, e.Path, msg)
	}
	return fmt.Sprintf("invalid %s: %s", e.Setting, msg)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfig, e.Err}
	}
	return []error{ErrConfig}
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "mkdir", "open")
	Path      string // File/resource path involved
	Class     error  // Failure class sentinel (e.g., ErrInput), if any
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() []error {
	if e.Class != nil {
		return []error{e.Class, e.Err}
	}
	return []error{e.Err}
}

// ParseError represents a document that could not be decoded
type ParseError struct {
	Format  string // Format being parsed (e.g., "JSON", "xz")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInput, e.Err}
	}
	return []error{ErrInput}
}

// ShapeError reports a key inside the document that does not have the
// expected form, such as a verse key without its "chapter:verse" separator.
type ShapeError struct {
	Kind    string // Kind of key (e.g., "chapter", "verse", "comment")
	Key     string // The raw key
	Message string // What was wrong with it
	Err     error  // Underlying error, if any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed %s key %q: %s", e.Kind, e.Key, e.Message)
}

func (e *ShapeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrShape, e.Err}
	}
	return []error{ErrShape}
}

// StorageError wraps a failed database operation
type StorageError struct {
	Operation string // Operation being performed (e.g., "insert verse")
	Table     string // Table involved, if any
	Err       error  // Underlying driver error
}

func (e *StorageError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s on %s: %v", e.Operation, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// Helper functions for creating common errors

// NewConfig creates a ConfigError
func NewConfig(setting, path, message string) *ConfigError {
	return &ConfigError{
		Setting: setting,
		Path:    path,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewShape creates a ShapeError
func NewShape(kind, key, message string) *ShapeError {
	return &ShapeError{
		Kind:    kind,
		Key:     key,
		Message: message,
	}
}

// NewStorage creates a StorageError. If err is nil, returns nil.
func NewStorage(operation, table string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{
		Operation: operation,
		Table:     table,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
