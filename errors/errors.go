// Package errors defines the input-validation errors reported at the
// library boundary. Both kinds are non-recoverable by the library: the
// caller must fix its input.
package errors

import "fmt"

// Error code constants
// E001-E099: input validation errors
const (
	CodeInvalidTagName  = "E001"
	CodeInvalidDocument = "E002"
)

// InputError represents a malformed input passed to the library.
type InputError struct {
	Code    string // "E001", "E002", etc.
	Message string // Human-readable message
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches by error code so callers can test against the sentinel
// values below with errors.Is.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel values for errors.Is matching.
var (
	// ErrInvalidTagName reports a tag name argument that is present but
	// not text-shaped.
	ErrInvalidTagName = &InputError{
		Code:    CodeInvalidTagName,
		Message: "component tag name must be a string",
	}

	// ErrInvalidDocument reports a documentation document without a
	// list-typed components collection.
	ErrInvalidDocument = &InputError{
		Code:    CodeInvalidDocument,
		Message: "documentation document must carry a components list",
	}
)

// NewInvalidTagName creates an InvalidTagName error describing the
// offending value.
func NewInvalidTagName(got any) *InputError {
	return &InputError{
		Code:    CodeInvalidTagName,
		Message: fmt.Sprintf("provide the tag name of the component as a string, got %T", got),
	}
}

// NewInvalidDocument creates an InvalidDocument error with the rejection
// reason.
func NewInvalidDocument(reason string) *InputError {
	return &InputError{
		Code:    CodeInvalidDocument,
		Message: fmt.Sprintf("register a valid documentation document first: %s", reason),
	}
}
