package errors

import "fmt"

// DocumentError is a fatal per-document validation error. File identity is
// always present; the proposal number is attached only once it is known to be
// trustworthy (parsed and matched against the filename).
type DocumentError struct {
	File    string
	Number  int
	HasNum  bool
	Message string
}

// NewDocumentError creates a validation error attributed to a file only.
func NewDocumentError(file, message string) *DocumentError {
	return &DocumentError{File: file, Message: message}
}

// NewDocumentErrorf creates a file-attributed validation error with formatting.
func NewDocumentErrorf(file, format string, args ...any) *DocumentError {
	return &DocumentError{File: file, Message: fmt.Sprintf(format, args...)}
}

// WithNumber attaches a known-valid proposal number to the error.
func (e *DocumentError) WithNumber(number int) *DocumentError {
	e.Number = number
	e.HasNum = true
	return e
}

func (e *DocumentError) Error() string {
	if e.HasNum {
		return fmt.Sprintf("YEP %d (%s): %s", e.Number, e.File, e.Message)
	}
	return fmt.Sprintf("(%s): %s", e.File, e.Message)
}
