// Package errors provides a standardized error format for genuine
// precondition violations inside the inference core — a handle used
// against the wrong arena, a nil collaborator. Typing faults are never
// reported this way: those are diagnostic.Diagnostic values, accumulated
// as data rather than raised as errors.
package errors

import (
	"fmt"
	"runtime"
)

// ErrorCategory groups precondition violations by what was violated.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategorySystem     ErrorCategory = "SYSTEM"
)

// StandardError is a consistent error shape carrying the category, a
// machine-readable code, a message, free-form context, and the caller
// that raised it.
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// NewStandardError builds a StandardError, capturing the immediate caller
// for diagnosability.
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// InvalidHandle reports a handle whose index falls outside the arena it
// was looked up in — a caller bug, never a consequence of program text
// being typed.
func InvalidHandle(index, length int) *StandardError {
	return NewStandardError(CategoryValidation, "INVALID_HANDLE",
		fmt.Sprintf("handle index %d out of bounds for arena of length %d", index, length),
		map[string]interface{}{"index": index, "length": length})
}

// MissingCollaborator reports a required collaborator (e.g. Scopes) that
// was not supplied before inference started.
func MissingCollaborator(name string) *StandardError {
	return NewStandardError(CategorySystem, "MISSING_COLLABORATOR",
		fmt.Sprintf("%s was not provided", name),
		map[string]interface{}{"collaborator": name})
}
