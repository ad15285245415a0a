package services

import (
	"fmt"
	"strings"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/validation"
)

// ErrorKind discriminates the closed set of failures the service layer can
// raise. Storage errors are not wrapped; they propagate unmodified so the
// dispatch boundary maps them to a generic 500.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
)

// Error is the single tagged failure type raised by the service layer.
// Handlers switch on Kind instead of inspecting concrete error types.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []validation.FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		msgs := make([]string, len(e.Fields))
		for i, fe := range e.Fields {
			msgs[i] = fe.Message
		}
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(msgs, "; "))
	}
	return e.Message
}

// NewValidationError aggregates one or more field errors into a failure.
func NewValidationError(fields []validation.FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// NewNotFoundError signals that the referenced entity has no row.
func NewNotFoundError(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}
