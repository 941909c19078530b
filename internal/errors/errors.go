package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the CLI can report it meaningfully.
type Kind string

const (
	KindConfig     Kind = "CONFIG"
	KindData       Kind = "DATA"
	KindValidation Kind = "VALIDATION"
	KindRender     Kind = "RENDER"
	KindStorage    Kind = "STORAGE"
)

// ReportError is the error type used across the report pipeline.
type ReportError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *ReportError) Unwrap() error {
	return e.Cause
}

// New creates a ReportError of the given kind.
func New(kind Kind, message string, cause error) *ReportError {
	return &ReportError{Kind: kind, Message: message, Cause: cause}
}

// NewConfigError reports a configuration problem.
func NewConfigError(message string, cause error) *ReportError {
	return New(KindConfig, message, cause)
}

// NewDataError reports a problem producing the input dataset.
func NewDataError(message string, cause error) *ReportError {
	return New(KindData, message, cause)
}

// NewValidationError reports malformed input records.
func NewValidationError(message string, cause error) *ReportError {
	return New(KindValidation, message, cause)
}

// NewRenderError reports a failure assembling an output artifact.
func NewRenderError(message string, cause error) *ReportError {
	return New(KindRender, message, cause)
}

// NewStorageError reports an I/O failure writing an output file.
func NewStorageError(message string, cause error) *ReportError {
	return New(KindStorage, message, cause)
}

// KindOf returns the kind of err if it is (or wraps) a ReportError.
func KindOf(err error) (Kind, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return "", false
}
