package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// View state errors
	CodeViewNotFound       ErrorCode = "VIEW_NOT_FOUND"
	CodeInvalidOption      ErrorCode = "INVALID_OPTION"
	CodeUnknownSection     ErrorCode = "UNKNOWN_SECTION"
	CodeFeatureUnavailable ErrorCode = "FEATURE_UNAVAILABLE"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// Sentinel errors returned by the state machines. They carry no HTTP meaning;
// services translate them into DomainErrors.
var (
	ErrNoQuestions      = errors.New("quiz has no questions")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrEmptyCarousel    = errors.New("carousel has no slides")
	ErrUnknownSection   = errors.New("section is not part of this page")
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is echoed back to API clients.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewViewNotFoundError(viewID string) *DomainError {
	return NewError(CodeViewNotFound, fmt.Sprintf("View not found with ID: %s", viewID), nil).
		WithContext("view_id", viewID)
}

func NewInvalidOptionError(option, optionCount int) *DomainError {
	return NewError(CodeInvalidOption, fmt.Sprintf("Option %d is not between 0 and %d", option, optionCount-1), ErrOptionOutOfRange).
		WithContext("option", option)
}

func NewUnknownSectionError(sectionID string) *DomainError {
	return NewError(CodeUnknownSection, fmt.Sprintf("Unknown section: %s", sectionID), ErrUnknownSection).
		WithContext("section_id", sectionID)
}

func NewFeatureUnavailableError(feature string, page Page) *DomainError {
	return NewError(CodeFeatureUnavailable, fmt.Sprintf("The %s page has no %s", page, feature), nil).
		WithContext("page", string(page))
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a validation error that is not tied to a field.
func NewValidationError(message string) error {
	return ValidationError{Code: CodeValidation, Message: message}
}

// ValidationErrors collects every failure found in a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "field has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("value must be between %d and %d", min, max),
		Value:   value,
	}
}
