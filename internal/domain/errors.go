package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeConflict     ErrorCode = "CONFLICT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Auth errors
	CodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Journal errors
	CodeVerseNotFound ErrorCode = "VERSE_NOT_FOUND"

	// Quiz errors
	CodeQuizSessionNotFound ErrorCode = "QUIZ_SESSION_NOT_FOUND"
	CodeInsufficientVerses  ErrorCode = "INSUFFICIENT_VERSES"
	CodeInvalidQuizState    ErrorCode = "INVALID_QUIZ_STATE"

	// Bible lookup errors
	CodeBiblePassageNotFound ErrorCode = "BIBLE_PASSAGE_NOT_FOUND"
	CodeBibleServiceError    ErrorCode = "BIBLE_SERVICE_ERROR"
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

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a detail to the error and returns it.
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

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewEmailTakenError(email string) *DomainError {
	return NewError(CodeEmailTaken, "An account with this email already exists", nil).WithContext("email", email)
}

func NewInvalidCredentialsError() *DomainError {
	return NewError(CodeInvalidCredentials, "Invalid email or password", nil)
}

func NewVerseNotFoundError(verseID string) *DomainError {
	return NewError(CodeVerseNotFound, fmt.Sprintf("Verse not found with ID: %s", verseID), nil)
}

func NewQuizSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeQuizSessionNotFound, fmt.Sprintf("Quiz session not found: %s", sessionID), nil)
}

func NewInsufficientVersesError(have, need int, cause error) *DomainError {
	return NewError(CodeInsufficientVerses,
		fmt.Sprintf("Add at least %d verses to start the quiz mode!", need), cause).
		WithContext("have", have).
		WithContext("need", need)
}

func NewInvalidQuizStateError(cause error) *DomainError {
	return NewError(CodeInvalidQuizState, "Quiz session is not in a state that allows this action", cause)
}

func NewBiblePassageNotFoundError(reference string) *DomainError {
	return NewError(CodeBiblePassageNotFound, fmt.Sprintf("Passage not found: %s", reference), nil)
}

func NewBibleServiceError(err error) *DomainError {
	return NewError(CodeBibleServiceError, "Failed to load passage from the Bible service", err)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a request.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: "field has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("field must be between %d and %d", min, max),
		Value:   value,
	}
}
