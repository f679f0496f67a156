package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeUsage             = "USAGE_ERROR"
	ErrCodeLookup            = "LOOKUP_ERROR"
	ErrCodePersistence       = "PERSISTENCE_ERROR"
	ErrCodeEmptyQuestionBank = "EMPTY_QUESTION_BANK"
	ErrCodeValidation        = "VALIDATION_ERROR"
)

// AppError represents an application error with a code and a console message
type AppError struct {
	Code    string // Error code (e.g., "USAGE_ERROR", "LOOKUP_ERROR")
	Message string // Message shown on the console
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUsageError reports a malformed command invocation.
func NewUsageError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUsage,
		Message: message,
	}
}

// NewLookupError reports an unresolved username, subject, difficulty or quiz selector.
func NewLookupError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeLookup,
		Message: message,
	}
}

// NewPersistenceError wraps a failure of the roster store.
func NewPersistenceError(op string, err error) *AppError {
	return &AppError{
		Code:    ErrCodePersistence,
		Message: fmt.Sprintf("failed to %s", op),
		Err:     err,
	}
}

// NewEmptyQuestionBankError rejects a quiz that has no questions.
func NewEmptyQuestionBankError(subjectID, difficulty string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyQuestionBank,
		Message: fmt.Sprintf("There are no %s questions for %s!", difficulty, subjectID),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// UserMessage returns the text to print on the console for err. Errors that are
// not an AppError are reported with a generic prefix.
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if appErr.Code == ErrCodePersistence {
			return "error: " + appErr.Message
		}
		return appErr.Message
	}
	return "error: " + err.Error()
}
