package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrAlreadyExists = errors.New("resource already exists")

	// ErrReferentialIntegrity is returned when a delete would orphan dependent rows.
	ErrReferentialIntegrity = errors.New("blocked by dependent records")

	ErrModelUnavailable = errors.New("risk estimate unavailable")

	// ErrConflict covers concurrent writers racing on the same record, such as two bills for one period.
	ErrConflict = errors.New("resource conflict")

	ErrDatabase = errors.New("database error")

	ErrInternalServer = errors.New("internal server error")

	// ErrInvalidPaymentAmount rejects negative or fractional payments.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	ErrUnauthorized = errors.New("unauthorized")

	ErrForbidden = errors.New("forbidden")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &ValidationError{Field: field, Message: message})
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapDatabaseError(cause error, message string) error {
	return &AppError{
		Code:    "DB_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrDatabase, cause),
	}
}

// ConstraintError names the database constraint behind a blocked or conflicting write.
type ConstraintError struct {
	Kind       error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

// NewConstraintError wraps kind, one of ErrReferentialIntegrity, ErrConflict or ErrAlreadyExists.
func NewConstraintError(kind error, constraint string) error {
	return &ConstraintError{Kind: kind, Constraint: constraint}
}

func NewModelUnavailableError(model string, cause error) error {
	return &AppError{
		Code:    "MODEL_UNAVAILABLE",
		Message: fmt.Sprintf("model %q could not be loaded", model),
		Cause:   fmt.Errorf("%w: %w", ErrModelUnavailable, cause),
	}
}
