// Package errors provides the typed error taxonomy for registration outcomes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound  ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	ErrCodeCapacityExceeded  ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeNotRegistered     ErrorCode = "NOT_REGISTERED"
	ErrCodeInvalidEmail      ErrorCode = "INVALID_EMAIL"
)

// RegistrationError represents a structured, caller-recoverable application error.
// Every failure mode of the registry maps to exactly one code so the transport
// layer can translate each into its own status and message.
type RegistrationError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("RegistrationError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to its transport status. Unknown activities
// are 404, every other registration failure is a 400.
func (e *RegistrationError) HTTPStatus() int {
	if e.Code == ErrCodeActivityNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// NewActivityNotFoundError reports a lookup of an activity that was never seeded.
func NewActivityNotFoundError(activity string) *RegistrationError {
	return &RegistrationError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyRegisteredError reports a duplicate signup for the same activity.
func NewAlreadyRegisteredError(activity, email string) *RegistrationError {
	return &RegistrationError{
		Code:      ErrCodeAlreadyRegistered,
		Message:   "Student already signed up for this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", activity, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewCapacityExceededError reports a signup against a full roster.
func NewCapacityExceededError(activity string, max int) *RegistrationError {
	return &RegistrationError{
		Code:      ErrCodeCapacityExceeded,
		Message:   "Activity is full",
		Details:   fmt.Sprintf("activity: %s, max_participants: %d", activity, max),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError reports an unregister for a student who is not a member.
func NewNotRegisteredError(activity, email string) *RegistrationError {
	return &RegistrationError{
		Code:      ErrCodeNotRegistered,
		Message:   "Student not registered for this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", activity, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidEmailError reports a missing or blank email at the transport boundary.
func NewInvalidEmailError() *RegistrationError {
	return &RegistrationError{
		Code:      ErrCodeInvalidEmail,
		Message:   "Email is required",
		Timestamp: time.Now().UTC(),
	}
}

// AsRegistrationError unwraps err into a *RegistrationError if possible.
func AsRegistrationError(err error) (*RegistrationError, bool) {
	var regErr *RegistrationError
	if errors.As(err, &regErr) {
		return regErr, true
	}
	return nil, false
}

// CodeOf returns the error code of err, or empty when err is not a RegistrationError.
func CodeOf(err error) ErrorCode {
	if regErr, ok := AsRegistrationError(err); ok {
		return regErr.Code
	}
	return ""
}

// IsNotFound reports whether err is an unknown-activity error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeActivityNotFound
}

// IsAlreadyRegistered reports whether err is a duplicate-signup error.
func IsAlreadyRegistered(err error) bool {
	return CodeOf(err) == ErrCodeAlreadyRegistered
}

// IsCapacityExceeded reports whether err is a full-roster error.
func IsCapacityExceeded(err error) bool {
	return CodeOf(err) == ErrCodeCapacityExceeded
}

// IsNotRegistered reports whether err is an unregister-of-non-member error.
func IsNotRegistered(err error) bool {
	return CodeOf(err) == ErrCodeNotRegistered
}
