package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation     ErrorCode = "validation"
	ErrorCodeConflict       ErrorCode = "conflict"
	ErrorCodeAuthentication ErrorCode = "authentication"
	ErrorCodeAuthorization  ErrorCode = "authorization"
	ErrorCodeNotFound       ErrorCode = "not_found"
	ErrorCodeInternal       ErrorCode = "internal"
)

// Error is the typed outcome every service returns for expected failures.
// Message is safe to show to clients.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code ErrorCode, message string) error {
	return &Error{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewError(ErrorCodeValidation, message)
}

func NewConflictError(message string) error {
	return NewError(ErrorCodeConflict, message)
}

func NewAuthenticationError(message string) error {
	return NewError(ErrorCodeAuthentication, message)
}

func NewAuthorizationError(message string) error {
	return NewError(ErrorCodeAuthorization, message)
}

func NewNotFoundError(message string) error {
	return NewError(ErrorCodeNotFound, message)
}

func AsError(err error) (*Error, bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsError(err)
	return ok && serviceErr.Code == code
}
