package domain

import (
	"errors"
	"fmt"
)

// Error kinds. The delivery layer picks a status code with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream failure")
	ErrConfig       = errors.New("configuration error")
)

// Error carries a client-facing message and the kind it belongs to.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

var (
	ErrEmailTaken         = NewError(ErrConflict, "Email already in use")
	ErrInvalidCredentials = NewError(ErrUnauthorized, "Invalid email or password")
	ErrUserNotFound       = NewError(ErrNotFound, "User not found")
	ErrProductNotFound    = NewError(ErrNotFound, "Product not found")
	ErrOrderNotFound      = NewError(ErrNotFound, "Order not found")
	ErrOTPNotFound        = NewError(ErrNotFound, "OTP expired or not found")
	ErrInvalidOTP         = NewError(ErrValidation, "Invalid OTP. Please try again.")
	ErrSendFailure        = NewError(ErrUpstream, "Failed to send OTP")
)
