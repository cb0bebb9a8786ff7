package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the API layer can pick a status code
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInvalidParameter
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindConflict:
		return "Conflict"
	default:
		return "Internal"
	}
}

// AppError is a tagged failure returned by the services
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewUnauthorized(message string) error {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewForbidden(message string) error {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewInvalidParameter(message string) error {
	return &AppError{Kind: KindInvalidParameter, Message: message}
}

func NewConflict(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected error (usually from the database)
func Internal(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err, KindInternal for anything untagged
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the user facing message of err
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong!"
}
