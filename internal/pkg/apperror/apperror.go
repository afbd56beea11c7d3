package apperror

import (
	"errors"
	"net/http"
)

// Code tags a recoverable, user-facing error kind. Every validation or
// lookup failure in the core is returned as one of these, never as a panic.
type Code string

const (
	CodeInvalidTarget          Code = "INVALID_TARGET"
	CodeContentLengthViolation Code = "CONTENT_LENGTH_VIOLATION"
	CodeMissingAuthor          Code = "MISSING_AUTHOR"
	CodeUnauthorized           Code = "UNAUTHORIZED"
	CodeNotFound               Code = "NOT_FOUND"
	CodeValidation             Code = "VALIDATION_FAILED"
)

type AppError struct {
	Code    Code
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code Code, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// InvalidTarget covers bad/unknown/expired/used tokens and conversation ids.
func InvalidTarget(message string) *AppError {
	return New(CodeInvalidTarget, http.StatusGone, message)
}

func ContentLengthViolation(message string) *AppError {
	return New(CodeContentLengthViolation, http.StatusUnprocessableEntity, message)
}

func MissingAuthor(message string) *AppError {
	return New(CodeMissingAuthor, http.StatusUnprocessableEntity, message)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, http.StatusNotFound, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, http.StatusBadRequest, message)
}

// From unwraps err into an *AppError if it is one.
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
