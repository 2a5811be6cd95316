package errs

import (
	"errors"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrForbidden        = errors.New("forbidden")
	ErrDuplicateRequest = errors.New("a pending request for this book already exists")
	ErrInvalidState     = errors.New("invalid request state")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrOutOfRange       = errors.New("book code sequence exhausted")
	ErrUnauthorized     = errors.New("invalid credentials")
)

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
