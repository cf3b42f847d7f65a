package service

import "errors"

// Sentinel errors returned by the service layer. The HTTP layer translates
// these into status codes; services never touch http.ResponseWriter.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
	ErrUnauthorized       = errors.New("not authorized")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyVerified    = errors.New("already verified")
	ErrUploadFailed       = errors.New("upload processing failed")
)
