package service

import "errors"

var (
	ErrIdentifierRequired = errors.New("identifier is required")
	ErrNotFound           = errors.New("brand not found")
	ErrBrandsUnavailable  = errors.New("brands unavailable")
	ErrNameRequired       = errors.New("brand name is required")
	ErrInvalidImageKind   = errors.New("invalid image kind")
	ErrStorageDisabled    = errors.New("image storage is not configured")
	ErrReaderNil          = errors.New("reader is nil")
	ErrInvalidSuggestion  = errors.New("invalid suggestion")
	ErrEmailFailed        = errors.New("email delivery failed")
)

// ValidationError lists the fields that failed validation. It unwraps to ErrInvalidSuggestion.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid suggestion: missing or invalid fields"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidSuggestion }
