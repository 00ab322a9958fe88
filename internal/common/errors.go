// Package common defines shared constants and sentinel errors used across
// the exercise tracker layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Query errors.
	ErrInvalidRange = errors.New("invalid range: from is after to")

	// Export errors.
	ErrExportDisabled = errors.New("export is not configured")
)
