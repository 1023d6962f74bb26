package service

import "errors"

// Error taxonomy shared by every service. Handlers map these onto HTTP
// statuses in one place; services wrap them with context via fmt.Errorf
// and %w.
var (
	// ErrAuthenticationRequired means the operation needs a signed-in user.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrValidationFailed means the input was rejected before any write.
	ErrValidationFailed = errors.New("validation failed")

	// ErrPermissionDenied means the caller is authenticated but lacks the
	// right to this record or operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidTransition means the record exists but its state forbids
	// the requested change, such as reviewing a settled submission.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrNotFound means the record does not exist.
	ErrNotFound = errors.New("not found")
)
