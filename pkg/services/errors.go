package services

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the verification services. Controllers map these to
// HTTP statuses with errors.Is; call sites wrap them with context.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrAlreadyFinalized  = errors.New("verification request already finalized")
	ErrUploadFailed      = errors.New("photo upload failed")
	ErrUpstream          = errors.New("upstream service error")
	ErrIdentityExhausted = errors.New("request id space exhausted")
)
