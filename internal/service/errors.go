package service

import "errors"

var (
	// ErrSessionNotFound means no session exists for the given id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidState means the operation is not allowed in the session's
	// current lifecycle state. The session is left unmodified.
	ErrInvalidState = errors.New("invalid session state")
	// ErrIndexOutOfRange means the question index is outside [0, total).
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrAlreadyResponded means the question at that index was already
	// answered or skipped. Progression is forward-only; re-submission is
	// rejected rather than overwriting the prior response.
	ErrAlreadyResponded = errors.New("question already answered or skipped")
	// ErrUserMismatch means the two sessions being compared belong to
	// different users.
	ErrUserMismatch = errors.New("sessions belong to different users")
)
