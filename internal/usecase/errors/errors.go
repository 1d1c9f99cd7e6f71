package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrMeetingKeyMismatch = errors.New("meeting key does not match meeting id")
)

// Participant errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNotInvited          = errors.New("participant not invited to this meeting")
	ErrInvalidResponse     = errors.New("response must be yes or no")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrSessionBusy     = errors.New("session is committing")
	ErrWrongSession    = errors.New("session is of a different kind")
)
