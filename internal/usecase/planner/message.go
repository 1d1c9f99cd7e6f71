package planner

import (
	"errors"
	"strings"
)

// Messages shown when the server does not supply one.
const (
	MsgScheduleFailed    = "Failed to schedule meeting"
	MsgScheduled         = "Meeting scheduled successfully."
	MsgEditFailed        = "Failed to update meeting."
	MsgEdited            = "Meeting updated successfully."
	MsgAttendeesFailed   = "Failed to update attendees."
	MsgAttendeesUpdated  = "Attendees updated successfully."
	MsgActionItemsFailed = "Failed to update action items."
	MsgActionItemsSaved  = "Action items updated successfully."
)

type userMessager interface {
	UserMessage() string
}

// UserMessage returns the message carried by err, if any, and fallback
// otherwise.
func UserMessage(err error, fallback string) string {
	var um userMessager
	if errors.As(err, &um) {
		if msg := strings.TrimSpace(um.UserMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}

// CommitError is returned when the server of record rejects or fails a
// commit. Message is what the session reported to the user.
type CommitError struct {
	Message string
	Err     error
}

func (e *CommitError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *CommitError) Unwrap() error { return e.Err }

func (e *CommitError) UserMessage() string { return e.Message }

func commitError(err error, fallback string) *CommitError {
	return &CommitError{Message: UserMessage(err, fallback), Err: err}
}

func orDefault(msg, def string) string {
	if strings.TrimSpace(msg) == "" {
		return def
	}
	return msg
}
