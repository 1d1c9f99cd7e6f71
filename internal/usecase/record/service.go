package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// Service defines the interface for the meeting record use case
type Service interface {
	// ListParticipants returns the full roster
	ListParticipants(ctx context.Context) ([]scheduling.Participant, error)

	// ListMeetings returns every meeting, newest first, with attendance
	// split into available and not-available participants
	ListMeetings(ctx context.Context) ([]scheduling.Meeting, error)

	// GetMeeting returns one meeting by public key
	GetMeeting(ctx context.Context, key string) (scheduling.Meeting, error)

	// ScheduleMeeting creates a meeting and invites the given emails
	ScheduleMeeting(ctx context.Context, input ScheduleInput) (*entities.Meeting, error)

	// EditMeeting updates the fields of a meeting
	EditMeeting(ctx context.Context, id uuid.UUID, input EditInput) (*entities.Meeting, error)

	// UpdateAttendees replaces the attendee set of a meeting
	UpdateAttendees(ctx context.Context, key string, emails []string) error

	// UpdateActionItems replaces the action item ledger of a meeting
	UpdateActionItems(ctx context.Context, key string, items []scheduling.ActionItem) error

	// Respond records a participant's yes/no answer
	Respond(ctx context.Context, key, email, response string) error
}

// ScheduleInput represents input for scheduling a meeting
type ScheduleInput struct {
	Draft  scheduling.Draft
	Emails []string
}

// EditInput represents input for editing a meeting. MeetingKey, when set,
// must match the meeting being edited.
type EditInput struct {
	Draft      scheduling.Draft
	MeetingKey string
	UpdatedAt  time.Time
}
