// Package planner is the editing workspace that sits between a user and the
// server of record. It keeps a local copy of meetings and participants and
// runs the schedule, edit, attendee and action item sessions against it.
package planner

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// ScheduleRequest creates a meeting and invites Emails.
type ScheduleRequest struct {
	Draft  scheduling.Draft
	Emails []string
}

// EditRequest updates the fields of an existing meeting. Draft carries both
// the internal id and the public meeting key.
type EditRequest struct {
	Draft     scheduling.Draft
	UpdatedAt time.Time
}

// Gateway is the server of record as seen by the planner. Commits replace the
// whole collection they target and return the server's confirmation message,
// which may be empty.
type Gateway interface {
	FetchParticipants(ctx context.Context) ([]scheduling.Participant, error)
	FetchMeetings(ctx context.Context) ([]scheduling.Meeting, error)
	ScheduleMeeting(ctx context.Context, req ScheduleRequest) (string, error)
	EditMeeting(ctx context.Context, req EditRequest) (string, error)
	UpdateAttendees(ctx context.Context, meetingKey string, emails []string) (string, error)
	UpdateActionItems(ctx context.Context, meetingKey string, items []scheduling.ActionItem) (string, error)
}
