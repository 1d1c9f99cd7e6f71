package record

import (
	"time"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// ScheduleMeetingRequest is the body of PUT /schedule-meeting. Field rules
// are checked by the meeting validator so every violation is reported.
type ScheduleMeetingRequest struct {
	MeetingDate        string   `json:"meetingDate"`
	MeetingStart       string   `json:"meetingStart"`
	MeetingFinish      string   `json:"meetingFinish"`
	MeetingTitle       string   `json:"meetingTitle"`
	MeetingDescription string   `json:"meetingDescription"`
	MeetingOrganizer   string   `json:"meetingOrganizer"`
	MeetingLocation    string   `json:"meetingLocation"`
	Emails             []string `json:"emails"`
}

// MeetingTime is the time span of an edited meeting
type MeetingTime struct {
	MeetingStart  string `json:"meetingStart"`
	MeetingFinish string `json:"meetingFinish"`
}

// EditMeetingRequest is the body of POST /edit-meeting/:id
type EditMeetingRequest struct {
	MeetingTitle       string      `json:"meetingTitle"`
	MeetingDescription string      `json:"meetingDescription"`
	MeetingOrganizer   string      `json:"meetingOrganizer"`
	MeetingDate        string      `json:"meetingDate"`
	MeetingTime        MeetingTime `json:"meetingTime"`
	MeetingLocation    string      `json:"meetingLocation"`
	MeetingID          string      `json:"meeting_id"`
	CreatedAt          *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time  `json:"updatedAt,omitempty"`
}

// UpdateAttendeesRequest is the body of POST /update-meeting-attendees. The
// list is the complete desired attendee set.
type UpdateAttendeesRequest struct {
	MeetingID string   `json:"meetingId" validate:"required"`
	Attendees []string `json:"attendees" validate:"dive,email"`
}

// UpdateActionItemsRequest is the body of POST /update-meeting-action-items.
// The list is the complete desired ledger.
type UpdateActionItemsRequest struct {
	MeetingID   string       `json:"meetingId" validate:"required"`
	ActionItems []ActionItem `json:"actionItems" validate:"dive"`
}

// MeetingResponseRequest is the body of POST /meeting-response
type MeetingResponseRequest struct {
	MeetingID string `json:"meetingId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Response  string `json:"response" validate:"required,oneof=yes no"`
}

// NewScheduleMeetingRequest builds the wire body for a draft
func NewScheduleMeetingRequest(d scheduling.Draft, emails []string) ScheduleMeetingRequest {
	return ScheduleMeetingRequest{
		MeetingDate:        d.Date,
		MeetingStart:       d.StartTime,
		MeetingFinish:      d.EndTime,
		MeetingTitle:       d.Title,
		MeetingDescription: d.Description,
		MeetingOrganizer:   d.Organizer,
		MeetingLocation:    d.Location,
		Emails:             emails,
	}
}

// Draft returns the meeting draft carried by the request
func (r ScheduleMeetingRequest) Draft() scheduling.Draft {
	return scheduling.Draft{
		Title:       r.MeetingTitle,
		Description: r.MeetingDescription,
		Organizer:   r.MeetingOrganizer,
		Location:    r.MeetingLocation,
		Date:        r.MeetingDate,
		StartTime:   r.MeetingStart,
		EndTime:     r.MeetingFinish,
	}
}

// NewEditMeetingRequest builds the wire body for an edited draft
func NewEditMeetingRequest(d scheduling.Draft, updatedAt time.Time) EditMeetingRequest {
	req := EditMeetingRequest{
		MeetingTitle:       d.Title,
		MeetingDescription: d.Description,
		MeetingOrganizer:   d.Organizer,
		MeetingDate:        d.Date,
		MeetingTime:        MeetingTime{MeetingStart: d.StartTime, MeetingFinish: d.EndTime},
		MeetingLocation:    d.Location,
		MeetingID:          d.MeetingID,
		UpdatedAt:          &updatedAt,
	}
	if !d.CreatedAt.IsZero() {
		created := d.CreatedAt
		req.CreatedAt = &created
	}
	return req
}

// Draft returns the meeting draft carried by the request
func (r EditMeetingRequest) Draft() scheduling.Draft {
	return scheduling.Draft{
		MeetingID:   r.MeetingID,
		Title:       r.MeetingTitle,
		Description: r.MeetingDescription,
		Organizer:   r.MeetingOrganizer,
		Location:    r.MeetingLocation,
		Date:        r.MeetingDate,
		StartTime:   r.MeetingTime.MeetingStart,
		EndTime:     r.MeetingTime.MeetingFinish,
	}
}

// ActionItemsFromScheduling converts a ledger for the wire
func ActionItemsFromScheduling(items []scheduling.ActionItem) []ActionItem {
	out := make([]ActionItem, 0, len(items))
	for _, it := range items {
		out = append(out, ActionItem{
			Item:        it.Item,
			Responsible: it.Responsible,
			Deadline:    it.Deadline,
			Status:      string(it.Status),
			Description: it.Description,
		})
	}
	return out
}

// ActionItemsToScheduling converts a wire ledger
func ActionItemsToScheduling(items []ActionItem) []scheduling.ActionItem {
	out := make([]scheduling.ActionItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToScheduling())
	}
	return out
}
