package record

import (
	"time"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// Participant is a roster entry on the wire
type Participant struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	FacultyID  string `json:"facultyid,omitempty"`
}

// RosterResponse wraps the roster returned by GET /getallusers
type RosterResponse struct {
	UserDetails []Participant `json:"userDetails"`
}

// MeetingDetails holds the descriptive fields of a meeting. Time is
// "start - end".
type MeetingDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Organizer   string `json:"organizer"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
}

// MeetingData holds the server-derived attendance partition
type MeetingData struct {
	AvailableParticipants    []Participant `json:"available_participants"`
	NotAvailableParticipants []Participant `json:"not_available_participants"`
}

// ActionItem is one ledger row on the wire
type ActionItem struct {
	Item        string `json:"item"`
	Responsible string `json:"responsible" validate:"omitempty,email"`
	Deadline    string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,oneof=Open Closed"`
	Description string `json:"description"`
}

// Meeting is a meeting as listed by GET /meeting-yes-no
type Meeting struct {
	ID             string         `json:"id"`
	MeetingID      string         `json:"meetingId"`
	CreatedAt      time.Time      `json:"createdAt"`
	MeetingDetails MeetingDetails `json:"meetingDetails"`
	MeetingData    MeetingData    `json:"meetingData"`
	ActionItems    []ActionItem   `json:"actionItems"`
}

// MeetingsResponse wraps the meeting list
type MeetingsResponse struct {
	Meetings []Meeting `json:"meetings"`
}

// ToScheduling converts a wire participant
func (p Participant) ToScheduling() scheduling.Participant {
	return scheduling.Participant{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department,
		FacultyID:  p.FacultyID,
	}
}

// ToScheduling converts a wire action item
func (a ActionItem) ToScheduling() scheduling.ActionItem {
	status, err := scheduling.ParseStatus(a.Status)
	if err != nil {
		status = scheduling.StatusOpen
	}
	return scheduling.ActionItem{
		Item:        a.Item,
		Responsible: a.Responsible,
		Deadline:    scheduling.NormalizeDate(a.Deadline),
		Status:      status,
		Description: a.Description,
	}
}

// ToScheduling converts a wire meeting. The combined time string is kept
// as is; the start and end fields are split from it.
func (m Meeting) ToScheduling() scheduling.Meeting {
	out := scheduling.Meeting{
		InternalID:  m.ID,
		MeetingID:   m.MeetingID,
		Title:       m.MeetingDetails.Title,
		Description: m.MeetingDetails.Description,
		Organizer:   m.MeetingDetails.Organizer,
		Date:        scheduling.NormalizeDate(m.MeetingDetails.Date),
		Time:        m.MeetingDetails.Time,
		Location:    m.MeetingDetails.Location,
		CreatedAt:   m.CreatedAt,
	}
	out.StartTime, out.EndTime = out.Span()
	for _, p := range m.MeetingData.AvailableParticipants {
		out.AvailableParticipants = append(out.AvailableParticipants, p.ToScheduling())
	}
	for _, p := range m.MeetingData.NotAvailableParticipants {
		out.NotAvailableParticipants = append(out.NotAvailableParticipants, p.ToScheduling())
	}
	for _, a := range m.ActionItems {
		out.ActionItems = append(out.ActionItems, a.ToScheduling())
	}
	return out
}
