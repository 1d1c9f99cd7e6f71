package scheduling

import (
	"fmt"
	"time"
)

// DraftField names an editable field of a Draft.
type DraftField string

const (
	FieldTitle       DraftField = "title"
	FieldDescription DraftField = "description"
	FieldOrganizer   DraftField = "organizer"
	FieldLocation    DraftField = "location"
	FieldDate        DraftField = "date"
	FieldStartTime   DraftField = "startTime"
	FieldEndTime     DraftField = "endTime"
)

// Draft is the mutable projection of a meeting that is validated before it
// is committed. A zero Draft describes a brand-new meeting.
type Draft struct {
	InternalID  string    `json:"id,omitempty"`
	MeetingID   string    `json:"meetingId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// DraftFrom builds an editable draft from a stored meeting.
func DraftFrom(m Meeting) Draft {
	start, end := m.Span()
	return Draft{
		InternalID:  m.InternalID,
		MeetingID:   m.MeetingID,
		Title:       m.Title,
		Description: m.Description,
		Organizer:   m.Organizer,
		Location:    m.Location,
		Date:        NormalizeDate(m.Date),
		StartTime:   start,
		EndTime:     end,
		CreatedAt:   m.CreatedAt,
	}
}

// Set assigns value to the named field.
func (d *Draft) Set(field DraftField, value string) error {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldOrganizer:
		d.Organizer = value
	case FieldLocation:
		d.Location = value
	case FieldDate:
		d.Date = value
	case FieldStartTime:
		d.StartTime = value
	case FieldEndTime:
		d.EndTime = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ApplyTo returns m with the draft's fields merged in.
func (d Draft) ApplyTo(m Meeting) Meeting {
	m.Title = d.Title
	m.Description = d.Description
	m.Organizer = d.Organizer
	m.Location = d.Location
	m.Date = d.Date
	m.StartTime = d.StartTime
	m.EndTime = d.EndTime
	m.Time = JoinTimeRange(d.StartTime, d.EndTime)
	return m
}
