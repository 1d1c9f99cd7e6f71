package presenter_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/johnquangdev/meeting-planner/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

func sampleMeeting() scheduling.Meeting {
	return scheduling.Meeting{
		InternalID:  "m-1",
		MeetingID:   "key-1",
		Title:       "Kickoff",
		Description: "Plan the term",
		Organizer:   "a@x.com",
		Location:    "Room 1",
		Date:        "2025-03-10T00:00:00Z",
		Time:        "09:00 - 10:30",
		CreatedAt:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		AvailableParticipants: []scheduling.Participant{
			{Name: "Alice Nguyen", Email: "a@x.com"},
			{Name: "Bob Tran", Email: "b@x.com"},
		},
		NotAvailableParticipants: []scheduling.Participant{
			{Name: "Carol Le", Email: "c@x.com"},
		},
	}
}

func TestToICalendar(t *testing.T) {
	stamp := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	cal, err := presenter.ToICalendar(sampleMeeting(), time.UTC, stamp)
	gt.NoError(t, err).Required()

	var buf bytes.Buffer
	gt.NoError(t, presenter.EncodeICalendar(&buf, cal)).Required()
	out := buf.String()

	gt.String(t, out).Contains("BEGIN:VEVENT")
	gt.String(t, out).Contains("UID:key-1")
	gt.String(t, out).Contains("SUMMARY:Kickoff")
	gt.String(t, out).Contains("DTSTART:20250310T090000Z")
	gt.String(t, out).Contains("DTEND:20250310T103000Z")
	gt.String(t, out).Contains("mailto:b@x.com")
	gt.Bool(t, bytes.Contains(buf.Bytes(), []byte("mailto:c@x.com"))).False()
}

func TestToICalendarRejectsMissingTimes(t *testing.T) {
	m := sampleMeeting()
	m.Time = "TBD"
	_, err := presenter.ToICalendar(m, time.UTC, time.Now())
	gt.Value(t, err).NotNil()
}
