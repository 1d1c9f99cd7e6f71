package record_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/record"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

func TestActionItemToSchedulingStatus(t *testing.T) {
	cases := map[string]scheduling.ActionStatus{
		"":        scheduling.StatusOpen,
		"Open":    scheduling.StatusOpen,
		"open":    scheduling.StatusOpen,
		"Closed":  scheduling.StatusClosed,
		" closed": scheduling.StatusClosed,
		"done":    scheduling.StatusOpen,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got := record.ActionItem{Item: "Book room", Status: in}.ToScheduling()
			gt.Value(t, got.Status).Equal(want)
			gt.Bool(t, got.Status.IsValid()).True()
		})
	}
}

func TestMeetingToScheduling(t *testing.T) {
	m := record.Meeting{
		ID:        "row-1",
		MeetingID: "key-1",
		MeetingDetails: record.MeetingDetails{
			Title: "Planning",
			Date:  "2025-03-10T00:00:00Z",
			Time:  "09:00 - 10:30",
		},
		MeetingData: record.MeetingData{
			AvailableParticipants:    []record.Participant{{Name: "Alice", Email: "alice@x.com"}},
			NotAvailableParticipants: []record.Participant{{Name: "Bob", Email: "bob@x.com"}},
		},
		ActionItems: []record.ActionItem{{Item: "Book room", Status: "closed", Deadline: "2025-03-12"}},
	}

	got := m.ToScheduling()
	gt.Value(t, got.InternalID).Equal("row-1")
	gt.Value(t, got.Date).Equal("2025-03-10")
	gt.Value(t, got.StartTime).Equal("09:00")
	gt.Value(t, got.EndTime).Equal("10:30")
	gt.Array(t, got.AvailableParticipants).Length(1)
	gt.Array(t, got.NotAvailableParticipants).Length(1)
	gt.Array(t, got.ActionItems).Length(1)
	gt.Value(t, got.ActionItems[0].Status).Equal(scheduling.StatusClosed)
	gt.Value(t, got.ActionItems[0].Deadline).Equal("2025-03-12")
}
