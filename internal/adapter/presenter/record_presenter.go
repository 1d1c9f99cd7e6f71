package presenter

import (
	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/record"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// ToRecordParticipant converts a participant to its wire shape
func ToRecordParticipant(p scheduling.Participant) record.Participant {
	return record.Participant{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department,
		FacultyID:  p.FacultyID,
	}
}

func toRecordParticipants(ps []scheduling.Participant) []record.Participant {
	out := make([]record.Participant, len(ps))
	for i, p := range ps {
		out[i] = ToRecordParticipant(p)
	}
	return out
}

// ToRosterResponse converts the roster to the GET /getallusers body
func ToRosterResponse(ps []scheduling.Participant) *record.RosterResponse {
	return &record.RosterResponse{UserDetails: toRecordParticipants(ps)}
}

// ToRecordMeeting converts a meeting to its wire shape. Start and end are
// sent combined as "start - end".
func ToRecordMeeting(m scheduling.Meeting) record.Meeting {
	start, end := m.Span()
	return record.Meeting{
		ID:        m.InternalID,
		MeetingID: m.MeetingID,
		CreatedAt: m.CreatedAt,
		MeetingDetails: record.MeetingDetails{
			Title:       m.Title,
			Description: m.Description,
			Organizer:   m.Organizer,
			Date:        scheduling.NormalizeDate(m.Date),
			Time:        scheduling.JoinTimeRange(start, end),
			Location:    m.Location,
		},
		MeetingData: record.MeetingData{
			AvailableParticipants:    toRecordParticipants(m.AvailableParticipants),
			NotAvailableParticipants: toRecordParticipants(m.NotAvailableParticipants),
		},
		ActionItems: record.ActionItemsFromScheduling(m.ActionItems),
	}
}

// ToMeetingsResponse converts meetings to the GET /meeting-yes-no body
func ToMeetingsResponse(ms []scheduling.Meeting) *record.MeetingsResponse {
	out := make([]record.Meeting, len(ms))
	for i, m := range ms {
		out[i] = ToRecordMeeting(m)
	}
	return &record.MeetingsResponse{Meetings: out}
}
