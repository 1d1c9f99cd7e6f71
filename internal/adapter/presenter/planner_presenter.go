package presenter

import (
	"time"

	plannerDTO "github.com/johnquangdev/meeting-planner/internal/adapter/dto/planner"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	"github.com/johnquangdev/meeting-planner/pkg/timeslot"
)

// ToTimeSlotsResponse converts the slot catalog
func ToTimeSlotsResponse(interval int, slots []timeslot.Slot) *plannerDTO.TimeSlotsResponse {
	out := make([]plannerDTO.TimeSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = plannerDTO.TimeSlotResponse{Value: s.Value, Label: s.Label}
	}
	return &plannerDTO.TimeSlotsResponse{Interval: interval, Slots: out}
}

// ToParticipantResponse converts a roster entry
func ToParticipantResponse(p scheduling.Participant) plannerDTO.ParticipantResponse {
	return plannerDTO.ParticipantResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department,
		FacultyID:  p.FacultyID,
		Initials:   p.Initials(),
	}
}

// ToParticipantResponses converts a list of roster entries
func ToParticipantResponses(ps []scheduling.Participant) []plannerDTO.ParticipantResponse {
	out := make([]plannerDTO.ParticipantResponse, len(ps))
	for i, p := range ps {
		out[i] = ToParticipantResponse(p)
	}
	return out
}

// ToActionItemResponse converts a ledger row
func ToActionItemResponse(it scheduling.ActionItem) plannerDTO.ActionItemResponse {
	return plannerDTO.ActionItemResponse{
		Item:        it.Item,
		Responsible: it.Responsible,
		Deadline:    it.Deadline,
		Status:      string(it.Status),
		Description: it.Description,
	}
}

// ToMeetingResponse converts a stored meeting
func ToMeetingResponse(m scheduling.Meeting) *plannerDTO.MeetingResponse {
	start, end := m.Span()
	items := make([]plannerDTO.ActionItemResponse, len(m.ActionItems))
	for i, it := range m.ActionItems {
		items[i] = ToActionItemResponse(it)
	}
	return &plannerDTO.MeetingResponse{
		ID:                       m.InternalID,
		MeetingID:                m.MeetingID,
		Title:                    m.Title,
		Description:              m.Description,
		Organizer:                m.Organizer,
		Date:                     scheduling.NormalizeDate(m.Date),
		StartTime:                start,
		EndTime:                  end,
		Time:                     scheduling.JoinTimeRange(start, end),
		TimeLabel:                timeLabel(start, end),
		Location:                 m.Location,
		CreatedAt:                m.CreatedAt,
		AvailableParticipants:    ToParticipantResponses(m.AvailableParticipants),
		NotAvailableParticipants: ToParticipantResponses(m.NotAvailableParticipants),
		ActionItems:              items,
	}
}

// ToMeetingListResponse converts the local meeting list
func ToMeetingListResponse(ms []scheduling.Meeting, refreshedAt time.Time) *plannerDTO.MeetingListResponse {
	out := make([]plannerDTO.MeetingResponse, len(ms))
	for i, m := range ms {
		out[i] = *ToMeetingResponse(m)
	}
	resp := &plannerDTO.MeetingListResponse{Meetings: out, Total: len(out)}
	if !refreshedAt.IsZero() {
		resp.RefreshedAt = &refreshedAt
	}
	return resp
}

// ToBannerResponse converts a banner, nil when none is showing
func ToBannerResponse(b *planner.Banner) *plannerDTO.BannerResponse {
	if b == nil {
		return nil
	}
	return &plannerDTO.BannerResponse{
		Kind:     string(b.Kind),
		Message:  b.Message,
		PostedAt: b.PostedAt,
	}
}

// ToDraftResponse converts a meeting draft
func ToDraftResponse(d scheduling.Draft) plannerDTO.DraftResponse {
	return plannerDTO.DraftResponse{
		ID:          d.InternalID,
		MeetingID:   d.MeetingID,
		Title:       d.Title,
		Description: d.Description,
		Organizer:   d.Organizer,
		Location:    d.Location,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
	}
}

// ToScheduleSessionResponse converts a scheduling session snapshot
func ToScheduleSessionResponse(v planner.ScheduleView) *plannerDTO.ScheduleSessionResponse {
	return &plannerDTO.ScheduleSessionResponse{
		ID:         v.ID,
		Draft:      ToDraftResponse(v.Draft),
		Selected:   ToParticipantResponses(v.Selected),
		PickerOpen: v.Picker.PickerOpen,
		ReviewOpen: v.Picker.ReviewOpen,
		Banner:     ToBannerResponse(v.Banner),
	}
}

// ToEditSessionResponse converts an edit session snapshot
func ToEditSessionResponse(v planner.EditView) *plannerDTO.EditSessionResponse {
	violations := v.Violations
	if violations == nil {
		violations = []string{}
	}
	return &plannerDTO.EditSessionResponse{
		ID:         v.ID,
		MeetingID:  v.MeetingID,
		State:      string(v.State),
		Draft:      ToDraftResponse(v.Draft),
		Violations: violations,
		Banner:     ToBannerResponse(v.Banner),
	}
}

// ToAttendeeSessionResponse converts an attendee session snapshot
func ToAttendeeSessionResponse(v planner.AttendeeView) *plannerDTO.AttendeeSessionResponse {
	return &plannerDTO.AttendeeSessionResponse{
		ID:        v.ID,
		MeetingID: v.MeetingID,
		Attendees: ToParticipantResponses(v.Attendees),
		Dirty:     v.Dirty,
		Banner:    ToBannerResponse(v.Banner),
	}
}

// ToActionSessionResponse converts an action item session snapshot
func ToActionSessionResponse(v planner.LedgerView) *plannerDTO.ActionSessionResponse {
	rows := make([]plannerDTO.LedgerRowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = plannerDTO.LedgerRowResponse{
			Index:                 r.Index,
			ActionItemResponse:    ToActionItemResponse(r.Item),
			ResponsibleIsAttendee: r.ResponsibleIsAttendee,
		}
	}
	return &plannerDTO.ActionSessionResponse{
		ID:        v.ID,
		MeetingID: v.MeetingID,
		Rows:      rows,
		Dirty:     v.Dirty,
		Banner:    ToBannerResponse(v.Banner),
	}
}

// timeLabel renders a start and end clock in 12-hour form. It is empty when
// either clock does not parse.
func timeLabel(start, end string) string {
	from, err := timeslot.Label(hourMinute(start))
	if err != nil {
		return ""
	}
	to, err := timeslot.Label(hourMinute(end))
	if err != nil {
		return ""
	}
	return scheduling.JoinTimeRange(from, to)
}
