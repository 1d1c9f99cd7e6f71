package presenter

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/pkg/timeslot"
)

const calendarProductID = "-//meeting-planner//EN"

// ToICalendar converts a meeting to a VCALENDAR holding one VEVENT. The
// meeting's wall-clock times are read in loc.
func ToICalendar(m scheduling.Meeting, loc *time.Location, stamp time.Time) (*ical.Calendar, error) {
	start, end, err := meetingBounds(m, loc)
	if err != nil {
		return nil, err
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, m.MeetingID)
	ve.Props.SetText(ical.PropSummary, m.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, end)

	if m.Description != "" {
		ve.Props.SetText(ical.PropDescription, m.Description)
	}
	if m.Location != "" {
		ve.Props.SetText(ical.PropLocation, m.Location)
	}
	if m.Organizer != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.SetText(fmt.Sprintf("mailto:%s", m.Organizer))
		ve.Props.Add(p)
	}
	for _, a := range m.AvailableParticipants {
		p := ical.NewProp(ical.PropAttendee)
		p.SetText(fmt.Sprintf("mailto:%s", a.Email))
		if a.Name != "" {
			p.Params.Set(ical.ParamCommonName, a.Name)
		}
		ve.Props.Add(p)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)
	cal.Children = append(cal.Children, ve)
	return cal, nil
}

// EncodeICalendar writes cal in iCalendar text form
func EncodeICalendar(w io.Writer, cal *ical.Calendar) error {
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func meetingBounds(m scheduling.Meeting, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(scheduling.DateLayout, scheduling.NormalizeDate(m.Date), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid meeting date: %w", err)
	}

	startClock, endClock := m.Span()
	startMin, err := timeslot.Minutes(hourMinute(startClock))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid meeting start: %w", err)
	}
	endMin, err := timeslot.Minutes(hourMinute(endClock))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid meeting end: %w", err)
	}

	atMinute := func(min int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, min, 0, 0, loc)
	}
	return atMinute(startMin), atMinute(endMin), nil
}

// hourMinute drops the seconds of an "HH:MM:SS" clock
func hourMinute(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}
