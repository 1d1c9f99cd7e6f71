// Package timeslot builds the fixed catalog of selectable meeting times.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultInterval is the slot spacing in minutes used by the planner.
const DefaultInterval = 15

const minutesPerDay = 24 * 60

// Slot is a selectable time of day.
type Slot struct {
	// Value is the 24-hour "HH:MM" form sent to the server of record.
	Value string `json:"value"`
	// Label is the 12-hour "hh:mm AM" form shown to people.
	Label string `json:"label"`
}

// Generate returns the slots of one day starting at 00:00 and spaced interval
// minutes apart, in strictly increasing order.
//
// A non-positive interval falls back to DefaultInterval. When interval does not
// divide 1440 the catalog still stops before midnight: the last slot is the
// largest multiple of interval below 24:00, so the gap between it and midnight
// is shorter than interval.
func Generate(interval int) []Slot {
	if interval <= 0 {
		interval = DefaultInterval
	}

	slots := make([]Slot, 0, (minutesPerDay+interval-1)/interval)
	for minute := 0; minute < minutesPerDay; minute += interval {
		slots = append(slots, At(minute))
	}
	return slots
}

// At returns the slot for the given minute of the day. Minutes outside
// [0, 1440) wrap around the day.
func At(minute int) Slot {
	minute %= minutesPerDay
	if minute < 0 {
		minute += minutesPerDay
	}
	hour, min := minute/60, minute%60

	return Slot{
		Value: fmt.Sprintf("%02d:%02d", hour, min),
		Label: fmt.Sprintf("%02d:%02d %s", hour12(hour), min, meridiem(hour)),
	}
}

// Label converts a 24-hour "HH:MM" value into its 12-hour label.
func Label(value string) (string, error) {
	minute, err := Minutes(value)
	if err != nil {
		return "", err
	}
	return At(minute).Label, nil
}

// Minutes parses a 24-hour "HH:MM" value into minutes since midnight.
func Minutes(value string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	min, err := strconv.Atoi(m)
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour*60 + min, nil
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func meridiem(hour int) string {
	if hour < 12 {
		return "AM"
	}
	return "PM"
}
