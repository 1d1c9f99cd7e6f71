// Package scheduling holds the planner's value types and the pure rules that
// operate on them: draft validation, participant selection and the action
// item ledger.
package scheduling

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateLayout is the calendar date format exchanged with the server of record.
const DateLayout = "2006-01-02"

// Errors returned by the pure operations of this package.
var (
	ErrUnknownField     = errors.New("unknown field")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidStatus    = errors.New("invalid action item status")
	ErrInvalidDeadline  = errors.New("invalid deadline")
	ErrValidation       = errors.New("validation failed")
	ErrUnknownAttendee  = errors.New("email is not in the participant roster")
	ErrTimeRangeMissing = errors.New("time range has no separator")
)

// Participant is a person from the roster. Email is the identity key.
type Participant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	FacultyID  string `json:"facultyId,omitempty"`
}

// Initials returns up to two upper-cased initials taken from the name.
func (p Participant) Initials() string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(p.Name) {
		first, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(first))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// NormalizeEmail returns the canonical form used to compare participants.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Meeting is the planner's copy of a meeting held by the server of record.
type Meeting struct {
	InternalID  string
	MeetingID   string
	Title       string
	Description string
	Organizer   string
	Date        string
	StartTime   string
	EndTime     string
	// Time is the combined "start - end" string, set when the source stores
	// the span that way instead of as distinct fields.
	Time      string
	Location  string
	CreatedAt time.Time

	AvailableParticipants    []Participant
	NotAvailableParticipants []Participant
	ActionItems              []ActionItem
}

// AttendeeEmails returns the normalized emails of the available participants.
func (m Meeting) AttendeeEmails() []string {
	emails := make([]string, 0, len(m.AvailableParticipants))
	for _, p := range m.AvailableParticipants {
		emails = append(emails, NormalizeEmail(p.Email))
	}
	return emails
}

// Span returns the start and end times, splitting Time when the distinct
// fields are empty.
func (m Meeting) Span() (start, end string) {
	if m.StartTime != "" || m.EndTime != "" {
		return m.StartTime, m.EndTime
	}
	start, end, _ = SplitTimeRange(m.Time)
	return start, end
}

// SplitTimeRange splits "09:00 - 10:00" on its separator. A value without a
// separator yields empty start and end together with ErrTimeRangeMissing.
func SplitTimeRange(value string) (start, end string, err error) {
	if !strings.Contains(value, "-") {
		return "", "", ErrTimeRangeMissing
	}
	parts := strings.Split(value, "-")
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// JoinTimeRange is the inverse of SplitTimeRange.
func JoinTimeRange(start, end string) string {
	return start + " - " + end
}

// NormalizeDate keeps the calendar date of a value that may be either
// "2006-01-02" or a full RFC 3339 timestamp.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= len(DateLayout) {
		if _, err := time.Parse(DateLayout, value[:len(DateLayout)]); err == nil {
			return value[:len(DateLayout)]
		}
	}
	return value
}

// SortByCreatedDesc returns a copy of meetings ordered newest first.
func SortByCreatedDesc(meetings []Meeting) []Meeting {
	sorted := make([]Meeting, len(meetings))
	copy(sorted, meetings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// OnDay returns the meetings whose calendar date equals day's local date.
func OnDay(meetings []Meeting, day time.Time) []Meeting {
	want := day.Format(DateLayout)
	var out []Meeting
	for _, m := range meetings {
		if NormalizeDate(m.Date) == want {
			out = append(out, m)
		}
	}
	return out
}
