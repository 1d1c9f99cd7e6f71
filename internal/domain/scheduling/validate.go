package scheduling

import (
	"strings"
	"time"
)

// Violation messages, in the order Validate reports them.
const (
	MsgDateRequired         = "Meeting date is required."
	MsgTimesRequired        = "Start and end time are required."
	MsgTitleRequired        = "Title is required."
	MsgDescriptionRequired  = "Description is required."
	MsgOrganizerRequired    = "Organizer is required."
	MsgLocationRequired     = "Location is required."
	MsgParticipantsRequired = "Select at least one participant."
	MsgEndAfterStart        = "End time must be after start time."
	MsgInvalidDateTime      = "Date and times must be valid (YYYY-MM-DD, HH:MM)."
)

var clockLayouts = []string{"15:04", "15:04:05"}

// ValidateOption enables optional rules.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	checkParticipants bool
	participants      int
}

// WithParticipants requires at least one selected participant. Only the
// new-meeting flow passes it; edits leave membership to the attendee flow.
func WithParticipants(selected int) ValidateOption {
	return func(c *validateConfig) {
		c.checkParticipants = true
		c.participants = selected
	}
}

// Validate checks d and returns every violation found, in rule order. An
// empty result means the draft may be committed.
func Validate(d Draft, opts ...ValidateOption) []string {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var violations []string
	date := strings.TrimSpace(d.Date)
	start := strings.TrimSpace(d.StartTime)
	end := strings.TrimSpace(d.EndTime)

	if date == "" {
		violations = append(violations, MsgDateRequired)
	}
	if start == "" || end == "" {
		violations = append(violations, MsgTimesRequired)
	}

	required := []struct {
		value string
		msg   string
	}{
		{d.Title, MsgTitleRequired},
		{d.Description, MsgDescriptionRequired},
		{d.Organizer, MsgOrganizerRequired},
		{d.Location, MsgLocationRequired},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			violations = append(violations, r.msg)
		}
	}

	if cfg.checkParticipants && cfg.participants < 1 {
		violations = append(violations, MsgParticipantsRequired)
	}

	if date != "" && start != "" && end != "" {
		from, errFrom := combine(date, start)
		to, errTo := combine(date, end)
		switch {
		case errFrom != nil || errTo != nil:
			violations = append(violations, MsgInvalidDateTime)
		case !to.After(from):
			violations = append(violations, MsgEndAfterStart)
		}
	}

	return violations
}

// combine joins a calendar date and a wall-clock time into one instant. Both
// are read in UTC since only their ordering matters.
func combine(date, clock string) (time.Time, error) {
	day, err := time.Parse(DateLayout, NormalizeDate(date))
	if err != nil {
		return time.Time{}, err
	}
	var lastErr error
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ValidationError carries the violations of a rejected draft.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, " ")
}

// Is reports ErrValidation as the error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UserMessage is the text shown to the user.
func (e *ValidationError) UserMessage() string {
	return e.Error()
}

// Check runs Validate and wraps any violations in a *ValidationError.
func Check(d Draft, opts ...ValidateOption) error {
	if v := Validate(d, opts...); len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}
