package scheduling

import "strings"

// Selection is a set of participant emails. Operations never modify the
// receiver; they return a new set. The zero value is an empty selection.
type Selection struct {
	order []string
	index map[string]struct{}
}

// NewSelection builds a selection from emails, dropping duplicates and blanks.
func NewSelection(emails ...string) Selection {
	var s Selection
	for _, e := range emails {
		s = s.with(e)
	}
	return s
}

// Has reports whether email is selected.
func (s Selection) Has(email string) bool {
	_, ok := s.index[NormalizeEmail(email)]
	return ok
}

// Len returns the number of selected emails.
func (s Selection) Len() int {
	return len(s.order)
}

// Emails returns the selected emails in insertion order.
func (s Selection) Emails() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Ordered returns the selected participants in roster order.
func (s Selection) Ordered(roster []Participant) []Participant {
	var out []Participant
	for _, p := range roster {
		if s.Has(p.Email) {
			out = append(out, p)
		}
	}
	return out
}

// Equal reports whether both selections hold the same emails.
func (s Selection) Equal(other Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, e := range s.order {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

func (s Selection) with(email string) Selection {
	email = NormalizeEmail(email)
	if email == "" || s.Has(email) {
		return s
	}
	next := Selection{
		order: make([]string, len(s.order), len(s.order)+1),
		index: make(map[string]struct{}, len(s.order)+1),
	}
	copy(next.order, s.order)
	for _, e := range s.order {
		next.index[e] = struct{}{}
	}
	next.order = append(next.order, email)
	next.index[email] = struct{}{}
	return next
}

func (s Selection) without(email string) Selection {
	email = NormalizeEmail(email)
	if !s.Has(email) {
		return s
	}
	next := Selection{index: make(map[string]struct{}, len(s.order))}
	for _, e := range s.order {
		if e == email {
			continue
		}
		next.order = append(next.order, e)
		next.index[e] = struct{}{}
	}
	return next
}

func inRoster(roster []Participant, email string) bool {
	email = NormalizeEmail(email)
	for _, p := range roster {
		if NormalizeEmail(p.Email) == email {
			return true
		}
	}
	return false
}

// Toggle adds email when absent and removes it when present. Emails that are
// not in the roster leave the selection unchanged.
func Toggle(roster []Participant, selected Selection, email string) Selection {
	if selected.Has(email) {
		return selected.without(email)
	}
	if !inRoster(roster, email) {
		return selected
	}
	return selected.with(email)
}

// Add selects email if it is a roster member.
func Add(roster []Participant, selected Selection, email string) (Selection, error) {
	if !inRoster(roster, email) {
		return selected, ErrUnknownAttendee
	}
	return selected.with(email), nil
}

// Remove deselects email. Removing an absent email is a no-op.
func Remove(selected Selection, email string) Selection {
	return selected.without(email)
}

// Filter returns the roster members matching term on name or email,
// case-insensitively, that are not already selected.
func Filter(roster []Participant, selected Selection, term string) []Participant {
	needle := strings.ToLower(term)
	out := make([]Participant, 0, len(roster))
	for _, p := range roster {
		if selected.Has(p.Email) {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Email), needle) {
			out = append(out, p)
		}
	}
	return out
}
