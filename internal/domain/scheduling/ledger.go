package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// ActionStatus is the state of an action item.
type ActionStatus string

const (
	StatusOpen   ActionStatus = "Open"
	StatusClosed ActionStatus = "Closed"
)

// IsValid reports whether s is a known status.
func (s ActionStatus) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

// ParseStatus accepts a status regardless of case.
func ParseStatus(value string) (ActionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "open":
		return StatusOpen, nil
	case "closed":
		return StatusClosed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// ItemField names an editable column of an action item.
type ItemField string

const (
	ItemFieldItem        ItemField = "item"
	ItemFieldResponsible ItemField = "responsible"
	ItemFieldDeadline    ItemField = "deadline"
	ItemFieldStatus      ItemField = "status"
	ItemFieldDescription ItemField = "description"
)

// ActionItem is one row of a meeting's ledger. Deadline is a calendar date
// or empty.
type ActionItem struct {
	Item        string       `json:"item"`
	Responsible string       `json:"responsible"`
	Deadline    string       `json:"deadline"`
	Status      ActionStatus `json:"status"`
	Description string       `json:"description"`
}

// BlankItem returns the row appended by AddItem.
func BlankItem() ActionItem {
	return ActionItem{Status: StatusOpen}
}

// AddItem appends a blank row.
func AddItem(items []ActionItem) []ActionItem {
	out := make([]ActionItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, BlankItem())
}

// UpdateField sets one column of items[index]. An out-of-range index returns
// the ledger unchanged together with ErrIndexOutOfRange.
func UpdateField(items []ActionItem, index int, field ItemField, value string) ([]ActionItem, error) {
	if index < 0 || index >= len(items) {
		return items, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	row := items[index]
	switch field {
	case ItemFieldItem:
		row.Item = value
	case ItemFieldResponsible:
		row.Responsible = NormalizeEmail(value)
	case ItemFieldDeadline:
		value = strings.TrimSpace(value)
		if value != "" {
			if _, err := time.Parse(DateLayout, value); err != nil {
				return items, fmt.Errorf("%w: %q", ErrInvalidDeadline, value)
			}
		}
		row.Deadline = value
	case ItemFieldStatus:
		status, err := ParseStatus(value)
		if err != nil {
			return items, err
		}
		row.Status = status
	case ItemFieldDescription:
		row.Description = value
	default:
		return items, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	out := make([]ActionItem, len(items))
	copy(out, items)
	out[index] = row
	return out, nil
}

// RemoveItem drops items[index], keeping the order of the rest.
func RemoveItem(items []ActionItem, index int) ([]ActionItem, error) {
	if index < 0 || index >= len(items) {
		return items, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	out := make([]ActionItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// CloneItems returns a copy of items, or one blank row when items is empty.
func CloneItems(items []ActionItem) []ActionItem {
	if len(items) == 0 {
		return []ActionItem{BlankItem()}
	}
	out := make([]ActionItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Status == "" {
			out[i].Status = StatusOpen
		}
	}
	return out
}

// ResponsibleIsAttendee reports whether the item's owner is among the
// attendees. An empty owner is never an attendee.
func ResponsibleIsAttendee(item ActionItem, attendees Selection) bool {
	return item.Responsible != "" && attendees.Has(item.Responsible)
}
