package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// ActionItem is one row of a meeting's action item ledger
type ActionItem struct {
	ID          uuid.UUID               `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID   uuid.UUID               `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Position    int                     `gorm:"not null" json:"position"`
	Item        string                  `gorm:"type:text" json:"item"`
	Responsible string                  `gorm:"type:varchar(255)" json:"responsible"`
	Deadline    *datatypes.Date         `gorm:"type:date" json:"deadline,omitempty"`
	Status      scheduling.ActionStatus `gorm:"type:varchar(10);not null;default:'Open'" json:"status"`
	Description string                  `gorm:"type:text" json:"description"`
	CreatedAt   time.Time               `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time               `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// ToScheduling converts the row to the planner's value type
func (a *ActionItem) ToScheduling() scheduling.ActionItem {
	out := scheduling.ActionItem{
		Item:        a.Item,
		Responsible: a.Responsible,
		Status:      a.Status,
		Description: a.Description,
	}
	if a.Deadline != nil {
		out.Deadline = time.Time(*a.Deadline).Format(scheduling.DateLayout)
	}
	return out
}

// NewActionItem builds the row stored at position for item. The deadline
// must already be a valid date or empty.
func NewActionItem(meetingID uuid.UUID, position int, item scheduling.ActionItem) (ActionItem, error) {
	row := ActionItem{
		MeetingID:   meetingID,
		Position:    position,
		Item:        item.Item,
		Responsible: scheduling.NormalizeEmail(item.Responsible),
		Status:      item.Status,
		Description: item.Description,
	}
	if row.Status == "" {
		row.Status = scheduling.StatusOpen
	}
	if !row.Status.IsValid() {
		return ActionItem{}, scheduling.ErrInvalidStatus
	}
	if item.Deadline != "" {
		d, err := time.Parse(scheduling.DateLayout, item.Deadline)
		if err != nil {
			return ActionItem{}, scheduling.ErrInvalidDeadline
		}
		date := datatypes.Date(d)
		row.Deadline = &date
	}
	return row, nil
}
