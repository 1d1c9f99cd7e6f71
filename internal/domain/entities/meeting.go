package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// Meeting is the stored record of a scheduled meeting. MeetingKey is the
// public key handed to clients; ID stays internal.
type Meeting struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingKey  string         `gorm:"column:meeting_id;type:varchar(64);not null;uniqueIndex" json:"meeting_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Organizer   string         `gorm:"type:varchar(255);not null" json:"organizer"`
	Location    string         `gorm:"type:varchar(255);not null" json:"location"`
	Date        datatypes.Date `gorm:"type:date;not null;index" json:"date"`
	StartTime   string         `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime     string         `gorm:"type:varchar(8);not null" json:"end_time"`
	Invitations []Invitation   `gorm:"foreignKey:MeetingID" json:"invitations,omitempty"`
	ActionItems []ActionItem   `gorm:"foreignKey:MeetingID" json:"action_items,omitempty"`
	CreatedAt   time.Time      `gorm:"default:now();index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// DateString returns the meeting date as YYYY-MM-DD
func (m *Meeting) DateString() string {
	return time.Time(m.Date).Format(scheduling.DateLayout)
}

// Partition splits the invitations into available and not-available
// participants. Anyone who has not declined counts as available.
func (m *Meeting) Partition() (available, notAvailable []scheduling.Participant) {
	for _, inv := range m.Invitations {
		if inv.Participant == nil {
			continue
		}
		p := inv.Participant.ToScheduling()
		if inv.Response == ResponseNo {
			notAvailable = append(notAvailable, p)
		} else {
			available = append(available, p)
		}
	}
	return available, notAvailable
}

// ToScheduling converts the row, with its preloaded associations, to the
// planner's value type
func (m *Meeting) ToScheduling() scheduling.Meeting {
	available, notAvailable := m.Partition()
	items := make([]scheduling.ActionItem, 0, len(m.ActionItems))
	for i := range m.ActionItems {
		items = append(items, m.ActionItems[i].ToScheduling())
	}
	return scheduling.Meeting{
		InternalID:               m.ID.String(),
		MeetingID:                m.MeetingKey,
		Title:                    m.Title,
		Description:              m.Description,
		Organizer:                m.Organizer,
		Date:                     m.DateString(),
		StartTime:                m.StartTime,
		EndTime:                  m.EndTime,
		Time:                     scheduling.JoinTimeRange(m.StartTime, m.EndTime),
		Location:                 m.Location,
		CreatedAt:                m.CreatedAt,
		AvailableParticipants:    available,
		NotAvailableParticipants: notAvailable,
		ActionItems:              items,
	}
}
