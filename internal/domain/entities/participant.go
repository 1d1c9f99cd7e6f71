package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// Participant is a person who can be invited to meetings
type Participant struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Email      string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Department *string        `gorm:"type:varchar(255)" json:"department,omitempty"`
	FacultyID  *string        `gorm:"column:faculty_id;type:varchar(50)" json:"faculty_id,omitempty"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// ToScheduling converts the row to the planner's value type
func (p *Participant) ToScheduling() scheduling.Participant {
	out := scheduling.Participant{
		ID:    p.ID.String(),
		Name:  p.Name,
		Email: p.Email,
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	if p.FacultyID != nil {
		out.FacultyID = *p.FacultyID
	}
	return out
}
