package entities

import (
	"time"

	"github.com/google/uuid"
)

// InvitationResponse is a participant's answer to an invitation
type InvitationResponse string

const (
	ResponsePending InvitationResponse = "pending"
	ResponseYes     InvitationResponse = "yes"
	ResponseNo      InvitationResponse = "no"
)

// ParseResponse accepts "yes" or "no"
func ParseResponse(value string) (InvitationResponse, error) {
	switch InvitationResponse(value) {
	case ResponseYes, ResponseNo:
		return InvitationResponse(value), nil
	}
	return "", ErrInvalidResponse
}

// Invitation links a participant to a meeting
type Invitation struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_invitation_meeting_participant" json:"meeting_id"`
	ParticipantID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_invitation_meeting_participant;index" json:"participant_id"`
	Participant   *Participant       `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Response      InvitationResponse `gorm:"type:varchar(10);not null;default:'pending'" json:"response"`
	RespondedAt   *time.Time         `json:"responded_at,omitempty"`
	CreatedAt     time.Time          `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// Declined reports whether the participant said no
func (i *Invitation) Declined() bool {
	return i.Response == ResponseNo
}

// Respond records the participant's answer
func (i *Invitation) Respond(resp InvitationResponse) {
	now := time.Now()
	i.Response = resp
	i.RespondedAt = &now
}
