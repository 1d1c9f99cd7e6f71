package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a meeting together with its invitations
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its internal ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByKey retrieves a meeting by its public key
	FindByKey(ctx context.Context, key string) (*entities.Meeting, error)

	// List retrieves all meetings, newest first, with invitations and action items
	List(ctx context.Context) ([]*entities.Meeting, error)

	// UpdateDetails saves the scalar fields of a meeting
	UpdateDetails(ctx context.Context, meeting *entities.Meeting) error

	// ReplaceAttendance makes participantIDs the attendee set. Declined
	// invitations outside the set are kept.
	ReplaceAttendance(ctx context.Context, meetingID uuid.UUID, participantIDs []uuid.UUID) error

	// ReplaceActionItems swaps the whole ledger in one transaction
	ReplaceActionItems(ctx context.Context, meetingID uuid.UUID, items []entities.ActionItem) error

	// SetResponse records a participant's answer to their invitation
	SetResponse(ctx context.Context, meetingID, participantID uuid.UUID, response entities.InvitationResponse) error
}
