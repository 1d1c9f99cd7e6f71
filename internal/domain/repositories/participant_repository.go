package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// List retrieves the full roster ordered by name
	List(ctx context.Context) ([]*entities.Participant, error)

	// FindByEmail retrieves a participant by email
	FindByEmail(ctx context.Context, email string) (*entities.Participant, error)

	// FindByEmails retrieves the participants whose email is in emails
	FindByEmails(ctx context.Context, emails []string) ([]*entities.Participant, error)

	// Upsert creates a participant or updates the one with the same email
	Upsert(ctx context.Context, participant *entities.Participant) error
}
