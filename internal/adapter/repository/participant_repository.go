package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// List retrieves the full roster ordered by name
func (r *participantRepository) List(ctx context.Context) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&participants).Error
	return participants, err
}

// FindByEmail retrieves a participant by email
func (r *participantRepository) FindByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	var participant entities.Participant
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&participant).Error

	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByEmails retrieves the participants whose email is in emails
func (r *participantRepository) FindByEmails(ctx context.Context, emails []string) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	if len(emails) == 0 {
		return participants, nil
	}
	err := r.db.WithContext(ctx).
		Where("LOWER(email) IN ?", emails).
		Find(&participants).Error
	return participants, err
}

// Upsert creates a participant or updates the one with the same email
func (r *participantRepository) Upsert(ctx context.Context, participant *entities.Participant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "department", "faculty_id", "updated_at"}),
		}).
		Create(participant).Error
}
