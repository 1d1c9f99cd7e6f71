package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Invitations", func(db *gorm.DB) *gorm.DB {
			// rows inserted together share created_at
			return db.Order("created_at ASC").Order("id ASC")
		}).
		Preload("Invitations.Participant").
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		})
}

// Create creates a meeting together with its invitations
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).
		Omit("Invitations.Participant").
		Create(meeting).Error
}

// FindByID retrieves a meeting by its internal ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := withAssociations(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByKey retrieves a meeting by its public key
func (r *meetingRepository) FindByKey(ctx context.Context, key string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := withAssociations(r.db.WithContext(ctx)).
		Where("meeting_id = ?", key).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List retrieves all meetings, newest first
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := withAssociations(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&meetings).Error
	return meetings, err
}

// UpdateDetails saves the scalar fields of a meeting
func (r *meetingRepository) UpdateDetails(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meeting.ID).
		Updates(map[string]interface{}{
			"title":       meeting.Title,
			"description": meeting.Description,
			"organizer":   meeting.Organizer,
			"location":    meeting.Location,
			"date":        meeting.Date,
			"start_time":  meeting.StartTime,
			"end_time":    meeting.EndTime,
			"updated_at":  meeting.UpdatedAt,
		}).Error
}

// ReplaceAttendance makes participantIDs the attendee set. A declined
// participant named in the set is invited again; one left out keeps the
// declined invitation so it still shows as not available.
func (r *meetingRepository) ReplaceAttendance(ctx context.Context, meetingID uuid.UUID, participantIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []entities.Invitation
		if err := tx.Where("meeting_id = ?", meetingID).Find(&existing).Error; err != nil {
			return err
		}

		want := make(map[uuid.UUID]bool, len(participantIDs))
		for _, id := range participantIDs {
			want[id] = true
		}

		now := time.Now()
		have := make(map[uuid.UUID]bool, len(existing))
		for _, inv := range existing {
			have[inv.ParticipantID] = true
			switch {
			case want[inv.ParticipantID] && inv.Declined():
				err := tx.Model(&entities.Invitation{}).
					Where("id = ?", inv.ID).
					Updates(map[string]interface{}{
						"response":     entities.ResponsePending,
						"responded_at": nil,
						"updated_at":   now,
					}).Error
				if err != nil {
					return err
				}
			case !want[inv.ParticipantID] && !inv.Declined():
				if err := tx.Delete(&entities.Invitation{}, "id = ?", inv.ID).Error; err != nil {
					return err
				}
			}
		}

		var added []entities.Invitation
		for _, id := range participantIDs {
			if have[id] {
				continue
			}
			have[id] = true
			added = append(added, entities.Invitation{
				MeetingID:     meetingID,
				ParticipantID: id,
				Response:      entities.ResponsePending,
			})
		}
		if len(added) > 0 {
			if err := tx.Create(&added).Error; err != nil {
				return err
			}
		}

		return tx.Model(&entities.Meeting{}).
			Where("id = ?", meetingID).
			Update("updated_at", now).Error
	})
}

// ReplaceActionItems swaps the whole ledger in one transaction
func (r *meetingRepository) ReplaceActionItems(ctx context.Context, meetingID uuid.UUID, items []entities.ActionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entities.Meeting{}).
			Where("id = ?", meetingID).
			Update("updated_at", time.Now()).Error
	})
}

// SetResponse records a participant's answer to their invitation
func (r *meetingRepository) SetResponse(ctx context.Context, meetingID, participantID uuid.UUID, response entities.InvitationResponse) error {
	var inv entities.Invitation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND participant_id = ?", meetingID, participantID).
		First(&inv).Error
	if err != nil {
		return err
	}

	inv.Respond(response)
	return r.db.WithContext(ctx).
		Model(&inv).
		Select("response", "responded_at", "updated_at").
		Updates(&inv).Error
}
