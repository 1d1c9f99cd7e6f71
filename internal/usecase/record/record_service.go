package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	appErrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// EmailChecker validates email syntax
type EmailChecker interface {
	Email(s string) bool
}

// RecordService handles meeting record business logic
type RecordService struct {
	meetingRepo     repositories.MeetingRepository
	participantRepo repositories.ParticipantRepository
	listCache       *cache.MeetingListCache
	emails          EmailChecker
	logger          *zap.Logger
}

// NewRecordService creates a new record service. listCache may be nil.
func NewRecordService(
	meetingRepo repositories.MeetingRepository,
	participantRepo repositories.ParticipantRepository,
	listCache *cache.MeetingListCache,
	emails EmailChecker,
	logger *zap.Logger,
) *RecordService {
	return &RecordService{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		listCache:       listCache,
		emails:          emails,
		logger:          logger,
	}
}

var _ Service = (*RecordService)(nil)

// ListParticipants returns the full roster
func (s *RecordService) ListParticipants(ctx context.Context) ([]scheduling.Participant, error) {
	rows, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, appErrors.ErrDBQueryFailed("list_participants", err)
	}
	out := make([]scheduling.Participant, 0, len(rows))
	for _, p := range rows {
		out = append(out, p.ToScheduling())
	}
	return out, nil
}

// ListMeetings returns every meeting, newest first
func (s *RecordService) ListMeetings(ctx context.Context) ([]scheduling.Meeting, error) {
	var gen uint64
	if s.listCache != nil {
		gen = s.listCache.Generation()
		cached, ok, err := s.listCache.Get(ctx)
		if err != nil {
			s.logger.Warn("Failed to read meeting list cache", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	rows, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, appErrors.ErrDBQueryFailed("list_meetings", err)
	}
	meetings := make([]scheduling.Meeting, 0, len(rows))
	for _, m := range rows {
		meetings = append(meetings, m.ToScheduling())
	}

	if s.listCache != nil {
		if err := s.listCache.Set(ctx, gen, meetings); err != nil {
			s.logger.Warn("Failed to write meeting list cache", zap.Error(err))
		}
	}
	return meetings, nil
}

// GetMeeting returns one meeting by public key
func (s *RecordService) GetMeeting(ctx context.Context, key string) (scheduling.Meeting, error) {
	m, err := s.findByKey(ctx, key)
	if err != nil {
		return scheduling.Meeting{}, err
	}
	return m.ToScheduling(), nil
}

// ScheduleMeeting creates a meeting and invites the given emails
func (s *RecordService) ScheduleMeeting(ctx context.Context, input ScheduleInput) (*entities.Meeting, error) {
	emails, err := s.normalizeEmails(input.Emails)
	if err != nil {
		return nil, err
	}
	if err := scheduling.Check(input.Draft, scheduling.WithParticipants(len(emails))); err != nil {
		return nil, err
	}

	participants, err := s.resolveParticipants(ctx, emails)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(input.Draft.Date)
	if err != nil {
		return nil, err
	}

	meeting := &entities.Meeting{
		MeetingKey:  uuid.NewString(),
		Title:       input.Draft.Title,
		Description: input.Draft.Description,
		Organizer:   input.Draft.Organizer,
		Location:    input.Draft.Location,
		Date:        date,
		StartTime:   input.Draft.StartTime,
		EndTime:     input.Draft.EndTime,
	}
	for _, p := range participants {
		meeting.Invitations = append(meeting.Invitations, entities.Invitation{
			ParticipantID: p.ID,
			Response:      entities.ResponsePending,
		})
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, appErrors.ErrDBTransactionFailed(err)
	}
	s.invalidate(ctx)
	return meeting, nil
}

// EditMeeting updates the fields of a meeting
func (s *RecordService) EditMeeting(ctx context.Context, id uuid.UUID, input EditInput) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, appErrors.ErrDBQueryFailed("find_meeting", err)
	}
	if input.MeetingKey != "" && input.MeetingKey != meeting.MeetingKey {
		return nil, usecaseErrors.ErrMeetingKeyMismatch
	}

	if err := scheduling.Check(input.Draft); err != nil {
		return nil, err
	}
	date, err := parseDate(input.Draft.Date)
	if err != nil {
		return nil, err
	}

	meeting.Title = input.Draft.Title
	meeting.Description = input.Draft.Description
	meeting.Organizer = input.Draft.Organizer
	meeting.Location = input.Draft.Location
	meeting.Date = date
	meeting.StartTime = input.Draft.StartTime
	meeting.EndTime = input.Draft.EndTime
	meeting.UpdatedAt = input.UpdatedAt
	if meeting.UpdatedAt.IsZero() {
		meeting.UpdatedAt = time.Now()
	}

	if err := s.meetingRepo.UpdateDetails(ctx, meeting); err != nil {
		return nil, appErrors.ErrDBTransactionFailed(err)
	}
	s.invalidate(ctx)
	return meeting, nil
}

// UpdateAttendees replaces the attendee set of a meeting
func (s *RecordService) UpdateAttendees(ctx context.Context, key string, emails []string) error {
	meeting, err := s.findByKey(ctx, key)
	if err != nil {
		return err
	}
	normalized, err := s.normalizeEmails(emails)
	if err != nil {
		return err
	}
	participants, err := s.resolveParticipants(ctx, normalized)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.ID)
	}
	if err := s.meetingRepo.ReplaceAttendance(ctx, meeting.ID, ids); err != nil {
		return appErrors.ErrDBTransactionFailed(err)
	}
	s.invalidate(ctx)
	return nil
}

// UpdateActionItems replaces the action item ledger of a meeting
func (s *RecordService) UpdateActionItems(ctx context.Context, key string, items []scheduling.ActionItem) error {
	meeting, err := s.findByKey(ctx, key)
	if err != nil {
		return err
	}

	rows := make([]entities.ActionItem, 0, len(items))
	for i, item := range items {
		row, err := entities.NewActionItem(meeting.ID, i, item)
		if err != nil {
			return fmt.Errorf("%w: action item %d: %v", usecaseErrors.ErrInvalidInput, i+1, err)
		}
		rows = append(rows, row)
	}

	if err := s.meetingRepo.ReplaceActionItems(ctx, meeting.ID, rows); err != nil {
		return appErrors.ErrDBTransactionFailed(err)
	}
	s.invalidate(ctx)
	return nil
}

// Respond records a participant's yes/no answer
func (s *RecordService) Respond(ctx context.Context, key, email, response string) error {
	resp, err := entities.ParseResponse(response)
	if err != nil {
		return usecaseErrors.ErrInvalidResponse
	}
	meeting, err := s.findByKey(ctx, key)
	if err != nil {
		return err
	}
	participant, err := s.participantRepo.FindByEmail(ctx, scheduling.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", usecaseErrors.ErrParticipantNotFound, email)
		}
		return appErrors.ErrDBQueryFailed("find_participant", err)
	}

	if err := s.meetingRepo.SetResponse(ctx, meeting.ID, participant.ID, resp); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrNotInvited
		}
		return appErrors.ErrDBTransactionFailed(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *RecordService) findByKey(ctx context.Context, key string) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, appErrors.ErrDBQueryFailed("find_meeting", err)
	}
	return meeting, nil
}

// normalizeEmails lower-cases, de-duplicates and syntax-checks emails
func (s *RecordService) normalizeEmails(emails []string) ([]string, error) {
	seen := make(map[string]bool, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = scheduling.NormalizeEmail(e)
		if seen[e] {
			continue
		}
		if !s.emails.Email(e) {
			return nil, fmt.Errorf("%w: %q is not a valid email", usecaseErrors.ErrInvalidInput, e)
		}
		seen[e] = true
		out = append(out, e)
	}
	return out, nil
}

// resolveParticipants loads the participants for emails, keeping their order
func (s *RecordService) resolveParticipants(ctx context.Context, emails []string) ([]*entities.Participant, error) {
	found, err := s.participantRepo.FindByEmails(ctx, emails)
	if err != nil {
		return nil, appErrors.ErrDBQueryFailed("find_participants", err)
	}
	byEmail := make(map[string]*entities.Participant, len(found))
	for _, p := range found {
		byEmail[scheduling.NormalizeEmail(p.Email)] = p
	}

	out := make([]*entities.Participant, 0, len(emails))
	for _, e := range emails {
		p, ok := byEmail[e]
		if !ok {
			return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrParticipantNotFound, e)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseDate(value string) (datatypes.Date, error) {
	d, err := time.Parse(scheduling.DateLayout, scheduling.NormalizeDate(value))
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%w: invalid date %q", usecaseErrors.ErrInvalidInput, value)
	}
	return datatypes.Date(d), nil
}

func (s *RecordService) invalidate(ctx context.Context) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate meeting list cache", zap.Error(err))
	}
}
