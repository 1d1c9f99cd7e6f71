package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// Store owns the planner's copy of participants and meetings. It is replaced
// wholesale on every fetch and never patched locally; commits are followed by
// a refresh instead. The copy is kept for the life of the process.
type Store struct {
	gateway Gateway
	logger  *zap.Logger

	mu           sync.RWMutex
	participants []scheduling.Participant
	meetings     []scheduling.Meeting
	refreshedAt  time.Time
}

// NewStore creates an empty store backed by gateway.
func NewStore(gateway Gateway, logger *zap.Logger) *Store {
	return &Store{gateway: gateway, logger: logger}
}

// Refresh fetches participants and meetings concurrently. Each result that
// arrives is applied even when the other fetch fails.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		participants []scheduling.Participant
		meetings     []scheduling.Meeting
		pErr, mErr   error
	)

	var g errgroup.Group
	g.Go(func() error {
		participants, pErr = s.gateway.FetchParticipants(ctx)
		return pErr
	})
	g.Go(func() error {
		meetings, mErr = s.gateway.FetchMeetings(ctx)
		return mErr
	})
	_ = g.Wait()

	if pErr == nil {
		s.setParticipants(participants)
	} else {
		s.logger.Warn("Failed to fetch participants", zap.Error(pErr))
		pErr = fmt.Errorf("fetch participants: %w", pErr)
	}
	if mErr == nil {
		s.setMeetings(meetings)
	} else {
		s.logger.Warn("Failed to fetch meetings", zap.Error(mErr))
		mErr = fmt.Errorf("fetch meetings: %w", mErr)
	}
	return errors.Join(pErr, mErr)
}

// RefreshMeetings re-fetches only the meeting list.
func (s *Store) RefreshMeetings(ctx context.Context) error {
	meetings, err := s.gateway.FetchMeetings(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh meetings", zap.Error(err))
		return fmt.Errorf("fetch meetings: %w", err)
	}
	s.setMeetings(meetings)
	return nil
}

func (s *Store) setParticipants(participants []scheduling.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = participants
	s.refreshedAt = time.Now()
}

func (s *Store) setMeetings(meetings []scheduling.Meeting) {
	sorted := scheduling.SortByCreatedDesc(meetings)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = sorted
	s.refreshedAt = time.Now()
}

// Participants returns the roster.
func (s *Store) Participants() []scheduling.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]scheduling.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// Meetings returns all meetings, newest first.
func (s *Store) Meetings() []scheduling.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]scheduling.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// MeetingsOn returns the meetings dated on day, newest first.
func (s *Store) MeetingsOn(day time.Time) []scheduling.Meeting {
	return scheduling.OnDay(s.Meetings(), day)
}

// Meeting looks a meeting up by public key or internal id.
func (s *Store) Meeting(key string) (scheduling.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meetings {
		if m.MeetingID == key || (m.InternalID != "" && m.InternalID == key) {
			return m, true
		}
	}
	return scheduling.Meeting{}, false
}

// RefreshedAt is the time of the last successful fetch.
func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}
