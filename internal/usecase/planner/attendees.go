package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// AttendeeView is a snapshot of an attendee session.
type AttendeeView struct {
	ID        string
	MeetingID string
	Attendees []scheduling.Participant
	Dirty     bool
	Banner    *Banner
}

// AttendeeSession edits the attendee set of one meeting. The set is sent
// whole on commit; the available and not-available lists are then taken from
// the server's refreshed copy rather than computed here.
type AttendeeSession struct {
	*base

	meetingKey string
	selected   scheduling.Selection
	dirty      bool
	rev        uint64
}

// OpenAttendees seeds a session from the meeting's available participants.
func (w *Workspace) OpenAttendees(meetingKey string) (*AttendeeSession, error) {
	m, err := w.meeting(meetingKey)
	if err != nil {
		return nil, err
	}
	s := &AttendeeSession{
		base:       w.newBase(m.MeetingID),
		meetingKey: m.MeetingID,
		selected:   scheduling.NewSelection(m.AttendeeEmails()...),
	}
	w.register(s)
	return s, nil
}

// View returns the current state of the session.
func (s *AttendeeSession) View() AttendeeView {
	roster := s.ws.store.Participants()
	s.mu.Lock()
	defer s.mu.Unlock()
	v := AttendeeView{
		ID:        s.id,
		MeetingID: s.meetingKey,
		Attendees: s.selected.Ordered(roster),
		Dirty:     s.dirty,
	}
	if b, ok := s.banner.Current(); ok {
		v.Banner = &b
	}
	return v
}

// Selected returns the attendee emails.
func (s *AttendeeSession) Selected() scheduling.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Dirty reports whether the set has changes not yet committed.
func (s *AttendeeSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Add makes email an attendee. It must be on the roster.
func (s *AttendeeSession) Add(email string) error {
	roster := s.ws.store.Participants()
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := scheduling.Add(roster, s.selected, email)
	if err != nil {
		return err
	}
	s.apply(next)
	return nil
}

// Remove drops email from the attendees.
func (s *AttendeeSession) Remove(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(scheduling.Remove(s.selected, email))
}

func (s *AttendeeSession) apply(next scheduling.Selection) {
	s.banner.Clear()
	if next.Equal(s.selected) {
		return
	}
	s.selected = next
	s.dirty = true
	s.rev++
}

// Candidates lists roster members who are not attendees and match term.
func (s *AttendeeSession) Candidates(term string) []scheduling.Participant {
	roster := s.ws.store.Participants()
	s.mu.Lock()
	defer s.mu.Unlock()
	return scheduling.Filter(roster, s.selected, term)
}

// Commit sends the full attendee set. A failure keeps the selection and the
// dirty flag so the user can retry.
func (s *AttendeeSession) Commit(ctx context.Context) (string, error) {
	s.mu.Lock()
	if err := s.beginCommit(); err != nil {
		s.mu.Unlock()
		return "", err
	}
	key := s.meetingKey
	emails := s.selected.Emails()
	rev := s.rev
	s.mu.Unlock()

	msg, err := s.ws.gateway.UpdateAttendees(ctx, key, emails)

	s.mu.Lock()
	s.endCommit()
	if s.stale("update_attendees") {
		s.mu.Unlock()
		return "", usecaseErrors.ErrSessionClosed
	}
	if err != nil {
		cerr := commitError(err, MsgAttendeesFailed)
		s.banner.Post(BannerError, cerr.Message)
		s.mu.Unlock()
		s.logger.Error("Failed to update attendees", zap.Error(err))
		return "", cerr
	}
	// edits made while the request was in flight are still unsaved
	if s.rev == rev {
		s.dirty = false
	}
	msg = orDefault(msg, MsgAttendeesUpdated)
	s.banner.Post(BannerSuccess, msg)
	s.mu.Unlock()

	s.refresh(ctx)
	return msg, nil
}
