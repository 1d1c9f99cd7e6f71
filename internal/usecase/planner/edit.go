package planner

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// EditState is the lifecycle of an edit session.
type EditState string

const (
	EditClosed     EditState = "closed"
	EditDrafting   EditState = "drafting"
	EditValidating EditState = "validating"
	EditCommitting EditState = "committing"
)

// EditView is a snapshot of an edit session.
type EditView struct {
	ID         string
	MeetingID  string
	State      EditState
	Draft      scheduling.Draft
	Violations []string
	Banner     *Banner
}

// EditSession edits the fields of one stored meeting. Attendees are edited
// through an AttendeeSession, so the participant rule does not apply here.
type EditSession struct {
	*base

	meeting    scheduling.Meeting
	draft      scheduling.Draft
	state      EditState
	violations []string
}

// OpenEdit starts editing the meeting with key.
func (w *Workspace) OpenEdit(meetingKey string) (*EditSession, error) {
	m, err := w.meeting(meetingKey)
	if err != nil {
		return nil, err
	}
	s := &EditSession{
		base:    w.newBase(m.MeetingID),
		meeting: m,
		draft:   scheduling.DraftFrom(m),
		state:   EditDrafting,
	}
	w.register(s)
	return s, nil
}

// View returns the current state of the session.
func (s *EditSession) View() EditView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := EditView{
		ID:         s.id,
		MeetingID:  s.meeting.MeetingID,
		State:      s.state,
		Draft:      s.draft,
		Violations: append([]string(nil), s.violations...),
	}
	if b, ok := s.banner.Current(); ok {
		v.Banner = &b
	}
	return v
}

// State returns the session's lifecycle state.
func (s *EditSession) State() EditState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetField edits one field of the draft. Editing clears any notice.
func (s *EditSession) SetField(field scheduling.DraftField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case EditClosed:
		return usecaseErrors.ErrSessionClosed
	case EditCommitting:
		return usecaseErrors.ErrSessionBusy
	}
	if err := s.draft.Set(field, value); err != nil {
		return err
	}
	s.violations = nil
	s.banner.Clear()
	return nil
}

// Validate checks the draft without committing it.
func (s *EditSession) Validate() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != EditDrafting {
		return append([]string(nil), s.violations...)
	}
	return s.validateLocked()
}

func (s *EditSession) validateLocked() []string {
	s.state = EditValidating
	s.violations = scheduling.Validate(s.draft)
	s.state = EditDrafting
	if len(s.violations) > 0 {
		s.banner.Post(BannerError, strings.Join(s.violations, " "))
	}
	return append([]string(nil), s.violations...)
}

// Commit validates the draft and sends it to the server of record. On
// success the session closes, a page banner is posted and the store is
// refreshed; the returned meeting is the stored copy with the draft merged
// in. On failure the session returns to drafting with the draft intact.
func (s *EditSession) Commit(ctx context.Context) (scheduling.Meeting, string, error) {
	s.mu.Lock()
	switch s.state {
	case EditClosed:
		s.mu.Unlock()
		return scheduling.Meeting{}, "", usecaseErrors.ErrSessionClosed
	case EditCommitting:
		s.mu.Unlock()
		return scheduling.Meeting{}, "", usecaseErrors.ErrSessionBusy
	}
	if v := s.validateLocked(); len(v) > 0 {
		s.mu.Unlock()
		return scheduling.Meeting{}, "", &scheduling.ValidationError{Violations: v}
	}
	s.state = EditCommitting
	req := EditRequest{Draft: s.draft, UpdatedAt: s.ws.now()}
	s.mu.Unlock()

	msg, err := s.ws.gateway.EditMeeting(ctx, req)

	s.mu.Lock()
	if s.stale("edit") {
		s.mu.Unlock()
		return scheduling.Meeting{}, "", usecaseErrors.ErrSessionClosed
	}
	if err != nil {
		cerr := commitError(err, MsgEditFailed)
		s.state = EditDrafting
		s.banner.Post(BannerError, cerr.Message)
		s.mu.Unlock()
		s.logger.Error("Failed to edit meeting", zap.Error(err))
		return scheduling.Meeting{}, "", cerr
	}
	merged := req.Draft.ApplyTo(s.meeting)
	s.state = EditClosed
	s.mu.Unlock()

	msg = orDefault(msg, MsgEdited)
	_ = s.ws.Close(s.id)
	s.ws.page.Post(BannerSuccess, msg)
	s.refresh(ctx)
	return merged, msg, nil
}

func (s *EditSession) close() {
	s.mu.Lock()
	s.state = EditClosed
	s.mu.Unlock()
	s.base.close()
}
