package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// PickerState is the presentation state of the participant picker.
type PickerState struct {
	PickerOpen bool `json:"pickerOpen"`
	ReviewOpen bool `json:"reviewOpen"`
}

// ScheduleView is a snapshot of a schedule session.
type ScheduleView struct {
	ID       string
	Draft    scheduling.Draft
	Selected []scheduling.Participant
	Picker   PickerState
	Banner   *Banner
}

// ScheduleSession builds a new meeting and its invitation list.
type ScheduleSession struct {
	*base

	draft    scheduling.Draft
	selected scheduling.Selection
	picker   PickerState
}

// OpenSchedule starts a session with an empty draft and no one selected.
func (w *Workspace) OpenSchedule() *ScheduleSession {
	s := &ScheduleSession{base: w.newBase("")}
	w.register(s)
	return s
}

// View returns the current state of the session.
func (s *ScheduleSession) View() ScheduleView {
	roster := s.ws.store.Participants()
	s.mu.Lock()
	defer s.mu.Unlock()
	v := ScheduleView{
		ID:       s.id,
		Draft:    s.draft,
		Selected: s.selected.Ordered(roster),
		Picker:   s.picker,
	}
	if b, ok := s.banner.Current(); ok {
		v.Banner = &b
	}
	return v
}

// SetField edits one field of the draft.
func (s *ScheduleSession) SetField(field scheduling.DraftField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return usecaseErrors.ErrSessionClosed
	}
	if err := s.draft.Set(field, value); err != nil {
		return err
	}
	s.banner.Clear()
	return nil
}

// Toggle flips email's membership and expands the review panel.
func (s *ScheduleSession) Toggle(email string) {
	roster := s.ws.store.Participants()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = scheduling.Toggle(roster, s.selected, email)
	s.picker.ReviewOpen = true
	s.banner.Clear()
}

// Remove deselects email.
func (s *ScheduleSession) Remove(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = scheduling.Remove(s.selected, email)
	s.banner.Clear()
}

// Candidates lists unselected roster members matching term.
func (s *ScheduleSession) Candidates(term string) []scheduling.Participant {
	roster := s.ws.store.Participants()
	s.mu.Lock()
	defer s.mu.Unlock()
	return scheduling.Filter(roster, s.selected, term)
}

// SetPicker records which panels are open.
func (s *ScheduleSession) SetPicker(state PickerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker = state
}

// Submit validates the draft and, if valid, schedules the meeting. On
// success the form and selection are reset so another meeting can be
// entered; on failure they are kept for a retry.
func (s *ScheduleSession) Submit(ctx context.Context) (string, error) {
	roster := s.ws.store.Participants()

	s.mu.Lock()
	if err := s.beginCommit(); err != nil {
		s.mu.Unlock()
		return "", err
	}
	draft := s.draft
	emails := s.selected.Emails()
	if err := scheduling.Check(draft, scheduling.WithParticipants(len(emails))); err != nil {
		s.endCommit()
		s.banner.Post(BannerError, err.Error())
		s.mu.Unlock()
		return "", err
	}
	s.mu.Unlock()

	// invite in roster order when the roster knows everyone
	if ordered := scheduling.NewSelection(emails...).Ordered(roster); len(ordered) == len(emails) {
		emails = emails[:0]
		for _, p := range ordered {
			emails = append(emails, scheduling.NormalizeEmail(p.Email))
		}
	}

	msg, err := s.ws.gateway.ScheduleMeeting(ctx, ScheduleRequest{Draft: draft, Emails: emails})

	s.mu.Lock()
	s.endCommit()
	if s.stale("schedule") {
		s.mu.Unlock()
		return "", usecaseErrors.ErrSessionClosed
	}
	if err != nil {
		cerr := commitError(err, MsgScheduleFailed)
		s.banner.Post(BannerError, cerr.Message)
		s.mu.Unlock()
		s.logger.Error("Failed to schedule meeting", zap.Error(err))
		return "", cerr
	}
	msg = orDefault(msg, MsgScheduled)
	s.draft = scheduling.Draft{}
	s.selected = scheduling.Selection{}
	s.picker = PickerState{}
	s.banner.Post(BannerSuccess, msg)
	s.mu.Unlock()

	s.refresh(ctx)
	return msg, nil
}
