package planner_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
)

func fillDraft(t *testing.T, s *planner.ScheduleSession) {
	t.Helper()
	fields := map[scheduling.DraftField]string{
		scheduling.FieldTitle:       "Budget review",
		scheduling.FieldDescription: "Q2 numbers",
		scheduling.FieldOrganizer:   "a@x.com",
		scheduling.FieldLocation:    "Room 3",
		scheduling.FieldDate:        "2025-03-10",
		scheduling.FieldStartTime:   "09:00",
		scheduling.FieldEndTime:     "10:00",
	}
	for f, v := range fields {
		gt.NoError(t, s.SetField(f, v)).Required()
	}
}

func TestScheduleToggleExpandsReview(t *testing.T) {
	ws := newWorkspace(t, newFakeGateway())
	s := ws.OpenSchedule()

	gt.Bool(t, s.View().Picker.ReviewOpen).False()
	s.Toggle("a@x.com")

	v := s.View()
	gt.Bool(t, v.Picker.ReviewOpen).True()
	gt.Array(t, v.Selected).Length(1)

	cands := s.Candidates("")
	gt.Array(t, cands).Length(2)
	for _, c := range cands {
		gt.Bool(t, c.Email == "a@x.com").False()
	}
}

func TestScheduleRequiresParticipant(t *testing.T) {
	gw := newFakeGateway()
	ws := newWorkspace(t, gw)
	s := ws.OpenSchedule()
	fillDraft(t, s)

	_, err := s.Submit(context.Background())
	gt.Error(t, err).Is(scheduling.ErrValidation)
	gt.Array(t, gw.scheduled).Length(0)
	gt.Value(t, planner.UserMessage(err, "")).Equal(scheduling.MsgParticipantsRequired)
}

func TestScheduleSubmitResetsOnSuccess(t *testing.T) {
	gw := newFakeGateway()
	ws := newWorkspace(t, gw)
	s := ws.OpenSchedule()
	fillDraft(t, s)
	s.Toggle("c@x.com")
	s.Toggle("a@x.com")

	msg, err := s.Submit(context.Background())
	gt.NoError(t, err).Required()
	gt.Value(t, msg).Equal(planner.MsgScheduled)

	gt.Array(t, gw.scheduled).Length(1)
	gt.Value(t, gw.scheduled[0].Emails).Equal([]string{"a@x.com", "c@x.com"})
	gt.Value(t, gw.scheduled[0].Draft.Title).Equal("Budget review")

	v := s.View()
	gt.Value(t, v.Draft).Equal(scheduling.Draft{})
	gt.Array(t, v.Selected).Length(0)
	gt.Value(t, v.Picker).Equal(planner.PickerState{})
	gt.Value(t, v.Banner.Message).Equal(planner.MsgScheduled)
}

func TestScheduleSubmitFailureKeepsForm(t *testing.T) {
	gw := newFakeGateway()
	gw.commitErr = &serverError{msg: "Organizer is busy"}
	ws := newWorkspace(t, gw)
	s := ws.OpenSchedule()
	fillDraft(t, s)
	s.Toggle("b@x.com")

	_, err := s.Submit(context.Background())
	gt.Value(t, planner.UserMessage(err, planner.MsgScheduleFailed)).Equal("Organizer is busy")

	v := s.View()
	gt.Value(t, v.Draft.Title).Equal("Budget review")
	gt.Array(t, v.Selected).Length(1)
	gt.Value(t, v.Banner.Kind).Equal(planner.BannerError)
}

func TestScheduleEditClearsBanner(t *testing.T) {
	ws := newWorkspace(t, newFakeGateway())
	s := ws.OpenSchedule()

	_, err := s.Submit(context.Background())
	gt.Error(t, err).Is(scheduling.ErrValidation)
	_, ok := s.Banner()
	gt.Bool(t, ok).True()

	gt.NoError(t, s.SetField(scheduling.FieldTitle, "x")).Required()
	_, ok = s.Banner()
	gt.Bool(t, ok).False()
}

func TestScheduleClosedSession(t *testing.T) {
	ws := newWorkspace(t, newFakeGateway())
	s := ws.OpenSchedule()
	gt.NoError(t, ws.Close(s.ID())).Required()

	_, err := s.Submit(context.Background())
	gt.Error(t, err).Is(usecaseErrors.ErrSessionClosed)
	gt.Error(t, ws.Close(s.ID())).Is(usecaseErrors.ErrSessionNotFound)
}

func TestScheduleSubmitWhileInFlightIsBusy(t *testing.T) {
	gw := newFakeGateway()
	ws := newWorkspace(t, gw)
	s := ws.OpenSchedule()
	fillDraft(t, s)
	s.Toggle("a@x.com")

	first, second := commitWhileBlocked(t, gw, func() error {
		_, err := s.Submit(context.Background())
		return err
	})
	gt.NoError(t, first)
	gt.Error(t, second).Is(usecaseErrors.ErrSessionBusy)
	gt.Array(t, gw.scheduled).Length(1)

	// the guard is released once the first submit returns
	fillDraft(t, s)
	s.Toggle("b@x.com")
	gw.release, gw.entered = nil, nil
	_, err := s.Submit(context.Background())
	gt.NoError(t, err)
	gt.Array(t, gw.scheduled).Length(2)
}
