package handler_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/adapter/handler"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/external/recordapi"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	recordUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/record"
	"github.com/johnquangdev/meeting-planner/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-planner/pkg/validator"
)

// fakeRecords is an in-memory server of record
type fakeRecords struct {
	mu       sync.Mutex
	roster   []scheduling.Participant
	meetings []scheduling.Meeting
	failNext error
}

var _ recordUsecase.Service = (*fakeRecords)(nil)

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		roster: []scheduling.Participant{
			{ID: "1", Name: "Alice Nguyen", Email: "a@x.com"},
			{ID: "2", Name: "Bob Tran", Email: "b@x.com"},
			{ID: "3", Name: "Carol Le", Email: "c@x.com"},
		},
		meetings: []scheduling.Meeting{{
			InternalID: uuid.NewString(), MeetingID: "key-1",
			Title: "Kickoff", Description: "Plan", Organizer: "a@x.com", Location: "Room 1",
			Date: "2030-01-10", StartTime: "09:00", EndTime: "10:00",
			CreatedAt:             time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
			AvailableParticipants: []scheduling.Participant{{Name: "Alice Nguyen", Email: "a@x.com"}},
		}},
	}
}

func (f *fakeRecords) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeRecords) participant(email string) (scheduling.Participant, bool) {
	for _, p := range f.roster {
		if p.Email == scheduling.NormalizeEmail(email) {
			return p, true
		}
	}
	return scheduling.Participant{}, false
}

func (f *fakeRecords) find(match func(scheduling.Meeting) bool) (int, error) {
	for i, m := range f.meetings {
		if match(m) {
			return i, nil
		}
	}
	return -1, usecaseErrors.ErrMeetingNotFound
}

func (f *fakeRecords) ListParticipants(ctx context.Context) ([]scheduling.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]scheduling.Participant(nil), f.roster...), nil
}

func (f *fakeRecords) ListMeetings(ctx context.Context) ([]scheduling.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return scheduling.SortByCreatedDesc(f.meetings), nil
}

func (f *fakeRecords) GetMeeting(ctx context.Context, key string) (scheduling.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(func(m scheduling.Meeting) bool { return m.MeetingID == key })
	if err != nil {
		return scheduling.Meeting{}, err
	}
	return f.meetings[i], nil
}

func (f *fakeRecords) ScheduleMeeting(ctx context.Context, input recordUsecase.ScheduleInput) (*entities.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	if err := scheduling.Check(input.Draft, scheduling.WithParticipants(len(input.Emails))); err != nil {
		return nil, err
	}

	id := uuid.New()
	m := input.Draft.ApplyTo(scheduling.Meeting{
		InternalID: id.String(),
		MeetingID:  uuid.NewString(),
		CreatedAt:  time.Now(),
	})
	for _, email := range input.Emails {
		p, ok := f.participant(email)
		if !ok {
			return nil, usecaseErrors.ErrParticipantNotFound
		}
		m.AvailableParticipants = append(m.AvailableParticipants, p)
	}
	f.meetings = append(f.meetings, m)
	return &entities.Meeting{ID: id, MeetingKey: m.MeetingID}, nil
}

func (f *fakeRecords) EditMeeting(ctx context.Context, id uuid.UUID, input recordUsecase.EditInput) (*entities.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	i, err := f.find(func(m scheduling.Meeting) bool { return m.InternalID == id.String() })
	if err != nil {
		return nil, err
	}
	if input.MeetingKey != "" && input.MeetingKey != f.meetings[i].MeetingID {
		return nil, usecaseErrors.ErrMeetingKeyMismatch
	}
	f.meetings[i] = input.Draft.ApplyTo(f.meetings[i])
	return &entities.Meeting{ID: id, MeetingKey: f.meetings[i].MeetingID}, nil
}

func (f *fakeRecords) UpdateAttendees(ctx context.Context, key string, emails []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	i, err := f.find(func(m scheduling.Meeting) bool { return m.MeetingID == key })
	if err != nil {
		return err
	}
	var available []scheduling.Participant
	for _, email := range emails {
		p, ok := f.participant(email)
		if !ok {
			return usecaseErrors.ErrParticipantNotFound
		}
		available = append(available, p)
	}
	f.meetings[i].AvailableParticipants = available
	return nil
}

func (f *fakeRecords) UpdateActionItems(ctx context.Context, key string, items []scheduling.ActionItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	i, err := f.find(func(m scheduling.Meeting) bool { return m.MeetingID == key })
	if err != nil {
		return err
	}
	f.meetings[i].ActionItems = append([]scheduling.ActionItem(nil), items...)
	return nil
}

func (f *fakeRecords) Respond(ctx context.Context, key, email, response string) error {
	return nil
}

// newServer serves both surfaces from one echo instance, with the planner
// talking to the record routes over HTTP.
func newServer(t *testing.T, records *fakeRecords) (*httptest.Server, *planner.Workspace) {
	t.Helper()
	logger := zap.NewNop()

	e := echo.New()
	e.Validator = pkgvalidator.New()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	client := recordapi.NewClient(&config.RecordAPIConfig{
		URL:                  srv.URL + "/api",
		FetchMaxElapsed:      time.Second,
		FetchInitialInterval: 10 * time.Millisecond,
	}, logger)
	store := planner.NewStore(client, logger)
	ws := planner.NewWorkspace(store, client, logger)
	t.Cleanup(ws.Shutdown)

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	plannerHandler := handler.NewPlannerHandler(ws, 15, logger,
		handler.WithLocation(time.UTC),
		handler.WithNow(func() time.Time { return time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC) }),
	)
	router := handler.NewRouter(cfg, plannerHandler, handler.NewRecordHandler(records, logger))
	router.Setup(e)

	return srv, ws
}
