package planner_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
)

type serverError struct{ msg string }

func (e *serverError) Error() string       { return "server: " + e.msg }
func (e *serverError) UserMessage() string { return e.msg }

var errNetwork = errors.New("connection refused")

type fakeGateway struct {
	mu sync.Mutex

	participants []scheduling.Participant
	meetings     []scheduling.Meeting

	participantsErr error
	meetingsErr     error
	commitErr       error
	commitMsg       string
	// when set, commits wait for a value before returning
	release chan struct{}
	entered chan struct{}

	meetingFetches int
	scheduled      []planner.ScheduleRequest
	edits          []planner.EditRequest
	attendees      map[string][]string
	actionItems    map[string][]scheduling.ActionItem
}

func newFakeGateway() *fakeGateway {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &fakeGateway{
		participants: []scheduling.Participant{
			{ID: "1", Name: "Alice Nguyen", Email: "a@x.com"},
			{ID: "2", Name: "Bob Tran", Email: "b@x.com"},
			{ID: "3", Name: "Carol Le", Email: "c@x.com"},
		},
		meetings: []scheduling.Meeting{
			{
				InternalID: "m-1", MeetingID: "key-1", Title: "Kickoff", Description: "Plan",
				Organizer: "a@x.com", Location: "Room 1", Date: "2025-03-10", Time: "09:00 - 10:00",
				CreatedAt:                created,
				AvailableParticipants:    []scheduling.Participant{{Name: "Alice Nguyen", Email: "a@x.com"}},
				NotAvailableParticipants: []scheduling.Participant{{Name: "Bob Tran", Email: "b@x.com"}},
			},
			{
				InternalID: "m-2", MeetingID: "key-2", Title: "Retro", Description: "Look back",
				Organizer: "b@x.com", Location: "Room 2", Date: "2025-03-11", StartTime: "14:00", EndTime: "15:00",
				CreatedAt:   created.Add(time.Hour),
				ActionItems: []scheduling.ActionItem{
					{Item: "Collect feedback", Responsible: "b@x.com", Status: scheduling.StatusOpen},
				},
			},
		},
		attendees:   map[string][]string{},
		actionItems: map[string][]scheduling.ActionItem{},
	}
}

func (f *fakeGateway) FetchParticipants(ctx context.Context) ([]scheduling.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.participantsErr != nil {
		return nil, f.participantsErr
	}
	return append([]scheduling.Participant(nil), f.participants...), nil
}

func (f *fakeGateway) FetchMeetings(ctx context.Context) ([]scheduling.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meetingFetches++
	if f.meetingsErr != nil {
		return nil, f.meetingsErr
	}
	return append([]scheduling.Meeting(nil), f.meetings...), nil
}

func (f *fakeGateway) commit(record func()) (string, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commitErr != nil {
		return "", f.commitErr
	}
	record()
	return f.commitMsg, nil
}

func (f *fakeGateway) ScheduleMeeting(ctx context.Context, req planner.ScheduleRequest) (string, error) {
	return f.commit(func() { f.scheduled = append(f.scheduled, req) })
}

func (f *fakeGateway) EditMeeting(ctx context.Context, req planner.EditRequest) (string, error) {
	return f.commit(func() { f.edits = append(f.edits, req) })
}

func (f *fakeGateway) UpdateAttendees(ctx context.Context, key string, emails []string) (string, error) {
	return f.commit(func() { f.attendees[key] = emails })
}

func (f *fakeGateway) UpdateActionItems(ctx context.Context, key string, items []scheduling.ActionItem) (string, error) {
	return f.commit(func() { f.actionItems[key] = items })
}

func (f *fakeGateway) fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.meetingFetches
}

func (f *fakeGateway) setCommitErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commitErr = err
}

func newWorkspace(t *testing.T, gw *fakeGateway, opts ...planner.Option) *planner.Workspace {
	t.Helper()
	store := planner.NewStore(gw, zap.NewNop())
	gt.NoError(t, store.Refresh(context.Background())).Required()
	ws := planner.NewWorkspace(store, gw, zap.NewNop(), opts...)
	t.Cleanup(ws.Shutdown)
	return ws
}

// commitWhileBlocked runs commit, issues a second commit while the gateway
// still holds the first, then lets the first one finish.
func commitWhileBlocked(t *testing.T, gw *fakeGateway, commit func() error) (first, second error) {
	t.Helper()
	gw.release = make(chan struct{})
	gw.entered = make(chan struct{})

	done := make(chan error, 1)
	go func() { done <- commit() }()

	<-gw.entered
	second = commit()
	close(gw.release)
	return <-done, second
}
