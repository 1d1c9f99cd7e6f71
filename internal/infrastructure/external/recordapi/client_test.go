package recordapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/external/recordapi"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

func newClient(t *testing.T, h http.Handler) *recordapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return recordapi.NewClient(&config.RecordAPIConfig{
		URL:                  srv.URL + "/",
		FetchMaxElapsed:      time.Second,
		FetchInitialInterval: time.Millisecond,
	}, zap.NewNop())
}

func TestFetchParticipantsAcceptsBothShapes(t *testing.T) {
	bodies := map[string]string{
		"bare":    `[{"id":"1","name":"Alice","email":"a@x.com","facultyid":"F1"}]`,
		"wrapped": `{"userDetails":[{"id":"1","name":"Alice","email":"a@x.com","facultyid":"F1"}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gt.Value(t, r.URL.Path).Equal("/getallusers")
				_, _ = w.Write([]byte(body))
			}))
			got, err := c.FetchParticipants(context.Background())
			gt.NoError(t, err).Required()
			gt.Array(t, got).Length(1)
			gt.Value(t, got[0].Email).Equal("a@x.com")
			gt.Value(t, got[0].FacultyID).Equal("F1")
		})
	}
}

func TestFetchMeetingsSplitsTime(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/meeting-yes-no")
		_, _ = w.Write([]byte(`{"meetings":[{
			"id":"m-1","meetingId":"key-1","createdAt":"2025-03-01T09:00:00Z",
			"meetingDetails":{"title":"Kickoff","date":"2025-03-10T00:00:00Z","time":"09:00 - 10:00"},
			"meetingData":{"available_participants":[{"name":"Alice","email":"a@x.com"}],
			"not_available_participants":[{"name":"Bob","email":"b@x.com"}]}
		}]}`))
	}))

	got, err := c.FetchMeetings(context.Background())
	gt.NoError(t, err).Required()
	gt.Array(t, got).Length(1).Required()
	m := got[0]
	gt.Value(t, m.MeetingID).Equal("key-1")
	gt.Value(t, m.Date).Equal("2025-03-10")
	gt.Value(t, m.StartTime).Equal("09:00")
	gt.Value(t, m.EndTime).Equal("10:00")
	gt.Array(t, m.AttendeeEmails()).Length(1)
	gt.Array(t, m.NotAvailableParticipants).Length(1)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	got, err := c.FetchParticipants(context.Background())
	gt.NoError(t, err)
	gt.Array(t, got).Length(0)
	gt.Value(t, calls.Load()).Equal(int32(3))
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not_found","message":"no such route"}`))
	}))

	_, err := c.FetchMeetings(context.Background())
	gt.Value(t, err).NotNil()
	gt.Value(t, calls.Load()).Equal(int32(1))
	gt.Value(t, planner.UserMessage(err, "fallback")).Equal("no such route")
}

func TestScheduleMeetingSendsWireShape(t *testing.T) {
	var got map[string]interface{}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPut)
		gt.Value(t, r.URL.Path).Equal("/schedule-meeting")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":"Meeting scheduled"}`))
	}))

	msg, err := c.ScheduleMeeting(context.Background(), planner.ScheduleRequest{
		Draft: scheduling.Draft{
			Title: "Kickoff", Description: "Plan", Organizer: "a@x.com", Location: "Room 1",
			Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00",
		},
		Emails: []string{"a@x.com", "b@x.com"},
	})
	gt.NoError(t, err)
	gt.Value(t, msg).Equal("Meeting scheduled")
	gt.Value(t, got["meetingDate"]).Equal("2025-03-10")
	gt.Value(t, got["meetingStart"]).Equal("09:00")
	gt.Value(t, got["meetingTitle"]).Equal("Kickoff")
	gt.Array(t, got["emails"].([]interface{})).Length(2)
}

func TestCommitIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Database unavailable"}`))
	}))

	_, err := c.UpdateAttendees(context.Background(), "key-1", []string{"a@x.com"})
	gt.Value(t, err).NotNil()
	gt.Value(t, calls.Load()).Equal(int32(1))

	var apiErr *recordapi.Error
	gt.Bool(t, errors.As(err, &apiErr)).True()
	gt.Value(t, apiErr.Status).Equal(http.StatusInternalServerError)
	gt.Value(t, apiErr.UserMessage()).Equal("Database unavailable")
}

func TestEditMeetingTargetsInternalID(t *testing.T) {
	var body map[string]interface{}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.URL.Path).Equal("/edit-meeting/m-1")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// no message in the answer
		_, _ = w.Write([]byte(`{}`))
	}))

	msg, err := c.EditMeeting(context.Background(), planner.EditRequest{
		Draft: scheduling.Draft{
			InternalID: "m-1", MeetingID: "key-1", Title: "Kickoff",
			Date: "2025-03-10", StartTime: "09:00", EndTime: "10:30",
		},
		UpdatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	gt.NoError(t, err)
	gt.Value(t, msg).Equal("")
	gt.Value(t, body["meeting_id"]).Equal("key-1")
	mt := body["meetingTime"].(map[string]interface{})
	gt.Value(t, mt["meetingFinish"]).Equal("10:30")
}

func TestUpdateActionItemsSendsEmptyList(t *testing.T) {
	var body map[string]json.RawMessage
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/update-meeting-action-items")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"message":"Saved"}`))
	}))

	_, err := c.UpdateActionItems(context.Background(), "key-1", nil)
	gt.NoError(t, err)
	gt.Value(t, string(body["meetingId"])).Equal(`"key-1"`)
	gt.Value(t, string(body["actionItems"])).Equal(`[]`)
}
