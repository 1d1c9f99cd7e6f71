package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/errors"
	plannerDTO "github.com/johnquangdev/meeting-planner/internal/adapter/dto/planner"
	"github.com/johnquangdev/meeting-planner/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	"github.com/johnquangdev/meeting-planner/pkg/timeslot"
)

// Planner serves the organizer workspace: the local meeting store, the page
// banner and the editing sessions.
type Planner struct {
	ws           *planner.Workspace
	logger       *zap.Logger
	slotInterval int
	loc          *time.Location
	now          func() time.Time
}

// PlannerOption configures a Planner handler
type PlannerOption func(*Planner)

// WithLocation sets the zone used for "today" and calendar export
func WithLocation(loc *time.Location) PlannerOption {
	return func(h *Planner) { h.loc = loc }
}

// WithNow replaces the handler's clock
func WithNow(now func() time.Time) PlannerOption {
	return func(h *Planner) { h.now = now }
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(ws *planner.Workspace, slotInterval int, logger *zap.Logger, opts ...PlannerOption) *Planner {
	h := &Planner{
		ws:           ws,
		logger:       logger,
		slotInterval: slotInterval,
		loc:          time.Local,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// TimeSlots handles GET /timeslots
func (h *Planner) TimeSlots(c echo.Context) error {
	var req plannerDTO.TimeSlotsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	interval := req.Interval
	if interval == 0 {
		interval = h.slotInterval
	}
	return HandleSuccess(h.logger, c, presenter.ToTimeSlotsResponse(interval, timeslot.Generate(interval)))
}

// ListParticipants handles GET /participants
func (h *Planner) ListParticipants(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToParticipantResponses(h.ws.Store().Participants()))
}

// ListMeetings handles GET /meetings
func (h *Planner) ListMeetings(c echo.Context) error {
	var req plannerDTO.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	store := h.ws.Store()
	meetings := store.Meetings()
	if req.Today {
		meetings = store.MeetingsOn(h.now().In(h.loc))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings, store.RefreshedAt()))
}

// GetMeeting handles GET /meetings/:meetingId
func (h *Planner) GetMeeting(c echo.Context) error {
	m, ok := h.ws.Store().Meeting(c.Param("meetingId"))
	if !ok {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(c.Param("meetingId")))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Refresh handles POST /meetings/refresh
func (h *Planner) Refresh(c echo.Context) error {
	store := h.ws.Store()
	if err := store.Refresh(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, errors.ErrRecordAPIFailed("Failed to load meetings", err))
	}
	return HandleSuccess(h.logger, c, &plannerDTO.RefreshResponse{
		Participants: len(store.Participants()),
		Meetings:     len(store.Meetings()),
		RefreshedAt:  store.RefreshedAt(),
	})
}

// Banner handles GET /banner
func (h *Planner) Banner(c echo.Context) error {
	b, ok := h.ws.Banner()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return HandleSuccess(h.logger, c, presenter.ToBannerResponse(&b))
}

// Calendar handles GET /meetings/:meetingId/calendar.ics
func (h *Planner) Calendar(c echo.Context) error {
	key := c.Param("meetingId")
	m, ok := h.ws.Store().Meeting(key)
	if !ok {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(key))
	}

	cal, err := presenter.ToICalendar(m, h.loc, h.now())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	var buf bytes.Buffer
	if err := presenter.EncodeICalendar(&buf, cal); err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+m.MeetingID+`.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// CloseSession handles DELETE on any session
func (h *Planner) CloseSession(c echo.Context) error {
	if err := h.ws.Close(c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Scheduling sessions

// OpenSchedule handles POST /schedule-sessions
func (h *Planner) OpenSchedule(c echo.Context) error {
	s := h.ws.OpenSchedule()
	return HandleStatus(h.logger, c, http.StatusCreated, "session opened", presenter.ToScheduleSessionResponse(s.View()))
}

// GetSchedule handles GET /schedule-sessions/:id
func (h *Planner) GetSchedule(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToScheduleSessionResponse(s.View()))
}

// UpdateScheduleDraft handles PATCH /schedule-sessions/:id/draft
func (h *Planner) UpdateScheduleDraft(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.UpdateDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := s.SetField(scheduling.DraftField(req.Field), req.Value); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToScheduleSessionResponse(s.View()))
}

// ToggleParticipant handles POST /schedule-sessions/:id/toggle
func (h *Planner) ToggleParticipant(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	s.Toggle(req.Email)
	return HandleSuccess(h.logger, c, presenter.ToScheduleSessionResponse(s.View()))
}

// RemoveParticipant handles DELETE /schedule-sessions/:id/selected/:email
func (h *Planner) RemoveParticipant(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	s.Remove(c.Param("email"))
	return HandleSuccess(h.logger, c, presenter.ToScheduleSessionResponse(s.View()))
}

// ScheduleCandidates handles GET /schedule-sessions/:id/candidates
func (h *Planner) ScheduleCandidates(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.CandidatesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToParticipantResponses(s.Candidates(req.Search)))
}

// SetPicker handles POST /schedule-sessions/:id/picker
func (h *Planner) SetPicker(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.PickerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	state := s.View().Picker
	if req.PickerOpen != nil {
		state.PickerOpen = *req.PickerOpen
	}
	if req.ReviewOpen != nil {
		state.ReviewOpen = *req.ReviewOpen
	}
	s.SetPicker(state)
	return HandleSuccess(h.logger, c, presenter.ToScheduleSessionResponse(s.View()))
}

// SubmitSchedule handles POST /schedule-sessions/:id/submit
func (h *Planner) SubmitSchedule(c echo.Context) error {
	s, err := h.ws.ScheduleSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	msg, err := s.Submit(c.Request().Context())
	if err != nil {
		if isStale(err) {
			return c.NoContent(http.StatusNoContent)
		}
		return HandleError(h.logger, c, err)
	}
	return HandleStatus(h.logger, c, http.StatusCreated, msg, presenter.ToScheduleSessionResponse(s.View()))
}

// Edit sessions

// OpenEdit handles POST /meetings/:meetingId/edit-sessions
func (h *Planner) OpenEdit(c echo.Context) error {
	s, err := h.ws.OpenEdit(c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleStatus(h.logger, c, http.StatusCreated, "session opened", presenter.ToEditSessionResponse(s.View()))
}

// GetEdit handles GET /edit-sessions/:id
func (h *Planner) GetEdit(c echo.Context) error {
	s, err := h.ws.EditSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEditSessionResponse(s.View()))
}

// UpdateEditDraft handles PATCH /edit-sessions/:id/draft
func (h *Planner) UpdateEditDraft(c echo.Context) error {
	s, err := h.ws.EditSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.UpdateDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := s.SetField(scheduling.DraftField(req.Field), req.Value); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEditSessionResponse(s.View()))
}

// ValidateEdit handles POST /edit-sessions/:id/validate
func (h *Planner) ValidateEdit(c echo.Context) error {
	s, err := h.ws.EditSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	s.Validate()
	return HandleSuccess(h.logger, c, presenter.ToEditSessionResponse(s.View()))
}

// CommitEdit handles POST /edit-sessions/:id/commit
func (h *Planner) CommitEdit(c echo.Context) error {
	s, err := h.ws.EditSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	merged, msg, err := s.Commit(c.Request().Context())
	if err != nil {
		if isStale(err) {
			return c.NoContent(http.StatusNoContent)
		}
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &plannerDTO.CommitResponse{
		Message: msg,
		Meeting: presenter.ToMeetingResponse(merged),
	})
}

// Attendee sessions

// OpenAttendees handles POST /meetings/:meetingId/attendee-sessions
func (h *Planner) OpenAttendees(c echo.Context) error {
	s, err := h.ws.OpenAttendees(c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleStatus(h.logger, c, http.StatusCreated, "session opened", presenter.ToAttendeeSessionResponse(s.View()))
}

// GetAttendees handles GET /attendee-sessions/:id
func (h *Planner) GetAttendees(c echo.Context) error {
	s, err := h.ws.AttendeeSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAttendeeSessionResponse(s.View()))
}

// AddAttendee handles POST /attendee-sessions/:id/attendees
func (h *Planner) AddAttendee(c echo.Context) error {
	s, err := h.ws.AttendeeSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := s.Add(req.Email); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAttendeeSessionResponse(s.View()))
}

// RemoveAttendee handles DELETE /attendee-sessions/:id/attendees/:email
func (h *Planner) RemoveAttendee(c echo.Context) error {
	s, err := h.ws.AttendeeSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	s.Remove(c.Param("email"))
	return HandleSuccess(h.logger, c, presenter.ToAttendeeSessionResponse(s.View()))
}

// AttendeeCandidates handles GET /attendee-sessions/:id/candidates
func (h *Planner) AttendeeCandidates(c echo.Context) error {
	s, err := h.ws.AttendeeSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req plannerDTO.CandidatesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToParticipantResponses(s.Candidates(req.Search)))
}

// CommitAttendees handles POST /attendee-sessions/:id/commit
func (h *Planner) CommitAttendees(c echo.Context) error {
	s, err := h.ws.AttendeeSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	msg, err := s.Commit(c.Request().Context())
	if err != nil {
		if isStale(err) {
			return c.NoContent(http.StatusNoContent)
		}
		return HandleError(h.logger, c, err)
	}
	return HandleStatus(h.logger, c, http.StatusOK, msg, presenter.ToAttendeeSessionResponse(s.View()))
}

// Action item sessions

// OpenActions handles POST /meetings/:meetingId/action-sessions
func (h *Planner) OpenActions(c echo.Context) error {
	s, err := h.ws.OpenLedger(c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleStatus(h.logger, c, http.StatusCreated, "session opened", presenter.ToActionSessionResponse(s.View()))
}

// GetActions handles GET /action-sessions/:id
func (h *Planner) GetActions(c echo.Context) error {
	s, err := h.ws.LedgerSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionSessionResponse(s.View()))
}

// AddActionItem handles POST /action-sessions/:id/items
func (h *Planner) AddActionItem(c echo.Context) error {
	s, err := h.ws.LedgerSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	s.AddItem()
	return HandleSuccess(h.logger, c, presenter.ToActionSessionResponse(s.View()))
}

// UpdateActionItem handles PATCH /action-sessions/:id/items/:index
func (h *Planner) UpdateActionItem(c echo.Context) error {
	s, err := h.ws.LedgerSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("index must be an integer"))
	}
	var req plannerDTO.UpdateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := s.UpdateField(index, scheduling.ItemField(req.Field), req.Value); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionSessionResponse(s.View()))
}

// RemoveActionItem handles DELETE /action-sessions/:id/items/:index
func (h *Planner) RemoveActionItem(c echo.Context) error {
	s, err := h.ws.LedgerSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("index must be an integer"))
	}
	if err := s.RemoveItem(index); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionSessionResponse(s.View()))
}

// CommitActions handles POST /action-sessions/:id/commit
func (h *Planner) CommitActions(c echo.Context) error {
	s, err := h.ws.LedgerSession(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	msg, err := s.Commit(c.Request().Context())
	if err != nil {
		if isStale(err) {
			return c.NoContent(http.StatusNoContent)
		}
		return HandleError(h.logger, c, err)
	}
	return HandleStatus(h.logger, c, http.StatusOK, msg, presenter.ToActionSessionResponse(s.View()))
}
