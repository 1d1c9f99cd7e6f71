package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/record"
	"github.com/johnquangdev/meeting-planner/internal/adapter/presenter"
	recordUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/record"
)

// Record serves the meeting server of record. Bodies keep the shapes the
// planner client exchanges: bare lists and {"message": ...} acknowledgements.
type Record struct {
	service recordUsecase.Service
	logger  *zap.Logger
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(service recordUsecase.Service, logger *zap.Logger) *Record {
	return &Record{
		service: service,
		logger:  logger,
	}
}

// GetAllUsers handles GET /getallusers
func (h *Record) GetAllUsers(c echo.Context) error {
	participants, err := h.service.ListParticipants(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToRosterResponse(participants))
}

// ListMeetings handles GET /meeting-yes-no
func (h *Record) ListMeetings(c echo.Context) error {
	meetings, err := h.service.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingsResponse(meetings))
}

// GetMeeting handles GET /meeting/:meetingId
func (h *Record) GetMeeting(c echo.Context) error {
	m, err := h.service.GetMeeting(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToRecordMeeting(m))
}

// ScheduleMeeting handles PUT /schedule-meeting
func (h *Record) ScheduleMeeting(c echo.Context) error {
	var req record.ScheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	meeting, err := h.service.ScheduleMeeting(c.Request().Context(), recordUsecase.ScheduleInput{
		Draft:  req.Draft(),
		Emails: req.Emails,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("Meeting scheduled",
		zap.String("meeting_id", meeting.MeetingKey),
		zap.Int("invitations", len(meeting.Invitations)),
	)
	return c.JSON(http.StatusCreated, common.SuccessResponse{
		Message: "Meeting scheduled successfully.",
		Data:    map[string]interface{}{"meetingId": meeting.MeetingKey, "id": meeting.ID.String()},
	})
}

// EditMeeting handles POST /edit-meeting/:id
func (h *Record) EditMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting id must be a valid UUID"))
	}

	var req record.EditMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	input := recordUsecase.EditInput{
		Draft:      req.Draft(),
		MeetingKey: req.MeetingID,
	}
	if req.UpdatedAt != nil {
		input.UpdatedAt = *req.UpdatedAt
	}

	if _, err := h.service.EditMeeting(c.Request().Context(), id, input); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Meeting updated successfully."})
}

// UpdateAttendees handles POST /update-meeting-attendees
func (h *Record) UpdateAttendees(c echo.Context) error {
	var req record.UpdateAttendeesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.UpdateAttendees(c.Request().Context(), req.MeetingID, req.Attendees); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Attendees updated successfully."})
}

// UpdateActionItems handles POST /update-meeting-action-items
func (h *Record) UpdateActionItems(c echo.Context) error {
	var req record.UpdateActionItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	items := record.ActionItemsToScheduling(req.ActionItems)
	if err := h.service.UpdateActionItems(c.Request().Context(), req.MeetingID, items); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Action items updated successfully."})
}

// RespondToMeeting handles POST /meeting-response
func (h *Record) RespondToMeeting(c echo.Context) error {
	var req record.MeetingResponseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Respond(c.Request().Context(), req.MeetingID, req.Email, req.Response); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Response recorded."})
}
