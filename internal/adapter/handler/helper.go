package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	pkgvalidator "github.com/johnquangdev/meeting-planner/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return HandleStatus(logger, c, http.StatusOK, "success", data)
}

// HandleStatus writes a standardized response with the given status and message
func HandleStatus(logger *zap.Logger, c echo.Context, status int, message string, data interface{}) error {
	resp := success{
		Code:    status,
		Message: message,
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	appErr, ok := mapError(err)
	if ok {
		if logger != nil {
			level := logger.Warn
			if appErr.HTTPCode >= http.StatusInternalServerError {
				level = logger.Error
			}
			level("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapError translates use case and domain errors into AppError
func mapError(err error) (errors.AppError, bool) {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr, true
	}

	var verr *scheduling.ValidationError
	if stdErrors.As(err, &verr) {
		return errors.ErrValidationFailed(verr.Violations), true
	}

	var cerr *planner.CommitError
	if stdErrors.As(err, &cerr) {
		return errors.ErrRecordAPIFailed(cerr.Message, cerr.Err), true
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(""), true
	case stdErrors.Is(err, usecaseErrors.ErrParticipantNotFound),
		stdErrors.Is(err, scheduling.ErrUnknownAttendee):
		return errors.ErrParticipantNotFound("").WithDetail("reason", err.Error()), true
	case stdErrors.Is(err, usecaseErrors.ErrNotInvited):
		return errors.ErrNotInvited(""), true
	case stdErrors.Is(err, usecaseErrors.ErrSessionNotFound),
		stdErrors.Is(err, usecaseErrors.ErrWrongSession):
		return errors.ErrSessionNotFound(""), true
	case stdErrors.Is(err, usecaseErrors.ErrSessionClosed):
		return errors.ErrSessionClosed(""), true
	case stdErrors.Is(err, usecaseErrors.ErrSessionBusy):
		return errors.ErrConflict("A commit is already in progress for this session"), true
	case stdErrors.Is(err, usecaseErrors.ErrMeetingKeyMismatch):
		return errors.ErrConflict("Meeting key does not match meeting id"), true
	case stdErrors.Is(err, scheduling.ErrIndexOutOfRange),
		stdErrors.Is(err, scheduling.ErrUnknownField),
		stdErrors.Is(err, scheduling.ErrInvalidStatus),
		stdErrors.Is(err, scheduling.ErrInvalidDeadline),
		stdErrors.Is(err, usecaseErrors.ErrInvalidResponse),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error()), true
	}
	return errors.AppError{}, false
}

// bindAndValidate binds the request into req and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		msgs := pkgvalidator.Messages(err)
		if len(msgs) == 0 {
			return errors.ErrInvalidArgument(err.Error())
		}
		return errors.ErrValidationFailed(msgs)
	}
	return nil
}

// isStale reports whether a commit returned after its session was closed
func isStale(err error) bool {
	return stdErrors.Is(err, usecaseErrors.ErrSessionClosed)
}
