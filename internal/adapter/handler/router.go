package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-planner/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	plannerHandler *Planner
	recordHandler  *Record
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, plannerHandler *Planner, recordHandler *Record) *Router {
	return &Router{
		cfg:            cfg,
		plannerHandler: plannerHandler,
		recordHandler:  recordHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	rt.setupRecordRoutes(e.Group("/api"))

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupPlannerRoutes(v1)
	rt.setupScheduleRoutes(v1)
	rt.setupEditRoutes(v1)
	rt.setupAttendeeRoutes(v1)
	rt.setupActionRoutes(v1)
}

// setupRecordRoutes configures the server of record
func (rt *Router) setupRecordRoutes(g *echo.Group) {
	if rt.recordHandler == nil {
		g.Any("/*", rt.notImplemented)
		return
	}

	g.GET("/getallusers", rt.recordHandler.GetAllUsers)
	g.GET("/meeting-yes-no", rt.recordHandler.ListMeetings)
	g.GET("/meeting/:meetingId", rt.recordHandler.GetMeeting)
	g.PUT("/schedule-meeting", rt.recordHandler.ScheduleMeeting)
	g.POST("/edit-meeting/:id", rt.recordHandler.EditMeeting)
	g.POST("/update-meeting-attendees", rt.recordHandler.UpdateAttendees)
	g.POST("/update-meeting-action-items", rt.recordHandler.UpdateActionItems)
	g.POST("/meeting-response", rt.recordHandler.RespondToMeeting)
}

// setupPlannerRoutes configures the store and page level routes
func (rt *Router) setupPlannerRoutes(g *echo.Group) {
	h := rt.plannerHandler

	g.GET("/timeslots", h.TimeSlots)
	g.GET("/participants", h.ListParticipants)
	g.GET("/banner", h.Banner)

	meetings := g.Group("/meetings")
	meetings.GET("", h.ListMeetings)
	meetings.POST("/refresh", h.Refresh)
	meetings.GET("/:meetingId", h.GetMeeting)
	meetings.GET("/:meetingId/calendar.ics", h.Calendar)
	meetings.POST("/:meetingId/edit-sessions", h.OpenEdit)
	meetings.POST("/:meetingId/attendee-sessions", h.OpenAttendees)
	meetings.POST("/:meetingId/action-sessions", h.OpenActions)
}

// setupScheduleRoutes configures scheduling sessions
func (rt *Router) setupScheduleRoutes(g *echo.Group) {
	h := rt.plannerHandler
	sessions := g.Group("/schedule-sessions")

	sessions.POST("", h.OpenSchedule)
	sessions.GET("/:id", h.GetSchedule)
	sessions.DELETE("/:id", h.CloseSession)
	sessions.PATCH("/:id/draft", h.UpdateScheduleDraft)
	sessions.POST("/:id/toggle", h.ToggleParticipant)
	sessions.DELETE("/:id/selected/:email", h.RemoveParticipant)
	sessions.GET("/:id/candidates", h.ScheduleCandidates)
	sessions.POST("/:id/picker", h.SetPicker)
	sessions.POST("/:id/submit", h.SubmitSchedule)
}

// setupEditRoutes configures meeting edit sessions
func (rt *Router) setupEditRoutes(g *echo.Group) {
	h := rt.plannerHandler
	sessions := g.Group("/edit-sessions")

	sessions.GET("/:id", h.GetEdit)
	sessions.DELETE("/:id", h.CloseSession)
	sessions.PATCH("/:id/draft", h.UpdateEditDraft)
	sessions.POST("/:id/validate", h.ValidateEdit)
	sessions.POST("/:id/commit", h.CommitEdit)
}

// setupAttendeeRoutes configures attendee sessions
func (rt *Router) setupAttendeeRoutes(g *echo.Group) {
	h := rt.plannerHandler
	sessions := g.Group("/attendee-sessions")

	sessions.GET("/:id", h.GetAttendees)
	sessions.DELETE("/:id", h.CloseSession)
	sessions.POST("/:id/attendees", h.AddAttendee)
	sessions.DELETE("/:id/attendees/:email", h.RemoveAttendee)
	sessions.GET("/:id/candidates", h.AttendeeCandidates)
	sessions.POST("/:id/commit", h.CommitAttendees)
}

// setupActionRoutes configures action item sessions
func (rt *Router) setupActionRoutes(g *echo.Group) {
	h := rt.plannerHandler
	sessions := g.Group("/action-sessions")

	sessions.GET("/:id", h.GetActions)
	sessions.DELETE("/:id", h.CloseSession)
	sessions.POST("/:id/items", h.AddActionItem)
	sessions.PATCH("/:id/items/:index", h.UpdateActionItem)
	sessions.DELETE("/:id/items/:index", h.RemoveActionItem)
	sessions.POST("/:id/commit", h.CommitActions)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "The server of record is not enabled in this process",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
