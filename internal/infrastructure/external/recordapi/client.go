// Package recordapi is the HTTP client for the meeting server of record.
package recordapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/record"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

// Error is a non-2xx answer from the server of record
type Error struct {
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// UserMessage returns the message supplied by the server, if any
func (e *Error) UserMessage() string {
	return e.Message
}

// Client talks to the server of record. Reads are retried with exponential
// backoff; commits are sent once.
type Client struct {
	baseURL         string
	client          *http.Client
	logger          *zap.Logger
	fetchMaxElapsed time.Duration
	fetchInitial    time.Duration
}

var _ planner.Gateway = (*Client)(nil)

// NewClient creates a client from cfg
func NewClient(cfg *config.RecordAPIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:         strings.TrimRight(cfg.URL, "/"),
		client:          &http.Client{Timeout: cfg.Timeout},
		logger:          logger,
		fetchMaxElapsed: cfg.FetchMaxElapsed,
		fetchInitial:    cfg.FetchInitialInterval,
	}
}

// FetchParticipants returns the roster
func (c *Client) FetchParticipants(ctx context.Context) ([]scheduling.Participant, error) {
	body, err := c.fetch(ctx, "fetch participants", "/getallusers")
	if err != nil {
		return nil, err
	}
	return decodeRoster(body)
}

// FetchMeetings returns every meeting
func (c *Client) FetchMeetings(ctx context.Context) ([]scheduling.Meeting, error) {
	body, err := c.fetch(ctx, "fetch meetings", "/meeting-yes-no")
	if err != nil {
		return nil, err
	}
	return decodeMeetings(body)
}

// ScheduleMeeting creates a meeting
func (c *Client) ScheduleMeeting(ctx context.Context, req planner.ScheduleRequest) (string, error) {
	body := record.NewScheduleMeetingRequest(req.Draft, req.Emails)
	return c.commit(ctx, "schedule meeting", http.MethodPut, "/schedule-meeting", body)
}

// EditMeeting updates a meeting's fields
func (c *Client) EditMeeting(ctx context.Context, req planner.EditRequest) (string, error) {
	body := record.NewEditMeetingRequest(req.Draft, req.UpdatedAt)
	path := "/edit-meeting/" + url.PathEscape(req.Draft.InternalID)
	return c.commit(ctx, "edit meeting", http.MethodPost, path, body)
}

// UpdateAttendees replaces a meeting's attendee set
func (c *Client) UpdateAttendees(ctx context.Context, meetingKey string, emails []string) (string, error) {
	if emails == nil {
		emails = []string{}
	}
	body := record.UpdateAttendeesRequest{MeetingID: meetingKey, Attendees: emails}
	return c.commit(ctx, "update attendees", http.MethodPost, "/update-meeting-attendees", body)
}

// UpdateActionItems replaces a meeting's action item ledger
func (c *Client) UpdateActionItems(ctx context.Context, meetingKey string, items []scheduling.ActionItem) (string, error) {
	body := record.UpdateActionItemsRequest{
		MeetingID:   meetingKey,
		ActionItems: record.ActionItemsFromScheduling(items),
	}
	return c.commit(ctx, "update action items", http.MethodPost, "/update-meeting-action-items", body)
}

func (c *Client) fetch(ctx context.Context, op, path string) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.fetchInitial
	bo.MaxElapsedTime = c.fetchMaxElapsed

	var body []byte
	attempt := 0
	fetchFn := func() error {
		attempt++
		var err error
		body, err = c.do(ctx, op, http.MethodGet, path, nil)
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		if err != nil {
			c.logger.Debug("Fetch failed, retrying",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	}

	if err := backoff.Retry(fetchFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) commit(ctx context.Context, op, method, path string, payload interface{}) (string, error) {
	body, err := c.do(ctx, op, method, path, payload)
	if err != nil {
		c.logger.Warn("Commit failed", zap.String("path", path), zap.Error(err))
		return "", err
	}
	// a missing message is not a failure
	var ack common.MessageResponse
	_ = json.Unmarshal(body, &ack)
	return ack.Message, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{Op: op, Status: resp.StatusCode, Message: serverMessage(body)}
	}
	return body, nil
}

func serverMessage(body []byte) string {
	var e common.ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return strings.TrimSpace(e.Message)
}
