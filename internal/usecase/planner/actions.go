package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// LedgerRow is an action item as displayed, flagged when its owner attends.
type LedgerRow struct {
	Index                 int
	Item                  scheduling.ActionItem
	ResponsibleIsAttendee bool
}

// LedgerView is a snapshot of an action item session.
type LedgerView struct {
	ID        string
	MeetingID string
	Rows      []LedgerRow
	Dirty     bool
	Banner    *Banner
}

// LedgerSession edits the action items of one meeting.
type LedgerSession struct {
	*base

	meetingKey string
	items      []scheduling.ActionItem
	attendees  scheduling.Selection
	dirty      bool
	rev        uint64
}

// OpenLedger seeds a session from the meeting's stored items, or with one
// blank row when it has none.
func (w *Workspace) OpenLedger(meetingKey string) (*LedgerSession, error) {
	m, err := w.meeting(meetingKey)
	if err != nil {
		return nil, err
	}
	s := &LedgerSession{
		base:       w.newBase(m.MeetingID),
		meetingKey: m.MeetingID,
		items:      scheduling.CloneItems(m.ActionItems),
		attendees:  scheduling.NewSelection(m.AttendeeEmails()...),
	}
	w.register(s)
	return s, nil
}

// View returns the current state of the session.
func (s *LedgerSession) View() LedgerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := LedgerView{
		ID:        s.id,
		MeetingID: s.meetingKey,
		Rows:      s.rowsLocked(),
		Dirty:     s.dirty,
	}
	if b, ok := s.banner.Current(); ok {
		v.Banner = &b
	}
	return v
}

// Rows returns the ledger in order.
func (s *LedgerSession) Rows() []LedgerRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsLocked()
}

func (s *LedgerSession) rowsLocked() []LedgerRow {
	rows := make([]LedgerRow, len(s.items))
	for i, it := range s.items {
		rows[i] = LedgerRow{
			Index:                 i,
			Item:                  it,
			ResponsibleIsAttendee: scheduling.ResponsibleIsAttendee(it, s.attendees),
		}
	}
	return rows
}

// Dirty reports whether the ledger has changes not yet committed.
func (s *LedgerSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// AddItem appends a blank row.
func (s *LedgerSession) AddItem() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(scheduling.AddItem(s.items))
}

// UpdateField sets one column of the row at index. A responsible person who
// does not attend is allowed.
func (s *LedgerSession) UpdateField(index int, field scheduling.ItemField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := scheduling.UpdateField(s.items, index, field, value)
	if err != nil {
		return err
	}
	s.apply(next)
	return nil
}

// RemoveItem deletes the row at index.
func (s *LedgerSession) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := scheduling.RemoveItem(s.items, index)
	if err != nil {
		return err
	}
	s.apply(next)
	return nil
}

func (s *LedgerSession) apply(next []scheduling.ActionItem) {
	s.items = next
	s.dirty = true
	s.rev++
	s.banner.Clear()
}

// Commit sends the whole ledger. A failure keeps local edits for a retry.
func (s *LedgerSession) Commit(ctx context.Context) (string, error) {
	s.mu.Lock()
	if err := s.beginCommit(); err != nil {
		s.mu.Unlock()
		return "", err
	}
	key := s.meetingKey
	items := make([]scheduling.ActionItem, len(s.items))
	copy(items, s.items)
	rev := s.rev
	s.mu.Unlock()

	msg, err := s.ws.gateway.UpdateActionItems(ctx, key, items)

	s.mu.Lock()
	s.endCommit()
	if s.stale("update_action_items") {
		s.mu.Unlock()
		return "", usecaseErrors.ErrSessionClosed
	}
	if err != nil {
		cerr := commitError(err, MsgActionItemsFailed)
		s.banner.Post(BannerError, cerr.Message)
		s.mu.Unlock()
		s.logger.Error("Failed to update action items", zap.Error(err))
		return "", cerr
	}
	if s.rev == rev {
		s.dirty = false
	}
	msg = orDefault(msg, MsgActionItemsSaved)
	s.banner.Post(BannerSuccess, msg)
	s.mu.Unlock()

	s.refresh(ctx)
	return msg, nil
}
