package planner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// DefaultBannerTTL is how long a banner stays up when nothing replaces it.
const DefaultBannerTTL = 3 * time.Second

// Option configures a Workspace.
type Option func(*Workspace)

// WithBannerTTL overrides DefaultBannerTTL.
func WithBannerTTL(ttl time.Duration) Option {
	return func(w *Workspace) {
		if ttl > 0 {
			w.bannerTTL = ttl
		}
	}
}

// WithClock replaces time.Now, used to stamp edits.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

type session interface {
	ID() string
	close()
}

// Workspace owns the open editing sessions. Each session edits exactly one
// meeting (or one new meeting) and holds its own draft; nothing is shared
// between sessions except the Store.
type Workspace struct {
	store     *Store
	gateway   Gateway
	logger    *zap.Logger
	bannerTTL time.Duration
	now       func() time.Time
	page      *BannerSlot

	mu       sync.Mutex
	sessions map[string]session
}

// NewWorkspace creates a workspace over store.
func NewWorkspace(store *Store, gateway Gateway, logger *zap.Logger, opts ...Option) *Workspace {
	w := &Workspace{
		store:     store,
		gateway:   gateway,
		logger:    logger,
		bannerTTL: DefaultBannerTTL,
		now:       time.Now,
		sessions:  make(map[string]session),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.page = NewBannerSlot(w.bannerTTL)
	return w
}

// Store returns the workspace's meeting store.
func (w *Workspace) Store() *Store { return w.store }

// Banner returns the page-level banner posted after an edit session closes.
func (w *Workspace) Banner() (Banner, bool) { return w.page.Current() }

func (w *Workspace) newBase(meetingKey string) *base {
	id := uuid.NewString()
	return &base{
		id:     id,
		ws:     w,
		banner: NewBannerSlot(w.bannerTTL),
		logger: w.logger.With(zap.String("session_id", id), zap.String("meeting_id", meetingKey)),
	}
}

func (w *Workspace) register(s session) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sessions[s.ID()] = s
}

func (w *Workspace) unregister(id string) session {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.sessions[id]
	if !ok {
		return nil
	}
	delete(w.sessions, id)
	return s
}

func (w *Workspace) meeting(key string) (scheduling.Meeting, error) {
	m, ok := w.store.Meeting(key)
	if !ok {
		return scheduling.Meeting{}, usecaseErrors.ErrMeetingNotFound
	}
	return m, nil
}

// Close discards a session and its draft. A commit still in flight for it is
// not cancelled; its response is dropped when it arrives.
func (w *Workspace) Close(id string) error {
	s := w.unregister(id)
	if s == nil {
		return usecaseErrors.ErrSessionNotFound
	}
	s.close()
	return nil
}

// Shutdown closes every session.
func (w *Workspace) Shutdown() {
	w.mu.Lock()
	open := make([]session, 0, len(w.sessions))
	for id, s := range w.sessions {
		open = append(open, s)
		delete(w.sessions, id)
	}
	w.mu.Unlock()

	for _, s := range open {
		s.close()
	}
	w.page.Clear()
}

// SessionCount returns the number of open sessions.
func (w *Workspace) SessionCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sessions)
}

func lookup[T session](w *Workspace, id string) (T, error) {
	w.mu.Lock()
	s, ok := w.sessions[id]
	w.mu.Unlock()

	var zero T
	if !ok {
		return zero, usecaseErrors.ErrSessionNotFound
	}
	typed, ok := s.(T)
	if !ok {
		return zero, usecaseErrors.ErrWrongSession
	}
	return typed, nil
}

// ScheduleSession returns the open schedule session with id.
func (w *Workspace) ScheduleSession(id string) (*ScheduleSession, error) {
	return lookup[*ScheduleSession](w, id)
}

// EditSession returns the open edit session with id.
func (w *Workspace) EditSession(id string) (*EditSession, error) {
	return lookup[*EditSession](w, id)
}

// AttendeeSession returns the open attendee session with id.
func (w *Workspace) AttendeeSession(id string) (*AttendeeSession, error) {
	return lookup[*AttendeeSession](w, id)
}

// LedgerSession returns the open action item session with id.
func (w *Workspace) LedgerSession(id string) (*LedgerSession, error) {
	return lookup[*LedgerSession](w, id)
}

// base is embedded by every session kind.
type base struct {
	id     string
	ws     *Workspace
	banner *BannerSlot
	logger *zap.Logger

	mu         sync.Mutex
	closed     bool
	committing bool
}

func (b *base) ID() string { return b.id }

func (b *base) close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.banner.Clear()
}

// Banner returns the session's current notice.
func (b *base) Banner() (Banner, bool) { return b.banner.Current() }

// Closed reports whether the session has been discarded.
func (b *base) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// beginCommit marks a commit in flight. It must be called with b.mu held and
// paired with endCommit once the gateway call returns.
func (b *base) beginCommit() error {
	if b.closed {
		return usecaseErrors.ErrSessionClosed
	}
	if b.committing {
		return usecaseErrors.ErrSessionBusy
	}
	b.committing = true
	return nil
}

// endCommit must be called with b.mu held.
func (b *base) endCommit() { b.committing = false }

// stale must be called with b.mu held once a gateway call returns.
func (b *base) stale(op string) bool {
	if !b.closed {
		return false
	}
	b.logger.Debug("Dropping response for closed session", zap.String("op", op))
	return true
}

// refresh re-fetches meetings after a commit. A failed refresh leaves the
// previous copy in place; the commit itself already succeeded.
func (b *base) refresh(ctx context.Context) {
	if err := b.ws.store.RefreshMeetings(ctx); err != nil {
		b.logger.Warn("Failed to refresh meetings after commit", zap.Error(err))
	}
}
