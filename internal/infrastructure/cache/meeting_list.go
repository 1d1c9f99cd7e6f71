package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	appErrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

const meetingListKey = "meetings:list"

// MeetingListCache caches the assembled meeting list served to clients.
//
// A reader takes a Generation before loading from the database and passes it
// to Set. Invalidate bumps the generation, so a list loaded before a write
// can never be stored after that write's Invalidate.
type MeetingListCache struct {
	store Store
	ttl   time.Duration

	mu  sync.Mutex
	gen uint64
}

// NewMeetingListCache creates a cache whose entries live for ttl
func NewMeetingListCache(store Store, ttl time.Duration) *MeetingListCache {
	return &MeetingListCache{store: store, ttl: ttl}
}

// Get returns the cached list, if present
func (c *MeetingListCache) Get(ctx context.Context) ([]scheduling.Meeting, bool, error) {
	raw, ok, err := c.store.Get(ctx, meetingListKey)
	if err != nil {
		return nil, false, appErrors.ErrCacheFailed("get", err)
	}
	if !ok {
		return nil, false, nil
	}
	var meetings []scheduling.Meeting
	if err := json.Unmarshal(raw, &meetings); err != nil {
		return nil, false, appErrors.ErrCacheFailed("decode", err)
	}
	return meetings, true, nil
}

// Generation returns the token to pass to Set
func (c *MeetingListCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Set stores meetings unless the list was invalidated since gen was taken
func (c *MeetingListCache) Set(ctx context.Context, gen uint64, meetings []scheduling.Meeting) error {
	raw, err := json.Marshal(meetings)
	if err != nil {
		return appErrors.ErrCacheFailed("encode", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err := c.store.Set(ctx, meetingListKey, raw, c.ttl); err != nil {
		return appErrors.ErrCacheFailed("set", err)
	}
	return nil
}

// Invalidate drops the cached list after a write
func (c *MeetingListCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if err := c.store.Delete(ctx, meetingListKey); err != nil {
		return appErrors.ErrCacheFailed("delete", err)
	}
	return nil
}
