package planner

import (
	"sync"
	"time"
)

// BannerKind tells success and error notices apart.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is a transient notice.
type Banner struct {
	Kind     BannerKind `json:"kind"`
	Message  string     `json:"message"`
	PostedAt time.Time  `json:"postedAt"`
}

// BannerSlot holds at most one banner and clears it after ttl. Posting a new
// banner restarts the countdown.
type BannerSlot struct {
	ttl time.Duration

	mu      sync.Mutex
	current *Banner
	timer   *time.Timer
	seq     uint64
}

// NewBannerSlot returns an empty slot.
func NewBannerSlot(ttl time.Duration) *BannerSlot {
	return &BannerSlot{ttl: ttl}
}

// Post replaces the current banner.
func (b *BannerSlot) Post(kind BannerKind, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopTimer()
	b.seq++
	seq := b.seq
	b.current = &Banner{Kind: kind, Message: message, PostedAt: time.Now()}
	b.timer = time.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// a later Post owns the slot now
		if b.seq == seq {
			b.current = nil
			b.timer = nil
		}
	})
}

// Clear removes the banner immediately and releases its timer.
func (b *BannerSlot) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopTimer()
	b.seq++
	b.current = nil
}

// Current returns the banner on display, if any.
func (b *BannerSlot) Current() (Banner, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Banner{}, false
	}
	return *b.current, true
}

func (b *BannerSlot) stopTimer() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
