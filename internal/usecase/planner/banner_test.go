package planner_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestBannerExpires(t *testing.T) {
	slot := planner.NewBannerSlot(20 * time.Millisecond)
	slot.Post(planner.BannerSuccess, "Saved")

	b, ok := slot.Current()
	gt.Bool(t, ok).True()
	gt.Value(t, b.Message).Equal("Saved")

	waitFor(t, func() bool {
		_, ok := slot.Current()
		return !ok
	})
}

func TestBannerRepostRestartsCountdown(t *testing.T) {
	slot := planner.NewBannerSlot(time.Hour)
	slot.Post(planner.BannerError, "first")
	slot.Post(planner.BannerSuccess, "second")

	b, ok := slot.Current()
	gt.Bool(t, ok).True()
	gt.Value(t, b.Kind).Equal(planner.BannerSuccess)
	gt.Value(t, b.Message).Equal("second")

	slot.Clear()
	_, ok = slot.Current()
	gt.Bool(t, ok).False()
}

func TestUserMessagePrefersServerText(t *testing.T) {
	gt.Value(t, planner.UserMessage(&serverError{msg: "Meeting is locked"}, "fallback")).Equal("Meeting is locked")
	gt.Value(t, planner.UserMessage(&serverError{msg: "  "}, "fallback")).Equal("fallback")
	gt.Value(t, planner.UserMessage(errNetwork, "fallback")).Equal("fallback")
}
