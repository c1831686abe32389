package main

import (
	"time"

	"gioui.org/op"
)

// frameTimer lets a chart.View defer work until a later frame. Rather than
// running its own goroutine it asks gio for a frame at the deadline and
// reports expiry from within the frame loop.
type frameTimer struct {
	deadline   time.Time
	pending    bool
	invalidate func()
}

// Schedule arms the timer to expire after d, replacing any pending deadline.
func (t *frameTimer) Schedule(d time.Duration) {
	t.deadline = time.Now().Add(d)
	t.pending = true
}

// Invalidate requests a new frame.
func (t *frameTimer) Invalidate() {
	if t.invalidate != nil {
		t.invalidate()
	}
}

// Update reports whether the timer expired as of this frame. While the
// timer is still pending it requests a frame at its deadline.
func (t *frameTimer) Update(gtx C) bool {
	if !t.pending {
		return false
	}
	if !gtx.Now.Before(t.deadline) {
		t.pending = false
		return true
	}
	gtx.Execute(op.InvalidateCmd{At: t.deadline})
	return false
}
