// Package session holds the per-mount context the host creates for each
// activity. Every timing source carries the context's ID; once the context is
// ended, callbacks addressed to it are dropped.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/zukko-arcade/internal/nav"
)

// EndReason says why a session stopped.
type EndReason int

const (
	Running   EndReason = iota
	Completed           // the activity reported its final score
	Cancelled           // the host tore it down (Escape, return home, disconnect)
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Context is one mounted activity's lifetime.
type Context struct {
	ID        uuid.UUID
	Activity  nav.Activity
	StartedAt time.Time

	reason     EndReason
	score      int
	endedAt    time.Time
	onComplete func(score int)
	now        func() time.Time
}

// New creates a live context. onComplete runs at most once, from Complete.
func New(activity nav.Activity, onComplete func(score int)) *Context {
	return newWithClock(activity, onComplete, time.Now)
}

func newWithClock(activity nav.Activity, onComplete func(score int), now func() time.Time) *Context {
	return &Context{
		ID:         uuid.New(),
		Activity:   activity,
		StartedAt:  now(),
		onComplete: onComplete,
		now:        now,
	}
}

// Live reports whether callbacks for this session should still run.
func (c *Context) Live() bool {
	return c != nil && c.reason == Running
}

// Owns reports whether a callback tagged with id belongs to this live session.
func (c *Context) Owns(id uuid.UUID) bool {
	return c.Live() && c.ID == id
}

// Complete records the final score and invokes the completion callback.
// It returns false, doing nothing, if the session already ended.
func (c *Context) Complete(score int) bool {
	if !c.Live() {
		return false
	}
	c.reason = Completed
	c.score = max(score, 0)
	c.endedAt = c.now()
	if c.onComplete != nil {
		c.onComplete(c.score)
	}
	return true
}

// Cancel ends the session without a score. Safe to call repeatedly.
func (c *Context) Cancel() {
	if !c.Live() {
		return
	}
	c.reason = Cancelled
	c.endedAt = c.now()
}

// Reason returns why the session ended, or Running.
func (c *Context) Reason() EndReason {
	return c.reason
}

// Score returns the completed score; zero unless Reason is Completed.
func (c *Context) Score() int {
	return c.score
}

// Duration returns how long the session ran (so far, if still live).
func (c *Context) Duration() time.Duration {
	if c.reason == Running {
		return c.now().Sub(c.StartedAt)
	}
	return c.endedAt.Sub(c.StartedAt)
}
