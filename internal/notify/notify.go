// Package notify collects the transient toasts shown to one dashboard session.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level distinguishes success toasts from error toasts.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a single toast.
type Notification struct {
	ID          string    `json:"id"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Center queues notifications until the browser drains them or they expire.
type Center struct {
	mu     sync.Mutex
	items  []Notification
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewCenter creates a notification center. A zero ttl keeps toasts until drained.
func NewCenter(ttl time.Duration, logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{ttl: ttl, now: time.Now, logger: logger}
}

// Success queues a success toast.
func (c *Center) Success(description string) {
	c.push(LevelSuccess, "Success", description)
}

// Error queues an error toast.
func (c *Center) Error(description string) {
	c.push(LevelError, "Error", description)
}

func (c *Center) push(level Level, title, description string) {
	n := Notification{
		ID:          uuid.NewString(),
		Level:       level,
		Title:       title,
		Description: description,
		CreatedAt:   c.now(),
	}

	c.mu.Lock()
	c.items = append(c.pruneLocked(), n)
	c.mu.Unlock()

	c.logger.Debug("notification queued", "level", level, "description", description)
}

// Pending returns live notifications without removing them.
func (c *Center) Pending() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.pruneLocked()
	return append([]Notification(nil), c.items...)
}

// Drain returns live notifications and clears the queue.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pruneLocked()
	c.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

func (c *Center) pruneLocked() []Notification {
	if c.ttl <= 0 {
		return c.items
	}
	cutoff := c.now().Add(-c.ttl)
	live := c.items[:0]
	for _, n := range c.items {
		if n.CreatedAt.After(cutoff) {
			live = append(live, n)
		}
	}
	return live
}
