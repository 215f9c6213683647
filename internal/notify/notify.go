// Package notify holds the transient notifications shown by the explorer.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

const DefaultTTL = 3 * time.Second

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Timer is the handle returned by a Scheduler. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Timer

type Option func(*Bus)

func WithScheduler(schedule Scheduler) Option {
	return func(b *Bus) {
		b.schedule = schedule
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Bus) {
		b.now = now
	}
}

type entry struct {
	Notification
	timer Timer
}

// Bus keeps the stack of active notifications. Each one expires ttl after its
// own creation or when dismissed. A closed bus ignores further pushes.
type Bus struct {
	logs     *zap.SugaredLogger
	ttl      time.Duration
	schedule Scheduler
	now      func() time.Time

	mu      sync.Mutex
	entries []entry
	closed  bool
}

// NewBus is a constructor function for the Bus type. A non-positive ttl falls back to DefaultTTL.
func NewBus(logger *zap.SugaredLogger, ttl time.Duration, opts ...Option) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Bus{
		logs: logger,
		ttl:  ttl,
		schedule: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bus) Push(severity Severity, message string) Notification {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	n := Notification{
		ID:        id,
		Severity:  severity,
		Message:   message,
		CreatedAt: b.now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		b.logs.Debugw("notification dropped, bus closed",
			"severity", severity,
			"message", message)
		return n
	}

	timer := b.schedule(b.ttl, func() { b.expire(id) })
	b.entries = append(b.entries, entry{Notification: n, timer: timer})

	b.logs.Debugw("notification pushed",
		"id", id,
		"severity", severity,
		"message", message)
	return n
}

func (b *Bus) Success(message string) Notification {
	return b.Push(SeveritySuccess, message)
}

func (b *Bus) Error(message string) Notification {
	return b.Push(SeverityError, message)
}

func (b *Bus) Warning(message string) Notification {
	return b.Push(SeverityWarning, message)
}

func (b *Bus) Info(message string) Notification {
	return b.Push(SeverityInfo, message)
}

// Dismiss removes the notification before it expires. It reports whether it was still active.
func (b *Bus) Dismiss(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.remove(id)
	if ok && e.timer != nil {
		e.timer.Stop()
	}
	return ok
}

// Active returns the current stack, oldest first.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	active := make([]Notification, len(b.entries))
	for i, e := range b.entries {
		active[i] = e.Notification
	}
	return active
}

// Close stops every pending expiry and drops the stack.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	b.entries = nil
	b.closed = true
}

func (b *Bus) expire(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remove(id)
}

func (b *Bus) remove(id uuid.UUID) (entry, bool) {
	for i, e := range b.entries {
		if e.ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return e, true
		}
	}
	return entry{}, false
}
