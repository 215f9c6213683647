package listview

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Panel holds a single value fetched as a whole, typically the joined
// result of a Batch. It follows the Pager rules: newer snapshots win and a
// failed refresh keeps the previous value.
type Panel[T any] struct {
	logs     *zap.SugaredLogger
	notifier Notifier
	name     string
	fetch    func(ctx context.Context) (T, error)
	describe func(error) string

	mu         sync.Mutex
	value      T
	loaded     bool
	loading    int
	generation uint64
	appliedGen uint64
	lastErr    error
	updatedAt  time.Time
}

type PanelSnapshot[T any] struct {
	Value     T         `json:"value"`
	State     State     `json:"state"`
	Loaded    bool      `json:"loaded"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPanel is a constructor function for the Panel type.
func NewPanel[T any](logger *zap.SugaredLogger, notifier Notifier, name string, fetch func(ctx context.Context) (T, error), describe func(error) string) *Panel[T] {
	if describe == nil {
		describe = func(err error) string { return err.Error() }
	}
	return &Panel[T]{
		logs:     logger,
		notifier: notifier,
		name:     name,
		fetch:    fetch,
		describe: describe,
	}
}

func (p *Panel[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.loading++
	p.mu.Unlock()

	value, err := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading--

	if err != nil {
		p.lastErr = err
		p.logs.Errorw("panel refresh failed",
			"panel", p.name,
			"error", err)
		if p.notifier != nil && !errors.Is(err, context.Canceled) {
			p.notifier.Error(p.describe(err))
		}
		return err
	}
	if gen <= p.appliedGen {
		return ErrStale
	}

	p.appliedGen = gen
	p.value = value
	p.loaded = true
	p.lastErr = nil
	p.updatedAt = time.Now()
	return nil
}

// Ensure refreshes the panel unless a refresh already succeeded.
func (p *Panel[T]) Ensure(ctx context.Context) error {
	if _, loaded := p.Value(); loaded {
		return nil
	}
	return p.Refresh(ctx)
}

// Value returns the last applied value and whether one was ever loaded.
func (p *Panel[T]) Value() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.loaded
}

func (p *Panel[T]) Snapshot() PanelSnapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := PanelSnapshot[T]{
		Value:     p.value,
		State:     StateIdle,
		Loaded:    p.loaded,
		UpdatedAt: p.updatedAt,
	}
	if p.loading > 0 {
		s.State = StateLoading
	}
	if p.lastErr != nil {
		s.Error = p.describe(p.lastErr)
	}
	return s
}
