// Package listview implements the fetch, paginate, filter and poll flow shared
// by every list in the explorer.
package listview

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateLoadingMore State = "loadingMore"
)

var ErrStale = errors.New("response superseded by a newer snapshot")

type Page struct {
	Limit  int
	Offset int
}

type Result[T any] struct {
	Items   []T
	HasMore bool
	Total   int64
}

type Fetcher[T any] func(ctx context.Context, page Page) (Result[T], error)

// Config describes one list. Key, Fields and Type are optional.
type Config[T any] struct {
	Name     string
	PageSize int
	Fetch    Fetcher[T]
	// Key identifies an item; items whose key was already loaded are dropped on append.
	Key      func(T) string
	// Fields are the strings searched by View.
	Fields   func(T) []string
	// Type is the category matched by the type filter of View.
	Type     func(T) string
	// Describe turns a fetch error into the text of the notification.
	Describe func(error) string
}

type Snapshot[T any] struct {
	Items     []T       `json:"items"`
	State     State     `json:"state"`
	Loaded    bool      `json:"loaded"`
	Offset    int       `json:"offset"`
	HasMore   bool      `json:"hasMore"`
	Total     int64     `json:"total"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pager holds the loaded items of one list. Load and Refresh replace the
// whole list; LoadMore appends the next page. A replacement carries a
// generation number and responses older than the last applied generation are
// discarded. Failures keep the previous items and are sent to the notifier.
type Pager[T any] struct {
	logs     *zap.SugaredLogger
	notifier Notifier
	cfg      Config[T]

	mu         sync.Mutex
	items      []T
	seen       map[string]struct{}
	loaded     bool
	offset     int
	hasMore    bool
	total      int64
	lastErr    error
	updatedAt  time.Time
	replacing  int
	appending  bool
	generation uint64
	appliedGen uint64
	fetchCount int
}

// NewPager is a constructor function for the Pager type.
func NewPager[T any](logger *zap.SugaredLogger, notifier Notifier, cfg Config[T]) *Pager[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.Describe == nil {
		cfg.Describe = func(err error) string { return err.Error() }
	}
	return &Pager[T]{
		logs:     logger,
		notifier: notifier,
		cfg:      cfg,
		seen:     make(map[string]struct{}),
	}
}

func (p *Pager[T]) PageSize() int {
	return p.cfg.PageSize
}

// Load fetches the first page and replaces the list with it.
func (p *Pager[T]) Load(ctx context.Context) error {
	return p.replace(ctx, Page{Limit: p.cfg.PageSize})
}

// Ensure loads the first page unless a load already succeeded.
func (p *Pager[T]) Ensure(ctx context.Context) error {
	p.mu.Lock()
	loaded := p.loaded
	p.mu.Unlock()
	if loaded {
		return nil
	}
	return p.Load(ctx)
}

// Refresh re-fetches everything loaded so far as one snapshot.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	limit := max(p.cfg.PageSize, p.offset)
	p.mu.Unlock()
	return p.replace(ctx, Page{Limit: limit})
}

// LoadMore appends the page at the current offset. It does nothing while
// another fetch is in flight, before the first load, or when the server
// reported no more items.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if !p.loaded || !p.hasMore || p.replacing > 0 || p.appending {
		p.mu.Unlock()
		return nil
	}
	p.appending = true
	p.fetchCount++
	base := p.appliedGen
	page := Page{Limit: p.cfg.PageSize, Offset: p.offset}
	p.mu.Unlock()

	res, err := p.cfg.Fetch(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.appending = false

	if err != nil {
		p.fail(err, page)
		return err
	}
	if base != p.appliedGen {
		p.logs.Debugw("dropping stale page",
			"list", p.cfg.Name,
			"offset", page.Offset)
		return ErrStale
	}

	for _, item := range res.Items {
		if p.fresh(item) {
			p.items = append(p.items, item)
		}
	}
	p.offset += p.cfg.PageSize
	p.hasMore = res.HasMore
	p.total = res.Total
	p.lastErr = nil
	p.updatedAt = time.Now()
	return nil
}

func (p *Pager[T]) replace(ctx context.Context, page Page) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.replacing++
	p.fetchCount++
	p.mu.Unlock()

	res, err := p.cfg.Fetch(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.replacing--

	if err != nil {
		p.fail(err, page)
		return err
	}
	if gen <= p.appliedGen {
		p.logs.Debugw("dropping stale snapshot",
			"list", p.cfg.Name,
			"generation", gen,
			"applied", p.appliedGen)
		return ErrStale
	}

	p.appliedGen = gen
	p.items = make([]T, 0, len(res.Items))
	p.seen = make(map[string]struct{}, len(res.Items))
	for _, item := range res.Items {
		if p.fresh(item) {
			p.items = append(p.items, item)
		}
	}
	p.loaded = true
	p.offset = page.Offset + page.Limit
	p.hasMore = res.HasMore
	p.total = res.Total
	p.lastErr = nil
	p.updatedAt = time.Now()
	return nil
}

// fresh records the key of item and reports whether it was new. Callers hold mu.
func (p *Pager[T]) fresh(item T) bool {
	if p.cfg.Key == nil {
		return true
	}
	k := p.cfg.Key(item)
	if _, dup := p.seen[k]; dup {
		return false
	}
	p.seen[k] = struct{}{}
	return true
}

// fail keeps the loaded items and reports err. Callers hold mu.
func (p *Pager[T]) fail(err error, page Page) {
	p.lastErr = err
	p.logs.Errorw("list fetch failed",
		"list", p.cfg.Name,
		"limit", page.Limit,
		"offset", page.Offset,
		"error", err)
	if p.notifier != nil && !errors.Is(err, context.Canceled) {
		p.notifier.Error(p.cfg.Describe(err))
	}
}

func (p *Pager[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state()
}

func (p *Pager[T]) state() State {
	switch {
	case p.replacing > 0:
		return StateLoading
	case p.appending:
		return StateLoadingMore
	}
	return StateIdle
}

// Items returns a copy of every loaded item.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// View filters the loaded items on the client.
func (p *Pager[T]) View(q Query) []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Filter(p.items, q, p.cfg.Fields, p.cfg.Type)
}

// Snapshot returns the filtered items together with the pagination state.
// No rows are returned until the first load succeeded.
func (p *Pager[T]) Snapshot(q Query) Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := Snapshot[T]{
		Items:     []T{},
		State:     p.state(),
		Loaded:    p.loaded,
		Offset:    p.offset,
		HasMore:   p.hasMore,
		Total:     p.total,
		UpdatedAt: p.updatedAt,
	}
	if p.loaded {
		s.Items = Filter(p.items, q, p.cfg.Fields, p.cfg.Type)
	}
	if p.lastErr != nil {
		s.Error = p.cfg.Describe(p.lastErr)
	}
	return s
}

// Fetches reports how many fetches the pager has issued.
func (p *Pager[T]) Fetches() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetchCount
}

// Whole adapts an endpoint that always returns the full collection.
func Whole[T any](fetch func(ctx context.Context) ([]T, error)) Fetcher[T] {
	return func(ctx context.Context, _ Page) (Result[T], error) {
		items, err := fetch(ctx)
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Items: items, Total: int64(len(items))}, nil
	}
}

// Window adapts an endpoint that takes a limit but no offset: it asks for
// offset+limit items and keeps the tail past the offset.
func Window[T any](fetch func(ctx context.Context, limit int) ([]T, int64, error)) Fetcher[T] {
	return func(ctx context.Context, page Page) (Result[T], error) {
		items, total, err := fetch(ctx, page.Offset+page.Limit)
		if err != nil {
			return Result[T]{}, err
		}
		if page.Offset >= len(items) {
			items = nil
		} else {
			items = items[page.Offset:]
		}
		return Result[T]{
			Items:   items,
			HasMore: int64(page.Offset+page.Limit) < total,
			Total:   total,
		}, nil
	}
}
