package listview

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context)

// Poller runs a task immediately and then every interval after the previous
// run has finished, so runs never overlap.
type Poller struct {
	logs     *zap.SugaredLogger
	name     string
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller is a constructor function for the Poller type.
func NewPoller(logger *zap.SugaredLogger, name string, interval time.Duration, task Task) *Poller {
	return &Poller{
		logs:     logger,
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Start launches the loop. Calling Start on a running poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.loop(ctx)
	}()

	p.logs.Infow("poller started",
		"poller", p.name,
		"interval", p.interval)
}

func (p *Poller) loop(ctx context.Context) {
	p.task(ctx)

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.task(ctx)
			timer.Reset(p.interval)
		}
	}
}

// Stop cancels the pending tick and the run in flight, then waits for the loop to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.wg.Wait()

	p.logs.Infow("poller stopped", "poller", p.name)
}
