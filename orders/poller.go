package orders

import (
	"context"
	"sync"
	"time"
)

// FetchFunc loads the current status of the tracked order.
type FetchFunc func(ctx context.Context) (Status, error)

// ResultFunc receives every fetch outcome. On error the status is empty and
// the caller shows a failed/not-found state; the next tick retries on its
// own, there is no backoff.
type ResultFunc func(status Status, err error)

// Poller fetches an order's status on a fixed interval while a tracking view
// is active. Each tick fires an independent fetch: a slow response neither
// delays nor cancels the next tick, and completions may arrive out of order.
// The latest completion wins, stale or not; acceptable for a read-only,
// eventually consistent display.
type Poller struct {
	interval time.Duration
	fetch    FetchFunc
	onResult ResultFunc

	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

func NewPoller(interval time.Duration, fetch FetchFunc, onResult ResultFunc) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		onResult: onResult,
	}
}

// Start begins polling: one immediate fetch, then one per interval until
// Stop is called or ctx is done. Calling Start on a stopped or running
// poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.stopped || p.stop != nil {
		p.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	go p.run(ctx, stop)
}

func (p *Poller) run(ctx context.Context, stop chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	go p.poll(ctx)
	for {
		select {
		case <-ticker.C:
			go p.poll(ctx)
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	status, err := p.fetch(ctx)
	if p.onResult != nil {
		p.onResult(status, err)
	}
}

// Stop cancels the recurring task and releases its ticker. Safe to call more
// than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	if p.stop != nil {
		close(p.stop)
	}
}
