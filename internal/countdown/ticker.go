package countdown

import (
	"sync"
	"time"
)

// Ticker recomputes the countdown once per interval until stopped. It is
// the only recurring activity of the client.
type Ticker struct {
	interval time.Duration
	warning  time.Duration
	now      func() time.Time
	onTick   func(View)

	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	startOne sync.Once
}

// Option configures a Ticker
type Option func(*Ticker)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(t *Ticker) { t.now = now }
}

// WithInterval overrides the one-second period
func WithInterval(d time.Duration) Option {
	return func(t *Ticker) { t.interval = d }
}

// WithWarning overrides DefaultWarning
func WithWarning(d time.Duration) Option {
	return func(t *Ticker) { t.warning = d }
}

// NewTicker creates a stopped ticker that will call onTick with each view
func NewTicker(onTick func(View), opts ...Option) *Ticker {
	t := &Ticker{
		interval: time.Second,
		warning:  DefaultWarning,
		now:      time.Now,
		onTick:   onTick,
		quit:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current computes the view without waiting for a tick
func (t *Ticker) Current() View {
	return Compute(t.now(), t.warning)
}

// Start emits one view immediately, then one per interval
func (t *Ticker) Start() {
	t.startOne.Do(func() {
		t.wg.Add(1)
		go t.run()
	})
}

func (t *Ticker) run() {
	defer t.wg.Done()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.onTick(t.Current())
	for {
		select {
		case <-ticker.C:
			t.onTick(t.Current())
		case <-t.quit:
			return
		}
	}
}

// Stop halts the ticker and waits for the goroutine to exit. Safe to call
// more than once and before Start.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.quit)
	})
	t.wg.Wait()
}
