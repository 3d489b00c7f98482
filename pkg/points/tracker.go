package points

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultRefreshInterval is how often a tracker recomputes its cooldown.
const DefaultRefreshInterval = time.Minute

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock replaces the wall clock used by the tracker.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

// WithInterval sets the refresh interval.
func WithInterval(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// Tracker recomputes the cooldown of one points snapshot on a fixed
// interval and reports every result to its callback. It is scoped to the
// lifetime of a single view: Start on activation, Stop on deactivation.
type Tracker struct {
	interval time.Duration
	now      func() time.Time
	onTick   func(Cooldown)
	logger   *zap.Logger

	mu        sync.Mutex
	lastClaim *int64
	state     Cooldown
	started   bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTracker creates a tracker for the given snapshot. onTick may be nil.
func NewTracker(snapshot UserPoints, onTick func(Cooldown), logger *zap.Logger, opts ...TrackerOption) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{
		interval: DefaultRefreshInterval,
		now:      time.Now,
		onTick:   onTick,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastClaim = copyClaim(snapshot.FreeClaimedBalanceUpdatedAt)
	t.state = ComputeCooldown(t.lastClaim, t.now().Unix())
	return t
}

// Current returns the most recently computed cooldown.
func (t *Tracker) Current() Cooldown {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Update replaces the tracked snapshot, for example after a successful
// claim, and recomputes immediately.
func (t *Tracker) Update(snapshot UserPoints) Cooldown {
	t.mu.Lock()
	t.lastClaim = copyClaim(snapshot.FreeClaimedBalanceUpdatedAt)
	t.mu.Unlock()
	return t.refresh()
}

// Start reports the current cooldown and then refreshes it every interval
// until Stop is called or ctx is done. Calling Start twice has no effect.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return
	}
	t.started = true
	t.mu.Unlock()

	t.refresh()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		t.logger.Debug("Started cooldown tracker", zap.Duration("interval", t.interval))

		for {
			select {
			case <-ticker.C:
				t.refresh()
			case <-ctx.Done():
				t.logger.Debug("Cooldown tracker context done")
				return
			case <-t.stopCh:
				t.logger.Debug("Stopping cooldown tracker")
				return
			}
		}
	}()
}

// Stop cancels the periodic refresh and waits for it to exit. It is safe
// to call more than once and before Start.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stopCh) })
	t.wg.Wait()
}

func (t *Tracker) refresh() Cooldown {
	t.mu.Lock()
	state := ComputeCooldown(t.lastClaim, t.now().Unix())
	t.state = state
	t.mu.Unlock()

	if t.onTick != nil {
		t.onTick(state)
	}
	return state
}

func copyClaim(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
