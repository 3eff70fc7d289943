package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Tracker serializes dashboard balance computations. Every refresh gets a
// generation number when it starts; a result is only published if no
// younger refresh has published before it. This keeps a slow, stale
// computation from overwriting fresher numbers, e.g. when two refreshes
// race across a month boundary.
type Tracker struct {
	mu        sync.Mutex
	issued    uint64
	published uint64
	current   Balances
	valid     bool

	debounce *Debouncer
}

// NewTracker returns a Tracker that coalesces Invalidate calls with the
// given delay.
func NewTracker(delay time.Duration) *Tracker {
	return &Tracker{
		debounce: NewDebouncer(delay),
	}
}

// Refresh recomputes the balances for the given instant and publishes
// them unless a younger refresh already did. It returns the published
// state, which may be newer than this computation's result.
//
// On error the previously published balances stay in place.
func (t *Tracker) Refresh(ctx context.Context, now time.Time) (Balances, error) {
	generation := t.begin()

	balances, err := Compose(ctx, now)
	if err != nil {
		return Balances{}, err
	}

	return t.publish(generation, balances), nil
}

// begin hands out the generation number for a starting refresh.
func (t *Tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	return t.issued
}

// publish stores the result of a refresh unless a younger generation has
// already published, and returns the current state either way.
func (t *Tracker) publish(generation uint64, balances Balances) Balances {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation > t.published {
		t.published = generation
		t.current = balances
		t.valid = true
	}

	return t.current
}

// Latest returns the most recently published balances. The second return
// value is false until the first successful refresh.
func (t *Tracker) Latest() (Balances, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.valid
}

// Invalidate schedules a debounced refresh. Bursts of record mutations
// collapse into a single recomputation.
func (t *Tracker) Invalidate() {
	t.debounce.Trigger(func() {
		_, err := t.Refresh(context.Background(), time.Now())
		if err != nil {
			log.Error().Err(err).Msg("balance refresh failed")
		}
	})
}

// Stop cancels a pending debounced refresh.
func (t *Tracker) Stop() {
	t.debounce.Stop()
}
