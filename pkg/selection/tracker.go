// Package selection tracks the bone under the pointer for one view and gates
// description requests behind a click cooldown.
package selection

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const DefaultCooldown = time.Second

type Option func(*Tracker)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func WithCooldown(d time.Duration) Option {
	return func(t *Tracker) {
		t.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// Tracker is owned by a single view. It is safe for concurrent use so that
// pointer events and the click path may run on different goroutines.
type Tracker struct {
	mu      sync.Mutex
	hovered string
	limiter *rate.Limiter
	now     func() time.Time
}

func New(opts ...Option) *Tracker {
	t := &Tracker{
		limiter: rate.NewLimiter(rate.Every(DefaultCooldown), 1),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Enter records name as hovered. The latest event wins.
func (t *Tracker) Enter(name string) {
	t.mu.Lock()
	t.hovered = name
	t.mu.Unlock()
}

func (t *Tracker) Leave() {
	t.Enter("")
}

func (t *Tracker) Hovered() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hovered, t.hovered != ""
}

// HoverSetter is the capability handed to interactive elements. Passing the
// empty string clears the hover.
func (t *Tracker) HoverSetter() func(string) {
	return t.Enter
}

// Click reports whether a description request for name may be sent now.
// Clicks inside the cooldown are dropped and leave no trace.
func (t *Tracker) Click(name string) bool {
	if name == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.limiter.AllowN(t.now(), 1)
}
