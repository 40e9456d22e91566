package pick

import (
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"golang.org/x/time/rate"
)

// pruneThreshold is the number of tracked members above which idle limiters
// are dropped.
const pruneThreshold = 1024

// Cooldown limits how often a single member may change their color. A nil
// Cooldown allows everything.
type Cooldown struct {
	every    time.Duration
	now      func() time.Time
	mutex    sync.Mutex
	limiters map[discord.UserID]*rate.Limiter
}

// NewCooldown allows one command per member every d. It returns nil if d is
// not positive.
func NewCooldown(d time.Duration) *Cooldown {
	if d <= 0 {
		return nil
	}

	return &Cooldown{
		every:    d,
		now:      time.Now,
		limiters: make(map[discord.UserID]*rate.Limiter),
	}
}

// Allow consumes the member's slot and returns a func that gives it back. If
// the member is still cooling down, release is nil and the remaining wait is
// returned instead.
func (c *Cooldown) Allow(userID discord.UserID) (release func(), wait time.Duration) {
	if c == nil {
		return func() {}, 0
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()

	limiter, ok := c.limiters[userID]
	if !ok {
		if len(c.limiters) >= pruneThreshold {
			c.prune(now)
		}

		limiter = rate.NewLimiter(rate.Every(c.every), 1)
		c.limiters[userID] = limiter
	}

	r := limiter.ReserveN(now, 1)
	if wait := r.DelayFrom(now); wait > 0 {
		r.CancelAt(now)
		return nil, wait
	}

	return func() { c.release(userID, limiter) }, 0
}

// release forgets the member's limiter. The slot Allow consumed was its only
// one, so a fresh limiter is the state from before.
func (c *Cooldown) release(userID discord.UserID, limiter *rate.Limiter) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.limiters[userID] == limiter {
		delete(c.limiters, userID)
	}
}

// prune drops limiters that are full again, since a fresh limiter behaves the
// same.
func (c *Cooldown) prune(now time.Time) {
	for id, limiter := range c.limiters {
		if limiter.TokensAt(now) >= 1 {
			delete(c.limiters, id)
		}
	}
}
