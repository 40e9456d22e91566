package pick

import (
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCooldown(d time.Duration) (*Cooldown, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cooldown := NewCooldown(d)
	cooldown.now = clock.now
	return cooldown, clock
}

func TestCooldown(t *testing.T) {
	cooldown, clock := newTestCooldown(3 * time.Second)

	release, _ := cooldown.Allow(1)
	assert.NotNil(t, release, "first use")

	release, wait := cooldown.Allow(1)
	assert.Nil(t, release, "second use")
	assert.InDelta(t, 3*time.Second, wait, float64(time.Millisecond))

	release, _ = cooldown.Allow(2)
	assert.NotNil(t, release, "other members are independent")

	clock.advance(time.Second)

	release, wait = cooldown.Allow(1)
	assert.Nil(t, release)
	assert.InDelta(t, 2*time.Second, wait, float64(time.Millisecond),
		"rejected attempts do not extend the wait")

	clock.advance(2 * time.Second)

	release, _ = cooldown.Allow(1)
	assert.NotNil(t, release, "after the cooldown")
}

func TestCooldownDisabled(t *testing.T) {
	var cooldown *Cooldown = NewCooldown(0)
	assert.Nil(t, cooldown)

	for i := 0; i < 3; i++ {
		release, _ := cooldown.Allow(1)
		require.NotNil(t, release)
		release()
	}
}

func TestCooldownPrune(t *testing.T) {
	cooldown, clock := newTestCooldown(time.Second)

	for id := discord.UserID(1); id <= pruneThreshold; id++ {
		cooldown.Allow(id)
	}
	assert.Len(t, cooldown.limiters, pruneThreshold)

	clock.advance(time.Second)
	cooldown.Allow(pruneThreshold + 1)

	assert.Len(t, cooldown.limiters, 1)
}

func TestCooldownRelease(t *testing.T) {
	cooldown, clock := newTestCooldown(3 * time.Second)

	release, _ := cooldown.Allow(1)
	require.NotNil(t, release)

	clock.advance(time.Second)
	release()

	again, _ := cooldown.Allow(1)
	require.NotNil(t, again, "released slot is usable right away")

	blocked, wait := cooldown.Allow(1)
	assert.Nil(t, blocked)
	assert.InDelta(t, 3*time.Second, wait, float64(time.Millisecond))

	// A stale release does not touch the newer limiter.
	release()

	blocked, _ = cooldown.Allow(1)
	assert.Nil(t, blocked)
}
