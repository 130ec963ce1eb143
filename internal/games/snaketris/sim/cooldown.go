package sim

import "time"

// Cooldown is a repeating timer that fires at most once per Tick, carrying
// the leftover time into the next period.
type Cooldown struct {
	period  time.Duration
	elapsed time.Duration
}

// NewCooldown returns a timer with the given period.
func NewCooldown(period time.Duration) Cooldown {
	return Cooldown{period: period}
}

// Period returns the current period.
func (c *Cooldown) Period() time.Duration {
	return c.period
}

// SetPeriod changes the period without losing accumulated time. Periods
// below floor are raised to floor.
func (c *Cooldown) SetPeriod(d, floor time.Duration) {
	c.period = max(d, floor)
}

// Tick advances the timer by dt and reports whether a period elapsed.
func (c *Cooldown) Tick(dt time.Duration) bool {
	if c.period <= 0 {
		return false
	}
	c.elapsed += dt
	if c.elapsed < c.period {
		return false
	}
	c.elapsed = (c.elapsed - c.period) % c.period
	return true
}

// Reset drops accumulated time.
func (c *Cooldown) Reset() {
	c.elapsed = 0
}
