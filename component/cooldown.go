package component

// Cooldown is a seconds-based gate for an ability.
type Cooldown struct {
	Duration float64

	remaining float64
}

// Ready reports whether the ability may be used.
func (c *Cooldown) Ready() bool {
	return c == nil || c.remaining <= 0
}

// Trigger starts the countdown.
func (c *Cooldown) Trigger() {
	if c == nil || c.Duration <= 0 {
		return
	}
	c.remaining = c.Duration
}

// Tick counts the cooldown down by dt seconds.
func (c *Cooldown) Tick(dt float64) {
	if c == nil || c.remaining <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Remaining returns the seconds left before the ability is ready.
func (c *Cooldown) Remaining() float64 {
	if c == nil {
		return 0
	}
	return c.remaining
}

// Reset makes the ability immediately available.
func (c *Cooldown) Reset() {
	if c != nil {
		c.remaining = 0
	}
}
