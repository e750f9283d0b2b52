package memory

// FlipCounter counts resolved attempts in the current round.
type FlipCounter struct {
	count int
}

// Increment adds one attempt and returns the new count.
func (c *FlipCounter) Increment() int {
	c.count++
	return c.count
}

// Reset zeroes the counter for a new round.
func (c *FlipCounter) Reset() {
	c.count = 0
}

// Count returns the number of attempts so far.
func (c *FlipCounter) Count() int {
	return c.count
}
