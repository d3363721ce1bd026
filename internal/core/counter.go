package core

// Counter is a shared integer tally (remaining blocks, remaining balls,
// score, lives). Listeners and the level hold the same *Counter.
type Counter struct {
	value int
}

// NewCounter creates a counter starting at v.
func NewCounter(v int) *Counter {
	return &Counter{value: v}
}

// Increase adds n to the counter.
func (c *Counter) Increase(n int) {
	c.value += n
}

// Decrease subtracts n from the counter.
func (c *Counter) Decrease(n int) {
	c.value -= n
}

// Set overwrites the counter value.
func (c *Counter) Set(v int) {
	c.value = v
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}
