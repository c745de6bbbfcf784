package timing

import (
	"sync"
	"time"
)

// Clock is the source of timestamps for load attempts.
// Readings taken from the same Clock must be comparable with time.Time.Sub.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. The returned times carry Go's monotonic reading,
// so differences between them are immune to wall clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a Clock that only moves when told to.
type FakeClock struct {
	now  time.Time
	lock sync.Mutex
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.now = c.now.Add(d)
}
