package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Clock is the only source of "now" for scheduling code.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the practice's location.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(tz string) SystemClock {
	return SystemClock{loc: Location(tz)}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Location())
}

func (c SystemClock) Location() *time.Location {
	if c.loc == nil {
		return Location(DefaultTimezone)
	}
	return c.loc
}

// FixedClock returns a settable instant. Safe for concurrent use.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
