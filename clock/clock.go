package clock

import "time"

// Clock provides the current time so date rules can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in the club's time zone.
type RealClock struct {
	loc *time.Location
}

func New(loc *time.Location) *RealClock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock stopped at a given instant.
type Fixed struct {
	CurrentTime time.Time
}

var _ Clock = (*Fixed)(nil)

func NewFixed(t time.Time) *Fixed {
	return &Fixed{CurrentTime: t}
}

func (c *Fixed) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Date returns the calendar date y-m-d as midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time of day from t, keeping the calendar date of t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today is the calendar date of c.Now().
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DaysBetween counts whole days from a to b. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
