package dates

import "time"

// Clock supplies "today" so date-dependent logic can be tested with a
// pinned calendar.
type Clock interface {
	Today() Date
}

type systemClock struct{}

func (systemClock) Today() Date {
	return FromTime(time.Now().Local())
}

// SystemClock reads the wall clock in local time.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	d Date
}

func (c fixedClock) Today() Date {
	return c.d
}

// Fixed returns a clock pinned to the given date.
func Fixed(d Date) Clock {
	return fixedClock{d: d}
}
