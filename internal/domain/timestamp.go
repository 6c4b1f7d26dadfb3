package domain

import "time"

// TimestampLayout renders as DD/MM/YYYY HH:MM:SS.
const TimestampLayout = "02/01/2006 15:04:05"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Clock is the time source used when a task is created without an explicit
// timestamp.
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Timestamp formats the clock's current reading. A nil clock falls back to
// SystemClock.
func (c Clock) Timestamp() string {
	if c == nil {
		return FormatTimestamp(SystemClock())
	}
	return FormatTimestamp(c())
}
