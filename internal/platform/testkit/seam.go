package testkit

import (
	"testing"
	"time"
)

// Swap points *target at v until the test ends
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}

// Clock returns a Now seam frozen at at
func Clock(at time.Time) func() time.Time {
	at = at.UTC()
	return func() time.Time { return at }
}

// Ticker returns a Now seam that advances by step on every call after the first
func Ticker(start time.Time, step time.Duration) func() time.Time {
	next := start.UTC()
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
