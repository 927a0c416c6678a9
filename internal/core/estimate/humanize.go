package estimate

import (
	"strconv"
	"time"
)

const day = 24 * time.Hour

// FormatDate renders t as "January 2, 2006" in UTC
func FormatDate(t time.Time) string { return t.UTC().Format("January 2, 2006") }

// HumanAge describes how long ago created was relative to now, in the
// largest whole unit: years (with leftover months), months, or days.
// Days round up; a month is 30 days and a year 12 months
func HumanAge(created, now time.Time) string {
	diff := now.Sub(created)
	if diff < 0 {
		diff = -diff
	}
	days := int64(diff / day)
	if diff%day != 0 {
		days++
	}
	months := days / 30
	years := months / 12

	switch {
	case years > 0:
		out := unit(years, "year")
		if rem := months % 12; rem > 0 {
			out += " and " + unit(rem, "month")
		}
		return out
	case months > 0:
		return unit(months, "month")
	default:
		return unit(days, "day")
	}
}

func unit(n int64, word string) string {
	s := strconv.FormatInt(n, 10) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}
