// Package ohcal collects the pure calendar arithmetic the engine needs:
// date sentinels, leap-safe date construction, wrapping-range membership,
// Easter, ISO week projection, and the small generic iterator helpers the
// date-domain filter algebra is built on (spec.md §4.2, §4.3, §9).
package ohcal

import "time"

// DateStart is the earliest date the engine reasons about (spec.md §9).
var DateStart = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateEnd is the sentinel "never" date (spec.md §9).
var DateEnd = time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateZero means "no cheap hint, fall back to next day" (spec.md §9).
// It must never be treated as an actual candidate date by callers.
var DateZero = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// NextDay returns d+1 day, saturating at DateEnd on overflow.
func NextDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	if next.Year() > DateEnd.Year() {
		return DateEnd
	}
	return next
}

// PrevDay returns d-1 day, saturating at DateStart on underflow.
func PrevDay(d time.Time) time.Time {
	prev := d.AddDate(0, 0, -1)
	if prev.Year() < DateStart.Year() {
		return DateStart
	}
	return prev
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// dateOnly normalizes a time.Time to midnight UTC of its calendar date,
// so that date-only comparisons are never perturbed by a wall-clock
// component a caller forgot to strip.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateOnly exports dateOnly for callers outside the package.
func DateOnly(t time.Time) time.Time {
	return dateOnly(t)
}
