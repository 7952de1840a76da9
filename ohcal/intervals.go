package ohcal

import (
	"sort"
	"time"
)

// DateInterval is a closed [start, end] span of calendar dates.
type DateInterval [2]time.Time

// EnsureIncreasing drops any element that does not strictly increase over
// the previous yielded element, tolerating the year-projection artifacts
// DateRange's multi-year bound construction can introduce (spec.md §4.3).
func EnsureIncreasing(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return nil
	}
	sorted := append([]time.Time(nil), dates...)
	out := make([]time.Time, 0, len(sorted))
	var current time.Time
	has := false
	for _, d := range sorted {
		if !has || d.After(current) {
			current = d
			has = true
			out = append(out, d)
		}
	}
	return out
}

// IntervalsFromBounds implements the interval-bounds algorithm of
// spec.md §4.3: it advances the end-cursor past any end earlier than the
// next start, then emits (start, end), (start, DateEnd) or
// (DateStart, end) depending on which side still has candidates.
//
// Both inputs are first passed through EnsureIncreasing by the caller (or
// here, defensively) so regressions from multi-year projection never
// produce a malformed interval.
func IntervalsFromBounds(boundsStart, boundsEnd []time.Time) []DateInterval {
	starts := EnsureIncreasing(boundsStart)
	ends := EnsureIncreasing(boundsEnd)

	var out []DateInterval
	si, ei := 0, 0

	for {
		if si < len(starts) {
			start := starts[si]
			for ei < len(ends) && ends[ei].Before(start) {
				ei++
			}
		}

		var rangeStart, rangeEnd time.Time
		hasStart := si < len(starts)
		hasEnd := ei < len(ends)

		switch {
		case !hasStart && !hasEnd:
			return out
		case !hasStart && hasEnd:
			rangeEnd = ends[ei]
			ei++
			out = append(out, DateInterval{DateStart, rangeEnd})
		case hasStart && !hasEnd:
			rangeStart = starts[si]
			si++
			out = append(out, DateInterval{rangeStart, DateEnd})
		default:
			rangeStart = starts[si]
			rangeEnd = ends[ei]
			if rangeStart.Equal(rangeEnd) {
				ei++
			}
			si++
			out = append(out, DateInterval{rangeStart, rangeEnd})
		}
	}
}

func intervalContains(iv DateInterval, date time.Time) bool {
	return !date.Before(iv[0]) && !date.After(iv[1])
}

// IsOpenFromIntervals reports whether date lies within the first interval
// whose end is not before date.
func IsOpenFromIntervals(date time.Time, intervals []DateInterval) bool {
	for _, iv := range intervals {
		if !iv[1].Before(date) {
			return intervalContains(iv, date)
		}
	}
	return false
}

// IsOpenFromBounds is IsOpenFromIntervals composed with IntervalsFromBounds.
func IsOpenFromBounds(date time.Time, boundsStart, boundsEnd []time.Time) bool {
	return IsOpenFromIntervals(date, IntervalsFromBounds(boundsStart, boundsEnd))
}

// NextChangeFromIntervals returns the next date on which membership in the
// interval stream could change: the day after the containing interval's
// end, or the start of the next interval, or DateEnd.
func NextChangeFromIntervals(date time.Time, intervals []DateInterval) time.Time {
	for _, iv := range intervals {
		if !iv[1].Before(date) {
			if !iv[0].After(date) {
				return NextDay(iv[1])
			}
			return iv[0]
		}
	}
	return DateEnd
}

// NextChangeFromBounds is NextChangeFromIntervals composed with
// IntervalsFromBounds.
func NextChangeFromBounds(date time.Time, boundsStart, boundsEnd []time.Time) time.Time {
	return NextChangeFromIntervals(date, IntervalsFromBounds(boundsStart, boundsEnd))
}

// SortDates sorts a slice of dates ascending, in place, and returns it.
func SortDates(dates []time.Time) []time.Time {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
