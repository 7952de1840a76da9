package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// DateFilter is the contract every day-selector kind implements: a
// membership test and a monotone next-change lower bound (spec.md §4.3).
// NextChangeHint may return ohcal.DateZero to mean "no cheap hint
// available" rather than any real candidate date; callers must never
// treat DateZero itself as a date to act on.
type DateFilter interface {
	Filter(date time.Time, ctx *ohctx.Context) bool
	NextChangeHint(date time.Time, ctx *ohctx.Context) time.Time
}

// filterSeq is the "AND of an optional selector list" combinator every
// DaySelector category (year/monthday/week/weekday) uses: an empty list
// imposes no constraint.
func filterSeq(date time.Time, ctx *ohctx.Context, filters []DateFilter) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f.Filter(date, ctx) {
			return true
		}
	}
	return false
}

// minHints combines a set of next-change hints into their minimum. If any
// entry is ohcal.DateZero ("no hint"), that selector could change on any
// day, so the combination has no cheap hint either and is DateZero too.
func minHints(hints ...time.Time) time.Time {
	best := ohcal.DateZero
	have := false
	for _, h := range hints {
		if h.Equal(ohcal.DateZero) {
			return ohcal.DateZero
		}
		if !have || h.Before(best) {
			best = h
			have = true
		}
	}
	if !have {
		return ohcal.DateZero
	}
	return best
}

// nextChangeHintSeq is next_change_hint_seq: an empty selector list
// imposes no constraint (returns DateEnd, since there's nothing there to
// ever invalidate); otherwise it's the combination of each selector's own
// hint.
func nextChangeHintSeq(date time.Time, ctx *ohctx.Context, filters []DateFilter) time.Time {
	if len(filters) == 0 {
		return ohcal.DateEnd
	}
	hints := make([]time.Time, len(filters))
	for i, f := range filters {
		hints[i] = f.NextChangeHint(date, ctx)
	}
	return minHints(hints...)
}
