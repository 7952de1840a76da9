package openinghours

import (
	"sort"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohlog"
	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/Telinage2/opening-hours-osm/ohschedule"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// DateTimeRange is one contiguous, disjoint output of the time-domain
// iterator: a concrete [Start, End) wall-clock span and the state it
// asserts (spec.md §4.6, §4.7).
type DateTimeRange struct {
	Start    time.Time
	End      time.Time
	Kind     ohrule.RuleKind
	Comments []string
}

// TimeDomainIterator is a pull-based cursor over an OpeningHours'
// evaluation, advancing date by date but skipping whole runs of unchanged
// days via the next-change hint instead of scanning one at a time
// (spec.md §4.7, §9's "lazy iterators" note - implemented here as a
// stateful Next() method rather than any language-specific coroutine).
type TimeDomainIterator struct {
	oh   *OpeningHours
	from time.Time // naive
	to   time.Time // naive

	cursorDate time.Time
	dayRanges  []ohschedule.TimeRange
	idx        int
	done       bool
}

// IterRange returns an iterator over [from, to). Aware inputs are
// reverse-localized to naive clock values before evaluation, and outputs
// are forward-localized back through the Context's Locale (spec.md §4.8's
// localization wrapper).
func (oh *OpeningHours) IterRange(from, to time.Time) *TimeDomainIterator {
	it := &TimeDomainIterator{
		oh:   oh,
		from: reverseLocalize(oh, from),
		to:   reverseLocalize(oh, to),
	}
	if !it.from.Before(it.to) {
		it.done = true
		return it
	}

	it.cursorDate = ohcal.DateOnly(it.from)
	it.dayRanges = ohschedule.Iterate(oh.ScheduleAt(it.cursorDate), ohtime.Midnight24)
	for it.idx < len(it.dayRanges) {
		if combine(it.cursorDate, it.dayRanges[it.idx].End).After(it.from) {
			break
		}
		it.idx++
	}
	return it
}

// IterFrom returns an iterator over [from, DateEnd).
func (oh *OpeningHours) IterFrom(from time.Time) *TimeDomainIterator {
	return oh.IterRange(from, ohcal.DateEnd)
}

// Next pulls the next disjoint DateTimeRange, or reports ok=false once the
// window [from, to) is exhausted.
func (it *TimeDomainIterator) Next() (DateTimeRange, bool) {
	if it.done {
		return DateTimeRange{}, false
	}
	if it.idx >= len(it.dayRanges) {
		if _, ok := it.advanceDay(); !ok {
			it.done = true
			return DateTimeRange{}, false
		}
	}

	first := it.dayRanges[it.idx]
	kind := first.Kind
	comments := first.Comments
	start := combine(it.cursorDate, first.Start)
	it.idx++

	var end time.Time
	for {
		if it.idx < len(it.dayRanges) {
			next := it.dayRanges[it.idx]
			if next.Kind != kind {
				end = combine(it.cursorDate, next.Start)
				break
			}
			comments = mergeComments(comments, next.Comments)
			it.idx++
			continue
		}

		if it.pastApproxBound(start) {
			end = ohcal.DateEnd
			it.done = true
			break
		}

		hint, ok := it.advanceDay()
		if !ok {
			end = hint
			it.done = true
			break
		}
		if it.dayRanges[0].Kind != kind {
			end = combine(it.cursorDate, it.dayRanges[0].Start)
			break
		}
		comments = mergeComments(comments, it.dayRanges[0].Comments)
		it.idx = 1
	}

	if start.Before(it.from) {
		start = it.from
	}
	if end.After(it.to) {
		end = it.to
		it.done = true
	}
	if !start.Before(end) {
		it.done = true
		return DateTimeRange{}, false
	}

	return DateTimeRange{
		Start:    it.localize(start),
		End:      it.localize(end),
		Kind:     kind,
		Comments: comments,
	}, true
}

// advanceDay jumps the cursor to the next date the expression could
// change on (or cursorDate+1 if no cheaper hint exists), rebuilding the
// buffered day schedule. It reports ok=false if that date would not be
// strictly before the iterator's upper bound, in which case hint itself
// (not yet assigned to cursorDate) is the correct run-terminating value
// for the caller to clamp against `to`.
func (it *TimeDomainIterator) advanceDay() (hint time.Time, ok bool) {
	hint = nextChangeHintForExpression(it.oh, it.cursorDate)
	if !hint.After(it.cursorDate) {
		hint = ohcal.NextDay(it.cursorDate)
	}
	if !hint.Before(it.to) {
		return hint, false
	}
	it.cursorDate = hint
	it.dayRanges = ohschedule.Iterate(it.oh.ScheduleAt(it.cursorDate), ohtime.Midnight24)
	it.idx = 0
	return hint, true
}

// pastApproxBound reports whether extending the current run by one more
// day would exceed the Context's ApproxBoundIntervalSize, short-circuiting
// an unbounded same-kind run (e.g. 24/7 open) into a sentinel range
// instead of walking centuries of identical days (spec.md §4.7, §5).
func (it *TimeDomainIterator) pastApproxBound(start time.Time) bool {
	bound := it.oh.Context.ApproxBoundIntervalSize
	if bound <= 0 {
		return false
	}
	return ohcal.NextDay(it.cursorDate).Sub(start) >= bound
}

func (it *TimeDomainIterator) localize(naive time.Time) time.Time {
	if naive.Equal(ohcal.DateEnd) {
		return naive
	}
	aware, err := it.oh.Context.Locale.LocalizedDatetime(naive)
	if err != nil {
		return naive
	}
	return aware
}

func mergeComments(a, b []string) []string {
	return ohrule.UnionSortedSlices(sortedUniqueComments(a), sortedUniqueComments(b))
}

// sortedUniqueComments normalizes a TimeRange's comment slice into sorted,
// duplicate-free form before it's fed into UnionSortedSlices, which
// assumes that precondition of its inputs.
func sortedUniqueComments(comments []string) []string {
	if len(comments) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(comments))
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// reverseLocalize converts an aware instant into the naive wall-clock
// value the day-selector/time-selector algebra operates on, via the
// Context's Locale (spec.md §6's "naive(aware_dt)"). The DateStart/DateEnd
// sentinels (used by IterFrom's unbounded upper bound) pass through
// untouched rather than being reinterpreted through the locale's zone,
// mirroring localize()'s symmetric DateEnd passthrough on the output side.
func reverseLocalize(oh *OpeningHours, t time.Time) time.Time {
	if t.Equal(ohcal.DateEnd) || t.Equal(ohcal.DateStart) {
		return t
	}
	naive, err := oh.Context.Locale.Naive(t)
	if err != nil {
		ohlog.L().Warn().Err(err).Msg("locale could not reverse-localize instant, using wall-clock fields as-is")
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return naive
}

// combine folds an ExtendedTime (00:00-48:00) onto a calendar date,
// carrying any past-midnight hour into the following calendar day.
func combine(date time.Time, et ohtime.ExtendedTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(et.MinsFromMidnight()) * time.Minute)
}
