package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// DateEndpoint is one side of a DateRange: either a CalendarDate or a
// VariableDate, wrapped so DateRange can treat both uniformly.
type DateEndpoint struct {
	calendar *CalendarDate
	variable *VariableDate
}

// FromCalendarDate wraps a fixed month/day endpoint.
func FromCalendarDate(c CalendarDate) DateEndpoint {
	return DateEndpoint{calendar: &c}
}

// FromVariableDate wraps an astronomically-computed endpoint.
func FromVariableDate(v VariableDate) DateEndpoint {
	return DateEndpoint{variable: &v}
}

// IsFeb29 reports whether this endpoint is the literal February 29 marker.
func (e DateEndpoint) IsFeb29() bool {
	return e.calendar != nil && e.calendar.IsFeb29()
}

// PinnedYear returns the endpoint's fixed year, if any.
func (e DateEndpoint) PinnedYear() (int, bool) {
	if e.calendar != nil && e.calendar.Year != nil {
		return *e.calendar.Year, true
	}
	return 0, false
}

// ResolveForYear resolves this endpoint within the given year, returning
// ok=false if it names a date that does not exist that year (only
// possible for the February 29 marker).
func (e DateEndpoint) ResolveForYear(year int) (time.Time, bool) {
	if e.calendar != nil {
		d, err := e.calendar.ToDate(year)
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}
	return e.variable.ToDate(year), true
}

// DateRange is the monthday-range day-selector: a single date, or a span
// between two dates, which may themselves be fixed, year-pinned, or
// astronomically variable (spec.md §4.2's monthday_range production).
type DateRange struct {
	Start   DateEndpoint
	End     DateEndpoint
	HasEnd  bool
	OpenEnd bool // "Dec20+": extends indefinitely forward from Start
}

// isFeb29Pair is the one case handled by direct leap-year enumeration
// rather than year projection: a range whose start and end are both the
// literal February 29 marker with no offset, representing "this day,
// which only exists every four years".
func (r DateRange) isFeb29Pair() bool {
	return r.HasEnd && !r.OpenEnd && r.Start.IsFeb29() && r.End.IsFeb29()
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// bounds projects this range's start/end dates across a window of years
// around centerYear, producing the (starts, ends) pair the interval-bounds
// algorithm consumes.
func (r DateRange) bounds(centerYear, before, after int) (starts, ends []time.Time) {
	if r.isFeb29Pair() {
		for y := centerYear - before; y <= centerYear+after; y++ {
			if !isLeap(y) {
				continue
			}
			d := time.Date(y, time.February, 29, 0, 0, 0, 0, time.UTC)
			starts = append(starts, d)
			ends = append(ends, d)
		}
		return starts, ends
	}

	startYearLo, startYearHi := centerYear-before, centerYear+after
	if y, ok := r.Start.PinnedYear(); ok {
		startYearLo, startYearHi = y, y
	}

	for y := startYearLo; y <= startYearHi; y++ {
		startDate, ok := r.Start.ResolveForYear(y)
		if !ok {
			// A lone Feb29 only exists in leap years; as a range start it
			// moves forward to the next valid date (Mar 1).
			if !r.HasEnd {
				continue
			}
			startDate = ohcal.ValidYmdAfter(y, int(r.Start.calendar.Month), r.Start.calendar.Day)
		}

		var endDate time.Time
		switch {
		case !r.HasEnd:
			endDate = startDate
		case r.OpenEnd:
			// A "+"-suffixed range only extends all the way to DateEnd when
			// its start date is pinned to a specific year (e.g.
			// "May2 2020+"): the range is a one-shot span with no further
			// year to close it at. Without a pinned year (e.g. "May2+") it
			// recurs annually and each occurrence closes at that same
			// year's December 31, like "May2-Dec31" every year.
			if _, pinned := r.Start.PinnedYear(); pinned {
				endDate = ohcal.DateEnd
			} else {
				endDate = time.Date(startDate.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
			}
		default:
			endYear := y
			if endY, ok := r.End.PinnedYear(); ok {
				endYear = endY
			}
			// A Feb29 end moves back to the previous valid date (Feb 28) in
			// years that lack it.
			candidate, ok := r.End.ResolveForYear(endYear)
			if !ok {
				candidate = ohcal.ValidYmdBefore(endYear, int(r.End.calendar.Month), r.End.calendar.Day)
			}
			if candidate.Before(startDate) {
				candidate, ok = r.End.ResolveForYear(endYear + 1)
				if !ok {
					candidate = ohcal.ValidYmdBefore(endYear+1, int(r.End.calendar.Month), r.End.calendar.Day)
				}
			}
			endDate = candidate
		}

		starts = append(starts, startDate)
		ends = append(ends, endDate)
	}
	return starts, ends
}

func (r DateRange) Filter(date time.Time, _ *ohctx.Context) bool {
	starts, ends := r.bounds(date.Year(), 1, 2)
	return ohcal.IsOpenFromBounds(date, starts, ends)
}

func (r DateRange) NextChangeHint(date time.Time, _ *ohctx.Context) time.Time {
	starts, ends := r.bounds(date.Year(), 1, 10)
	return ohcal.NextChangeFromBounds(date, starts, ends)
}
