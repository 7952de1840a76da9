package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// MonthRange matches a month or a (possibly wrapping) range of months,
// either every year ("Jan-Mar") or pinned to one calendar year
// ("2020 Jan-Mar", represented via Year).
type MonthRange struct {
	Year   *int
	Start  Month
	End    Month
	HasEnd bool
}

func (r MonthRange) yearMatches(year int) bool {
	return r.Year == nil || *r.Year == year
}

func (r MonthRange) monthMatches(m Month) bool {
	if !r.HasEnd {
		return m == r.Start
	}
	return ohcal.WrappingContains(int(r.Start), int(r.End), int(m), 12)
}

func (r MonthRange) Filter(date time.Time, _ *ohctx.Context) bool {
	return r.yearMatches(date.Year()) && r.monthMatches(Month(date.Month()))
}

func monthStart(year int, m Month) time.Time {
	return time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

func (r MonthRange) NextChangeHint(date time.Time, _ *ohctx.Context) time.Time {
	year := date.Year()

	if r.Year != nil {
		if year < *r.Year {
			return monthStart(*r.Year, Jan)
		}
		if year > *r.Year {
			return ohcal.DateEnd
		}
		// Fixed year: range is bounded by this year only.
		if !r.monthMatches(Month(date.Month())) {
			if Month(date.Month()) < r.Start {
				return monthStart(year, r.Start)
			}
			return ohcal.DateEnd
		}
		endMonth := r.End
		if !r.HasEnd {
			endMonth = r.Start
		}
		if endMonth == Dec {
			return ohcal.DateEnd
		}
		return monthStart(year, endMonth+1)
	}

	// Recurs every year: the month cycle never ends, so the hint is
	// always the next month boundary, forward or wrapped into next year.
	m := Month(date.Month())
	if r.monthMatches(m) {
		endMonth := r.End
		if !r.HasEnd {
			endMonth = r.Start
		}
		if m == endMonth {
			nextMonth := m.Next()
			nextYear := year
			if nextMonth < m {
				nextYear++
			}
			return monthStart(nextYear, nextMonth)
		}
		nextMonth := m.Next()
		nextYear := year
		if nextMonth < m {
			nextYear++
		}
		return monthStart(nextYear, nextMonth)
	}

	nextMonth := r.Start
	nextYear := year
	if nextMonth <= m {
		nextYear++
	}
	return monthStart(nextYear, nextMonth)
}
