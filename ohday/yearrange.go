package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// YearRange matches a year, or a stepped range of years ("2020",
// "2020-2025", "2020-2030/2"). Without HasEnd it is the single year Start;
// OpenEnd marks an open-ended range (e.g. "2020+") that runs to DateEnd.
type YearRange struct {
	Start    int
	End      int
	HasEnd   bool
	OpenEnd  bool
	Step     int
}

func (r YearRange) effectiveEnd() int {
	if r.OpenEnd {
		return ohcal.DateEnd.Year()
	}
	if !r.HasEnd {
		return r.Start
	}
	return r.End
}

func (r YearRange) step() int {
	if r.Step <= 0 {
		return 1
	}
	return r.Step
}

func (r YearRange) Filter(date time.Time, _ *ohctx.Context) bool {
	year := date.Year()
	end := r.effectiveEnd()
	if year < r.Start || year > end {
		return false
	}
	step := r.step()
	if step <= 1 {
		return true
	}
	return (year-r.Start)%step == 0
}

func (r YearRange) NextChangeHint(date time.Time, _ *ohctx.Context) time.Time {
	year := date.Year()
	end := r.effectiveEnd()

	if year < r.Start {
		return time.Date(r.Start, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if year > end {
		return ohcal.DateEnd
	}

	step := r.step()
	if step <= 1 {
		if year == end {
			return ohcal.DateEnd
		}
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	if (year-r.Start)%step == 0 {
		// Within a selected year: stays selected until next Jan 1, when
		// the step excludes it again (unless the next year is also a
		// multiple, which can't happen for step > 1).
		if year+1 > end {
			return ohcal.DateEnd
		}
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	// Not currently selected: find the next selected year.
	remainder := (year - r.Start) % step
	nextYear := year + (step - remainder)
	if nextYear > end {
		return ohcal.DateEnd
	}
	return time.Date(nextYear, time.January, 1, 0, 0, 0, 0, time.UTC)
}
