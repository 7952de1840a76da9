package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// WeekRange matches an ISO-8601 week number or stepped range of week
// numbers ("week01-10/2").
type WeekRange struct {
	Start  int
	End    int
	HasEnd bool
	Step   int
}

func (r WeekRange) endOrStart() int {
	if r.HasEnd {
		return r.End
	}
	return r.Start
}

func (r WeekRange) step() int {
	if r.Step <= 0 {
		return 1
	}
	return r.Step
}

func (r WeekRange) Filter(date time.Time, _ *ohctx.Context) bool {
	isoYear, isoWeek := date.ISOWeek()
	m := ohcal.ISOWeeksInYear(isoYear)
	return ohcal.WrappingStep(r.Start, r.endOrStart(), isoWeek, m, r.step())
}

func weekStart(isoYear, week int) time.Time {
	return ohcal.DateFromISOWeek(isoYear, week, 1)
}

func (r WeekRange) NextChangeHint(date time.Time, _ *ohctx.Context) time.Time {
	isoYear, isoWeek := date.ISOWeek()
	m := ohcal.ISOWeeksInYear(isoYear)
	end := r.endOrStart()

	if r.Filter(date, nil) {
		nextWeek := isoWeek + 1
		nextYear := isoYear
		if nextWeek > m {
			nextWeek = 1
			nextYear++
		}
		if isoWeek == end || r.step() > 1 {
			return weekStart(nextYear, nextWeek)
		}
		return weekStart(nextYear, nextWeek)
	}

	if ohcal.WrappingContains(r.Start, end, isoWeek, m) {
		// Inside the range but off-step: next week may be selected.
		nextWeek, nextYear := isoWeek+1, isoYear
		if nextWeek > m {
			nextWeek, nextYear = 1, isoYear+1
		}
		return weekStart(nextYear, nextWeek)
	}

	nextWeek := r.Start
	nextYear := isoYear
	if nextWeek <= isoWeek {
		nextYear++
	}
	candidate := weekStart(nextYear, nextWeek)
	if candidate.Before(date) || candidate.Equal(date) {
		candidate = weekStart(nextYear, nextWeek)
	}
	return candidate
}
