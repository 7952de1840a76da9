package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// WeekDayRange matches a weekday or wrapping weekday range ("Mo-Fr",
// "Fr-Mo"), optionally narrowed to specific occurrences within the month
// via Positions ("Mo[1,3]", "Su[-1]"), and optionally shifted by a day
// offset applied before the weekday/position test ("Su[-1] +1 day").
type WeekDayRange struct {
	Start     Weekday
	End       Weekday
	HasEnd    bool
	Positions Bitfield
	DayOffset int
}

func (r WeekDayRange) weekdayMatches(wd Weekday) bool {
	if !r.HasEnd {
		return wd == r.Start
	}
	return ohcal.WrappingContains(int(r.Start), int(r.End), int(wd), 7)
}

func (r WeekDayRange) positionMatches(date time.Time) bool {
	daysInMonth := ohcal.DaysInMonth(date.Year(), int(date.Month()))
	posFromStart := (date.Day() - 1) / 7
	posFromEnd := (daysInMonth - date.Day()) / 7
	if r.Positions.Get(posFromStart) {
		return true
	}
	return posFromEnd == 0 && r.Positions.Get(4)
}

func (r WeekDayRange) Filter(date time.Time, _ *ohctx.Context) bool {
	base := date
	if r.DayOffset != 0 {
		base = date.AddDate(0, 0, -r.DayOffset)
	}
	if !r.weekdayMatches(FromTime(base)) {
		return false
	}
	return r.positionMatches(base)
}

// NextChangeHint always returns DateZero: the nth-occurrence-within-month
// test means membership doesn't follow a simple periodic rule cheap to
// compute in closed form, so callers fall back to scanning day by day.
func (r WeekDayRange) NextChangeHint(_ time.Time, _ *ohctx.Context) time.Time {
	return ohcal.DateZero
}
