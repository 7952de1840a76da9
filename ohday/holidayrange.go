package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// HolidayRange matches the "PH"/"SH" selector, optionally shifted by a
// day offset applied before the holiday test ("PH +1 day": the day after
// a public holiday).
type HolidayRange struct {
	Kind      ohctx.HolidayKind
	DayOffset int
}

func (r HolidayRange) Filter(date time.Time, ctx *ohctx.Context) bool {
	base := date.AddDate(0, 0, -r.DayOffset)
	return ctx.Holidays.IsHoliday(base, r.Kind)
}

func (r HolidayRange) NextChangeHint(date time.Time, ctx *ohctx.Context) time.Time {
	base := date.AddDate(0, 0, -r.DayOffset)
	if ctx.Holidays.IsHoliday(base, r.Kind) {
		return ohcal.NextDay(date)
	}
	next := ctx.Holidays.FirstHolidayAfter(base, r.Kind)
	if next.Equal(ohcal.DateEnd) {
		return ohcal.DateEnd
	}
	return next.AddDate(0, 0, r.DayOffset)
}
