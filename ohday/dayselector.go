package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
)

// DaySelector is the full day-matching predicate of a rule: the
// conjunction of four independently-optional selector categories, each of
// which is itself a disjunction over its own entries (spec.md §4.2).
type DaySelector struct {
	Years     []DateFilter // YearRange
	Monthdays []DateFilter // DateRange or MonthRange
	Weeks     []DateFilter // WeekRange
	Weekdays  []DateFilter // WeekDayRange or HolidayRange
}

// IsEmpty reports whether every category is unconstrained, meaning this
// selector matches every date (the implicit full day-selector).
func (s DaySelector) IsEmpty() bool {
	return len(s.Years) == 0 && len(s.Monthdays) == 0 && len(s.Weeks) == 0 && len(s.Weekdays) == 0
}

func (s DaySelector) Filter(date time.Time, ctx *ohctx.Context) bool {
	return filterSeq(date, ctx, s.Years) &&
		filterSeq(date, ctx, s.Monthdays) &&
		filterSeq(date, ctx, s.Weeks) &&
		filterSeq(date, ctx, s.Weekdays)
}

// NextChangeHint is the minimum of the four categories' own hints, or
// DateEnd if the selector is entirely unconstrained. It is DateZero if any
// category has no cheap hint.
func (s DaySelector) NextChangeHint(date time.Time, ctx *ohctx.Context) time.Time {
	if s.IsEmpty() {
		return ohcal.DateEnd
	}
	return minHints(
		nextChangeHintSeq(date, ctx, s.Years),
		nextChangeHintSeq(date, ctx, s.Monthdays),
		nextChangeHintSeq(date, ctx, s.Weeks),
		nextChangeHintSeq(date, ctx, s.Weekdays),
	)
}
