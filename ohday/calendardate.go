package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/oherr"
)

// CalendarDate is a month/day, optionally pinned to a specific year
// ("Dec25 2020" vs the recurring "Dec25"). Day 29 of February is the one
// value DateRange must treat specially: it exists only in leap years.
type CalendarDate struct {
	Year  *int
	Month Month
	Day   int
}

// IsFeb29 reports the FEB_29 special case DateRange enumerates only over
// leap years.
func (c CalendarDate) IsFeb29() bool {
	return c.Month == Feb && c.Day == 29
}

// ToDate resolves this CalendarDate to a concrete date, using c.Year if
// pinned or the supplied fallback year otherwise. It is an error for Day
// to exceed the number of days in Month for the resolved year, except
// when the caller is iterating leap years only for FEB_29 (callers do
// that enumeration themselves and never call ToDate with a non-leap year
// in that case).
func (c CalendarDate) ToDate(fallbackYear int) (time.Time, error) {
	year := fallbackYear
	if c.Year != nil {
		year = *c.Year
	}
	d, ok := ohcal.CreateDateOpt(year, int(c.Month), c.Day)
	if !ok {
		return time.Time{}, oherr.Newf("invalid calendar date %d-%02d-%02d", year, c.Month, c.Day)
	}
	return d, nil
}

// Less orders two CalendarDates by (month, day), ignoring any pinned
// year, for the parser's date-range rollover detection ("Dec20-Jan10").
func (c CalendarDate) Less(other CalendarDate) bool {
	if c.Month != other.Month {
		return c.Month < other.Month
	}
	return c.Day < other.Day
}

// WeekDayOffsetKind selects which side of a weekday a date offset snaps
// to: none (no snapping), the next such weekday, or the previous one.
type WeekDayOffsetKind int

const (
	WeekDayOffsetNone WeekDayOffsetKind = iota
	WeekDayOffsetNext
	WeekDayOffsetPrev
)

// WeekDayOffset snaps a date forward or backward to the nearest
// occurrence of a weekday ("Su after Dec25").
type WeekDayOffset struct {
	Kind    WeekDayOffsetKind
	Weekday Weekday
}

func (w WeekDayOffset) apply(date time.Time) time.Time {
	if w.Kind == WeekDayOffsetNone {
		return date
	}
	current := FromTime(date)
	diff := (int(w.Weekday) - int(current) + 7) % 7
	if w.Kind == WeekDayOffsetNext {
		return date.AddDate(0, 0, diff)
	}
	// Prev: go backward to the most recent prior (or same-day) occurrence.
	back := (int(current) - int(w.Weekday) + 7) % 7
	return date.AddDate(0, 0, -back)
}

// DateOffset is a day-count shift plus an optional weekday snap, applied
// in that order ("easter +2 days", "Dec25 Su after").
type DateOffset struct {
	DayOffset int
	WeekDay   WeekDayOffset
}

// Apply shifts date by DayOffset calendar days, then snaps to the nearest
// matching weekday if WeekDay.Kind is not WeekDayOffsetNone.
func (o DateOffset) Apply(date time.Time) time.Time {
	shifted := date.AddDate(0, 0, o.DayOffset)
	return o.WeekDay.apply(shifted)
}

func (o DateOffset) IsZero() bool {
	return o.DayOffset == 0 && o.WeekDay.Kind == WeekDayOffsetNone
}
