package ohctx

import (
	"sort"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
)

// HolidayKind distinguishes the OSM holiday tag classes (spec.md §4.6's
// PH/SH selectors).
type HolidayKind string

const (
	PublicHoliday HolidayKind = "PH"
	SchoolHoliday HolidayKind = "SH"
)

// Holidays answers whether a date is a holiday of a given kind, and finds
// the next one strictly after a date, for HolidayRange's filter and
// next-change-hint (spec.md §4.3).
type Holidays interface {
	IsHoliday(date time.Time, kind HolidayKind) bool
	FirstHolidayAfter(date time.Time, kind HolidayKind) time.Time
}

// CalendarHolidays stores explicit, caller-supplied holiday dates per
// kind, sorted for bisect-based lookup, matching the original's
// dict-of-lists CalendarHolidays.
type CalendarHolidays struct {
	dates map[HolidayKind][]time.Time
}

// NewCalendarHolidays builds an empty CalendarHolidays.
func NewCalendarHolidays() *CalendarHolidays {
	return &CalendarHolidays{dates: make(map[HolidayKind][]time.Time)}
}

// SetHolidays replaces the dates registered under kind, sorting them.
func (c *CalendarHolidays) SetHolidays(kind HolidayKind, dates []time.Time) {
	normalized := make([]time.Time, len(dates))
	for i, d := range dates {
		normalized[i] = ohcal.DateOnly(d)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].Before(normalized[j]) })
	c.dates[kind] = normalized
}

func (c *CalendarHolidays) IsHoliday(date time.Time, kind HolidayKind) bool {
	date = ohcal.DateOnly(date)
	list := c.dates[kind]
	i := sort.Search(len(list), func(i int) bool { return !list[i].Before(date) })
	return i < len(list) && list[i].Equal(date)
}

func (c *CalendarHolidays) FirstHolidayAfter(date time.Time, kind HolidayKind) time.Time {
	date = ohcal.DateOnly(date)
	list := c.dates[kind]
	i := sort.Search(len(list), func(i int) bool { return list[i].After(date) })
	if i >= len(list) {
		return ohcal.DateEnd
	}
	return list[i]
}
