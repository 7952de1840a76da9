package ohday_test

import (
	"testing"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/Telinage2/opening-hours-osm/ohday"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearRangeFilterAndHint(t *testing.T) {
	ctx := ohctx.NewContext()
	yr := ohday.YearRange{Start: 2020, End: 2022, HasEnd: true}

	assert.True(t, yr.Filter(date(2021, time.June, 1), ctx))
	assert.False(t, yr.Filter(date(2023, time.June, 1), ctx))

	hint := yr.NextChangeHint(date(2022, time.June, 1), ctx)
	assert.True(t, hint.Equal(date(2023, time.January, 1)))
}

func TestMonthRangeWrapping(t *testing.T) {
	ctx := ohctx.NewContext()
	mr := ohday.MonthRange{Start: ohday.Nov, End: ohday.Feb, HasEnd: true}

	assert.True(t, mr.Filter(date(2021, time.December, 15), ctx))
	assert.True(t, mr.Filter(date(2021, time.January, 15), ctx))
	assert.False(t, mr.Filter(date(2021, time.June, 15), ctx))
}

func TestDateRangeFeb29ToMar15ProjectsOntoNonLeapYears(t *testing.T) {
	ctx := ohctx.NewContext()
	dr := ohday.DateRange{
		Start:  ohday.FromCalendarDate(ohday.CalendarDate{Month: ohday.Feb, Day: 29}),
		End:    ohday.FromCalendarDate(ohday.CalendarDate{Month: ohday.Mar, Day: 15}),
		HasEnd: true,
	}

	assert.True(t, dr.Filter(date(2020, time.March, 1), ctx))
	assert.True(t, dr.Filter(date(2021, time.March, 1), ctx))
}

func TestWeekDayRangeNthOccurrence(t *testing.T) {
	ctx := ohctx.NewContext()
	positions, err := ohday.NewBitfield(4) // "last"
	assert.NoError(t, err)

	lastSunday := ohday.WeekDayRange{Start: ohday.Su, Positions: positions}
	// January 2023: Sundays are 1, 8, 15, 22, 29 - the 29th is last.
	assert.True(t, lastSunday.Filter(date(2023, time.January, 29), ctx))
	assert.False(t, lastSunday.Filter(date(2023, time.January, 22), ctx))
}

func TestHolidayRangeDelegatesToContext(t *testing.T) {
	ctx := ohctx.NewContext()
	ch := ctx.Holidays.(*ohctx.CalendarHolidays)
	christmas := date(2023, time.December, 25)
	ch.SetHolidays(ohctx.PublicHoliday, []time.Time{christmas})

	hr := ohday.HolidayRange{Kind: ohctx.PublicHoliday}
	assert.True(t, hr.Filter(christmas, ctx))
	assert.False(t, hr.Filter(date(2023, time.December, 26), ctx))
}

func TestDaySelectorIsEmptyMatchesEverything(t *testing.T) {
	ctx := ohctx.NewContext()
	var sel ohday.DaySelector
	assert.True(t, sel.IsEmpty())
	assert.True(t, sel.Filter(date(2023, time.January, 1), ctx))
}
