package ohctx_test

import (
	"testing"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/stretchr/testify/assert"
)

func TestCalendarHolidaysIsHoliday(t *testing.T) {
	ch := ohctx.NewCalendarHolidays()
	christmas := time.Date(2020, time.December, 25, 0, 0, 0, 0, time.UTC)
	ch.SetHolidays(ohctx.PublicHoliday, []time.Time{christmas})

	assert.True(t, ch.IsHoliday(christmas, ohctx.PublicHoliday))
	assert.False(t, ch.IsHoliday(christmas.AddDate(0, 0, 1), ohctx.PublicHoliday))
	assert.False(t, ch.IsHoliday(christmas, ohctx.SchoolHoliday))
}

func TestCalendarHolidaysFirstHolidayAfter(t *testing.T) {
	ch := ohctx.NewCalendarHolidays()
	newYear := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	christmas := time.Date(2020, time.December, 25, 0, 0, 0, 0, time.UTC)
	ch.SetHolidays(ohctx.PublicHoliday, []time.Time{christmas, newYear})

	next := ch.FirstHolidayAfter(time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC), ohctx.PublicHoliday)
	assert.True(t, next.Equal(christmas))

	next = ch.FirstHolidayAfter(christmas, ohctx.PublicHoliday)
	assert.True(t, next.Equal(newYear))
}

func TestCountryHolidaysRegistry(t *testing.T) {
	ch, err := ohctx.NewCountryHolidays("FR")
	assert.NoError(t, err)
	assert.NotNil(t, ch)

	found, ok := ohctx.GetCountryHolidays("fr")
	assert.True(t, ok)
	assert.Same(t, ch, found)

	_, err = ohctx.NewCountryHolidays("zz")
	assert.Error(t, err)
}
