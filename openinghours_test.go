package openinghours_test

import (
	"testing"
	"time"

	oh "github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/Telinage2/opening-hours-osm/ohrule"
	openinghours "github.com/Telinage2/opening-hours-osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *openinghours.OpeningHours {
	t.Helper()
	parsed, err := openinghours.Parse(s)
	require.NoError(t, err)
	return parsed
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestScheduleAtPlainTimeRange(t *testing.T) {
	parsed := mustParse(t, "10:00-18:00")
	sched := parsed.ScheduleAt(date(2026, time.February, 10))
	require.Len(t, sched.Ranges, 1)
	assert.Equal(t, "10:00", sched.Ranges[0].Start.String())
	assert.Equal(t, "18:00", sched.Ranges[0].End.String())
	assert.Equal(t, ohrule.KindOpen, sched.Ranges[0].Kind)
}

func TestScheduleAtNormalReplacesOnMatchingWeekday(t *testing.T) {
	parsed := mustParse(t, "Tu-Su 09:30-18:00; Th 09:30-21:45")

	thu := parsed.ScheduleAt(date(2018, time.June, 14)) // a Thursday
	require.Len(t, thu.Ranges, 1)
	assert.Equal(t, "09:30", thu.Ranges[0].Start.String())
	assert.Equal(t, "21:45", thu.Ranges[0].End.String())

	fri := parsed.ScheduleAt(date(2018, time.June, 15)) // a Friday
	require.Len(t, fri.Ranges, 1)
	assert.Equal(t, "09:30", fri.Ranges[0].Start.String())
	assert.Equal(t, "18:00", fri.Ranges[0].End.String())
}

func TestIterRangeCrossMidnightSpillAndClip(t *testing.T) {
	parsed := mustParse(t, "Mo-Su 00:00-06:00, 23:00-00:00")
	it := parsed.IterRange(at(2024, time.November, 11, 1, 0), at(2024, time.November, 12, 1, 0))

	r1, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, ohrule.KindOpen, r1.Kind)
	assert.True(t, r1.Start.Equal(at(2024, time.November, 11, 1, 0)))
	assert.True(t, r1.End.Equal(at(2024, time.November, 11, 6, 0)))

	r2, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, ohrule.KindClosed, r2.Kind)
	assert.True(t, r2.Start.Equal(at(2024, time.November, 11, 6, 0)))
	assert.True(t, r2.End.Equal(at(2024, time.November, 11, 23, 0)))

	r3, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, ohrule.KindOpen, r3.Kind)
	assert.True(t, r3.Start.Equal(at(2024, time.November, 11, 23, 0)))
	assert.True(t, r3.End.Equal(at(2024, time.November, 12, 1, 0))) // clipped to `to`

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestFeb29RangeProjectsOntoNonLeapYears(t *testing.T) {
	parsed := mustParse(t, "Feb29-Mar15")
	assert.True(t, parsed.IsOpen(at(2020, time.February, 29, 12, 0)))
	assert.True(t, parsed.IsOpen(at(2021, time.March, 1, 12, 0)))
}

func TestPublicHolidayOffOverridesNormalHours(t *testing.T) {
	holidays, err := ohctx.NewCountryHolidays("fr")
	require.NoError(t, err)
	ctx := &ohctx.Context{Locale: ohctx.NoLocale{}, Holidays: holidays, ApproxBoundIntervalSize: ohctx.DefaultApproxBoundIntervalSize}

	parsed, err := openinghours.ParseWithContext("2020:10:00-12:00; PH off", ctx)
	require.NoError(t, err)

	bastilleDay := parsed.ScheduleAt(date(2020, time.July, 14))
	require.Len(t, bastilleDay.Ranges, 1)
	assert.Equal(t, ohrule.KindClosed, bastilleDay.Ranges[0].Kind)
	assert.Equal(t, "00:00", bastilleDay.Ranges[0].Start.String())
	assert.Equal(t, "24:00", bastilleDay.Ranges[0].End.String())

	dayBefore := parsed.ScheduleAt(date(2020, time.July, 13))
	require.Len(t, dayBefore.Ranges, 1)
	assert.Equal(t, ohrule.KindOpen, dayBefore.Ranges[0].Kind)
	assert.Equal(t, "10:00", dayBefore.Ranges[0].Start.String())
	assert.Equal(t, "12:00", dayBefore.Ranges[0].End.String())
}

func TestSteppedYearRangeNextChange(t *testing.T) {
	parsed := mustParse(t, "2000-3000/21")
	next, ok := parsed.NextChange(at(2021, time.February, 9, 21, 0))
	require.True(t, ok)
	assert.True(t, next.Equal(at(2022, time.January, 1, 0, 0)))
}

func TestOpenEndedMonthdayRangeRecursAnnually(t *testing.T) {
	parsed := mustParse(t, "May2+")

	next, ok := parsed.NextChange(at(2020, time.January, 1, 12, 0))
	require.True(t, ok)
	assert.True(t, next.Equal(at(2020, time.May, 2, 0, 0)))

	next, ok = parsed.NextChange(at(2020, time.May, 15, 12, 0))
	require.True(t, ok)
	assert.True(t, next.Equal(at(2021, time.January, 1, 0, 0)))
}

func TestTwentyFourSevenFastPath(t *testing.T) {
	parsed := mustParse(t, "24/7")

	for _, probe := range []time.Time{
		at(1901, time.March, 3, 0, 0),
		at(2026, time.July, 30, 15, 4),
		at(9998, time.December, 31, 23, 59),
	} {
		assert.True(t, parsed.IsOpen(probe))
	}

	_, ok := parsed.NextChange(at(2026, time.July, 30, 0, 0))
	assert.False(t, ok)
}

func TestDisjointnessAndCoalesceAcrossIterRange(t *testing.T) {
	parsed := mustParse(t, "Mo-Fr 09:00-17:00")
	it := parsed.IterRange(at(2026, time.July, 27, 0, 0), at(2026, time.August, 3, 0, 0)) // a Mon..Mon window

	var prev *openinghours.DateTimeRange
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		if prev != nil {
			assert.True(t, prev.End.Equal(r.Start), "gap between consecutive ranges")
			assert.NotEqual(t, prev.Kind, r.Kind, "adjacent ranges must differ in kind")
		}
		cp := r
		prev = &cp
	}
	require.NotNil(t, prev)
}

func TestPointAgreementWithState(t *testing.T) {
	parsed := mustParse(t, "Mo-Fr 09:00-17:00")
	probe := at(2026, time.July, 27, 10, 30) // a Monday

	it := parsed.IterRange(probe, oh.DateEnd)
	r, ok := it.Next()
	require.True(t, ok)
	assert.True(t, !probe.Before(r.Start) && probe.Before(r.End))
	assert.Equal(t, parsed.State(probe), r.Kind)
}

func TestNextChangeLawMatchesFirstIterFromRange(t *testing.T) {
	parsed := mustParse(t, "Mo-Fr 09:00-17:00")
	probe := at(2026, time.July, 27, 10, 30)

	it := parsed.IterFrom(probe)
	r, ok := it.Next()
	require.True(t, ok)

	next, nextOk := parsed.NextChange(probe)
	if r.End.Before(oh.DateEnd) {
		require.True(t, nextOk)
		assert.True(t, next.Equal(r.End))
	} else {
		assert.False(t, nextOk)
	}
}

func TestIdempotentParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"10:00-18:00",
		"Tu-Su 09:30-18:00; Th 09:30-21:45",
		"Mo-Su 00:00-06:00, 23:00-00:00",
	} {
		first := mustParse(t, s)
		second := mustParse(t, first.String())
		assert.Equal(t, first.String(), second.String())
	}
}

func TestFallbackIgnoresSpilloverOnlyMatch(t *testing.T) {
	// "Su 24:00-02:00 open" only matches Sunday's own day-selector; its
	// ranges spill onto Monday, but that spillover alone must not count
	// as Monday's day-selector matching for FALLBACK purposes - the
	// fallback rule ("Mo 03:00-05:00 off") must still take over.
	parsed := mustParse(t, "Su 24:00-02:00 open || Mo 03:00-05:00 off")

	monday := parsed.ScheduleAt(date(2026, time.July, 27)) // a Monday
	require.Len(t, monday.Ranges, 1)
	assert.Equal(t, ohrule.KindClosed, monday.Ranges[0].Kind)
	assert.Equal(t, "03:00", monday.Ranges[0].Start.String())
	assert.Equal(t, "05:00", monday.Ranges[0].End.String())
}

func TestWrapLawCrossMidnightSpanSpills(t *testing.T) {
	parsed := mustParse(t, "Mo-Su 23:00-01:00")
	sched := parsed.ScheduleAt(date(2026, time.July, 27))
	require.NotEmpty(t, sched.Ranges)
	found := false
	for _, r := range sched.Ranges {
		if r.Start.String() == "23:00" {
			assert.Equal(t, "25:00", r.End.String())
			found = true
		}
	}
	assert.True(t, found, "expected a 23:00-25:00 spill range")
}
