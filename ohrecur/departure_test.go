package ohrecur_test

import (
	"testing"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/Telinage2/opening-hours-osm/ohparse"
	"github.com/Telinage2/opening-hours-osm/ohrecur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartureTimesExpandsRepeatInterval(t *testing.T) {
	expr, err := ohparse.Parse("Mo-Fr 06:00-09:00/00:20")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	span := expr.Rules[0].Times.Spans[0]
	require.NotNil(t, span.Repeats)

	ctx := ohctx.NewContext()
	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC) // a Monday

	times, err := ohrecur.DepartureTimes(ctx, date, span, ohrecur.ShiftOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, times)
	assert.Equal(t, 6, times[0].Hour())
	assert.Equal(t, 0, times[0].Minute())
	last := times[len(times)-1]
	assert.Equal(t, 9, last.Hour())
	assert.Equal(t, 0, last.Minute())
	assert.Equal(t, 20*time.Minute, times[1].Sub(times[0]))
}

func TestDepartureTimesNilWhenNoRepeat(t *testing.T) {
	expr, err := ohparse.Parse("Mo-Fr 06:00-09:00")
	require.NoError(t, err)
	span := expr.Rules[0].Times.Spans[0]

	times, err := ohrecur.DepartureTimes(ohctx.NewContext(), time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), span, ohrecur.ShiftOptions{})
	require.NoError(t, err)
	assert.Nil(t, times)
}

func TestDepartureTimesShiftOffWeekendPushesToMonday(t *testing.T) {
	expr, err := ohparse.Parse("Sa 08:00-10:00/01:00")
	require.NoError(t, err)
	span := expr.Rules[0].Times.Spans[0]

	ctx := ohctx.NewContext()
	saturday := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	times, err := ohrecur.DepartureTimes(ctx, saturday, span, ohrecur.ShiftOptions{ShiftOffWeekend: true})
	require.NoError(t, err)
	require.NotEmpty(t, times)
	for _, ti := range times {
		assert.Equal(t, time.Monday, ti.Weekday())
	}
}

func TestWeeklyApproxRRuleReducesSimpleWeekdayExpression(t *testing.T) {
	expr, err := ohparse.Parse("Mo-Fr 09:00-17:00")
	require.NoError(t, err)

	rule, ok := ohrecur.WeeklyApproxRRule(expr)
	require.True(t, ok)
	require.NotNil(t, rule)

	next := rule.After(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), false)
	assert.Equal(t, 9, next.Hour())
}

func TestWeeklyApproxRRuleRejectsHolidaySelector(t *testing.T) {
	expr, err := ohparse.Parse("PH 10:00-12:00")
	require.NoError(t, err)

	_, ok := ohrecur.WeeklyApproxRRule(expr)
	assert.False(t, ok)
}

func TestWeeklyApproxRRuleRejectsMultiRuleExpression(t *testing.T) {
	expr, err := ohparse.Parse("Mo-Fr 09:00-17:00; Sa 10:00-14:00")
	require.NoError(t, err)

	_, ok := ohrecur.WeeklyApproxRRule(expr)
	assert.False(t, ok)
}
