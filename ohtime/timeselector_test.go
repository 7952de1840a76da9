package ohtime_test

import (
	"testing"

	"github.com/Telinage2/opening-hours-osm/ohtime"
	"github.com/stretchr/testify/assert"
)

type fixedResolver struct{}

func (fixedResolver) EventTime(event ohtime.TimeEvent) ohtime.ExtendedTime {
	return event.FixedFallback()
}

func TestTimeSelectorIsOO24(t *testing.T) {
	assert.True(t, ohtime.DefaultTimeSelector().IsOO24())

	narrow := ohtime.TimeSelector{Spans: []ohtime.TimeSpan{{
		Start:  ohtime.Fixed(ohtime.MustNew(9, 0)),
		End:    ohtime.Fixed(ohtime.MustNew(18, 0)),
		HasEnd: true,
	}}}
	assert.False(t, narrow.IsOO24())
}

func TestTimeSelectorIntervalsAtMergesOverlap(t *testing.T) {
	sel := ohtime.TimeSelector{Spans: []ohtime.TimeSpan{
		{Start: ohtime.Fixed(ohtime.MustNew(9, 0)), End: ohtime.Fixed(ohtime.MustNew(12, 0)), HasEnd: true},
		{Start: ohtime.Fixed(ohtime.MustNew(11, 0)), End: ohtime.Fixed(ohtime.MustNew(18, 0)), HasEnd: true},
	}}
	intervals := sel.IntervalsAt(fixedResolver{})
	if assert.Len(t, intervals, 1) {
		assert.Equal(t, "09:00", intervals[0].Start.String())
		assert.Equal(t, "18:00", intervals[0].End.String())
	}
}

func TestTimeSelectorIntervalsAtNextDaySpillover(t *testing.T) {
	sel := ohtime.TimeSelector{Spans: []ohtime.TimeSpan{
		{Start: ohtime.Fixed(ohtime.MustNew(18, 0)), End: ohtime.Fixed(ohtime.MustNew(2, 0)), HasEnd: true},
	}}
	today := sel.IntervalsAt(fixedResolver{})
	if assert.Len(t, today, 1) {
		assert.Equal(t, "18:00", today[0].Start.String())
		assert.Equal(t, "26:00", today[0].End.String())
	}

	spill := sel.IntervalsAtNextDay(fixedResolver{})
	if assert.Len(t, spill, 1) {
		assert.Equal(t, "00:00", spill[0].Start.String())
		assert.Equal(t, "02:00", spill[0].End.String())
	}
}
