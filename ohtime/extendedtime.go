// Package ohtime models the time-of-day domain: extended (00:00-48:00)
// clock times, durations, astronomical event references, and the
// TimeSpan/TimeSelector types that project them onto the interval algebra
// (spec.md §4.2, §4.4).
package ohtime

import (
	"fmt"

	"github.com/Telinage2/opening-hours-osm/oherr"
)

// ExtendedTime is a minute-resolution clock time in the range 00:00-48:00,
// where values past 24:00 denote "the following day" without crossing a
// calendar boundary (spec.md §4.2). Hour 48 only ever carries minute 0.
type ExtendedTime struct {
	hour   int
	minute int
}

// Midnight00, Midnight24 and Midnight48 are the three clock boundaries the
// engine treats specially: start of day, conventional midnight, and the
// extended-range ceiling used by open-ended/wrapping timespans.
var (
	Midnight00 = ExtendedTime{hour: 0, minute: 0}
	Midnight24 = ExtendedTime{hour: 24, minute: 0}
	Midnight48 = ExtendedTime{hour: 48, minute: 0}
)

// New validates and constructs an ExtendedTime.
func New(hour, minute int) (ExtendedTime, error) {
	if hour < 0 || hour > 48 {
		return ExtendedTime{}, oherr.Newf("extended time hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return ExtendedTime{}, oherr.Newf("extended time minute out of range: %d", minute)
	}
	if hour == 48 && minute != 0 {
		return ExtendedTime{}, oherr.Newf("extended time 48:%02d is not a valid clock value", minute)
	}
	return ExtendedTime{hour: hour, minute: minute}, nil
}

// MustNew is New, panicking on error. Reserved for internal constant
// construction with literal, known-valid arguments.
func MustNew(hour, minute int) ExtendedTime {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMinutes builds an ExtendedTime from a minute-from-midnight count.
func FromMinutes(mins int) (ExtendedTime, error) {
	return New(mins/60, mins%60)
}

func (t ExtendedTime) Hour() int   { return t.hour }
func (t ExtendedTime) Minute() int { return t.minute }

// MinsFromMidnight returns the number of minutes since 00:00, up to 2880
// for 48:00.
func (t ExtendedTime) MinsFromMidnight() int {
	return t.hour*60 + t.minute
}

// Compare returns -1, 0 or 1 as t is before, equal to, or after other.
func (t ExtendedTime) Compare(other ExtendedTime) int {
	a, b := t.MinsFromMidnight(), other.MinsFromMidnight()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t ExtendedTime) Before(other ExtendedTime) bool { return t.Compare(other) < 0 }
func (t ExtendedTime) After(other ExtendedTime) bool  { return t.Compare(other) > 0 }
func (t ExtendedTime) Equal(other ExtendedTime) bool  { return t.Compare(other) == 0 }

// AddMinutesOpt adds delta minutes, returning ok=false (rather than
// clamping or wrapping) when the result would fall outside 00:00-48:00.
func (t ExtendedTime) AddMinutesOpt(delta int) (ExtendedTime, bool) {
	total := t.MinsFromMidnight() + delta
	if total < 0 || total > 48*60 {
		return ExtendedTime{}, false
	}
	result, err := FromMinutes(total)
	if err != nil {
		return ExtendedTime{}, false
	}
	return result, true
}

// AddHoursOpt is AddMinutesOpt scaled to hours.
func (t ExtendedTime) AddHoursOpt(deltaHours int) (ExtendedTime, bool) {
	return t.AddMinutesOpt(deltaHours * 60)
}

// Minus24 subtracts exactly one day (1440 minutes), used when folding a
// time past 24:00 back onto the following calendar day's naive clock.
func (t ExtendedTime) Minus24() ExtendedTime {
	result, ok := t.AddMinutesOpt(-24 * 60)
	if !ok {
		return Midnight00
	}
	return result
}

func (t ExtendedTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
