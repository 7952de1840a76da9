package ohtime

import "fmt"

// Duration is a span of minutes used for variable-time offsets and
// timespan /interval repeats. Unlike ExtendedTime it carries no clock
// anchoring and may be negative (an offset before an event).
type Duration struct {
	Minutes int
}

// NewDuration builds a Duration from hours and minutes.
func NewDuration(hours, minutes int) Duration {
	return Duration{Minutes: hours*60 + minutes}
}

func (d Duration) Hours() int          { return d.Minutes / 60 }
func (d Duration) RemMinutes() int     { return d.Minutes % 60 }
func (d Duration) IsZero() bool        { return d.Minutes == 0 }
func (d Duration) Negate() Duration    { return Duration{Minutes: -d.Minutes} }
func (d Duration) Add(o Duration) Duration { return Duration{Minutes: d.Minutes + o.Minutes} }

func (d Duration) String() string {
	sign := ""
	m := d.Minutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}
