// Package ohday implements the date-domain filter algebra: every
// day-selector kind (year, month/date, week, weekday, holiday) as a
// DateFilter producing a boolean membership test and a monotone
// next-change-hint lower bound (spec.md §4.3).
package ohday

import "time"

// Weekday numbers Monday=0 .. Sunday=6, matching ISO weekday order
// shifted down by one (spec.md's selector grammar lists Mo first).
type Weekday int

const (
	Mo Weekday = iota
	Tu
	We
	Th
	Fr
	Sa
	Su
)

// FromTime converts a time.Time's Go weekday (Sunday=0) into Weekday.
func FromTime(t time.Time) Weekday {
	wd := int(t.Weekday())
	return Weekday((wd + 6) % 7)
}

func (w Weekday) String() string {
	return [...]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}[w]
}
