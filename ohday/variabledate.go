package ohday

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
)

// VariableDateKind names a date computed from an astronomical/ecclesiastic
// rule rather than a fixed month/day.
type VariableDateKind string

const (
	VariableDateEaster VariableDateKind = "easter"
)

// VariableDate resolves to a concrete date for a given year via Kind, then
// an optional DateOffset ("easter -2 days").
type VariableDate struct {
	Kind   VariableDateKind
	Offset DateOffset
}

// ToDate resolves this VariableDate for the given year.
func (v VariableDate) ToDate(year int) time.Time {
	var base time.Time
	switch v.Kind {
	case VariableDateEaster:
		base = ohcal.Easter(year)
	default:
		base = ohcal.Easter(year)
	}
	return v.Offset.Apply(base)
}
