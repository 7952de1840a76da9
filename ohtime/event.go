package ohtime

// TimeEvent names an astronomical reference point a variable time can be
// expressed relative to, mirroring the TIMEUNIT_* string-enum idiom.
type TimeEvent string

const (
	EVENT_DAWN    TimeEvent = "dawn"
	EVENT_SUNRISE TimeEvent = "sunrise"
	EVENT_SUNSET  TimeEvent = "sunset"
	EVENT_DUSK    TimeEvent = "dusk"
)

// IsEmpty reports whether the event is the zero value.
func (e TimeEvent) IsEmpty() bool {
	return e == ""
}

// IsValid reports whether e is one of the four recognized events.
func (e TimeEvent) IsValid() bool {
	switch e {
	case EVENT_DAWN, EVENT_SUNRISE, EVENT_SUNSET, EVENT_DUSK:
		return true
	default:
		return false
	}
}

// FixedFallback returns the fixed clock time AbstractLocale falls back to
// for e when no geography is available (spec.md §6).
func (e TimeEvent) FixedFallback() ExtendedTime {
	switch e {
	case EVENT_DAWN:
		return MustNew(6, 0)
	case EVENT_SUNRISE:
		return MustNew(7, 0)
	case EVENT_SUNSET:
		return MustNew(19, 0)
	case EVENT_DUSK:
		return MustNew(20, 0)
	default:
		return MustNew(7, 0)
	}
}
