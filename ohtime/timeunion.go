package ohtime

// EventTimeResolver supplies the naive clock time an astronomical event
// falls on for a given query date. ohctx.Resolver adapts an ohctx.Locale,
// whose EventTime also takes the date, to this interface for one date; it
// is declared here, on the consumer side, so ohtime never imports ohctx.
type EventTimeResolver interface {
	EventTime(event TimeEvent) ExtendedTime
}

// VariableTime is a time expressed relative to an astronomical event, with
// an optional plus/minus minute offset (e.g. "sunset-00:30").
type VariableTime struct {
	Event         TimeEvent
	OffsetMinutes int
}

// AsNaive resolves the variable time against a locale's event table,
// clamping to Midnight00 if the offset would push it out of range.
func (v VariableTime) AsNaive(resolver EventTimeResolver) ExtendedTime {
	base := resolver.EventTime(v.Event)
	result, ok := base.AddMinutesOpt(v.OffsetMinutes)
	if !ok {
		return Midnight00
	}
	return result
}

// TimeUnion is a sealed sum of a fixed ExtendedTime and a VariableTime,
// mirroring the TimeUnion type alias in the original model.
type TimeUnion struct {
	fixed    *ExtendedTime
	variable *VariableTime
}

// Fixed builds a TimeUnion wrapping a literal clock time.
func Fixed(t ExtendedTime) TimeUnion {
	return TimeUnion{fixed: &t}
}

// Variable builds a TimeUnion wrapping an event-relative time.
func Variable(v VariableTime) TimeUnion {
	return TimeUnion{variable: &v}
}

// IsFixed reports whether this union holds a literal clock time.
func (u TimeUnion) IsFixed() bool {
	return u.fixed != nil
}

// AsNaive resolves the union to a concrete ExtendedTime, using resolver
// only when the union wraps a VariableTime.
func (u TimeUnion) AsNaive(resolver EventTimeResolver) ExtendedTime {
	if u.fixed != nil {
		return *u.fixed
	}
	if u.variable != nil {
		return u.variable.AsNaive(resolver)
	}
	return Midnight00
}

func (u TimeUnion) String() string {
	if u.fixed != nil {
		return u.fixed.String()
	}
	if u.variable != nil {
		if u.variable.OffsetMinutes == 0 {
			return string(u.variable.Event)
		}
		sign := "+"
		mins := u.variable.OffsetMinutes
		if mins < 0 {
			sign = "-"
			mins = -mins
		}
		return string(u.variable.Event) + sign + Duration{Minutes: mins}.String()
	}
	return ""
}
