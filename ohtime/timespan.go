package ohtime

// TimeSpan is one `hh:mm-hh:mm` (or event-relative) entry within a
// time selector. OpenEnd marks a trailing "+" (open until closing,
// spec.md glossary); Repeats, when set, marks an interval repeat
// ("hh:mm-hh:mm/hh:mm") consumed by ohrecur rather than by state queries.
type TimeSpan struct {
	Start   TimeUnion
	End     TimeUnion
	HasEnd  bool
	OpenEnd bool
	Repeats *Duration
}

// IsImmutableFullDay reports whether this span is the literal fixed
// 00:00-24:00 range, the one case where a day's coverage can never be
// narrowed by another selector's time-of-day constraint.
func (s TimeSpan) IsImmutableFullDay() bool {
	if !s.HasEnd || !s.Start.IsFixed() || !s.End.IsFixed() {
		return false
	}
	start := s.Start.AsNaive(nil)
	end := s.End.AsNaive(nil)
	return start.Equal(Midnight00) && end.Equal(Midnight24)
}

// AsNaive resolves Start/End against resolver, lifting End by 24h whenever
// it is not strictly after Start (spec.md §4.2's wrap rule: "18:00-02:00"
// resolves to today 18:00 .. tomorrow 02:00 expressed as 18:00-26:00).
func (s TimeSpan) AsNaive(resolver EventTimeResolver) (start, end ExtendedTime) {
	start = s.Start.AsNaive(resolver)
	if !s.HasEnd {
		return start, Midnight24
	}
	end = s.End.AsNaive(resolver)
	if !end.After(start) {
		if lifted, ok := end.AddMinutesOpt(24 * 60); ok {
			end = lifted
		} else {
			end = Midnight48
		}
	}
	return start, end
}
