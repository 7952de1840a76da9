package ohtime

import "sort"

// TimeInterval is a closed-open [start, end) span of naive clock minutes,
// expressed in extended time so a span crossing midnight stays within a
// single ordered value (spec.md §4.2).
type TimeInterval struct {
	Start ExtendedTime
	End   ExtendedTime
}

// TimeSelector is the ordered set of time spans a rule applies to. An
// empty selector means "all day" (spec.md's default full-day rule).
type TimeSelector struct {
	Spans []TimeSpan
}

// DefaultTimeSelector returns the implicit full-day selector used when a
// rule carries no explicit time-selector.
func DefaultTimeSelector() TimeSelector {
	return TimeSelector{Spans: []TimeSpan{{
		Start:  Fixed(Midnight00),
		End:    Fixed(Midnight24),
		HasEnd: true,
	}}}
}

// IsEmpty reports whether no spans were given explicitly.
func (s TimeSelector) IsEmpty() bool {
	return len(s.Spans) == 0
}

// IsOO24 reports whether the selector is exactly the literal 00:00-24:00
// span with no repeat interval, the representation "24/7" parses to.
func (s TimeSelector) IsOO24() bool {
	if len(s.Spans) != 1 {
		return false
	}
	span := s.Spans[0]
	return span.Repeats == nil && span.IsImmutableFullDay()
}

// IsImmutableFullDay reports whether the selector is empty (the default
// 00:00-24:00) or is exactly one fixed 00:00-24:00 span with no repeat
// interval, so that it covers the full calendar day regardless of locale.
func (s TimeSelector) IsImmutableFullDay() bool {
	effective := s
	if effective.IsEmpty() {
		effective = DefaultTimeSelector()
	}
	return effective.IsOO24()
}

// IntervalsAt returns this selector's disjoint, sorted naive intervals for
// "today", clamped to [00:00, 48:00].
func (s TimeSelector) IntervalsAt(resolver EventTimeResolver) []TimeInterval {
	effective := s.Spans
	if len(effective) == 0 {
		effective = DefaultTimeSelector().Spans
	}

	var raw []TimeInterval
	for _, span := range effective {
		if span.Repeats != nil {
			continue
		}
		start, end := span.AsNaive(resolver)
		if !end.After(start) {
			continue
		}
		raw = append(raw, TimeInterval{Start: start, End: end})
	}
	return unionIntervals(raw)
}

// IntervalsAtNextDay returns the portion of today's spans that spills past
// 24:00, re-expressed relative to the following day's 00:00.
func (s TimeSelector) IntervalsAtNextDay(resolver EventTimeResolver) []TimeInterval {
	var spillover []TimeInterval
	for _, iv := range s.IntervalsAt(resolver) {
		if !iv.End.After(Midnight24) {
			continue
		}
		start := iv.Start
		if start.Before(Midnight24) {
			start = Midnight24
		}
		shiftedStart, ok1 := start.AddMinutesOpt(-24 * 60)
		shiftedEnd, ok2 := iv.End.AddMinutesOpt(-24 * 60)
		if !ok1 || !ok2 {
			continue
		}
		spillover = append(spillover, TimeInterval{Start: shiftedStart, End: shiftedEnd})
	}
	return unionIntervals(spillover)
}

// unionIntervals sorts and merges overlapping/adjacent intervals.
func unionIntervals(intervals []TimeInterval) []TimeInterval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := append([]TimeInterval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	out := []TimeInterval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// IntersectIntervals intersects two sorted, disjoint interval sets,
// returning their overlap, also sorted and disjoint. Used when a rule
// combines a time-selector with another time-bearing constraint.
func IntersectIntervals(a, b []TimeInterval) []TimeInterval {
	var out []TimeInterval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].Start
		if b[j].Start.After(start) {
			start = b[j].Start
		}
		end := a[i].End
		if b[j].End.Before(end) {
			end = b[j].End
		}
		if start.Before(end) {
			out = append(out, TimeInterval{Start: start, End: end})
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}
