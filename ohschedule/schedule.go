package ohschedule

import (
	"sort"

	"github.com/Telinage2/opening-hours-osm/ohrule"
)

// Schedule is a day's worth of disjoint, sorted TimeRanges.
type Schedule struct {
	Ranges []TimeRange
}

// FromRanges sorts ranges by Start and coalesces adjacent entries that
// share a Kind, unioning their comment sets (spec.md §4.5).
func FromRanges(ranges []TimeRange) Schedule {
	if len(ranges) == 0 {
		return Schedule{}
	}
	sorted := append([]TimeRange(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	out := []TimeRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start.Equal(last.End) && r.Kind == last.Kind {
			last.End = r.End
			last.Comments = ohrule.UnionSortedSlices(sortedUniqueComments(last.Comments), sortedUniqueComments(r.Comments))
			continue
		}
		out = append(out, r)
	}
	return Schedule{Ranges: out}
}

// IsEmpty reports whether this schedule asserts nothing at all (distinct
// from IsAlwaysClosed, which asserts CLOSED explicitly across the day).
func (s Schedule) IsEmpty() bool {
	return len(s.Ranges) == 0
}

// IsAlwaysClosed reports whether every range in the schedule is CLOSED.
// An empty schedule asserts nothing other than CLOSED, so it is vacuously
// always-closed too (matching the original `schedule.py:is_always_closed`,
// which is `all(...)` over a possibly-empty range list).
func (s Schedule) IsAlwaysClosed() bool {
	for _, r := range s.Ranges {
		if r.Kind != ohrule.KindClosed {
			return false
		}
	}
	return true
}

// insertOne clips every existing range against incoming's span, letting
// incoming fully override the overlap, then appends incoming itself. This
// is the split-before/clip/split-after step of spec.md §4.5's insert
// algorithm; FromRanges performs the subsequent coalescing pass that
// extends incoming leftward/rightward into adjacent same-kind neighbors.
func insertOne(ranges []TimeRange, incoming TimeRange) []TimeRange {
	out := make([]TimeRange, 0, len(ranges)+1)
	for _, r := range ranges {
		if !r.Start.Before(incoming.End) || !incoming.Start.Before(r.End) {
			out = append(out, r)
			continue
		}
		if r.Start.Before(incoming.Start) {
			out = append(out, TimeRange{Start: r.Start, End: incoming.Start, Kind: r.Kind, Comments: r.Comments})
		}
		if incoming.End.Before(r.End) {
			out = append(out, TimeRange{Start: incoming.End, End: r.End, Kind: r.Kind, Comments: r.Comments})
		}
	}
	out = append(out, incoming)
	return out
}

// Insert returns a new Schedule where other's ranges override this
// schedule's ranges wherever they overlap, with the non-overlapping
// remainder of this schedule's ranges preserved.
func (s Schedule) Insert(other Schedule) Schedule {
	result := append([]TimeRange(nil), s.Ranges...)
	for _, incoming := range other.Ranges {
		result = insertOne(result, incoming)
	}
	return FromRanges(result)
}

// Addition combines a sequence of schedules under NORMAL-operator
// semantics, where a later schedule in the list overrides an earlier one
// wherever they overlap. It is implemented as a right fold of Insert:
// everything already folded from a schedule's right is inserted as the
// override on top of that schedule, so the last schedule in the list wins
// outright.
func Addition(schedules ...Schedule) Schedule {
	var acc Schedule
	for i := len(schedules) - 1; i >= 0; i-- {
		acc = schedules[i].Insert(acc)
	}
	return acc
}
