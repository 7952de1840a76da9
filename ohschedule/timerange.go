// Package ohschedule implements the schedule algebra that composes a
// day's matching rules into a final set of disjoint time ranges: clip,
// override and coalesce (spec.md §4.5).
package ohschedule

import (
	"sort"

	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// TimeRange is one contiguous, half-open [Start, End) span of a single
// day's schedule, carrying the state it asserts and any rule comments
// that apply within it.
type TimeRange struct {
	Start    ohtime.ExtendedTime
	End      ohtime.ExtendedTime
	Kind     ohrule.RuleKind
	Comments []string
}

// ContainsTime reports whether t falls within [Start, End).
func (r TimeRange) ContainsTime(t ohtime.ExtendedTime) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func sortedUniqueComments(comments []string) []string {
	if len(comments) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(comments))
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
