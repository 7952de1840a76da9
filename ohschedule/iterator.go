package ohschedule

import (
	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// Iterate walks a schedule from ohtime.Midnight00 up to stopBound,
// filling any gap between ranges (or before the first / after the last)
// with an explicit CLOSED range, and coalescing a CLOSED gap into an
// adjacent CLOSED range on the fly. The result is always a contiguous,
// gapless cover of [Midnight00, stopBound).
func Iterate(s Schedule, stopBound ohtime.ExtendedTime) []TimeRange {
	var out []TimeRange
	cursor := ohtime.Midnight00

	emit := func(r TimeRange) {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.End.Equal(r.Start) && last.Kind == r.Kind {
				last.End = r.End
				last.Comments = ohrule.UnionSortedSlices(sortedUniqueComments(last.Comments), sortedUniqueComments(r.Comments))
				return
			}
		}
		out = append(out, r)
	}

	for _, r := range s.Ranges {
		if !r.Start.Before(stopBound) {
			break
		}
		if cursor.Before(r.Start) {
			emit(TimeRange{Start: cursor, End: r.Start, Kind: ohrule.KindClosed})
		}
		end := r.End
		if end.After(stopBound) {
			end = stopBound
		}
		if cursor.Before(end) {
			emit(TimeRange{Start: cursor, End: end, Kind: r.Kind, Comments: r.Comments})
		}
		if end.After(cursor) {
			cursor = end
		}
		if !cursor.Before(stopBound) {
			break
		}
	}

	if cursor.Before(stopBound) {
		emit(TimeRange{Start: cursor, End: stopBound, Kind: ohrule.KindClosed})
	}

	return out
}
