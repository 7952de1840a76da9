// Package openinghours ties the selector algebra (ohday/ohtime), the rule
// composition layer (ohrule), the per-day schedule algebra (ohschedule)
// and the hand-written parser (ohparse) together into the public query
// surface described by the engine: parse an OSM `opening_hours` string
// once, then answer state/next-change/range queries against it cheaply
// and repeatedly (spec.md §4.8).
package openinghours

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/Telinage2/opening-hours-osm/ohparse"
	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/Telinage2/opening-hours-osm/ohschedule"
)

// OpeningHours is an immutable parsed expression paired with the context
// it is evaluated against. It is safe to share across goroutines: queries
// never mutate it (spec.md §5).
type OpeningHours struct {
	Expr    *ohrule.OpeningHoursExpression
	Context *ohctx.Context
}

// Parse parses s against a default Context (no timezone, no holidays).
func Parse(s string) (*OpeningHours, error) {
	return ParseWithContext(s, ohctx.NewContext())
}

// ParseWithContext parses s against a caller-supplied Context, letting PH/SH
// selectors and event-relative times resolve against real holiday and
// locale data.
func ParseWithContext(s string, ctx *ohctx.Context) (*OpeningHours, error) {
	expr, err := ohparse.Parse(s)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = ohctx.NewContext()
	}
	return &OpeningHours{Expr: expr, Context: ctx}, nil
}

// IsConstant reports whether this expression evaluates to the same state
// at every moment, and if so, which one.
func (oh *OpeningHours) IsConstant() (ohrule.RuleKind, bool) {
	return oh.Expr.IsConstant()
}

// String reconstructs a reparseable textual form of the expression.
func (oh *OpeningHours) String() string {
	return oh.Expr.String()
}

// ruleSequenceScheduleAt builds one rule's contribution to day d's
// schedule: today's own spans, plus any spillover from yesterday's spans
// that cross past MIDNIGHT_24 into today (spec.md §4.5).
func ruleSequenceScheduleAt(rs ohrule.RuleSequence, d time.Time, ctx *ohctx.Context) ohschedule.Schedule {
	var ranges []ohschedule.TimeRange
	comments := commentSlice(rs.Comment)

	if rs.Days.Filter(d, ctx) {
		resolver := ohctx.Resolver(ctx.Locale, d)
		for _, iv := range rs.Times.IntervalsAt(resolver) {
			ranges = append(ranges, ohschedule.TimeRange{Start: iv.Start, End: iv.End, Kind: rs.Kind, Comments: comments})
		}
	}

	yesterday := d.AddDate(0, 0, -1)
	if rs.Days.Filter(yesterday, ctx) {
		resolver := ohctx.Resolver(ctx.Locale, yesterday)
		for _, iv := range rs.Times.IntervalsAtNextDay(resolver) {
			ranges = append(ranges, ohschedule.TimeRange{Start: iv.Start, End: iv.End, Kind: rs.Kind, Comments: comments})
		}
	}

	return ohschedule.FromRanges(ranges)
}

func commentSlice(comment string) []string {
	if comment == "" {
		return nil
	}
	return []string{comment}
}

// ScheduleAt evaluates every rule against date d (a naive calendar date;
// only its year/month/day fields matter) and combines them left to right
// under the NORMAL/ADDITIONAL/FALLBACK composition rules (spec.md §4.5):
//
//   - NORMAL with kind OPEN/UNKNOWN: replaces the accumulated schedule
//     outright when the rule matches today; otherwise leaves it alone.
//   - ADDITIONAL, or NORMAL with kind CLOSED: merges into the accumulated
//     schedule, with the new rule's ranges winning on overlap.
//   - FALLBACK: keeps the accumulated schedule if it matched and isn't
//     entirely CLOSED; otherwise takes the current rule's schedule.
func (oh *OpeningHours) ScheduleAt(d time.Time) ohschedule.Schedule {
	var acc ohschedule.Schedule
	matched := false

	for _, rs := range oh.Expr.Rules {
		cur := ruleSequenceScheduleAt(rs, d, oh.Context)
		curMatched := rs.Days.Filter(d, oh.Context)

		switch {
		case rs.Operator == ohrule.OperatorFallback:
			if matched && !acc.IsAlwaysClosed() {
				continue
			}
			acc, matched = cur, curMatched

		case rs.Operator == ohrule.OperatorAdditional || rs.Kind == ohrule.KindClosed:
			acc = acc.Insert(cur)
			matched = matched || curMatched

		default: // NORMAL with OPEN or UNKNOWN
			if curMatched {
				acc, matched = cur, true
			}
		}
	}

	return acc
}
