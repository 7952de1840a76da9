package openinghours

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
)

// nextChangeHintForExpression is a cheap, monotone lower bound on the next
// date at which ScheduleAt(d) could differ from ScheduleAt(cursorDate),
// used by the time-domain iterator to skip days it can prove are
// unchanged rather than walking them one at a time (spec.md §4.7).
//
// If the expression is trivially constant, nothing can ever change and
// DateEnd is returned directly. Otherwise each rule contributes a hint:
// when the rule matches today with an immutable full-day time-selector,
// the only thing that could flip it is tomorrow's day-selector, so the
// hint is cursorDate+1; otherwise the rule's own day-selector hint is
// used. A DateZero (no cheap hint) from any rule makes the result
// cursorDate+1. The combined hint is the minimum of the rules' hints, or
// cursorDate+1 if the expression has no rules.
func nextChangeHintForExpression(oh *OpeningHours, cursorDate time.Time) time.Time {
	if _, constant := oh.Expr.IsConstant(); constant {
		return ohcal.DateEnd
	}

	tomorrow := ohcal.NextDay(cursorDate)
	var best time.Time
	have := false

	for _, rs := range oh.Expr.Rules {
		var hint time.Time
		if rs.Days.Filter(cursorDate, oh.Context) && rs.Times.IsImmutableFullDay() {
			hint = tomorrow
		} else {
			h := rs.Days.NextChangeHint(cursorDate, oh.Context)
			if h.Equal(ohcal.DateZero) {
				return tomorrow
			}
			hint = h
		}
		if !have || hint.Before(best) {
			best, have = hint, true
		}
	}

	if !have {
		return tomorrow
	}
	return best
}
