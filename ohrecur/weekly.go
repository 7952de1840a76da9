package ohrecur

import (
	"github.com/Telinage2/opening-hours-osm/ohday"
	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/teambition/rrule-go"
)

var rruleWeekday = [...]rrule.Weekday{
	ohday.Mo: rrule.MO, ohday.Tu: rrule.TU, ohday.We: rrule.WE, ohday.Th: rrule.TH,
	ohday.Fr: rrule.FR, ohday.Sa: rrule.SA, ohday.Su: rrule.SU,
}

// WeeklyApproxRRule builds a conventional weekly rrule.RRule equivalent to
// expr, when expr reduces cleanly to a single rule whose day-selector is
// exactly one plain weekday range (no year/monthday/week constraint, no
// nth-occurrence narrowing, no day offset) and whose time-selector is
// exactly one fixed-clock span. Anything richer - holidays, event-relative
// times, multiple rules, repeat intervals - falls outside what a plain
// rrule.RRule can express, and ok is false.
func WeeklyApproxRRule(expr *ohrule.OpeningHoursExpression) (rule *rrule.RRule, ok bool) {
	if expr == nil || len(expr.Rules) != 1 {
		return nil, false
	}
	r := expr.Rules[0]
	if r.Kind != ohrule.KindOpen {
		return nil, false
	}
	if len(r.Days.Years) != 0 || len(r.Days.Monthdays) != 0 || len(r.Days.Weeks) != 0 {
		return nil, false
	}
	if len(r.Days.Weekdays) != 1 {
		return nil, false
	}
	wr, isWeekdayRange := r.Days.Weekdays[0].(ohday.WeekDayRange)
	if !isWeekdayRange || wr.DayOffset != 0 {
		return nil, false
	}

	if len(r.Times.Spans) != 1 {
		return nil, false
	}
	span := r.Times.Spans[0]
	if span.Repeats != nil || !span.HasEnd || span.OpenEnd {
		return nil, false
	}
	if !span.Start.IsFixed() || !span.End.IsFixed() {
		return nil, false
	}

	byweekday := weekdaysInRange(wr)
	if byweekday == nil {
		return nil, false
	}

	start := span.Start.AsNaive(nil)
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byweekday,
		Byhour:    []int{start.Hour()},
		Byminute:  []int{start.Minute()},
		Bysecond:  []int{0},
	})
	if err != nil {
		return nil, false
	}
	return rule, true
}

func isFullBitfield(b ohday.Bitfield) bool {
	return b.Get(0) && b.Get(1) && b.Get(2) && b.Get(3) && b.Get(4)
}

// weekdaysInRange expands a (possibly wrapping) weekday range into the
// rrule.Weekday list it names, or nil if the range carries an
// occurrence-position narrowing a plain weekly rule cannot express.
func weekdaysInRange(wr ohday.WeekDayRange) []rrule.Weekday {
	if !isFullBitfield(wr.Positions) {
		return nil
	}
	if !wr.HasEnd {
		return []rrule.Weekday{rruleWeekday[wr.Start]}
	}
	var out []rrule.Weekday
	for i := int(wr.Start); ; i = (i + 1) % 7 {
		out = append(out, rruleWeekday[ohday.Weekday(i)])
		if ohday.Weekday(i) == wr.End {
			break
		}
	}
	return out
}
