// Package ohrecur expands the `/repeat` interval a TimeSpan carries into
// concrete departure instants, and offers a best-effort conventional
// recurrence rule for expressions that reduce to a simple weekly pattern.
// Neither feeds back into state evaluation (spec.md §4.2: "repeats is
// parsed but does not affect state") - this is supplementary, for callers
// that want bus-timetable-style occurrence lists out of a parsed
// expression.
package ohrecur

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/Telinage2/opening-hours-osm/oherr"
	"github.com/Telinage2/opening-hours-osm/ohtime"
	"github.com/teambition/rrule-go"
)

// ShiftOptions controls how DepartureTimes treats weekend/holiday
// occurrences, mirroring the ShiftOffWeekend/ShiftOffHolidays policy
// extensions of a conventional recurrence engine.
type ShiftOptions struct {
	ShiftOffWeekend  bool
	ShiftOffHolidays bool
	Holidays         ohctx.Holidays
}

func (o ShiftOptions) isPlusMode() bool {
	return o.ShiftOffWeekend || (o.ShiftOffHolidays && o.Holidays != nil)
}

func (o ShiftOptions) isHoliday(t time.Time) bool {
	return o.Holidays != nil && o.Holidays.IsHoliday(t, ohctx.PublicHoliday)
}

// applyShift nudges t forward off a weekend and then off a holiday, in
// that order, so a shifted weekend day that lands on a holiday is shifted
// again.
func (o ShiftOptions) applyShift(t time.Time) time.Time {
	if o.ShiftOffWeekend {
		switch t.Weekday() {
		case time.Saturday:
			t = t.AddDate(0, 0, 2)
		case time.Sunday:
			t = t.AddDate(0, 0, 1)
		}
	}
	if o.ShiftOffHolidays {
		for o.isHoliday(t) {
			t = t.AddDate(0, 0, 1)
		}
	}
	return t
}

// civilInstant combines a calendar date with a minute-resolution clock
// time, carrying ExtendedTime's past-midnight hours (24..48) into the
// following calendar day or beyond.
func civilInstant(date time.Time, et ohtime.ExtendedTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(et.MinsFromMidnight()) * time.Minute)
}

// DepartureTimes expands span's /repeat interval into concrete departure
// instants on date, resolving any event-relative endpoints against ctx's
// locale. It returns nil, nil if span carries no repeat interval. Shift
// is optional; its zero value applies no weekend/holiday adjustment.
func DepartureTimes(ctx *ohctx.Context, date time.Time, span ohtime.TimeSpan, shift ShiftOptions) ([]time.Time, error) {
	if span.Repeats == nil || span.Repeats.IsZero() {
		return nil, nil
	}

	resolver := ohctx.Resolver(ctx.Locale, date)
	start, end := span.AsNaive(resolver)
	from := civilInstant(date, start)
	until := civilInstant(date, end)
	if !until.After(from) {
		return nil, oherr.New("repeat interval span has no positive duration")
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.MINUTELY,
		Interval: span.Repeats.Minutes,
		Dtstart:  from,
		Until:    until,
	})
	if err != nil {
		return nil, oherr.Newf("building repeat-interval rule: %v", err)
	}

	raw := rule.Between(from, until, true)
	if !shift.isPlusMode() {
		return raw, nil
	}

	out := make([]time.Time, 0, len(raw))
	for _, t := range raw {
		out = append(out, shift.applyShift(t))
	}
	return out, nil
}
