package ohctx

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// Locale resolves the three things a clock value needs in order to cross
// between the aware and naive worlds: which naive wall-clock value an
// aware instant denotes (Naive), which aware instant a naive date+time
// denotes (LocalizedDatetime), and what clock time an astronomical event
// falls on for a given date (EventTime).
type Locale interface {
	// Naive reverse-localizes an aware instant into the naive wall-clock
	// value the day/time-selector algebra operates on (spec.md §6's
	// "naive(aware_dt)").
	Naive(aware time.Time) (time.Time, error)
	LocalizedDatetime(naive time.Time) (time.Time, error)
	EventTime(date time.Time, event ohtime.TimeEvent) ohtime.ExtendedTime
}

// NoLocale treats every naive datetime as already being in an unspecified
// fixed offset and always falls back to the constant event-time table. It
// is the Context default for expressions that never reference a variable
// time or rely on wall-clock conversion.
type NoLocale struct{}

func (NoLocale) Naive(aware time.Time) (time.Time, error) {
	return toNaive(aware), nil
}

func (NoLocale) LocalizedDatetime(naive time.Time) (time.Time, error) {
	return naive, nil
}

func (NoLocale) EventTime(_ time.Time, event ohtime.TimeEvent) ohtime.ExtendedTime {
	return event.FixedFallback()
}

// toNaive strips an aware instant's zone information down to a naive
// time.Time (UTC-tagged, but otherwise just the wall-clock fields), the
// representation every selector/schedule type in this engine operates on.
func toNaive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// dayResolver adapts a Locale bound to one calendar date into the
// ohtime.EventTimeResolver interface TimeSelector needs, keeping ohtime
// free of any dependency on ohctx or time.Time.
type dayResolver struct {
	locale Locale
	date   time.Time
}

// Resolver returns an ohtime.EventTimeResolver fixed to date, for passing
// into TimeSelector.IntervalsAt/IntervalsAtNextDay.
func Resolver(locale Locale, date time.Time) ohtime.EventTimeResolver {
	return dayResolver{locale: locale, date: date}
}

func (r dayResolver) EventTime(event ohtime.TimeEvent) ohtime.ExtendedTime {
	return r.locale.EventTime(r.date, event)
}
