package ohctx

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// TzLocale resolves naive datetimes against a fixed IANA timezone. It has
// no geography, so EventTime falls back to the fixed-constant table same
// as NoLocale (spec.md §6).
type TzLocale struct {
	Location *time.Location
}

// NewTzLocale builds a TzLocale from an IANA zone name such as
// "Europe/Paris".
func NewTzLocale(name string) (*TzLocale, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &TzLocale{Location: loc}, nil
}

// Naive reverse-localizes aware by viewing it through l.Location and
// reading back its wall-clock fields, mirroring LocalizedDatetime's use
// of l.Location in the other direction.
func (l *TzLocale) Naive(aware time.Time) (time.Time, error) {
	return toNaive(aware.In(l.Location)), nil
}

func (l *TzLocale) LocalizedDatetime(naive time.Time) (time.Time, error) {
	return localizeDatetime(naive, l.Location)
}

func (l *TzLocale) EventTime(_ time.Time, event ohtime.TimeEvent) ohtime.ExtendedTime {
	return event.FixedFallback()
}

// maxDstGapRetry bounds the minute-by-minute advance localizeDatetime
// performs when naive falls in a DST spring-forward gap (spec.md §6:
// "advance by 1 minute up to ~2 hours").
const maxDstGapRetry = 120

// localizeDatetime reinterprets naive's wall-clock fields in loc. Go's
// time.Date silently normalizes a wall time that falls in a DST gap to
// whatever instant that offset arithmetic produces; to match the
// original's explicit gap-detection retry, we round-trip the result back
// through loc and advance by a minute at a time until the wall clock we
// get back matches what we asked for, or we give up after two hours.
func localizeDatetime(naive time.Time, loc *time.Location) (time.Time, error) {
	candidate := naive
	for attempt := 0; attempt <= maxDstGapRetry; attempt++ {
		localized := time.Date(
			candidate.Year(), candidate.Month(), candidate.Day(),
			candidate.Hour(), candidate.Minute(), candidate.Second(), candidate.Nanosecond(),
			loc,
		)
		roundTripped := localized.In(loc)
		if roundTripped.Hour() == candidate.Hour() && roundTripped.Minute() == candidate.Minute() {
			return localized, nil
		}
		candidate = candidate.Add(time.Minute)
	}
	return time.Date(
		naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(),
		loc,
	), nil
}
