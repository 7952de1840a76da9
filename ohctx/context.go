// Package ohctx supplies the evaluation context a date/time filter needs
// but cannot derive from the expression alone: locale (timezone and
// astronomical event resolution) and holiday membership (spec.md §4.6,
// §6).
package ohctx

import "time"

// Context bundles everything a query needs beyond the parsed expression
// itself. ApproxBoundIntervalSize caps how far the time-domain iterator
// will scan before emitting an approximate, unbounded-duration interval
// (spec.md §4.7).
type Context struct {
	Locale                  Locale
	Holidays                Holidays
	ApproxBoundIntervalSize time.Duration
}

// DefaultApproxBoundIntervalSize matches spec.md §4.7's guidance of
// several years, past which an indefinitely-repeating open interval is
// reported as approximate rather than walked day by day.
const DefaultApproxBoundIntervalSize = 4 * 365 * 24 * time.Hour

// NewContext builds a Context with NoLocale/CalendarHolidays and the
// default bound, suitable for expressions with no holiday or
// astronomical-event references.
func NewContext() *Context {
	return &Context{
		Locale:                  NoLocale{},
		Holidays:                NewCalendarHolidays(),
		ApproxBoundIntervalSize: DefaultApproxBoundIntervalSize,
	}
}
