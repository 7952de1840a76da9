package ohcal

import "time"

// DaysInMonth returns the number of days in the given month of year,
// honoring Go's leap-year rules (which match the Gregorian calendar
// exactly, so February 29 is counted whenever year is a leap year).
func DaysInMonth(year int, month int) int {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// CreateDateOpt builds a date from (year, month, day), returning ok=false
// if day exceeds the number of days in that month (e.g. Feb 29 on a
// non-leap year, or day 31 in a 30-day month). Both month and day use
// natural 1-based numbering.
func CreateDateOpt(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	if day > DaysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ValidYmdBefore returns the latest date not after the nominal
// (year, month, day), clamping day down to the month's last day when the
// nominal day does not exist (e.g. Feb 31 -> Feb 28/29).
func ValidYmdBefore(year, month, day int) time.Time {
	if d, ok := CreateDateOpt(year, month, day); ok {
		return d
	}
	last := DaysInMonth(year, month)
	if last > 31 {
		last = 31
	}
	d, _ := CreateDateOpt(year, month, last)
	return d
}

// ValidYmdAfter returns the earliest date not before the nominal
// (year, month, day), rolling into the first day of the following month
// when the nominal day does not exist.
func ValidYmdAfter(year, month, day int) time.Time {
	if d, ok := CreateDateOpt(year, month, day); ok {
		return d
	}
	month++
	if month > 12 {
		month = 1
		year++
	}
	d, _ := CreateDateOpt(year, month, 1)
	return d
}
