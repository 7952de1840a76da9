package ohparse

import (
	"strings"

	"github.com/Telinage2/opening-hours-osm/ohday"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

var monthNames = map[string]ohday.Month{
	"jan": ohday.Jan, "feb": ohday.Feb, "mar": ohday.Mar, "apr": ohday.Apr,
	"may": ohday.May, "jun": ohday.Jun, "jul": ohday.Jul, "aug": ohday.Aug,
	"sep": ohday.Sep, "oct": ohday.Oct, "nov": ohday.Nov, "dec": ohday.Dec,
}

var weekdayNames = map[string]ohday.Weekday{
	"mo": ohday.Mo, "tu": ohday.Tu, "we": ohday.We, "th": ohday.Th,
	"fr": ohday.Fr, "sa": ohday.Sa, "su": ohday.Su,
}

var eventNames = map[string]ohtime.TimeEvent{
	"dawn": ohtime.EVENT_DAWN, "sunrise": ohtime.EVENT_SUNRISE,
	"sunset": ohtime.EVENT_SUNSET, "dusk": ohtime.EVENT_DUSK,
}

func monthByName(s string) (ohday.Month, bool) {
	m, ok := monthNames[strings.ToLower(s)]
	return m, ok
}

func weekdayByName(s string) (ohday.Weekday, bool) {
	w, ok := weekdayNames[strings.ToLower(s)]
	return w, ok
}

func eventByName(s string) (ohtime.TimeEvent, bool) {
	e, ok := eventNames[strings.ToLower(s)]
	return e, ok
}

func isHolidayWord(s string) (bool, bool) {
	switch strings.ToUpper(s) {
	case "PH":
		return true, false
	case "SH":
		return false, true
	default:
		return false, false
	}
}

// splitMonthDayWord splits a fused token like "Dec25" into its month name
// and trailing day-number text, since the lexer has no space to split on.
func splitMonthDayWord(s string) (monthPart, dayPart string) {
	i := 0
	for i < len(s) && !(s[i] >= '0' && s[i] <= '9') {
		i++
	}
	return s[:i], s[i:]
}
