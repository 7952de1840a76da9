package ohctx

import (
	"strings"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
	cal_au "github.com/rickar/cal/v2/au"
	cal_ca "github.com/rickar/cal/v2/ca"
	cal_de "github.com/rickar/cal/v2/de"
	cal_fr "github.com/rickar/cal/v2/fr"
	cal_gb "github.com/rickar/cal/v2/gb"
	cal_us "github.com/rickar/cal/v2/us"

	"github.com/Telinage2/opening-hours-osm/oherr"
	"github.com/Telinage2/opening-hours-osm/ohcal"
)

// CountryHolidays answers HolidayKind queries for PublicHoliday against a
// rickar/cal/v2 business calendar selected by ISO country code,
// registered in a process-wide registry the same way rruleplus.NewCalendar
// registers its calendars. SchoolHoliday is never populated by a country
// calendar; callers layer it in separately via CalendarHolidays if needed.
type CountryHolidays struct {
	calendar *cal.BusinessCalendar
}

var (
	countryRegistry = make(map[string]*CountryHolidays)
	countryMutex    sync.RWMutex
)

// NewCountryHolidays builds a CountryHolidays for the given ISO country
// code. Supported codes: us, gb, fr, de, ca, au.
func NewCountryHolidays(iso string) (*CountryHolidays, error) {
	iso = cleanISO(iso)
	if iso == "" {
		return nil, oherr.New("invalid or empty country code")
	}

	bc := cal.NewBusinessCalendar()
	switch iso {
	case "us":
		bc.AddHoliday(cal_us.Holidays...)
	case "gb":
		bc.AddHoliday(cal_gb.Holidays...)
	case "fr":
		bc.AddHoliday(cal_fr.Holidays...)
	case "de":
		bc.AddHoliday(cal_de.Holidays...)
	case "ca":
		bc.AddHoliday(cal_ca.Holidays...)
	case "au":
		bc.AddHoliday(cal_au.Holidays...)
	default:
		return nil, oherr.Newf("country code not supported: %s", iso)
	}

	ch := &CountryHolidays{calendar: bc}
	setCountryHolidays(iso, ch)
	return ch, nil
}

// GetCountryHolidays retrieves a previously constructed CountryHolidays
// from the registry by ISO code.
func GetCountryHolidays(iso string) (*CountryHolidays, bool) {
	iso = cleanISO(iso)
	countryMutex.RLock()
	defer countryMutex.RUnlock()
	ch, ok := countryRegistry[iso]
	return ch, ok
}

func setCountryHolidays(iso string, ch *CountryHolidays) {
	countryMutex.Lock()
	defer countryMutex.Unlock()
	countryRegistry[iso] = ch
}

func cleanISO(code string) string {
	return strings.TrimSpace(strings.ToLower(code))
}

func (c *CountryHolidays) IsHoliday(date time.Time, kind HolidayKind) bool {
	if kind != PublicHoliday {
		return false
	}
	actual, _, _ := c.calendar.IsHoliday(date)
	return actual
}

func (c *CountryHolidays) FirstHolidayAfter(date time.Time, kind HolidayKind) time.Time {
	if kind != PublicHoliday {
		return ohcal.DateEnd
	}
	candidate := ohcal.NextDay(ohcal.DateOnly(date))
	for i := 0; i < 3660; i++ {
		if actual, _, _ := c.calendar.IsHoliday(candidate); actual {
			return candidate
		}
		next := ohcal.NextDay(candidate)
		if next.Equal(candidate) {
			break
		}
		candidate = next
	}
	return ohcal.DateEnd
}
