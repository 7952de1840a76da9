package ohctx

import (
	"math"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohlog"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// dawnDuskDepressionDeg is the solar elevation (degrees below the
// horizon) used for civil dawn/dusk, matching the "civil twilight"
// convention astral's sun.dawn/sun.dusk use by default.
const dawnDuskDepressionDeg = 6.0

// GeoLocale resolves astronomical events from a latitude/longitude pair
// using a NOAA solar-position (hour-angle) approximation, and resolves
// wall-clock instants through an embedded TzLocale.
type GeoLocale struct {
	*TzLocale
	Latitude  float64
	Longitude float64
}

// NewGeoLocale builds a GeoLocale for the given coordinates and IANA zone.
func NewGeoLocale(lat, lon float64, zoneName string) (*GeoLocale, error) {
	tz, err := NewTzLocale(zoneName)
	if err != nil {
		return nil, err
	}
	return &GeoLocale{TzLocale: tz, Latitude: lat, Longitude: lon}, nil
}

func (l *GeoLocale) EventTime(date time.Time, event ohtime.TimeEvent) ohtime.ExtendedTime {
	depression := 0.833 // standard sunrise/sunset refraction correction
	var rising bool
	switch event {
	case ohtime.EVENT_SUNRISE:
		rising = true
	case ohtime.EVENT_SUNSET:
		rising = false
	case ohtime.EVENT_DAWN:
		depression = dawnDuskDepressionDeg
		rising = true
	case ohtime.EVENT_DUSK:
		depression = dawnDuskDepressionDeg
		rising = false
	default:
		return event.FixedFallback()
	}

	t, ok := solarEventLocalTime(date, l.Latitude, l.Longitude, l.Location, depression, rising)
	if !ok {
		ohlog.L().Warn().
			Str("event", string(event)).
			Float64("lat", l.Latitude).
			Float64("lon", l.Longitude).
			Msg("sun does not cross horizon on this date at this latitude, using fixed fallback")
		return event.FixedFallback()
	}
	return t
}

// solarEventLocalTime computes the local clock time of sunrise/sunset (or
// civil dawn/dusk) for date at (lat, lon), using the NOAA simplified
// solar-position algorithm: solar declination and the equation of time
// from the day-of-year fractional year angle, then the hour angle for the
// given depression below the horizon.
func solarEventLocalTime(date time.Time, lat, lon float64, loc *time.Location, depressionDeg float64, rising bool) (ohtime.ExtendedTime, bool) {
	dayOfYear := date.YearDay()
	daysInYear := 365.0
	if isLeapYear(date.Year()) {
		daysInYear = 366.0
	}
	gamma := 2 * math.Pi / daysInYear * (float64(dayOfYear) - 1)

	eqTime := 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))

	decl := 0.006918 - 0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)

	latRad := lat * math.Pi / 180
	zenith := (90 + depressionDeg) * math.Pi / 180

	cosHourAngle := (math.Cos(zenith) - math.Sin(latRad)*math.Sin(decl)) / (math.Cos(latRad) * math.Cos(decl))
	if cosHourAngle < -1 || cosHourAngle > 1 {
		return ohtime.ExtendedTime{}, false
	}
	hourAngleDeg := math.Acos(cosHourAngle) * 180 / math.Pi

	var eventMinutesUTC float64
	if rising {
		eventMinutesUTC = 720 - 4*(lon+hourAngleDeg) - eqTime
	} else {
		eventMinutesUTC = 720 - 4*(lon-hourAngleDeg) - eqTime
	}

	midnightUTC := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	eventUTC := midnightUTC.Add(time.Duration(eventMinutesUTC * float64(time.Minute)))

	var local time.Time
	if loc != nil {
		local = eventUTC.In(loc)
	} else {
		local = eventUTC
	}

	t, err := ohtime.New(local.Hour(), local.Minute())
	if err != nil {
		return ohtime.ExtendedTime{}, false
	}
	return t, true
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
