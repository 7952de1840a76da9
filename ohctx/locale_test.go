package ohctx_test

import (
	"testing"
	"time"

	"github.com/Telinage2/opening-hours-osm/ohctx"
	"github.com/Telinage2/opening-hours-osm/ohtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoLocaleEventTimeFallback(t *testing.T) {
	loc := ohctx.NoLocale{}
	date := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "06:00", loc.EventTime(date, ohtime.EVENT_DAWN).String())
	assert.Equal(t, "19:00", loc.EventTime(date, ohtime.EVENT_SUNSET).String())
}

func TestTzLocaleLocalizedDatetime(t *testing.T) {
	loc, err := ohctx.NewTzLocale("America/New_York")
	require.NoError(t, err)

	naive := time.Date(2023, time.June, 1, 9, 30, 0, 0, time.UTC)
	localized, err := loc.LocalizedDatetime(naive)
	require.NoError(t, err)
	assert.Equal(t, 9, localized.Hour())
	assert.Equal(t, 30, localized.Minute())
	assert.Equal(t, "America/New_York", localized.Location().String())
}

func TestGeoLocaleEventTimeProducesPlausibleSunrise(t *testing.T) {
	loc, err := ohctx.NewGeoLocale(48.8566, 2.3522, "Europe/Paris")
	require.NoError(t, err)

	date := time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC)
	sunrise := loc.EventTime(date, ohtime.EVENT_SUNRISE)
	assert.True(t, sunrise.Hour() >= 3 && sunrise.Hour() <= 8)
}
