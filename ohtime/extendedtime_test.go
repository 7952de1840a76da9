package ohtime_test

import (
	"testing"

	"github.com/Telinage2/opening-hours-osm/ohtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tm, err := ohtime.New(23, 59)
		require.NoError(t, err)
		assert.Equal(t, 23, tm.Hour())
		assert.Equal(t, 59, tm.Minute())
	})

	t.Run("rejects hour over 48", func(t *testing.T) {
		_, err := ohtime.New(49, 0)
		assert.Error(t, err)
	})

	t.Run("rejects minute on hour 48", func(t *testing.T) {
		_, err := ohtime.New(48, 1)
		assert.Error(t, err)
	})
}

func TestCompare(t *testing.T) {
	a := ohtime.MustNew(9, 30)
	b := ohtime.MustNew(18, 0)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(ohtime.MustNew(9, 30)))
}

func TestAddMinutesOpt(t *testing.T) {
	t.Run("within range", func(t *testing.T) {
		result, ok := ohtime.MustNew(23, 30).AddMinutesOpt(45)
		require.True(t, ok)
		assert.Equal(t, "24:15", result.String())
	})

	t.Run("out of range returns ok=false", func(t *testing.T) {
		_, ok := ohtime.Midnight48.AddMinutesOpt(1)
		assert.False(t, ok)
	})

	t.Run("negative below zero returns ok=false", func(t *testing.T) {
		_, ok := ohtime.Midnight00.AddMinutesOpt(-1)
		assert.False(t, ok)
	})
}

func TestMinsFromMidnight(t *testing.T) {
	assert.Equal(t, 2880, ohtime.Midnight48.MinsFromMidnight())
	assert.Equal(t, 1440, ohtime.Midnight24.MinsFromMidnight())
}
