package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarInstant_J2000(t *testing.T) {
	// 2000-01-01 12:00:00 UTC is the epoch JD 2451545.0 exactly.
	c := Calendar{Year: 2000, Month: 1, Day: 1, Hour: 12}
	assert.Equal(t, Instant(2451545.0), c.Instant())
}

func TestCalendarInstant_FixedOffset(t *testing.T) {
	// 09:00 at UTC-3 is 12:00 UTC; the offset is purely numeric.
	local := Calendar{Year: 2000, Month: 1, Day: 1, Hour: 9, UTCOffset: -3}
	utc := Calendar{Year: 2000, Month: 1, Day: 1, Hour: 12}
	assert.InDelta(t, float64(utc.Instant()), float64(local.Instant()), 1e-9)
}

func TestCalendarAt_J2000(t *testing.T) {
	c := CalendarAt(2451545.0, 0)
	assert.Equal(t, 2000, c.Year)
	assert.Equal(t, 1, c.Month)
	assert.Equal(t, 1, c.Day)
	assert.Equal(t, 12, c.Hour)
	assert.Equal(t, 0, c.Minute)
	assert.Equal(t, 0, c.Second)
}

func TestCalendarRoundTrip(t *testing.T) {
	// Field-level equality is too strict for float day fractions
	// (seconds truncate), so compare the reconstructed instant instead.
	cases := []Calendar{
		{Year: 2024, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 45, UTCOffset: -3},
		{Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
		{Year: 1987, Month: 3, Day: 1, Hour: 0, Minute: 0, Second: 0, UTCOffset: 5.5},
	}
	for _, c := range cases {
		jd := c.Instant()
		back := CalendarAt(jd, c.UTCOffset)
		assert.InDelta(t, float64(jd), float64(back.Instant()),
			2.0/SecondsPerDay, "round trip for %+v", c)
	}
}

func TestCalendarValidate(t *testing.T) {
	valid := Calendar{Year: 2024, Month: 6, Day: 15, Hour: 12}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Calendar)
	}{
		{"month 13", func(c *Calendar) { c.Month = 13 }},
		{"month 0", func(c *Calendar) { c.Month = 0 }},
		{"day 32", func(c *Calendar) { c.Day = 32 }},
		{"hour 24", func(c *Calendar) { c.Hour = 24 }},
		{"negative minute", func(c *Calendar) { c.Minute = -1 }},
		{"year too early", func(c *Calendar) { c.Year = 1899 }},
		{"offset too large", func(c *Calendar) { c.UTCOffset = 15 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestInstantAddSeconds(t *testing.T) {
	base := Instant(2451545.0)
	assert.InDelta(t, float64(base)+1.0/SecondsPerDay, float64(base.AddSeconds(1)), 1e-12)
	assert.InDelta(t, float64(base)+0.5, float64(base.AddDays(0.5)), 1e-12)
}

func TestWindow(t *testing.T) {
	w := Window{Start: 100, End: 104}
	require.NoError(t, w.Validate())
	assert.Error(t, Window{Start: 104, End: 100}.Validate())
	assert.Error(t, Window{Start: 104, End: 104}.Validate())

	assert.True(t, w.Contains(100))
	assert.True(t, w.Contains(104))
	assert.False(t, w.Contains(104.0001))
	assert.InDelta(t, 4, w.Days(), 1e-12)
	assert.False(t, math.Signbit(w.Days()))
}
