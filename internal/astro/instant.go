package astro

import (
	"fmt"
	"math"
)

// Instant is a continuous UTC time value expressed as a Julian day
// (fractional days). Julian days start at noon: JD x.0 is 12:00 UTC.
//
// All scanning, bisection and ordering operates on Instants; calendar
// fields only appear at the input and report boundaries, converted with a
// fixed numeric UTC offset. There is no timezone database and no DST.
type Instant float64

// SecondsPerDay is the number of seconds in one Julian day.
const SecondsPerDay = 86400

// AddDays returns the instant shifted by a number of fractional days.
func (t Instant) AddDays(days float64) Instant { return t + Instant(days) }

// AddSeconds returns the instant shifted by a number of seconds.
func (t Instant) AddSeconds(s float64) Instant { return t + Instant(s/SecondsPerDay) }

// Calendar holds broken-down local calendar fields plus the fixed UTC
// offset (in hours) they are expressed in.
type Calendar struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	UTCOffset            float64
}

// Validate checks the calendar fields for structural sanity. It does not
// reject impossible day-of-month combinations beyond 31; the Julian day
// arithmetic is total over those, matching the original behavior.
func (c Calendar) Validate() error {
	switch {
	case c.Year < 1900 || c.Year > 2100:
		return fmt.Errorf("year %d out of supported range [1900,2100]", c.Year)
	case c.Month < 1 || c.Month > 12:
		return fmt.Errorf("month %d out of range [1,12]", c.Month)
	case c.Day < 1 || c.Day > 31:
		return fmt.Errorf("day %d out of range [1,31]", c.Day)
	case c.Hour < 0 || c.Hour > 23:
		return fmt.Errorf("hour %d out of range [0,23]", c.Hour)
	case c.Minute < 0 || c.Minute > 59:
		return fmt.Errorf("minute %d out of range [0,59]", c.Minute)
	case c.Second < 0 || c.Second > 59:
		return fmt.Errorf("second %d out of range [0,59]", c.Second)
	case c.UTCOffset < -14 || c.UTCOffset > 14:
		return fmt.Errorf("utc offset %+.2f out of range [-14,+14]", c.UTCOffset)
	}
	return nil
}

// Instant converts the local calendar fields to a UTC Instant by
// subtracting the fixed offset and applying the Gregorian Julian-day
// formula.
func (c Calendar) Instant() Instant {
	y, m := c.Year, c.Month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	utcHours := float64(c.Hour) - c.UTCOffset +
		float64(c.Minute)/60 + float64(c.Second)/3600
	day := float64(c.Day) + utcHours/24

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		day + float64(b) - 1524.5
	return Instant(jd)
}

// CalendarAt converts a UTC instant back to broken-down calendar fields
// in the given fixed offset. Seconds are truncated toward zero.
func CalendarAt(t Instant, utcOffset float64) Calendar {
	jd := float64(t) + utcOffset/24

	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))
	month := int(e - 1)
	if e >= 14 {
		month = int(e - 13)
	}
	year := int(c - 4715)
	if month > 2 {
		year = int(c - 4716)
	}

	hours := f * 24
	h := int(hours)
	minutes := (hours - float64(h)) * 60
	mi := int(minutes)
	s := int((minutes - float64(mi)) * 60)

	return Calendar{
		Year: year, Month: month, Day: day,
		Hour: h, Minute: mi, Second: s,
		UTCOffset: utcOffset,
	}
}

// Window bounds a scan in time. Start must precede End.
type Window struct {
	Start Instant
	End   Instant
}

// Validate checks the Start < End invariant.
func (w Window) Validate() error {
	if w.Start >= w.End {
		return fmt.Errorf("window start %.6f must precede end %.6f", float64(w.Start), float64(w.End))
	}
	return nil
}

// Contains reports whether t lies within the window (inclusive bounds).
func (w Window) Contains(t Instant) bool {
	return t >= w.Start && t <= w.End
}

// Days returns the window length in fractional days.
func (w Window) Days() float64 { return float64(w.End - w.Start) }
