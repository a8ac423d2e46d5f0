package astro

import (
	"fmt"
	"math"
)

// signCodes are the two-letter zodiac sign codes in ecliptic order,
// starting at Aries (0°).
var signCodes = [...]string{
	"AR", "TA", "GE", "CA", "LE", "VI", "LI", "SC", "SG", "CP", "AQ", "PI",
}

// SignCount is the number of zodiac signs; each spans 30° of longitude.
const SignCount = 12

// SignCode returns the two-letter code for a sign index. The index is
// reduced modulo 12, so any integer is accepted.
func SignCode(idx int) string {
	idx %= SignCount
	if idx < 0 {
		idx += SignCount
	}
	return signCodes[idx]
}

// NormalizeDegrees reduces an angle to [0,360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngularDifference returns the shortest angular distance between two
// longitudes on the circle. The result is in [0,180], symmetric in its
// arguments, and zero iff a and b are congruent modulo 360.
func AngularDifference(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignIndex returns the zodiac sign index (0..11) containing a longitude.
func SignIndex(lon float64) int {
	return int(NormalizeDegrees(lon) / 30)
}

// SignAndPosition decomposes a longitude into its sign index and the
// position within that sign, formatted as DD°MM'SS".
func SignAndPosition(lon float64) (signIdx int, position string) {
	n := NormalizeDegrees(lon)
	return SignIndex(n), FormatDMS(math.Mod(n, 30))
}

// FormatDMS renders degrees as DD°MM'SS". Minutes and seconds are
// truncated toward zero, not rounded, so 29.99999° stays in 29°59'59".
func FormatDMS(deg float64) string {
	deg = NormalizeDegrees(deg)
	d := int(deg)
	m := int((deg - float64(d)) * 60)
	s := int(((deg-float64(d))*60 - float64(m)) * 60)
	return fmt.Sprintf("%02d°%02d'%02d\"", d, m, s)
}

// FormatDayDuration renders a duration in fractional days as HH:MM:SS,
// truncating seconds toward zero. Negative durations are rendered by
// their absolute value.
func FormatDayDuration(days float64) string {
	days = math.Abs(days)
	hours := days * 24
	h := int(hours)
	minutes := (hours - float64(h)) * 60
	m := int(minutes)
	s := int((minutes - float64(m)) * 60)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
