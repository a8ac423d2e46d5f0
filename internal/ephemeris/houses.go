package ephemeris

import (
	"math"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

const degToRad = math.Pi / 180

// ascendant computes the ecliptic longitude of the ascendant for an
// instant and geographic location (east longitude positive), via local
// sidereal time and the mean obliquity of the ecliptic.
func ascendant(at astro.Instant, lat, lon float64) float64 {
	d := float64(at - J2000)
	t := d / 36525

	// Mean Greenwich sidereal time, in degrees.
	gmst := astro.NormalizeDegrees(280.46061837 + 360.98564736629*d + 0.000387933*t*t)
	ramc := astro.NormalizeDegrees(gmst + lon)

	eps := (23.4392911 - 0.0130042*t) * degToRad
	ra := ramc * degToRad
	phi := lat * degToRad

	asc := math.Atan2(math.Cos(ra), -(math.Sin(ra)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	return astro.NormalizeDegrees(asc / degToRad)
}

// cuspsFor fans the twelve house cusps out from the ascendant according
// to the requested system.
func cuspsFor(at astro.Instant, lat, lon float64, system HouseSystem) [12]float64 {
	asc := ascendant(at, lat, lon)

	var cusps [12]float64
	switch system {
	case HouseSystemWholeSign:
		first := float64(astro.SignIndex(asc) * 30)
		for i := range cusps {
			cusps[i] = astro.NormalizeDegrees(first + float64(i)*30)
		}
	default: // equal
		for i := range cusps {
			cusps[i] = astro.NormalizeDegrees(asc + float64(i)*30)
		}
	}
	return cusps
}
