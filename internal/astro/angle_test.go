package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngularDifference_Wraparound(t *testing.T) {
	// The shortest way from 350° to 10° crosses zero.
	assert.InDelta(t, 20, AngularDifference(350, 10), 1e-12)
	assert.InDelta(t, 20, AngularDifference(10, 350), 1e-12)
}

func TestAngularDifference_Symmetric(t *testing.T) {
	cases := [][2]float64{
		{0, 0}, {0, 180}, {90, 270}, {359.9, 0.1}, {-30, 30}, {720, 10},
	}
	for _, c := range cases {
		assert.Equal(t, AngularDifference(c[0], c[1]), AngularDifference(c[1], c[0]),
			"AngularDifference(%v,%v) must be symmetric", c[0], c[1])
	}
}

func TestAngularDifference_Range(t *testing.T) {
	for a := -360.0; a <= 720; a += 7.3 {
		for b := -360.0; b <= 720; b += 11.1 {
			d := AngularDifference(a, b)
			require.GreaterOrEqual(t, d, 0.0)
			require.LessOrEqual(t, d, 180.0)
		}
	}
}

func TestAngularDifference_ZeroIffCongruent(t *testing.T) {
	assert.Zero(t, AngularDifference(30, 390))
	assert.Zero(t, AngularDifference(-90, 270))
	assert.NotZero(t, AngularDifference(30, 30.001))
}

func TestSignAndPosition_Origin(t *testing.T) {
	sign, pos := SignAndPosition(0)
	assert.Equal(t, 0, sign)
	assert.Equal(t, `00°00'00"`, pos)
}

func TestSignAndPosition_Truncates(t *testing.T) {
	// Just shy of a sign boundary the position stays at 29°59'59";
	// minutes and seconds truncate toward zero, never round up.
	sign, pos := SignAndPosition(419.999999)
	assert.Equal(t, 1, sign)
	assert.Equal(t, `29°59'59"`, pos)

	sign, pos = SignAndPosition(389.999999)
	assert.Equal(t, 0, sign)
	assert.Equal(t, `29°59'59"`, pos)
}

func TestSignAndPosition_MidSign(t *testing.T) {
	sign, pos := SignAndPosition(95.5)
	assert.Equal(t, 3, sign)
	assert.Equal(t, `05°30'00"`, pos)
}

func TestSignCode_WrapsModulo(t *testing.T) {
	assert.Equal(t, "AR", SignCode(0))
	assert.Equal(t, "PI", SignCode(11))
	assert.Equal(t, "AR", SignCode(12))
	assert.Equal(t, "PI", SignCode(-1))
}

func TestFormatDayDuration(t *testing.T) {
	assert.Equal(t, "12:00:00", FormatDayDuration(0.5))
	assert.Equal(t, "00:00:00", FormatDayDuration(0))
	assert.Equal(t, "24:00:00", FormatDayDuration(1))
	assert.Equal(t, "06:00:00", FormatDayDuration(-0.25))
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 30.0, NormalizeDegrees(390))
	assert.Equal(t, 330.0, NormalizeDegrees(-30))
	assert.Equal(t, 0.0, NormalizeDegrees(0))
}
