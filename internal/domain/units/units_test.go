package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKg(t *testing.T) {
	assert.Equal(t, 60.0, ToKg(60, Kilograms))
	assert.InDelta(t, 60.0, ToKg(132.2772, Pounds), 1e-6)
}

func TestToCm(t *testing.T) {
	tests := []struct {
		value    float64
		unit     HeightUnit
		expected float64
	}{
		{165, Centimeters, 165},
		{1.65, Meters, 165},
		{5, Feet, 152.4},
		{6, Feet, 182.88},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, ToCm(tt.value, tt.unit), 1e-9, "ToCm(%v, %s)", tt.value, tt.unit)
	}
}

func TestWeightRoundTrip(t *testing.T) {
	for _, unit := range []WeightUnit{Kilograms, Pounds} {
		for _, v := range []float64{0.5, 30, 60.25, 132, 199.999, 440} {
			assert.InDelta(t, v, FromKg(ToKg(v, unit), unit), 1e-6, "unit %s value %v", unit, v)
		}
	}
}

func TestHeightRoundTrip(t *testing.T) {
	for _, unit := range []HeightUnit{Centimeters, Meters, Feet} {
		for _, v := range []float64{0.1, 1.65, 5.4166, 100, 250} {
			assert.InDelta(t, v, FromCm(ToCm(v, unit), unit), 1e-6, "unit %s value %v", unit, v)
		}
	}
}

func TestConversionsStayFiniteAndPositive(t *testing.T) {
	for _, v := range []float64{1e-6, 1, 1e6} {
		for _, got := range []float64{ToKg(v, Pounds), FromKg(v, Pounds), ToCm(v, Meters), ToCm(v, Feet), FromCm(v, Feet)} {
			assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
			assert.Greater(t, got, 0.0)
		}
	}
}

func TestFeetInches(t *testing.T) {
	total, err := FeetInches(5, 6)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, total, 1e-9)

	total, err = FeetInches(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)

	_, err = FeetInches(5, 12)
	assert.Error(t, err)

	_, err = FeetInches(5, -1)
	assert.Error(t, err)
}

func TestFormatFeetInches(t *testing.T) {
	tests := []struct {
		feet     float64
		expected string
	}{
		{5.5, "5'6\""},
		{5, "5'0\""},
		{5.99, "6'0\""},
		{3.28084, "3'3\""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFeetInches(tt.feet))
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "ft/in", Label(Feet))
	assert.Equal(t, "cm", Label(Centimeters))
	assert.Equal(t, "lbs", Label(Pounds))
}

func TestParseUnits(t *testing.T) {
	w, err := ParseWeightUnit("")
	require.NoError(t, err)
	assert.Equal(t, Kilograms, w)

	w, err = ParseWeightUnit("LBS")
	require.NoError(t, err)
	assert.Equal(t, Pounds, w)

	_, err = ParseWeightUnit("stone")
	assert.Error(t, err)

	h, err := ParseHeightUnit("ft/in")
	require.NoError(t, err)
	assert.Equal(t, Feet, h)

	_, err = ParseHeightUnit("yd")
	assert.Error(t, err)
}
