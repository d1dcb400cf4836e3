// Package units converts user-entered weights and heights to the canonical
// kilograms and centimeters used by the classifier, and back for display.
package units

import (
	"fmt"
	"math"
	"strings"
)

// WeightUnit is a supported weight input unit.
type WeightUnit string

// HeightUnit is a supported height input unit. HeightFeet is a compound
// feet+inches unit; callers fold inches in with FeetInches first.
type HeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"

	Centimeters HeightUnit = "cm"
	Meters      HeightUnit = "m"
	Feet        HeightUnit = "ft"
)

// Conversion factors.
const (
	PoundsPerKilogram = 2.20462
	CentimetersPerFt  = 30.48
	CentimetersPerM   = 100.0
	InchesPerFoot     = 12
	MaxInches         = 11
)

// ToKg converts a weight in unit to kilograms.
func ToKg(value float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return value / PoundsPerKilogram
	}
	return value
}

// FromKg converts kilograms to unit.
func FromKg(value float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return value * PoundsPerKilogram
	}
	return value
}

// ToCm converts a height in unit to centimeters. Feet must already be decimal.
func ToCm(value float64, unit HeightUnit) float64 {
	switch unit {
	case Meters:
		return value * CentimetersPerM
	case Feet:
		return value * CentimetersPerFt
	default:
		return value
	}
}

// FromCm converts centimeters to unit. Feet are returned as decimal feet.
func FromCm(value float64, unit HeightUnit) float64 {
	switch unit {
	case Meters:
		return value / CentimetersPerM
	case Feet:
		return value / CentimetersPerFt
	default:
		return value
	}
}

// FeetInches folds a feet + inches pair into decimal feet. Inches must lie in
// [0, 11]; anything else is not a valid foot measurement.
func FeetInches(feet, inches float64) (float64, error) {
	if inches < 0 || inches > MaxInches || math.IsNaN(inches) {
		return 0, fmt.Errorf("inches must be between 0 and %d, got %v", MaxInches, inches)
	}
	return feet + inches/InchesPerFoot, nil
}

// FormatFeetInches renders decimal feet as 5'5".
func FormatFeetInches(totalFeet float64) string {
	feet := math.Floor(totalFeet)
	inches := math.Round((totalFeet - feet) * InchesPerFoot)
	if inches == InchesPerFoot {
		feet++
		inches = 0
	}
	return fmt.Sprintf("%d'%d\"", int(feet), int(inches))
}

// Label returns the display label for a unit.
func Label[U WeightUnit | HeightUnit](unit U) string {
	if string(unit) == string(Feet) {
		return "ft/in"
	}
	return string(unit)
}

// ParseWeightUnit maps user input to a WeightUnit; empty input means kilograms.
func ParseWeightUnit(raw string) (WeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "kg", "kgs":
		return Kilograms, nil
	case "lb", "lbs":
		return Pounds, nil
	default:
		return "", fmt.Errorf("unsupported weight unit %q", raw)
	}
}

// ParseHeightUnit maps user input to a HeightUnit; empty input means centimeters.
func ParseHeightUnit(raw string) (HeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "cm":
		return Centimeters, nil
	case "m":
		return Meters, nil
	case "ft", "ft/in":
		return Feet, nil
	default:
		return "", fmt.Errorf("unsupported height unit %q", raw)
	}
}
