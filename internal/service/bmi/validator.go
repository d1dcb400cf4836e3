package bmi

import (
	"fmt"
	"math"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/domain/units"
)

// Plausibility ranges in canonical units, inclusive.
const (
	MinAge      = 15
	MaxAge      = 40
	MinWeightKg = 30
	MaxWeightKg = 200
	MinHeightCm = 100
	MaxHeightCm = 250
)

// Input is the raw form submission. Inches is only read when HeightUnit is feet.
type Input struct {
	Age        float64
	Weight     float64
	WeightUnit units.WeightUnit
	Height     float64
	HeightUnit units.HeightUnit
	Inches     float64
}

// Validate checks age, weight and height independently and reports every
// failing field. On success it returns the measurement in canonical units.
func Validate(in Input) (models.Measurement, error) {
	var errs models.ValidationErrors

	if in.WeightUnit == "" {
		in.WeightUnit = units.Kilograms
	}
	if in.HeightUnit == "" {
		in.HeightUnit = units.Centimeters
	}

	if fe, ok := checkAge(in.Age); !ok {
		errs = append(errs, fe)
	}

	weightKg, fe, ok := checkWeight(in.Weight, in.WeightUnit)
	if !ok {
		errs = append(errs, fe)
	}

	heightCm, fe, ok := checkHeight(in.Height, in.Inches, in.HeightUnit)
	if !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return models.Measurement{}, errs
	}

	return models.Measurement{Age: in.Age, HeightCm: heightCm, WeightKg: weightKg}, nil
}

// WeightBounds returns the canonical and unit-converted weight range.
func WeightBounds(unit units.WeightUnit) (canonical, display models.Bounds) {
	canonical = models.Bounds{Min: MinWeightKg, Max: MaxWeightKg, Unit: string(units.Kilograms)}
	display = models.Bounds{
		Min:  units.FromKg(MinWeightKg, unit),
		Max:  units.FromKg(MaxWeightKg, unit),
		Unit: string(unit),
	}
	return canonical, display
}

// HeightBounds returns the canonical and unit-converted height range.
func HeightBounds(unit units.HeightUnit) (canonical, display models.Bounds) {
	canonical = models.Bounds{Min: MinHeightCm, Max: MaxHeightCm, Unit: string(units.Centimeters)}
	display = models.Bounds{
		Min:  units.FromCm(MinHeightCm, unit),
		Max:  units.FromCm(MaxHeightCm, unit),
		Unit: string(unit),
	}
	return canonical, display
}

func ageBounds() models.Bounds {
	return models.Bounds{Min: MinAge, Max: MaxAge, Unit: "years"}
}

func checkAge(age float64) (models.FieldError, bool) {
	bounds := ageBounds()
	fe := models.FieldError{Field: models.FieldAge, Canonical: bounds, Display: bounds}

	switch {
	case !usable(age):
		fe.Reason = "Please enter a valid age"
	case age < MinAge || age > MaxAge:
		fe.Reason = fmt.Sprintf("Age must be between %d and %d years", MinAge, MaxAge)
	default:
		return models.FieldError{}, true
	}
	return fe, false
}

func checkWeight(weight float64, unit units.WeightUnit) (float64, models.FieldError, bool) {
	canonical, display := WeightBounds(unit)
	fe := models.FieldError{Field: models.FieldWeight, Canonical: canonical, Display: display}

	if !usable(weight) {
		fe.Reason = "Please enter a valid weight"
		return 0, fe, false
	}

	kg := units.ToKg(weight, unit)
	if kg < MinWeightKg || kg > MaxWeightKg {
		fe.Reason = fmt.Sprintf("Weight must be between %g and %g %s",
			math.Floor(display.Min), math.Floor(display.Max), display.Unit)
		return 0, fe, false
	}
	return kg, models.FieldError{}, true
}

func checkHeight(height, inches float64, unit units.HeightUnit) (float64, models.FieldError, bool) {
	canonical, display := HeightBounds(unit)
	fe := models.FieldError{Field: models.FieldHeight, Canonical: canonical, Display: display}

	value := height
	if unit == units.Feet {
		if !usable(height) {
			fe.Reason = "Please enter valid feet"
			return 0, fe, false
		}
		if math.IsInf(inches, 0) {
			fe.Reason = "Please enter valid inches"
			return 0, fe, false
		}
		total, err := units.FeetInches(height, inches)
		if err != nil {
			fe.Reason = "Please enter valid inches"
			return 0, fe, false
		}
		value = total
	} else if !usable(height) {
		fe.Reason = "Please enter a valid height"
		return 0, fe, false
	}

	cm := units.ToCm(value, unit)
	if cm < MinHeightCm || cm > MaxHeightCm {
		fe.Reason = heightRangeMessage(display, unit)
		return 0, fe, false
	}
	return cm, models.FieldError{}, true
}

func heightRangeMessage(display models.Bounds, unit units.HeightUnit) string {
	switch unit {
	case units.Feet:
		return fmt.Sprintf("Height must be between %s and %s",
			units.FormatFeetInches(display.Min), units.FormatFeetInches(display.Max))
	case units.Meters:
		return fmt.Sprintf("Height must be between %.1f and %.1f m", display.Min, display.Max)
	default:
		return fmt.Sprintf("Height must be between %g and %g %s", display.Min, display.Max, display.Unit)
	}
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
