// Package bmi classifies canonical measurements into WHO BMI categories and
// validates raw user input before classification.
package bmi

import (
	"fmt"
	"math"

	"github.com/mamadbah2/bmicare/internal/domain/models"
)

// Calculate returns the unrounded BMI for a weight in kilograms and a height in
// centimeters.
func Calculate(weightKg, heightCm float64) float64 {
	meters := heightCm / 100
	return weightKg / (meters * meters)
}

// Round rounds to one decimal place, ties away from zero.
func Round(value float64) float64 {
	return math.Round(value*10) / 10
}

// CategoryFor maps a BMI value onto its band. Each band includes its lower bound.
func CategoryFor(bmi float64) models.Category {
	switch {
	case bmi < models.ThresholdNormal:
		return models.CategoryUnderweight
	case bmi < models.ThresholdOverweight:
		return models.CategoryNormal
	case bmi < models.ThresholdObese:
		return models.CategoryOverweight
	default:
		return models.CategoryObese
	}
}

// Classify computes the BMI result for a validated measurement. The band is
// chosen from the unrounded value; only the reported BMI is rounded, so a raw
// 24.96 reads 25.0 but stays normal.
// A non-positive or non-finite height or weight is a caller bug and panics.
func Classify(m models.Measurement) models.BMIResult {
	if !(m.HeightCm > 0) || !(m.WeightKg > 0) || math.IsInf(m.HeightCm, 0) || math.IsInf(m.WeightKg, 0) {
		panic(fmt.Sprintf("bmi: classify called with unvalidated measurement %+v", m))
	}

	raw := Calculate(m.WeightKg, m.HeightCm)
	category := CategoryFor(raw)
	info, _ := category.Info()

	return models.BMIResult{
		BMI:           Round(raw),
		Category:      category,
		CategoryLabel: info.Label,
		CategoryColor: info.Color,
		HealthRisk:    info.Risk,
	}
}
