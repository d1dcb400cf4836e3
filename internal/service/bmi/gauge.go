package bmi

import "github.com/mamadbah2/bmicare/internal/domain/models"

// Gauge display scale.
const (
	GaugeMin = 10.0
	GaugeMax = 40.0
)

// Range is one colored band of the gauge.
type Range struct {
	Category models.Category `json:"category"`
	Min      float64         `json:"min"`
	Max      float64         `json:"max"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
}

// Ranges returns the gauge bands in ascending order. The obese band is capped
// at 40 for display only; classification is unbounded above.
func Ranges() []Range {
	return []Range{
		{Category: models.CategoryUnderweight, Min: 0, Max: models.ThresholdNormal, Label: "Underweight", Color: models.CategoryUnderweight.Color()},
		{Category: models.CategoryNormal, Min: models.ThresholdNormal, Max: models.ThresholdOverweight, Label: "Normal", Color: models.CategoryNormal.Color()},
		{Category: models.CategoryOverweight, Min: models.ThresholdOverweight, Max: models.ThresholdObese, Label: "Overweight", Color: models.CategoryOverweight.Color()},
		{Category: models.CategoryObese, Min: models.ThresholdObese, Max: GaugeMax, Label: "Obese", Color: models.CategoryObese.Color()},
	}
}

// GaugePosition places a BMI on the 10..40 gauge as a percentage in [0, 100].
func GaugePosition(bmi float64) float64 {
	pct := (bmi - GaugeMin) / (GaugeMax - GaugeMin) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
