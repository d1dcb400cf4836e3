package models

// Category enumerates the WHO adult BMI bands.
type Category string

const (
	CategoryUnderweight Category = "underweight"
	CategoryNormal      Category = "normal"
	CategoryOverweight  Category = "overweight"
	CategoryObese       Category = "obese"
)

// HealthRisk is the qualitative risk tier attached to a category.
type HealthRisk string

const (
	RiskLow      HealthRisk = "low"
	RiskModerate HealthRisk = "moderate"
	RiskHigh     HealthRisk = "high"
)

// BMI band thresholds in kg/m². Each is the inclusive lower bound of the next band.
const (
	ThresholdNormal     = 18.5
	ThresholdOverweight = 25.0
	ThresholdObese      = 30.0
)

// CategoryInfo holds the display data associated with a category.
type CategoryInfo struct {
	Category Category   `json:"category"`
	Label    string     `json:"label"`
	Color    string     `json:"color"`
	Risk     HealthRisk `json:"health_risk"`
}

// Categories lists every category in ascending BMI order.
var Categories = []Category{
	CategoryUnderweight,
	CategoryNormal,
	CategoryOverweight,
	CategoryObese,
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryUnderweight: {Category: CategoryUnderweight, Label: "Underweight", Color: "#3B82F6", Risk: RiskModerate},
	CategoryNormal:      {Category: CategoryNormal, Label: "Normal Weight", Color: "#10B981", Risk: RiskLow},
	CategoryOverweight:  {Category: CategoryOverweight, Label: "Overweight", Color: "#F59E0B", Risk: RiskModerate},
	CategoryObese:       {Category: CategoryObese, Label: "Obese", Color: "#EF4444", Risk: RiskHigh},
}

// UnknownCategoryColor is used when a stored tag no longer matches a category.
const UnknownCategoryColor = "#6B7280"

// Info returns the display data for the category. ok is false for unknown tags.
func (c Category) Info() (CategoryInfo, bool) {
	info, ok := categoryInfo[c]
	return info, ok
}

// Valid reports whether c is one of the four enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Label returns the display label, or the raw tag for unknown categories.
func (c Category) Label() string {
	if info, ok := categoryInfo[c]; ok {
		return info.Label
	}
	return string(c)
}

// Color returns the display color, falling back to UnknownCategoryColor.
func (c Category) Color() string {
	if info, ok := categoryInfo[c]; ok {
		return info.Color
	}
	return UnknownCategoryColor
}

// Measurement is the canonical-unit input to the classifier.
type Measurement struct {
	Age      float64 `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

// BMIResult is the derived classification for a single measurement.
type BMIResult struct {
	BMI           float64    `json:"bmi"`
	Category      Category   `json:"category"`
	CategoryLabel string     `json:"category_label"`
	CategoryColor string     `json:"category_color"`
	HealthRisk    HealthRisk `json:"health_risk"`
}
