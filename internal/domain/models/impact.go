package models

// ReproductiveHealthImpact is the reference content shown for one BMI category.
type ReproductiveHealthImpact struct {
	Category    string      `json:"category"`
	Impacts     Impacts     `json:"impacts"`
	Statistics  []Statistic `json:"statistics"`
	WHOEvidence WHOEvidence `json:"whoEvidence"`
}

// Impacts groups short impact statements by area.
type Impacts struct {
	Fertility []string `json:"fertility"`
	Pregnancy []string `json:"pregnancy"`
	Menstrual []string `json:"menstrual"`
	LongTerm  []string `json:"longTerm"`
}

// Statistic is a sourced research finding.
type Statistic struct {
	Finding string `json:"finding"`
	Value   string `json:"value"`
	Source  string `json:"source"`
}

// WHOEvidence summarizes the WHO position for a category.
type WHOEvidence struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Citation  string   `json:"citation"`
}
