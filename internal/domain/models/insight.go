package models

// InsightRequest is the structured payload embedded into the insight prompt.
// Category carries the display label, not the tag.
type InsightRequest struct {
	BMI        float64     `json:"bmi"`
	Category   string      `json:"category"`
	Age        float64     `json:"age"`
	Impacts    Impacts     `json:"impacts"`
	Statistics []Statistic `json:"statistics"`
}

// InsightResponse is the body returned for a generated analysis.
type InsightResponse struct {
	Analysis string `json:"analysis"`
}

// ErrorResponse is the JSON error body used by the HTTP surface.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
