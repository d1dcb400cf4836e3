package models

import "strings"

// Field names reported by validation.
const (
	FieldAge    = "age"
	FieldWeight = "weight"
	FieldHeight = "height"
)

// Bounds is an inclusive range expressed in a named unit.
type Bounds struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field     string `json:"field"`
	Reason    string `json:"reason"`
	Canonical Bounds `json:"canonical_bounds"`
	Display   Bounds `json:"display_bounds"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors collects every field error found in one input.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return "invalid measurement: " + strings.Join(parts, "; ")
}

// ByField indexes the reasons by field name for inline display.
func (v ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Reason
	}
	return out
}
