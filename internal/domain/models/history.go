package models

// HistoryEntry is one persisted calculation. Height and weight are canonical units.
type HistoryEntry struct {
	ID            string   `json:"id" bson:"id"`
	Timestamp     int64    `json:"timestamp" bson:"timestamp"` // Unix milliseconds
	Age           float64  `json:"age" bson:"age"`
	Height        float64  `json:"height" bson:"height"`
	Weight        float64  `json:"weight" bson:"weight"`
	BMI           float64  `json:"bmi" bson:"bmi"`
	Category      Category `json:"category" bson:"category"`
	CategoryLabel string   `json:"categoryLabel" bson:"category_label"`
}

// NewHistoryEntry captures the fields of an entry the caller supplies; the
// store assigns ID and Timestamp.
type NewHistoryEntry struct {
	Age           float64
	Height        float64
	Weight        float64
	BMI           float64
	Category      Category
	CategoryLabel string
}

// Measurement returns the canonical measurement recorded by the entry.
func (e HistoryEntry) Measurement() Measurement {
	return Measurement{Age: e.Age, HeightCm: e.Height, WeightKg: e.Weight}
}
