// Package assessment runs a full calculation: validation, classification,
// knowledge lookup, history append and the insight request.
package assessment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/domain/units"
	"github.com/mamadbah2/bmicare/internal/service/bmi"
	"github.com/mamadbah2/bmicare/internal/service/insight"
	"github.com/mamadbah2/bmicare/internal/service/knowledge"
)

// ErrEntryNotFound is returned by Recalculate for an unknown history id.
var ErrEntryNotFound = errors.New("history entry not found")

// HistoryStore is the subset of the history service used here.
type HistoryStore interface {
	Append(ctx context.Context, entry models.NewHistoryEntry) models.HistoryEntry
	Get(ctx context.Context, id string) (models.HistoryEntry, bool)
}

// InsightRequester is the subset of the insight service used here.
type InsightRequester interface {
	Request(ctx context.Context, req models.InsightRequest) (string, error)
}

// Gauge is the data a UI needs to draw the category gauge.
type Gauge struct {
	Position float64     `json:"position"`
	Ranges   []bmi.Range `json:"ranges"`
}

// Insight is the insight panel. Exactly one of Text and Error is set.
type Insight struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// Assessment is everything produced by one calculation.
type Assessment struct {
	Measurement  models.Measurement              `json:"measurement"`
	Result       models.BMIResult                `json:"result"`
	Gauge        Gauge                           `json:"gauge"`
	Impact       models.ReproductiveHealthImpact `json:"impact"`
	HistoryEntry models.HistoryEntry             `json:"history_entry"`
	Insight      Insight                         `json:"insight"`
}

// Service orchestrates a calculation.
type Service struct {
	history  HistoryStore
	insights InsightRequester
	logger   *zap.Logger
}

// NewService wires the orchestrator.
func NewService(history HistoryStore, insights InsightRequester, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{history: history, insights: insights, logger: logger}
}

// Assess validates the raw input and runs the calculation. Only validation
// errors are returned; an insight failure is reported inside the result.
func (s *Service) Assess(ctx context.Context, in bmi.Input) (Assessment, error) {
	measurement, err := bmi.Validate(in)
	if err != nil {
		return Assessment{}, err
	}
	return s.run(ctx, measurement), nil
}

// Recalculate re-runs the calculation recorded by a history entry. Like any
// calculation it appends a new entry.
func (s *Service) Recalculate(ctx context.Context, id string) (Assessment, error) {
	entry, ok := s.history.Get(ctx, id)
	if !ok {
		return Assessment{}, fmt.Errorf("recalculate %s: %w", id, ErrEntryNotFound)
	}

	measurement, err := bmi.Validate(bmi.Input{
		Age:        entry.Age,
		Weight:     entry.Weight,
		WeightUnit: units.Kilograms,
		Height:     entry.Height,
		HeightUnit: units.Centimeters,
	})
	if err != nil {
		return Assessment{}, fmt.Errorf("recalculate %s: %w", id, err)
	}
	return s.run(ctx, measurement), nil
}

func (s *Service) run(ctx context.Context, measurement models.Measurement) Assessment {
	result := bmi.Classify(measurement)
	impact := knowledge.Lookup(result.Category)

	entry := s.history.Append(ctx, models.NewHistoryEntry{
		Age:           measurement.Age,
		Height:        measurement.HeightCm,
		Weight:        measurement.WeightKg,
		BMI:           result.BMI,
		Category:      result.Category,
		CategoryLabel: result.CategoryLabel,
	})

	s.logger.Info("assessment computed",
		zap.Float64("bmi", result.BMI),
		zap.String("category", string(result.Category)),
		zap.String("history_id", entry.ID),
	)

	return Assessment{
		Measurement: measurement,
		Result:      result,
		Gauge: Gauge{
			Position: bmi.GaugePosition(result.BMI),
			Ranges:   bmi.Ranges(),
		},
		Impact:       impact,
		HistoryEntry: entry,
		Insight:      s.requestInsight(ctx, measurement.Age, result, impact),
	}
}

func (s *Service) requestInsight(ctx context.Context, age float64, result models.BMIResult, impact models.ReproductiveHealthImpact) Insight {
	if s.insights == nil {
		return Insight{}
	}

	text, err := s.insights.Request(ctx, insight.NewRequest(age, result, impact))
	if err != nil {
		s.logger.Warn("insight unavailable", zap.Error(err))
		return Insight{Error: err.Error(), Kind: insight.Kind(err)}
	}
	return Insight{Text: text}
}
