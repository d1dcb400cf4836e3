package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/domain/units"
	"github.com/mamadbah2/bmicare/internal/service/assessment"
	"github.com/mamadbah2/bmicare/internal/service/bmi"
)

// AssessmentService runs calculations.
type AssessmentService interface {
	Assess(ctx context.Context, in bmi.Input) (assessment.Assessment, error)
	Recalculate(ctx context.Context, id string) (assessment.Assessment, error)
}

// InsightService generates the analysis prose.
type InsightService interface {
	Request(ctx context.Context, req models.InsightRequest) (string, error)
}

// AssessmentRequest is the body of POST /api/assessments. Units default to
// kg and cm; inches is read only with height_unit "ft".
type AssessmentRequest struct {
	Age        float64 `json:"age"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	Height     float64 `json:"height"`
	HeightUnit string  `json:"height_unit"`
	Inches     float64 `json:"inches"`
}

// AssessmentHandler serves calculation and analysis requests.
type AssessmentHandler struct {
	svc      AssessmentService
	insights InsightService
	logger   *zap.Logger
}

// NewAssessmentHandler constructs the HTTP handler adapter.
func NewAssessmentHandler(svc AssessmentService, insights InsightService, logger *zap.Logger) *AssessmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentHandler{svc: svc, insights: insights, logger: logger}
}

// Assess validates the form input and returns the full assessment.
func (h *AssessmentHandler) Assess(c *gin.Context) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment payload", zap.Error(err))
		badRequest(c, "invalid request body", err)
		return
	}

	weightUnit, err := units.ParseWeightUnit(req.WeightUnit)
	if err != nil {
		badRequest(c, "invalid weight unit", err)
		return
	}
	heightUnit, err := units.ParseHeightUnit(req.HeightUnit)
	if err != nil {
		badRequest(c, "invalid height unit", err)
		return
	}

	result, err := h.svc.Assess(c.Request.Context(), bmi.Input{
		Age:        req.Age,
		Weight:     req.Weight,
		WeightUnit: weightUnit,
		Height:     req.Height,
		HeightUnit: heightUnit,
		Inches:     req.Inches,
	})
	if err != nil {
		h.logger.Info("assessment rejected", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Analyze generates the insight for an already classified result.
func (h *AssessmentHandler) Analyze(c *gin.Context) {
	var req models.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze payload", zap.Error(err))
		badRequest(c, "invalid request body", err)
		return
	}

	text, err := h.insights.Request(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InsightResponse{Analysis: text})
}
