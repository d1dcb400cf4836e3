package handlers

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/service/assessment"
)

// HistoryService is the history surface.
type HistoryService interface {
	List(ctx context.Context) []models.HistoryEntry
	Get(ctx context.Context, id string) (models.HistoryEntry, bool)
	Remove(ctx context.Context, id string)
	Clear(ctx context.Context)
}

type historyItem struct {
	models.HistoryEntry
	Color string `json:"color"`
}

// HistoryHandler lists, re-runs, deletes and clears past calculations.
type HistoryHandler struct {
	history     HistoryService
	assessments AssessmentService
	logger      *zap.Logger
}

// NewHistoryHandler constructs the HTTP handler adapter.
func NewHistoryHandler(history HistoryService, assessments AssessmentService, logger *zap.Logger) *HistoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryHandler{history: history, assessments: assessments, logger: logger}
}

// List returns the history oldest first, or newest first with ?order=desc.
func (h *HistoryHandler) List(c *gin.Context) {
	entries := h.history.List(c.Request.Context())

	items := make([]historyItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, historyItem{HistoryEntry: entry, Color: entry.Category.Color()})
	}
	if c.Query("order") == "desc" {
		slices.Reverse(items)
	}

	c.JSON(http.StatusOK, gin.H{"entries": items, "count": len(items)})
}

// Get returns a single entry.
func (h *HistoryHandler) Get(c *gin.Context) {
	entry, ok := h.history.Get(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "history entry not found"})
		return
	}
	c.JSON(http.StatusOK, historyItem{HistoryEntry: entry, Color: entry.Category.Color()})
}

// Recalculate re-runs the calculation stored in an entry.
func (h *HistoryHandler) Recalculate(c *gin.Context) {
	result, err := h.assessments.Recalculate(c.Request.Context(), c.Param("id"))
	if errors.Is(err, assessment.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "history entry not found"})
		return
	}
	if err != nil {
		h.logger.Warn("recalculate failed", zap.String("id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Remove deletes one entry. Unknown ids succeed.
func (h *HistoryHandler) Remove(c *gin.Context) {
	h.history.Remove(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Clear deletes every entry.
func (h *HistoryHandler) Clear(c *gin.Context) {
	h.history.Clear(c.Request.Context())
	h.logger.Info("history cleared")
	c.Status(http.StatusNoContent)
}
