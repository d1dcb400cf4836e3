package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/service/bmi"
	"github.com/mamadbah2/bmicare/internal/service/knowledge"
)

type categoryView struct {
	models.CategoryInfo
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Categories returns the category table with its BMI ranges.
func Categories(c *gin.Context) {
	ranges := bmi.Ranges()
	out := make([]categoryView, 0, len(models.Categories))
	for _, category := range models.Categories {
		info, _ := category.Info()
		view := categoryView{CategoryInfo: info}
		for _, r := range ranges {
			if r.Category == info.Category {
				view.Min, view.Max = r.Min, r.Max
			}
		}
		out = append(out, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": out,
		"gauge": gin.H{
			"min":    bmi.GaugeMin,
			"max":    bmi.GaugeMax,
			"ranges": ranges,
		},
	})
}

// Knowledge returns the reproductive-health entry for :category.
func Knowledge(c *gin.Context) {
	impact, ok := knowledge.Find(models.Category(c.Param("category")))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown category", Details: c.Param("category")})
		return
	}
	c.JSON(http.StatusOK, impact)
}
