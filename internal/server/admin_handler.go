package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"treense/internal/model"
	"treense/pkg/str"
)

// Minimal valid JPEG payload for smoke-testing the write path.
const seedImageData = "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQEASABIAAD"

// handleSeedRecord insert a canned test record
// @Summary Insert a canned test record
// @Description Writes one healthy sample record so the dashboard and write path can be verified end to end
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 "inserted"
// @Failure 500 {object} ErrorResponse "storage unavailable"
// @Router /api/v1/admin/records/seed [post]
func (s *Server) handleSeedRecord(c *gin.Context) {
	now := time.Now()
	rec := &model.Record{
		TreeId:       str.GenTreeId(now),
		ImageData:    seedImageData,
		HealthStatus: model.HealthStatusHealthy,
		Timestamp:    now,
		Predictions: []model.Prediction{
			{ClassName: model.HealthStatusHealthy, Probability: 0.95},
		},
	}

	if err := s.store.CreateRecord(c.Request.Context(), rec); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      rec.Id.Hex(),
	})
}
