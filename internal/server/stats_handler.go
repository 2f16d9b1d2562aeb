package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"treense/internal/analytics"
	"treense/internal/dao"
	"treense/internal/model"
)

// handleRecordsSummary aggregate the visible record window
// @Summary Health counts and daily trend
// @Description Aggregates the same newest-first window the list endpoint serves into total/healthy/unhealthy counts plus per-day buckets
// @Tags records
// @Accept json
// @Produce json
// @Param limit query int false "max records to aggregate" default(100)
// @Success 200 {object} dao.SummaryResponse "summary"
// @Failure 400 {object} ErrorResponse "invalid query"
// @Failure 500 {object} ErrorResponse "storage unavailable"
// @Router /api/v1/records/summary [get]
func (s *Server) handleRecordsSummary(c *gin.Context) {
	var req dao.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = model.DefaultListLimit
	}

	records, err := s.store.ListRecords(c.Request.Context(), int64(req.Limit), model.SortDesc)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	summary := analytics.Summarize(records)
	c.JSON(http.StatusOK, dao.SummaryResponse{
		TotalRecords:   summary.TotalRecords,
		HealthyCount:   summary.HealthyCount,
		UnhealthyCount: summary.UnhealthyCount,
		DailyAnalysis:  analytics.BucketByDay(records),
	})
}
