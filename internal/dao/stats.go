package dao

import (
	"treense/internal/analytics"
)

type SummaryRequest struct {
	Limit int `json:"limit" form:"limit" binding:"min=0,max=1000"`
}

// SummaryResponse aggregates the same visible window the list endpoint
// serves, so dashboard totals always match the displayed record set.
type SummaryResponse struct {
	TotalRecords   int                     `json:"totalRecords"`
	HealthyCount   int                     `json:"healthyCount"`
	UnhealthyCount int                     `json:"unhealthyCount"`
	DailyAnalysis  []analytics.DailyBucket `json:"dailyAnalysis"`
}
