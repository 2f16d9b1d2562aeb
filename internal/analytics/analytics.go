// Package analytics turns record snapshots into the counts and daily
// trend the admin dashboard renders. Both transforms are pure functions
// of their input: no I/O, no hidden state.
package analytics

import (
	"time"

	"treense/internal/model"
)

const dateLayout = "2006-01-02"

type Summary struct {
	TotalRecords   int `json:"totalRecords"`
	HealthyCount   int `json:"healthyCount"`
	UnhealthyCount int `json:"unhealthyCount"`
}

// Summarize partitions records two ways: an exact "healthy" status
// counts as healthy, every other status counts as unhealthy. There is
// deliberately no third bucket for unrecognized tags; the dashboard has
// always shown a binary split.
func Summarize(records []model.Record) Summary {
	s := Summary{TotalRecords: len(records)}
	for _, r := range records {
		if r.HealthStatus == model.HealthStatusHealthy {
			s.HealthyCount++
		} else {
			s.UnhealthyCount++
		}
	}
	return s
}

type DailyBucket struct {
	Date           string `json:"date"`
	Count          int    `json:"count"`
	HealthyCount   int    `json:"healthyCount"`
	UnhealthyCount int    `json:"unhealthyCount"`
}

// BucketByDay groups records by the local calendar date of their
// timestamp, one bucket per distinct date in first-encounter order. A
// newest-first input therefore yields newest-first buckets; callers that
// need a chronological axis must sort the result themselves.
func BucketByDay(records []model.Record) []DailyBucket {
	buckets := make([]DailyBucket, 0, 8)
	index := make(map[string]int, 8)
	for _, r := range records {
		date := DateKey(r.Timestamp)
		i, ok := index[date]
		if !ok {
			i = len(buckets)
			index[date] = i
			buckets = append(buckets, DailyBucket{Date: date})
		}
		buckets[i].Count++
		if r.HealthStatus == model.HealthStatusHealthy {
			buckets[i].HealthyCount++
		} else {
			buckets[i].UnhealthyCount++
		}
	}
	return buckets
}

// DateKey is the bucketing key: the calendar date of t in the
// aggregating process's local time zone.
func DateKey(t time.Time) string {
	return t.Local().Format(dateLayout)
}
