package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treense/internal/model"
)

func rec(status string, ts time.Time) model.Record {
	return model.Record{
		TreeId:       "tree-test",
		ImageData:    "data:image/jpeg;base64,/9j/4AAQ",
		HealthStatus: status,
		Timestamp:    ts,
		Predictions:  []model.Prediction{{ClassName: status, Probability: 0.9}},
	}
}

// Local noon keeps every record on the same calendar date regardless of
// the zone the tests run in.
func day(yearDay int) time.Time {
	return time.Date(2024, 1, yearDay, 12, 0, 0, 0, time.Local)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)

	s = Summarize([]model.Record{})
	assert.Equal(t, 0, s.TotalRecords)
	assert.Equal(t, 0, s.HealthyCount)
	assert.Equal(t, 0, s.UnhealthyCount)
}

func TestSummarizeBinaryPartition(t *testing.T) {
	records := []model.Record{
		rec("healthy", day(1)),
		rec("unhealthy", day(1)),
		rec("wilted", day(2)),
		rec("healthy", day(3)),
	}

	s := Summarize(records)
	assert.Equal(t, 4, s.TotalRecords)
	assert.Equal(t, 2, s.HealthyCount)
	// Anything that is not exactly "healthy" counts as unhealthy,
	// including unrecognized tags.
	assert.Equal(t, 2, s.UnhealthyCount)
	assert.Equal(t, s.TotalRecords, s.HealthyCount+s.UnhealthyCount)
}

func TestSummarizeCaseSensitiveAfterNormalization(t *testing.T) {
	// The store lower-cases statuses before they reach aggregation; a
	// value that slipped through un-normalized must not count as healthy.
	s := Summarize([]model.Record{rec("Healthy", day(1))})
	assert.Equal(t, 0, s.HealthyCount)
	assert.Equal(t, 1, s.UnhealthyCount)
}

func TestBucketByDayGroupsByDate(t *testing.T) {
	records := []model.Record{
		rec("healthy", day(2)),
		rec("unhealthy", day(2)),
		rec("healthy", day(1)),
	}

	buckets := BucketByDay(records)
	require.Len(t, buckets, 2)

	assert.Equal(t, DateKey(day(2)), buckets[0].Date)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 1, buckets[0].HealthyCount)
	assert.Equal(t, 1, buckets[0].UnhealthyCount)

	assert.Equal(t, DateKey(day(1)), buckets[1].Date)
	assert.Equal(t, 1, buckets[1].Count)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, len(records), total)
}

func TestBucketByDayFirstEncounterOrder(t *testing.T) {
	// Bucket order follows the input, not the calendar.
	records := []model.Record{
		rec("healthy", day(3)),
		rec("healthy", day(1)),
		rec("healthy", day(3)),
		rec("healthy", day(2)),
	}

	buckets := BucketByDay(records)
	require.Len(t, buckets, 3)
	assert.Equal(t, DateKey(day(3)), buckets[0].Date)
	assert.Equal(t, DateKey(day(1)), buckets[1].Date)
	assert.Equal(t, DateKey(day(2)), buckets[2].Date)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestBucketByDayEmpty(t *testing.T) {
	buckets := BucketByDay(nil)
	require.NotNil(t, buckets)
	assert.Len(t, buckets, 0)
}

func TestAggregationIsIdempotent(t *testing.T) {
	records := []model.Record{
		rec("healthy", day(1)),
		rec("unhealthy", day(2)),
		rec("healthy", day(2)),
	}

	require.Equal(t, Summarize(records), Summarize(records))
	require.Equal(t, BucketByDay(records), BucketByDay(records))
}
