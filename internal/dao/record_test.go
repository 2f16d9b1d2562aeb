package dao

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *CreateRecordRequest {
	return &CreateRecordRequest{
		TreeId:       "oak-42",
		ImageData:    "data:image/jpeg;base64,/9j/4AAQ",
		HealthStatus: "Healthy",
		Timestamp:    "2024-01-01T10:00:00Z",
		Predictions: []PredictionInput{
			{ClassName: "healthy", Probability: 0.95},
			{ClassName: "unhealthy", Probability: 0.05},
		},
	}
}

func TestValidateNamesEveryMissingField(t *testing.T) {
	req := &CreateRecordRequest{TreeId: "oak-42"}

	rec, verr := req.Validate(time.Now())
	require.Nil(t, rec)
	require.NotNil(t, verr)
	assert.Equal(t, []string{"imageData", "healthStatus", "predictions"}, verr.MissingFields)
	assert.Contains(t, verr.Error(), "imageData")
	assert.Contains(t, verr.Error(), "healthStatus")
	assert.Contains(t, verr.Error(), "predictions")
}

func TestValidateRejectsEmptyPredictions(t *testing.T) {
	req := validRequest()
	req.Predictions = []PredictionInput{}

	rec, verr := req.Validate(time.Now())
	require.Nil(t, rec)
	require.NotNil(t, verr)
	assert.Equal(t, []string{"predictions"}, verr.MissingFields)
}

func TestValidateNormalizesHealthStatus(t *testing.T) {
	req := validRequest()
	req.HealthStatus = "HEALTHY"

	rec, verr := req.Validate(time.Now())
	require.Nil(t, verr)
	assert.Equal(t, "healthy", rec.HealthStatus)
}

func TestValidateParsesTimestamp(t *testing.T) {
	req := validRequest()

	rec, verr := req.Validate(time.Now())
	require.Nil(t, verr)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), rec.Timestamp.UTC())
}

func TestValidateDefaultsTimestampAndTreeId(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	req := validRequest()
	req.TreeId = ""
	req.Timestamp = ""

	rec, verr := req.Validate(now)
	require.Nil(t, verr)
	assert.Equal(t, now, rec.Timestamp)
	assert.True(t, strings.HasPrefix(rec.TreeId, "tree-"), "got %q", rec.TreeId)
}

func TestValidateRejectsMalformedTimestamp(t *testing.T) {
	req := validRequest()
	req.Timestamp = "yesterday"

	rec, verr := req.Validate(time.Now())
	require.Nil(t, rec)
	require.NotNil(t, verr)
	assert.Empty(t, verr.MissingFields)
	assert.Contains(t, verr.Error(), "invalid timestamp")
}

func TestValidateCoercesPredictionFields(t *testing.T) {
	req := validRequest()
	req.Predictions = []PredictionInput{
		{ClassName: "healthy", Probability: "0.95"},
		{ClassName: 7, Probability: 1},
		{ClassName: nil, Probability: nil},
	}

	rec, verr := req.Validate(time.Now())
	require.Nil(t, verr)
	require.Len(t, rec.Predictions, 3)
	assert.Equal(t, "healthy", rec.Predictions[0].ClassName)
	assert.InDelta(t, 0.95, rec.Predictions[0].Probability, 1e-9)
	assert.Equal(t, "7", rec.Predictions[1].ClassName)
	assert.InDelta(t, 1.0, rec.Predictions[1].Probability, 1e-9)
	assert.Equal(t, "", rec.Predictions[2].ClassName)
	assert.Equal(t, 0.0, rec.Predictions[2].Probability)
}

func TestValidatePassesProbabilityThrough(t *testing.T) {
	// No clamping: out-of-range values are stored as sent.
	req := validRequest()
	req.Predictions = []PredictionInput{{ClassName: "healthy", Probability: 1.7}}

	rec, verr := req.Validate(time.Now())
	require.Nil(t, verr)
	assert.InDelta(t, 1.7, rec.Predictions[0].Probability, 1e-9)
}

func TestFromRecordModelFormatsTimes(t *testing.T) {
	req := validRequest()
	rec, verr := req.Validate(time.Now())
	require.Nil(t, verr)

	spec := FromRecordModel(rec)
	require.NotNil(t, spec)
	assert.Equal(t, "oak-42", spec.TreeId)
	assert.Equal(t, "2024-01-01T10:00:00Z", spec.Timestamp)
	require.Len(t, spec.Predictions, 2)
	assert.Equal(t, "healthy", spec.Predictions[0].ClassName)
}
