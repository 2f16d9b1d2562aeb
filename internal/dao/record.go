package dao

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"treense/internal/model"
	"treense/pkg/str"
)

// ValidationError reports a rejected create request. MissingFields names
// every required field that was absent or empty, not just the first.
type ValidationError struct {
	MissingFields []string
	Reason        string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return "missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	return e.Reason
}

// PredictionInput keeps className and probability untyped so that
// clients sending numbers as strings (or vice versa) are coerced instead
// of rejected.
type PredictionInput struct {
	ClassName   any `json:"className"`
	Probability any `json:"probability"`
}

type CreateRecordRequest struct {
	TreeId       string            `json:"treeId"`
	ImageData    string            `json:"imageData"`
	HealthStatus string            `json:"healthStatus"`
	Timestamp    string            `json:"timestamp"`
	Predictions  []PredictionInput `json:"predictions"`
}

// Validate checks the request against the record schema and returns the
// normalized record ready for insertion, or a ValidationError. The
// health status is lower-cased, a missing treeId gets a time-derived
// one, and a missing timestamp defaults to now.
func (req *CreateRecordRequest) Validate(now time.Time) (*model.Record, *ValidationError) {
	missing := make([]string, 0, 3)
	if req.ImageData == "" {
		missing = append(missing, "imageData")
	}
	if req.HealthStatus == "" {
		missing = append(missing, "healthStatus")
	}
	if len(req.Predictions) == 0 {
		missing = append(missing, "predictions")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	ts := now
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("invalid timestamp: %v", err)}
		}
		ts = parsed
	}

	treeId := req.TreeId
	if treeId == "" {
		treeId = str.GenTreeId(now)
	}

	rec := &model.Record{
		TreeId:       treeId,
		ImageData:    req.ImageData,
		HealthStatus: strings.ToLower(req.HealthStatus),
		Timestamp:    ts,
		Predictions:  make([]model.Prediction, 0, len(req.Predictions)),
	}
	for _, p := range req.Predictions {
		rec.Predictions = append(rec.Predictions, model.Prediction{
			ClassName:   toString(p.ClassName),
			Probability: toFloat64(p.Probability),
		})
	}
	return rec, nil
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func toFloat64(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return 0
	}
}

type PredictionSpec struct {
	ClassName   string  `json:"className"`
	Probability float64 `json:"probability"`
}

type RecordSpec struct {
	Id           string           `json:"id"`
	TreeId       string           `json:"treeId"`
	ImageData    string           `json:"imageData"`
	HealthStatus string           `json:"healthStatus"`
	Timestamp    string           `json:"timestamp"`
	Predictions  []PredictionSpec `json:"predictions"`
	CreatedAt    string           `json:"createdAt"`
}

func FromRecordModel(m *model.Record) *RecordSpec {
	if m == nil {
		return nil
	}
	spec := &RecordSpec{
		Id:           m.Id.Hex(),
		TreeId:       m.TreeId,
		ImageData:    m.ImageData,
		HealthStatus: m.HealthStatus,
		Timestamp:    m.Timestamp.Format(time.RFC3339),
		Predictions:  make([]PredictionSpec, 0, len(m.Predictions)),
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
	for _, p := range m.Predictions {
		spec.Predictions = append(spec.Predictions, PredictionSpec{
			ClassName:   p.ClassName,
			Probability: p.Probability,
		})
	}
	return spec
}

type CreateRecordResponse struct {
	Success bool        `json:"success"`
	Id      string      `json:"id"`
	Record  *RecordSpec `json:"record"`
}

type ListRecordsRequest struct {
	Limit int    `json:"limit" form:"limit" binding:"min=0,max=1000"`
	Sort  string `json:"sort" form:"sort" binding:"omitempty,sortorder"`
}

type ListRecordsResponse struct {
	Success bool         `json:"success"`
	Count   int64        `json:"count"`
	Data    []RecordSpec `json:"data"`
}
