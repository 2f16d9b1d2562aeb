package model

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HealthStatusHealthy is the only status the dashboards count as
// healthy; every other (lower-cased) tag counts as unhealthy.
const HealthStatusHealthy = "healthy"

// DefaultListLimit caps a list query when the caller supplies no limit.
const DefaultListLimit = 100

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Prediction struct {
	ClassName   string  `json:"className" bson:"className"`
	Probability float64 `json:"probability" bson:"probability"`
}

// Record is one persisted classification event. Records are immutable
// once stored; there is no update or delete path.
type Record struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TreeId       string             `json:"treeId" bson:"treeId"`
	ImageData    string             `json:"imageData" bson:"imageData"`
	HealthStatus string             `json:"healthStatus" bson:"healthStatus"`
	Timestamp    time.Time          `json:"timestamp" bson:"timestamp"`
	Predictions  []Prediction       `json:"predictions" bson:"predictions"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateRecord inserts rec, assigning its id and createdAt. The record
// is visible to subsequent list calls as soon as this returns.
func (s *Store) CreateRecord(ctx context.Context, rec *Record) error {
	if rec.Id.IsZero() {
		rec.Id = primitive.NewObjectID()
	}
	rec.CreatedAt = time.Now()
	if _, err := s.records.InsertOne(ctx, rec); err != nil {
		return &StorageError{Op: "insert record", Err: err}
	}
	return nil
}

// ListRecords returns up to limit records ordered by timestamp, newest
// first unless asc is requested. An empty collection yields an empty
// slice.
func (s *Store) ListRecords(ctx context.Context, limit int64, order SortOrder) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	dir := -1
	if order == SortAsc {
		dir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: dir}}).
		SetLimit(limit)

	cur, err := s.records.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, &StorageError{Op: "list records", Err: err}
	}
	records := make([]Record, 0, limit)
	if err := cur.All(ctx, &records); err != nil {
		return nil, &StorageError{Op: "decode records", Err: err}
	}
	return records, nil
}

func (s *Store) CountRecords(ctx context.Context) (int64, error) {
	count, err := s.records.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, &StorageError{Op: "count records", Err: err}
	}
	return count, nil
}

// GetRecordById returns nil without error when no record matches.
func (s *Store) GetRecordById(ctx context.Context, id primitive.ObjectID) (*Record, error) {
	var rec Record
	if err := s.records.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, &StorageError{Op: "get record", Err: err}
	}
	return &rec, nil
}
