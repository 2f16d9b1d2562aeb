package model

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treense/internal/config"
)

// Integration test against a live mongod. Set TREENSE_TEST_MONGO_URI to
// run it, e.g. TREENSE_TEST_MONGO_URI=mongodb://127.0.0.1:27017.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("TREENSE_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TREENSE_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	store, err := OpenStore(ctx, config.DBConfig{
		URI:            uri,
		Database:       "treense-test",
		Collection:     fmt.Sprintf("treeRecords-%d", time.Now().UnixNano()),
		MaxPoolSize:    4,
		ConnectTimeout: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.records.Drop(context.Background())
		_ = store.Close(context.Background())
	})
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	first := &Record{
		TreeId:       "oak-1",
		ImageData:    "abc",
		HealthStatus: "healthy",
		Timestamp:    base,
		Predictions:  []Prediction{{ClassName: "healthy", Probability: 0.95}},
	}
	second := &Record{
		TreeId:       "oak-2",
		ImageData:    "def",
		HealthStatus: "unhealthy",
		Timestamp:    base.Add(time.Hour),
		Predictions:  []Prediction{{ClassName: "unhealthy", Probability: 0.8}},
	}

	require.NoError(t, store.CreateRecord(ctx, first))
	require.NoError(t, store.CreateRecord(ctx, second))
	assert.False(t, first.Id.IsZero())
	assert.False(t, first.CreatedAt.IsZero())

	count, err := store.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	records, err := store.ListRecords(ctx, 0, SortDesc)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "oak-2", records[0].TreeId)
	assert.Equal(t, "oak-1", records[1].TreeId)
	require.Len(t, records[1].Predictions, 1)
	assert.InDelta(t, 0.95, records[1].Predictions[0].Probability, 1e-9)

	records, err = store.ListRecords(ctx, 1, SortAsc)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "oak-1", records[0].TreeId)

	got, err := store.GetRecordById(ctx, first.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "oak-1", got.TreeId)
}

func TestStoreListEmpty(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ListRecords(context.Background(), 0, SortDesc)
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Len(t, records, 0)
}
