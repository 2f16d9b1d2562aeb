package model

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"treense/internal/config"
)

// StorageError marks a failure of the persistence layer, as opposed to a
// caller mistake. Callers may retry later; handlers map it to a 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store is an explicitly constructed handle over the record collection.
// It is opened once at process start, injected into the server, and
// closed at shutdown.
type Store struct {
	client  *mongo.Client
	records *mongo.Collection
}

func OpenStore(ctx context.Context, conf config.DBConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(conf.URI).
		SetMaxPoolSize(uint64(conf.MaxPoolSize)).
		SetServerSelectionTimeout(time.Duration(conf.ConnectTimeout) * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, &StorageError{Op: "connect", Err: err}
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, &StorageError{Op: "ping", Err: err}
	}

	return &Store{
		client:  client,
		records: client.Database(conf.Database).Collection(conf.Collection),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}
