package documentstore

import (
	"context"
	"errors"
	"fmt"

	"aurora_motors/internal/usecase/interfaces"
)

// Supported drivers.
const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

var errStoreClosed = errors.New("store closed")

// Store is a schemaless collection store. Implementations are safe for
// concurrent use.
type Store interface {
	// Insert stores doc in collection and returns its identifier. A UUID is
	// assigned when doc has no "id" attribute.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Find returns the documents matching filter in storage order. limit <= 0
	// means no cap. A collection that does not exist reads as empty.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	Count(ctx context.Context, collection string) (int, error)
	Collections(ctx context.Context) ([]string, error)
	Info() interfaces.StorageInfo
	Close(ctx context.Context) error
}

func unavailable(op, collection string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", interfaces.ErrStorageUnavailable, op, collection, err)
}

// DisabledStore is used when no database is configured. Every operation
// fails with ErrStorageUnavailable.
type DisabledStore struct{}

var _ Store = DisabledStore{}

func (DisabledStore) Insert(context.Context, string, any) (string, error) {
	return "", fmt.Errorf("%w: database not configured", interfaces.ErrStorageUnavailable)
}

func (DisabledStore) Find(context.Context, string, Filter, int) ([]Document, error) {
	return nil, fmt.Errorf("%w: database not configured", interfaces.ErrStorageUnavailable)
}

func (DisabledStore) Count(context.Context, string) (int, error) {
	return 0, fmt.Errorf("%w: database not configured", interfaces.ErrStorageUnavailable)
}

func (DisabledStore) Collections(context.Context) ([]string, error) {
	return nil, fmt.Errorf("%w: database not configured", interfaces.ErrStorageUnavailable)
}

func (DisabledStore) Info() interfaces.StorageInfo {
	return interfaces.StorageInfo{Driver: "none"}
}

func (DisabledStore) Close(context.Context) error { return nil }
