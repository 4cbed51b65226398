package database

import (
	"context"
	"fmt"
	"log"

	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/config"
	"aurora_motors/internal/domain/entities"
)

// Collections lists every collection the API reads or writes.
var Collections = []string{
	entities.CollectionCarModels,
	entities.CollectionPromotions,
	entities.CollectionDealers,
	entities.CollectionLeads,
}

// OpenStore returns the document store selected by cfg.
//
// Without DATABASE_NAME the API still starts; every storage operation then
// fails with ErrStorageUnavailable.
func OpenStore(ctx context.Context, cfg *config.Config) (documentstore.Store, error) {
	if !cfg.StorageEnabled() {
		log.Printf("[storage] DATABASE_NAME not set; storage disabled")
		return documentstore.DisabledStore{}, nil
	}

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Printf("[storage] using in-memory store database=%s", cfg.DatabaseName)
		return documentstore.NewMemoryStore(cfg.DatabaseName), nil
	case config.StorageDriverDynamoDB:
		client, err := NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("dynamodb client: %w", err)
		}
		store := documentstore.NewDynamoStore(client, cfg.DatabaseName, cfg.DatabaseURL)
		if cfg.DatabaseAutoCreate {
			if err := store.EnsureCollections(ctx, Collections...); err != nil {
				// The API stays up; requests report 503 until the tables exist.
				log.Printf("[storage] ensure tables failed database=%s err=%v", cfg.DatabaseName, err)
			}
		}
		log.Printf("[storage] using dynamodb database=%s endpoint=%q", cfg.DatabaseName, cfg.DatabaseURL)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
