package repository

import (
	"context"

	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

type DealerRepository struct {
	store documentstore.Store
}

var _ interfaces.IDealerRepository = (*DealerRepository)(nil)

func NewDealerRepository(store documentstore.Store) *DealerRepository {
	return &DealerRepository{store: store}
}

func (r *DealerRepository) List(ctx context.Context, filter entities.DealerFilter) ([]entities.Dealer, error) {
	docs, err := r.store.Find(ctx, entities.CollectionDealers, dealerQuery(filter), 0)
	if err != nil {
		return nil, err
	}
	return decodeDocuments[entities.Dealer](entities.CollectionDealers, docs)
}

func dealerQuery(f entities.DealerFilter) documentstore.Filter {
	var q documentstore.Filter
	if f.City != "" {
		q = q.And(documentstore.ContainsFold("city", f.City))
	}
	if f.Zip != "" {
		q = q.And(documentstore.Eq("zip", f.Zip))
	}
	return q
}
