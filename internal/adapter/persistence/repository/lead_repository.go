package repository

import (
	"context"

	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

type LeadRepository struct {
	store documentstore.Store
}

var _ interfaces.ILeadRepository = (*LeadRepository)(nil)

func NewLeadRepository(store documentstore.Store) *LeadRepository {
	return &LeadRepository{store: store}
}

func (r *LeadRepository) Create(ctx context.Context, l entities.Lead) (string, error) {
	return r.store.Insert(ctx, entities.CollectionLeads, l)
}
