package repository

import (
	"context"

	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

type PromotionRepository struct {
	store documentstore.Store
}

var _ interfaces.IPromotionRepository = (*PromotionRepository)(nil)

func NewPromotionRepository(store documentstore.Store) *PromotionRepository {
	return &PromotionRepository{store: store}
}

func (r *PromotionRepository) ListActive(ctx context.Context) ([]entities.Promotion, error) {
	docs, err := r.store.Find(ctx, entities.CollectionPromotions, documentstore.Where(documentstore.Eq("active", true)), 0)
	if err != nil {
		return nil, err
	}
	return decodeDocuments[entities.Promotion](entities.CollectionPromotions, docs)
}

func (r *PromotionRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, entities.CollectionPromotions)
}

func (r *PromotionRepository) Create(ctx context.Context, p entities.Promotion) (string, error) {
	return r.store.Insert(ctx, entities.CollectionPromotions, p)
}
