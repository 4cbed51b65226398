package repository

import (
	"context"

	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

// CarModelRepository reads and writes the carmodel collection.
type CarModelRepository struct {
	store documentstore.Store
}

var _ interfaces.ICarModelRepository = (*CarModelRepository)(nil)

func NewCarModelRepository(store documentstore.Store) *CarModelRepository {
	return &CarModelRepository{store: store}
}

func (r *CarModelRepository) ListPublished(ctx context.Context, filter entities.ModelFilter) ([]entities.CarModel, error) {
	docs, err := r.store.Find(ctx, entities.CollectionCarModels, modelQuery(filter), 0)
	if err != nil {
		return nil, err
	}
	return decodeDocuments[entities.CarModel](entities.CollectionCarModels, docs)
}

func (r *CarModelRepository) GetPublishedBySlug(ctx context.Context, slug string) (entities.CarModel, error) {
	docs, err := r.store.Find(ctx, entities.CollectionCarModels, slugQuery(slug), 1)
	if err != nil {
		return entities.CarModel{}, err
	}
	models, err := decodeDocuments[entities.CarModel](entities.CollectionCarModels, docs)
	if err != nil {
		return entities.CarModel{}, err
	}
	if len(models) == 0 {
		return entities.CarModel{}, nil
	}
	return models[0], nil
}

func (r *CarModelRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, entities.CollectionCarModels)
}

func (r *CarModelRepository) Create(ctx context.Context, m entities.CarModel) (string, error) {
	return r.store.Insert(ctx, entities.CollectionCarModels, m)
}

// modelQuery always restricts to published models; every non-empty field of
// f adds an exact-match condition.
func modelQuery(f entities.ModelFilter) documentstore.Filter {
	q := documentstore.Where(documentstore.Eq("published", true))
	if f.BodyType != "" {
		q = q.And(documentstore.Eq("body_type", f.BodyType))
	}
	if f.FuelType != "" {
		q = q.And(documentstore.Eq("fuel_type", f.FuelType))
	}
	return q
}

func slugQuery(slug string) documentstore.Filter {
	return documentstore.Where(
		documentstore.Eq("slug", slug),
		documentstore.Eq("published", true),
	)
}
