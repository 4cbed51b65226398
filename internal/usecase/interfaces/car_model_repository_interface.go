package interfaces

import (
	"aurora_motors/internal/domain/entities"
	"context"
)

// ICarModelRepository abstracts persistence for the vehicle catalog.
//
// GetPublishedBySlug returns a zero CarModel and no error when nothing matches.

type ICarModelRepository interface {
	ListPublished(ctx context.Context, filter entities.ModelFilter) ([]entities.CarModel, error)
	GetPublishedBySlug(ctx context.Context, slug string) (entities.CarModel, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, m entities.CarModel) (string, error)
}
