package interfaces

import (
	"aurora_motors/internal/domain/entities"
	"context"
)

type IPromotionRepository interface {
	ListActive(ctx context.Context) ([]entities.Promotion, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p entities.Promotion) (string, error)
}
