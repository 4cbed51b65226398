package interfaces

import (
	"aurora_motors/internal/domain/entities"
	"context"
)

type IDealerRepository interface {
	List(ctx context.Context, filter entities.DealerFilter) ([]entities.Dealer, error)
}
