package usecase

import (
	"context"
	"errors"
	"strings"

	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

var (
	ErrModelNotFound = errors.New("model not found")
	ErrInvalidSlug   = errors.New("invalid slug")
)

// ICatalogUseCase exposes the public read side: vehicles, promotions and dealers.
//
// Every read only sees published models and active promotions.

type ICatalogUseCase interface {
	ListModels(ctx context.Context, filter entities.ModelFilter) ([]entities.CarModel, error)
	GetModelBySlug(ctx context.Context, slug string) (entities.CarModel, error)
	ListPromotions(ctx context.Context) ([]entities.Promotion, error)
	ListDealers(ctx context.Context, filter entities.DealerFilter) ([]entities.Dealer, error)
}

type CatalogUseCase struct {
	models     interfaces.ICarModelRepository
	promotions interfaces.IPromotionRepository
	dealers    interfaces.IDealerRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(models interfaces.ICarModelRepository, promotions interfaces.IPromotionRepository, dealers interfaces.IDealerRepository) *CatalogUseCase {
	return &CatalogUseCase{models: models, promotions: promotions, dealers: dealers}
}

func (u *CatalogUseCase) ListModels(ctx context.Context, filter entities.ModelFilter) ([]entities.CarModel, error) {
	return u.models.ListPublished(ctx, filter)
}

func (u *CatalogUseCase) GetModelBySlug(ctx context.Context, slug string) (entities.CarModel, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.CarModel{}, ErrInvalidSlug
	}

	m, err := u.models.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return entities.CarModel{}, err
	}
	if m.Slug == "" {
		return entities.CarModel{}, ErrModelNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) ListPromotions(ctx context.Context) ([]entities.Promotion, error) {
	return u.promotions.ListActive(ctx)
}

func (u *CatalogUseCase) ListDealers(ctx context.Context, filter entities.DealerFilter) ([]entities.Dealer, error) {
	return u.dealers.List(ctx, filter)
}
