package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

var ErrInvalidSelection = errors.New("invalid configuration selection")

// IPricingUseCase prices a configurator selection. It is stateless.

type IPricingUseCase interface {
	Calculate(ctx context.Context, sel entities.ConfigSelection) (entities.PriceQuote, error)
}

type PricingUseCase struct {
	models interfaces.ICarModelRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(models interfaces.ICarModelRepository) *PricingUseCase {
	return &PricingUseCase{models: models}
}

func (u *PricingUseCase) Calculate(ctx context.Context, sel entities.ConfigSelection) (entities.PriceQuote, error) {
	sel.ModelSlug = strings.TrimSpace(sel.ModelSlug)
	if err := entities.Validate(sel); err != nil {
		return entities.PriceQuote{}, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	m, err := u.models.GetPublishedBySlug(ctx, sel.ModelSlug)
	if err != nil {
		return entities.PriceQuote{}, err
	}
	if m.Slug == "" {
		return entities.PriceQuote{}, ErrModelNotFound
	}
	return entities.QuotePrice(m, sel), nil
}
