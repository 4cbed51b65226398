package usecase

import (
	"context"
	"log"

	"aurora_motors/internal/usecase/interfaces"
)

// ISeedUseCase fills empty collections with demo content.

type ISeedUseCase interface {
	Seed(ctx context.Context) (int, error)
}

type SeedUseCase struct {
	models     interfaces.ICarModelRepository
	promotions interfaces.IPromotionRepository
}

var _ ISeedUseCase = (*SeedUseCase)(nil)

func NewSeedUseCase(models interfaces.ICarModelRepository, promotions interfaces.IPromotionRepository) *SeedUseCase {
	return &SeedUseCase{models: models, promotions: promotions}
}

// Seed inserts the demo models when the catalog is empty and the demo
// promotions when there are none, and returns how many documents it wrote.
// Collections that already hold documents are left alone.
func (u *SeedUseCase) Seed(ctx context.Context) (int, error) {
	inserted := 0

	existing, err := u.models.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing == 0 {
		for _, m := range demoModels() {
			if _, err := u.models.Create(ctx, m); err != nil {
				log.Printf("[seed][usecase] insert model failed slug=%s inserted=%d err=%v", m.Slug, inserted, err)
				return inserted, err
			}
			inserted++
		}
	}

	existing, err = u.promotions.Count(ctx)
	if err != nil {
		return inserted, err
	}
	if existing == 0 {
		for _, p := range demoPromotions() {
			if _, err := u.promotions.Create(ctx, p); err != nil {
				log.Printf("[seed][usecase] insert promotion failed title=%q inserted=%d err=%v", p.Title, inserted, err)
				return inserted, err
			}
			inserted++
		}
	}

	log.Printf("[seed][usecase] done inserted=%d", inserted)
	return inserted, nil
}
