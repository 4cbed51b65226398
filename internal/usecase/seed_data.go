package usecase

import "aurora_motors/internal/domain/entities"

func demoModels() []entities.CarModel {
	return []entities.CarModel{
		{
			Name:       "Aurora Flux",
			Slug:       "aurora-flux",
			BodyType:   "Sedan",
			FuelType:   "EV",
			Summary:    "A sleek electric sedan blending performance and efficiency.",
			PriceRange: &entities.PriceRange{Min: 39999, Max: 55999, Currency: "USD"},
			HeroImage:  "/assets/flux-hero.jpg",
			Gallery:    []entities.MediaAsset{{URL: "/assets/flux-1.jpg", Type: "image"}},
			Variants: []entities.Variant{
				{Name: "Standard", Engine: "Dual Motor", Transmission: "Single Speed", Drivetrain: "AWD", Price: 39999},
				{Name: "Performance", Engine: "Tri-Motor", Transmission: "Single Speed", Drivetrain: "AWD", Price: 52999},
			},
			Colors:       []string{"Onyx Black", "Glacier White", "Crimson Red"},
			Wheels:       []string{`18" Aero`, `20" Sport`},
			Interiors:    []string{"Black Tech", "Stone Grey"},
			Packages:     []string{"Pilot Assist", "Premium Sound"},
			Accessories:  []string{"Roof Rack", "All-Weather Mats"},
			RelatedSlugs: []string{},
			Published:    true,
		},
		{
			Name:       "Aurora Trail",
			Slug:       "aurora-trail",
			BodyType:   "SUV",
			FuelType:   "Hybrid",
			Summary:    "Versatile hybrid SUV ready for the city or the wild.",
			PriceRange: &entities.PriceRange{Min: 32999, Max: 44999, Currency: "USD"},
			HeroImage:  "/assets/trail-hero.jpg",
			Gallery:    []entities.MediaAsset{{URL: "/assets/trail-1.jpg", Type: "image"}},
			Variants: []entities.Variant{
				{Name: "Eco", Engine: "1.6L Hybrid", Transmission: "CVT", Drivetrain: "FWD", Price: 32999},
				{Name: "Adventure", Engine: "2.0L Hybrid", Transmission: "CVT", Drivetrain: "AWD", Price: 41999},
			},
			Colors:       []string{"Forest Green", "Canyon Sand", "Glacier White"},
			Wheels:       []string{`17" Terrain`, `19" Premium`},
			Interiors:    []string{"Charcoal", "Saddle"},
			Packages:     []string{"Tow Pack", "Terrain Pro"},
			Accessories:  []string{"Cargo Liner", "Cross Bars"},
			RelatedSlugs: []string{"aurora-flux"},
			Published:    true,
		},
	}
}

func demoPromotions() []entities.Promotion {
	return []entities.Promotion{
		{Title: "0.99% APR for 36 months", Description: "Limited-time financing on select models.", Active: true},
		{Title: "Year-End Event", Description: "Save up to $2,500 on in-stock vehicles.", Active: true},
	}
}
