package request

import (
	"strings"

	"aurora_motors/internal/domain/entities"
)

// ModelQuery binds the optional /models query string.
type ModelQuery struct {
	BodyType string `form:"body_type"`
	FuelType string `form:"fuel_type"`
}

func (q ModelQuery) ToFilter() entities.ModelFilter {
	return entities.ModelFilter{
		BodyType: strings.TrimSpace(q.BodyType),
		FuelType: strings.TrimSpace(q.FuelType),
	}
}

// DealerQuery binds the optional /dealers query string.
type DealerQuery struct {
	City string `form:"city"`
	Zip  string `form:"zip"`
}

func (q DealerQuery) ToFilter() entities.DealerFilter {
	return entities.DealerFilter{
		City: strings.TrimSpace(q.City),
		Zip:  strings.TrimSpace(q.Zip),
	}
}
