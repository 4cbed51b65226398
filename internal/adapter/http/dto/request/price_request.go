package request

import (
	"strings"

	"aurora_motors/internal/domain/entities"
)

type PriceRequest struct {
	ModelSlug   string   `json:"model_slug" binding:"required"`
	Variant     string   `json:"variant"`
	Color       string   `json:"color"`
	Wheels      string   `json:"wheels"`
	Interior    string   `json:"interior"`
	Packages    []string `json:"packages"`
	Accessories []string `json:"accessories"`
}

func (r PriceRequest) ToSelection() entities.ConfigSelection {
	return entities.ConfigSelection{
		ModelSlug:   strings.TrimSpace(r.ModelSlug),
		Variant:     r.Variant,
		Color:       r.Color,
		Wheels:      r.Wheels,
		Interior:    r.Interior,
		Packages:    r.Packages,
		Accessories: r.Accessories,
	}
}
