package entities

import "strings"

// Flat option surcharges applied by the configurator.
const (
	FinishSurcharge     = 500.0
	LargeWheelSurcharge = 1200.0
	LeatherSurcharge    = 800.0
	PackageSurcharge    = 1500.0
	AccessorySurcharge  = 200.0
)

// ConfigSelection is a configurator choice. It is never persisted.
type ConfigSelection struct {
	ModelSlug   string   `json:"model_slug" validate:"required"`
	Variant     string   `json:"variant,omitempty"`
	Color       string   `json:"color,omitempty"`
	Wheels      string   `json:"wheels,omitempty"`
	Interior    string   `json:"interior,omitempty"`
	Packages    []string `json:"packages,omitempty"`
	Accessories []string `json:"accessories,omitempty"`
}

// PriceQuote is the configurator result. Total is always Base + Extras.
type PriceQuote struct {
	Base   float64 `json:"base"`
	Extras float64 `json:"extras"`
	Total  float64 `json:"total"`
}

// QuotePrice prices sel against model.
//
// The base is the selected variant price; when that is zero or the variant is
// unknown it falls back to the advertised minimum price.
func QuotePrice(model CarModel, sel ConfigSelection) PriceQuote {
	base := 0.0
	if sel.Variant != "" {
		if v, ok := model.VariantByName(sel.Variant); ok {
			base = v.Price
		}
	}
	if base == 0 && model.PriceRange != nil {
		base = model.PriceRange.Min
	}

	extras := 0.0
	if strings.Contains(sel.Color, "Pearl") || strings.Contains(sel.Color, "Metallic") {
		extras += FinishSurcharge
	}
	if strings.Contains(sel.Wheels, "20") || strings.Contains(sel.Wheels, "19") {
		extras += LargeWheelSurcharge
	}
	if strings.Contains(sel.Interior, "Leather") {
		extras += LeatherSurcharge
	}
	extras += PackageSurcharge * float64(len(sel.Packages))
	extras += AccessorySurcharge * float64(len(sel.Accessories))

	return PriceQuote{Base: base, Extras: extras, Total: base + extras}
}
