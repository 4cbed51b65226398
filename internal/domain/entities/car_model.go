package entities

import "encoding/json"

// CollectionCarModels is the document collection holding catalog vehicles.
const CollectionCarModels = "carmodel"

// Variant is a trim of a vehicle with its own base price.
type Variant struct {
	Name         string  `json:"name" validate:"required"`
	Engine       string  `json:"engine" validate:"required"`
	Transmission string  `json:"transmission" validate:"required"`
	Drivetrain   string  `json:"drivetrain,omitempty"`
	Price        float64 `json:"price" validate:"gte=0"`
}

// Spec groups the technical sheet of a model. Its maps are free-form.
type Spec struct {
	Dimensions  map[string]any `json:"dimensions"`
	Engine      map[string]any `json:"engine"`
	Performance map[string]any `json:"performance"`
	Safety      []string       `json:"safety"`
	Features    []string       `json:"features"`
}

// MediaAsset references an image, video or document hosted elsewhere.
type MediaAsset struct {
	URL       string `json:"url" validate:"required"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (a *MediaAsset) UnmarshalJSON(b []byte) error {
	type alias MediaAsset
	out := alias{Type: "image"}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*a = MediaAsset(out)
	return nil
}

// PriceRange is the advertised price band of a model.
type PriceRange struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gte=0"`
	Currency string  `json:"currency"`
}

func (p *PriceRange) UnmarshalJSON(b []byte) error {
	type alias PriceRange
	out := alias{Currency: "USD"}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*p = PriceRange(out)
	return nil
}

// CarModel is a vehicle listing. Only published models are visible publicly.
type CarModel struct {
	Name         string       `json:"name" validate:"required"`
	Slug         string       `json:"slug" validate:"required"`
	BodyType     string       `json:"body_type" validate:"required"`
	FuelType     string       `json:"fuel_type" validate:"required"`
	HeroImage    string       `json:"hero_image,omitempty"`
	Gallery      []MediaAsset `json:"gallery" validate:"dive"`
	BrochureURL  string       `json:"brochure_url,omitempty"`
	Summary      string       `json:"summary,omitempty"`
	Specs        *Spec        `json:"specs,omitempty"`
	PriceRange   *PriceRange  `json:"price_range,omitempty"`
	Variants     []Variant    `json:"variants" validate:"dive"`
	Colors       []string     `json:"colors"`
	Wheels       []string     `json:"wheels"`
	Interiors    []string     `json:"interiors"`
	Packages     []string     `json:"packages"`
	Accessories  []string     `json:"accessories"`
	RelatedSlugs []string     `json:"related_slugs"`
	Published    bool         `json:"published"`
}

func (m *CarModel) UnmarshalJSON(b []byte) error {
	type alias CarModel
	out := alias{Published: true}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*m = CarModel(out)
	return nil
}

// VariantByName returns the variant with an exactly matching name.
func (m CarModel) VariantByName(name string) (Variant, bool) {
	for _, v := range m.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
