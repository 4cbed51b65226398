package entities

import "encoding/json"

const CollectionPromotions = "promotion"

// Promotion is a marketing offer. Inactive promotions are never exposed.
type Promotion struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Badge       string `json:"badge,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Link        string `json:"link,omitempty"`
	Active      bool   `json:"active"`
}

func (p *Promotion) UnmarshalJSON(b []byte) error {
	type alias Promotion
	out := alias{Active: true}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*p = Promotion(out)
	return nil
}
