package entities

const CollectionDealers = "dealer"

// Dealer is a physical sales location.
type Dealer struct {
	Name    string         `json:"name" validate:"required"`
	City    string         `json:"city" validate:"required"`
	State   string         `json:"state,omitempty"`
	Zip     string         `json:"zip,omitempty"`
	Address string         `json:"address,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Email   string         `json:"email,omitempty" validate:"omitempty,email"`
	Hours   map[string]any `json:"hours"`
	Lat     *float64       `json:"lat,omitempty"`
	Lng     *float64       `json:"lng,omitempty"`
}
