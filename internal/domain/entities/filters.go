package entities

// ModelFilter holds the optional catalog filters. Empty fields are ignored.
type ModelFilter struct {
	BodyType string
	FuelType string
}

// DealerFilter holds the optional dealer locator filters.
//
// City matches as a case-insensitive substring, Zip must match exactly.
type DealerFilter struct {
	City string
	Zip  string
}
