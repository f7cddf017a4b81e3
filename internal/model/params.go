package model

// CreatePartParams carries the boundary-validated fields for part creation.
// Flexible attributes (categories, specifications, compatibility, brand) are
// not settable through the write API.
type CreatePartParams struct {
	Name             string
	Description      string
	ManufacturerCode string
	Price            float64
	Quantity         int64
	// MinQuantity overrides DefaultMinQuantity when present.
	MinQuantity *int64
}

// UpdatePartParams fully overwrites the five mutable part fields;
// MinQuantity is applied only when present.
type UpdatePartParams struct {
	Name             string
	Description      string
	ManufacturerCode string
	Price            float64
	Quantity         int64
	MinQuantity      *int64
}

type CreateServiceParams struct {
	Name             string
	Description      string
	Price            float64
	EstimatedMinutes int64
}

// UpdateServiceParams fully overwrites name, description, price and
// estimated duration.
type UpdateServiceParams struct {
	Name             string
	Description      string
	Price            float64
	EstimatedMinutes int64
}
