package http

// PartRequest is the write shape for both creation and full update.
// Flexible attributes (categories, specifications, compatibility, brand)
// are read-only through this API.
type PartRequest struct {
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description"`
	ManufacturerCode string  `json:"manufacturer_code" validate:"required"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	Quantity         int64   `json:"quantity" validate:"required,gt=0"`
	MinQuantity      *int64  `json:"min_quantity,omitempty" validate:"omitempty,gt=0"`
}

type PartResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	ManufacturerCode string         `json:"manufacturer_code"`
	Price            float64        `json:"price"`
	Quantity         int64          `json:"quantity"`
	MinQuantity      int64          `json:"min_quantity"`
	Active           bool           `json:"active"`
	Categories       []string       `json:"categories,omitempty"`
	Specifications   map[string]any `json:"specifications,omitempty"`
	Compatibility    []string       `json:"compatibility,omitempty"`
	Brand            string         `json:"brand,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
	UpdatedAt        string         `json:"updated_at,omitempty"`
}
