package http

// ServiceRequest is the write shape for both creation and full update.
type ServiceRequest struct {
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	EstimatedMinutes int64   `json:"estimated_minutes" validate:"required,gt=0"`
}

type ServiceResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Price            float64  `json:"price"`
	EstimatedMinutes int64    `json:"estimated_minutes"`
	Active           bool     `json:"active"`
	Categories       []string `json:"categories,omitempty"`
	RequiredParts    []string `json:"required_parts,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}
