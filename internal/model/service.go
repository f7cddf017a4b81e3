package model

import "time"

// Service is a billable offering from the catalog, distinct from the
// application service layer.
type Service struct {
	// Globally unique identifier, assigned on first save.
	ID string
	// Human-readable service name.
	Name string
	// Detailed description of the service.
	Description string
	// Price of the service.
	Price float64
	// Estimated duration of the service in minutes.
	EstimatedMinutes int64
	// Soft-deletion flag. Deactivation is one-way.
	Active bool
	// Categories the service belongs to.
	Categories []string
	// Part identifiers this service usually consumes. Not enforced as
	// foreign keys; a part may be deleted while still referenced here.
	RequiredParts []string
	// Free-form requirements (tools, bay type, certifications).
	Requirements []string
	// Timestamp when the service was created.
	CreatedAt *time.Time
	// Timestamp when the service was last updated.
	UpdatedAt *time.Time
}
