package repository

import (
	"time"
)

// PartEntity is the persisted shape of a part. Specifications is stored as
// serialized JSON text rather than a nested document, matching the flexible
// attribute contract of the catalog.
type PartEntity struct {
	ID               string     `bson:"_id"`
	Name             string     `bson:"name"`
	Description      string     `bson:"description,omitempty"`
	ManufacturerCode string     `bson:"manufacturer_code"`
	Price            float64    `bson:"price"`
	Quantity         int64      `bson:"quantity"`
	MinQuantity      int64      `bson:"min_quantity"`
	Active           bool       `bson:"active"`
	Categories       []string   `bson:"categories,omitempty"`
	Specifications   string     `bson:"specifications,omitempty"`
	Compatibility    []string   `bson:"compatibility,omitempty"`
	Brand            string     `bson:"brand,omitempty"`
	CreatedAt        *time.Time `bson:"created_at,omitempty"`
	UpdatedAt        *time.Time `bson:"updated_at,omitempty"`
}
