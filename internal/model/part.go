package model

import "time"

// DefaultMinQuantity is applied to a part when the creation request does not
// override the low-stock threshold.
const DefaultMinQuantity int64 = 5

type Part struct {
	// Globally unique identifier, assigned on first save.
	ID string
	// Human-readable part name.
	Name string
	// Detailed description of the part.
	Description string
	// Manufacturer part code, used as a secondary lookup key.
	// Uniqueness is not enforced by the store.
	ManufacturerCode string
	// Unit price of the part.
	Price float64
	// Quantity of this part currently in stock. Never negative.
	Quantity int64
	// Low-stock threshold for this part.
	MinQuantity int64
	// Soft-deletion flag. Deactivation is one-way.
	Active bool
	// Categories the part belongs to.
	Categories []string
	// Free-form specification attributes. Persisted as serialized JSON text;
	// a value that fails to round-trip degrades to an absent map.
	Specifications map[string]any
	// Identifiers of vehicles or assemblies this part is compatible with.
	Compatibility []string
	// Brand of the part.
	Brand string
	// Timestamp when the part was created.
	CreatedAt *time.Time
	// Timestamp when the part was last updated.
	UpdatedAt *time.Time
}

// CanDecrement reports whether amount can be subtracted from stock without
// going negative.
func (p *Part) CanDecrement(amount int64) bool {
	return amount <= p.Quantity
}
