package repository

import (
	"encoding/json"

	"github.com/grupo99/catalog-service/internal/model"
)

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		ManufacturerCode: e.ManufacturerCode,
		Price:            e.Price,
		Quantity:         e.Quantity,
		MinQuantity:      e.MinQuantity,
		Active:           e.Active,
		Categories:       e.Categories,
		Specifications:   decodeSpecifications(e.Specifications),
		Compatibility:    e.Compatibility,
		Brand:            e.Brand,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	return &PartEntity{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ManufacturerCode: p.ManufacturerCode,
		Price:            p.Price,
		Quantity:         p.Quantity,
		MinQuantity:      p.MinQuantity,
		Active:           p.Active,
		Categories:       p.Categories,
		Specifications:   encodeSpecifications(p.Specifications),
		Compatibility:    p.Compatibility,
		Brand:            p.Brand,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// encodeSpecifications serializes the free-form attribute map to JSON text.
// A map that fails to serialize is stored as absent rather than failing the
// whole write.
func encodeSpecifications(specs map[string]any) string {
	if specs == nil {
		return ""
	}
	raw, err := json.Marshal(specs)
	if err != nil {
		return ""
	}
	return string(raw)
}

// decodeSpecifications is the inverse of encodeSpecifications with the same
// null-on-failure policy: malformed stored text yields an absent map.
func decodeSpecifications(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var specs map[string]any
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil
	}
	return specs
}
