package http

import (
	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/internal/transport/http/api"
)

func requestToCreateParams(req PartRequest) model.CreatePartParams {
	return model.CreatePartParams{
		Name:             req.Name,
		Description:      req.Description,
		ManufacturerCode: req.ManufacturerCode,
		Price:            req.Price,
		Quantity:         req.Quantity,
		MinQuantity:      req.MinQuantity,
	}
}

func requestToUpdateParams(req PartRequest) model.UpdatePartParams {
	return model.UpdatePartParams{
		Name:             req.Name,
		Description:      req.Description,
		ManufacturerCode: req.ManufacturerCode,
		Price:            req.Price,
		Quantity:         req.Quantity,
		MinQuantity:      req.MinQuantity,
	}
}

func PartToResponse(p *model.Part) PartResponse {
	out := PartResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ManufacturerCode: p.ManufacturerCode,
		Price:            p.Price,
		Quantity:         p.Quantity,
		MinQuantity:      p.MinQuantity,
		Active:           p.Active,
		Categories:       p.Categories,
		Specifications:   p.Specifications,
		Compatibility:    p.Compatibility,
		Brand:            p.Brand,
	}

	if p.CreatedAt != nil {
		out.CreatedAt = p.CreatedAt.Format(api.TimeLayout)
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = p.UpdatedAt.Format(api.TimeLayout)
	}

	return out
}

func PartsToResponse(parts []*model.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, PartToResponse(p))
	}
	return out
}
