package http

import (
	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/internal/transport/http/api"
)

func requestToCreateParams(req ServiceRequest) model.CreateServiceParams {
	return model.CreateServiceParams{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		EstimatedMinutes: req.EstimatedMinutes,
	}
}

func requestToUpdateParams(req ServiceRequest) model.UpdateServiceParams {
	return model.UpdateServiceParams{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		EstimatedMinutes: req.EstimatedMinutes,
	}
}

func ServiceToResponse(s *model.Service) ServiceResponse {
	out := ServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		EstimatedMinutes: s.EstimatedMinutes,
		Active:           s.Active,
		Categories:       s.Categories,
		RequiredParts:    s.RequiredParts,
		Requirements:     s.Requirements,
	}

	if s.CreatedAt != nil {
		out.CreatedAt = s.CreatedAt.Format(api.TimeLayout)
	}
	if s.UpdatedAt != nil {
		out.UpdatedAt = s.UpdatedAt.Format(api.TimeLayout)
	}

	return out
}

func ServicesToResponse(services []*model.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceToResponse(s))
	}
	return out
}
