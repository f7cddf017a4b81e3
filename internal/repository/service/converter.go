package repository

import (
	"github.com/grupo99/catalog-service/internal/model"
)

func EntityToModel(e *ServiceEntity) *model.Service {
	if e == nil {
		return nil
	}

	return &model.Service{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		Price:            e.Price,
		EstimatedMinutes: e.EstimatedMinutes,
		Active:           e.Active,
		Categories:       e.Categories,
		RequiredParts:    e.RequiredParts,
		Requirements:     e.Requirements,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func EntityFromModel(s *model.Service) *ServiceEntity {
	if s == nil {
		return nil
	}

	return &ServiceEntity{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		EstimatedMinutes: s.EstimatedMinutes,
		Active:           s.Active,
		Categories:       s.Categories,
		RequiredParts:    s.RequiredParts,
		Requirements:     s.Requirements,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
