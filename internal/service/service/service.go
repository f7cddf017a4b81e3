package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/pkg/logger"
)

type ServiceRepository interface {
	Save(ctx context.Context, svc *model.Service) (*model.Service, error)
	ByID(ctx context.Context, id string) (*model.Service, error)
	All(ctx context.Context) ([]*model.Service, error)
	Active(ctx context.Context) ([]*model.Service, error)
	ActiveOrderedByName(ctx context.Context) ([]*model.Service, error)
	ByCategory(ctx context.Context, category string) ([]*model.Service, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo           ServiceRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewServiceService(
	repo ServiceRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Create(ctx context.Context, params model.CreateServiceParams) (*model.Service, error) {
	const op = "catalog.service.service.Create"

	svc := &model.Service{
		Name:             params.Name,
		Description:      params.Description,
		Price:            params.Price,
		EstimatedMinutes: params.EstimatedMinutes,
		Active:           true,
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	saved, err := s.repo.Save(ctx, svc)
	if err != nil {
		logger.Error(ctx, "repository save service", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *service) ByID(ctx context.Context, id string) (*model.Service, error) {
	const op = "catalog.service.service.ByID"
	log := logger.With(
		logger.String("service_id", id),
	)

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty service id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	svc, err := s.repo.ByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrServiceNotFound) {
			log.Error(ctx, "repository service by id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return svc, nil
}

func (s *service) All(ctx context.Context) ([]*model.Service, error) {
	const op = "catalog.service.service.All"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.All(ctx)
	if err != nil {
		logger.Error(ctx, "repository list services", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Active lists active services sorted ascending by name.
func (s *service) Active(ctx context.Context) ([]*model.Service, error) {
	const op = "catalog.service.service.Active"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ActiveOrderedByName(ctx)
	if err != nil {
		logger.Error(ctx, "repository list active services", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Update overwrites name, description, price and estimated duration of an
// existing service.
func (s *service) Update(ctx context.Context, id string, params model.UpdateServiceParams) (*model.Service, error) {
	const op = "catalog.service.service.Update"
	log := logger.With(
		logger.String("service_id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	svc, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc.Name = params.Name
	svc.Description = params.Description
	svc.Price = params.Price
	svc.EstimatedMinutes = params.EstimatedMinutes

	saved, err := s.repo.Save(ctx, svc)
	if err != nil {
		log.Error(ctx, "repository save service", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// Deactivate soft-deletes the service. One-way transition.
func (s *service) Deactivate(ctx context.Context, id string) error {
	const op = "catalog.service.service.Deactivate"
	log := logger.With(
		logger.String("service_id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	svc, err := s.repo.ByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	svc.Active = false

	if _, err := s.repo.Save(ctx, svc); err != nil {
		log.Error(ctx, "repository save service", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Delete removes the service entirely. A missing identifier fails before
// any storage delete call is made.
func (s *service) Delete(ctx context.Context, id string) error {
	const op = "catalog.service.service.Delete"
	log := logger.With(
		logger.String("service_id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error(ctx, "repository service exists", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrServiceNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error(ctx, "repository delete service", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	const op = "catalog.service.service.ByCategory"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ByCategory(ctx, category)
	if err != nil {
		logger.Error(ctx, "repository services by category", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
