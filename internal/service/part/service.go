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

type PartRepository interface {
	Save(ctx context.Context, part *model.Part) (*model.Part, error)
	ByID(ctx context.Context, id string) (*model.Part, error)
	All(ctx context.Context) ([]*model.Part, error)
	Active(ctx context.Context) ([]*model.Part, error)
	ActiveOrderedByName(ctx context.Context) ([]*model.Part, error)
	ByManufacturerCode(ctx context.Context, code string) (*model.Part, error)
	ByCategory(ctx context.Context, category string) ([]*model.Part, error)
	ByBrand(ctx context.Context, brand string) ([]*model.Part, error)
	ByQuantityAtMost(ctx context.Context, threshold int64) ([]*model.Part, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo           PartRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repo PartRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Create builds a new active part from the boundary-validated params and
// persists it. Identifier and timestamps are assigned by the repository.
func (s *service) Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error) {
	const op = "catalog.service.part.Create"

	part := &model.Part{
		Name:             params.Name,
		Description:      params.Description,
		ManufacturerCode: params.ManufacturerCode,
		Price:            params.Price,
		Quantity:         params.Quantity,
		MinQuantity:      model.DefaultMinQuantity,
		Active:           true,
	}
	if params.MinQuantity != nil {
		part.MinQuantity = *params.MinQuantity
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	saved, err := s.repo.Save(ctx, part)
	if err != nil {
		logger.Error(ctx, "repository save part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *service) ByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "catalog.service.part.ByID"
	log := logger.With(
		logger.String("part_id", id),
	)

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty part id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrPartNotFound) {
			log.Error(ctx, "repository part by id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *service) All(ctx context.Context) ([]*model.Part, error) {
	const op = "catalog.service.part.All"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.All(ctx)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Active lists active parts sorted ascending by name.
func (s *service) Active(ctx context.Context) ([]*model.Part, error) {
	const op = "catalog.service.part.Active"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ActiveOrderedByName(ctx)
	if err != nil {
		logger.Error(ctx, "repository list active parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Update overwrites the mutable fields of an existing part. The request
// always carries name, description, manufacturer code, price and quantity,
// so those five are a full overwrite; the minimum quantity is applied only
// when present.
func (s *service) Update(ctx context.Context, id string, params model.UpdatePartParams) (*model.Part, error) {
	const op = "catalog.service.part.Update"
	log := logger.With(
		logger.String("part_id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	part, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	part.Name = params.Name
	part.Description = params.Description
	part.ManufacturerCode = params.ManufacturerCode
	part.Price = params.Price
	part.Quantity = params.Quantity
	if params.MinQuantity != nil {
		part.MinQuantity = *params.MinQuantity
	}

	saved, err := s.repo.Save(ctx, part)
	if err != nil {
		log.Error(ctx, "repository save part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// Deactivate soft-deletes the part. The transition is one-way; there is no
// reactivate operation.
func (s *service) Deactivate(ctx context.Context, id string) error {
	const op = "catalog.service.part.Deactivate"
	log := logger.With(
		logger.String("part_id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	part, err := s.repo.ByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	part.Active = false

	if _, err := s.repo.Save(ctx, part); err != nil {
		log.Error(ctx, "repository save part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Delete removes the part entirely. A missing identifier fails before any
// storage delete call is made.
func (s *service) Delete(ctx context.Context, id string) error {
	const op = "catalog.service.part.Delete"
	log := logger.With(
		logger.String("part_id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error(ctx, "repository part exists", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error(ctx, "repository delete part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DecrementStock subtracts amount from the part's stock. A decrement larger
// than the current quantity is rejected and the stored value stays
// untouched.
func (s *service) DecrementStock(ctx context.Context, id string, amount int64) error {
	const op = "catalog.service.part.DecrementStock"
	log := logger.With(
		logger.String("part_id", id),
		logger.Int64("amount", amount),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	part, err := s.repo.ByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !part.CanDecrement(amount) {
		log.Warn(ctx, "stock decrement rejected",
			logger.Int64("quantity", part.Quantity),
		)
		return errors.Join(model.ErrInvalidArgument, model.ErrInsufficientStock)
	}

	part.Quantity -= amount

	if _, err := s.repo.Save(ctx, part); err != nil {
		log.Error(ctx, "repository save part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IncrementStock adds amount to the part's stock. There is no upper bound.
func (s *service) IncrementStock(ctx context.Context, id string, amount int64) error {
	const op = "catalog.service.part.IncrementStock"
	log := logger.With(
		logger.String("part_id", id),
		logger.Int64("amount", amount),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	part, err := s.repo.ByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	part.Quantity += amount

	if _, err := s.repo.Save(ctx, part); err != nil {
		log.Error(ctx, "repository save part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ByCategory(ctx context.Context, category string) ([]*model.Part, error) {
	const op = "catalog.service.part.ByCategory"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ByCategory(ctx, category)
	if err != nil {
		logger.Error(ctx, "repository parts by category", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) ByBrand(ctx context.Context, brand string) ([]*model.Part, error) {
	const op = "catalog.service.part.ByBrand"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ByBrand(ctx, brand)
	if err != nil {
		logger.Error(ctx, "repository parts by brand", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ByManufacturerCode looks a part up by its manufacturer code. When
// duplicates exist in the store the first match in scan order wins.
func (s *service) ByManufacturerCode(ctx context.Context, code string) (*model.Part, error) {
	const op = "catalog.service.part.ByManufacturerCode"

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("code must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.ByManufacturerCode(ctx, code)
	if err != nil {
		if !errors.Is(err, model.ErrPartNotFound) {
			logger.Error(ctx, "repository part by manufacturer code", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// LowStock lists active parts with quantity at or below the threshold.
func (s *service) LowStock(ctx context.Context, threshold int64) ([]*model.Part, error) {
	const op = "catalog.service.part.LowStock"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.ByQuantityAtMost(ctx, threshold)
	if err != nil {
		logger.Error(ctx, "repository low stock parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
