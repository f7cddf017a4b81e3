package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/internal/service/mocks"
)

const testDBTimeout = time.Second

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	params := model.CreatePartParams{
		Name:             gofakeit.ProductName(),
		Description:      gofakeit.Sentence(6),
		ManufacturerCode: gofakeit.UUID(),
		Price:            149.90,
		Quantity:         20,
	}

	type testCase struct {
		name   string
		params model.CreatePartParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Part, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "defaults: active with minimum quantity 5",
			params: params,
			setup: func(d deps) {
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.ID == "" &&
							p.Active &&
							p.MinQuantity == model.DefaultMinQuantity &&
							p.Name == params.Name &&
							p.Quantity == params.Quantity
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						saved := *p
						saved.ID = gofakeit.UUID()
						return &saved, nil
					}).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.ID)
				assert.True(t, res.Active)
				assert.EqualValues(t, 5, res.MinQuantity)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "explicit minimum quantity overrides the default",
			params: model.CreatePartParams{
				Name:             params.Name,
				ManufacturerCode: params.ManufacturerCode,
				Price:            params.Price,
				Quantity:         params.Quantity,
				MinQuantity:      lo.ToPtr(int64(12)),
			},
			setup: func(d deps) {
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.MinQuantity == 12
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.NoError(t, err)
				assert.EqualValues(t, 12, res.MinQuantity)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "repository error: Save fails",
			params: params,
			setup: func(d deps) {
				d.repository.
					On("Save", mock.Anything, mock.Anything).
					Return((*model.Part)(nil), errors.New("db write failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db write failed")
				assert.Nil(t, res)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Create(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceByID(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	partID := gofakeit.UUID()
	wantPart := &model.Part{
		ID:       partID,
		Name:     gofakeit.ProductName(),
		Active:   true,
		Quantity: 7,
	}

	type testCase struct {
		name   string
		partID string
		setup  func(d deps)
		assert func(t *testing.T, res *model.Part, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: empty id after trim",
			partID: "   ",
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
				assert.ErrorContains(t, err, "id must be non-empty")
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "not found propagates",
			partID: partID,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return((*model.Part)(nil), model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, res)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "success: trims id and returns part",
			partID: " \n\t" + partID + "\t ",
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(wantPart, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, wantPart, res)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.ByID(context.Background(), tt.partID)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	partID := gofakeit.UUID()
	stored := func() *model.Part {
		return &model.Part{
			ID:               partID,
			Name:             "Old name",
			Description:      "Old description",
			ManufacturerCode: "OLD-001",
			Price:            10,
			Quantity:         3,
			MinQuantity:      5,
			Active:           true,
			Brand:            "Bosch",
		}
	}

	params := model.UpdatePartParams{
		Name:             "New name",
		Description:      "New description",
		ManufacturerCode: "NEW-002",
		Price:            25.50,
		Quantity:         8,
	}

	type testCase struct {
		name   string
		params model.UpdatePartParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Part, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "not found: nothing saved",
			params: params,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return((*model.Part)(nil), model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "overwrites the mutable fields, keeps the rest",
			params: params,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(stored(), nil).
					Once()
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.ID == partID &&
							p.Name == params.Name &&
							p.Description == params.Description &&
							p.ManufacturerCode == params.ManufacturerCode &&
							p.Price == params.Price &&
							p.Quantity == params.Quantity &&
							p.MinQuantity == 5 && // untouched when absent
							p.Active &&
							p.Brand == "Bosch"
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, params.Name, res.Name)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "minimum quantity applied only when present",
			params: model.UpdatePartParams{
				Name:             params.Name,
				Description:      params.Description,
				ManufacturerCode: params.ManufacturerCode,
				Price:            params.Price,
				Quantity:         params.Quantity,
				MinQuantity:      lo.ToPtr(int64(2)),
			},
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(stored(), nil).
					Once()
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.MinQuantity == 2
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.NoError(t, err)
				assert.EqualValues(t, 2, res.MinQuantity)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Update(context.Background(), partID, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceDeactivate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	partID := gofakeit.UUID()

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, err error, d deps)
	}

	tests := []testCase{
		{
			name: "not found: nothing saved",
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return((*model.Part)(nil), model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPartNotFound)

				d.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "success: saves the part with active unset",
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(&model.Part{ID: partID, Active: true}, nil).
					Once()
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.ID == partID && !p.Active
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "already inactive: deactivating again is a no-op save",
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(&model.Part{ID: partID, Active: false}, nil).
					Once()
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return !p.Active
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			err := svc.Deactivate(context.Background(), partID)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	partID := gofakeit.UUID()

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, err error, d deps)
	}

	tests := []testCase{
		{
			name: "missing part: fails before the storage delete",
			setup: func(d deps) {
				d.repository.
					On("Exists", mock.Anything, partID).
					Return(false, nil).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPartNotFound)

				d.repository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "existence check error propagates",
			setup: func(d deps) {
				d.repository.
					On("Exists", mock.Anything, partID).
					Return(false, errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")

				d.repository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "success",
			setup: func(d deps) {
				d.repository.
					On("Exists", mock.Anything, partID).
					Return(true, nil).
					Once()
				d.repository.
					On("Delete", mock.Anything, partID).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			err := svc.Delete(context.Background(), partID)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceDecrementStock(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	partID := gofakeit.UUID()

	type testCase struct {
		name   string
		amount int64
		setup  func(d deps)
		assert func(t *testing.T, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "insufficient stock: rejected without a save",
			amount: 11,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(&model.Part{ID: partID, Quantity: 10, Active: true}, nil).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
				assert.ErrorIs(t, err, model.ErrInsufficientStock)

				d.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "decrement to exactly zero is allowed",
			amount: 10,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(&model.Part{ID: partID, Quantity: 10, Active: true}, nil).
					Once()
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.Quantity == 0
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "success: subtracts the amount",
			amount: 3,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, partID).
					Return(&model.Part{ID: partID, Quantity: 10, Active: true}, nil).
					Once()
				d.repository.
					On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
						return p.Quantity == 7
					})).
					Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
						return p, nil
					}).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			err := svc.DecrementStock(context.Background(), partID, tt.amount)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceIncrementStock(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	partID := gofakeit.UUID()

	t.Run("success: adds the amount with no upper bound", func(t *testing.T) {
		t.Parallel()

		d := deps{repository: mocks.NewMockPartRepository(t)}
		d.repository.
			On("ByID", mock.Anything, partID).
			Return(&model.Part{ID: partID, Quantity: 2, Active: true}, nil).
			Once()
		d.repository.
			On("Save", mock.Anything, mock.MatchedBy(func(p *model.Part) bool {
				return p.Quantity == 1_000_002
			})).
			Return(func(_ context.Context, p *model.Part) (*model.Part, error) {
				return p, nil
			}).
			Once()

		err := newSvc(d).IncrementStock(context.Background(), partID, 1_000_000)
		require.NoError(t, err)

		d.repository.AssertExpectations(t)
	})

	t.Run("not found: nothing saved", func(t *testing.T) {
		t.Parallel()

		d := deps{repository: mocks.NewMockPartRepository(t)}
		d.repository.
			On("ByID", mock.Anything, partID).
			Return((*model.Part)(nil), model.ErrPartNotFound).
			Once()

		err := newSvc(d).IncrementStock(context.Background(), partID, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPartNotFound)

		d.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		d.repository.AssertExpectations(t)
	})
}

func TestServiceByManufacturerCode(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	newSvc := func(d deps) *service {
		return NewPartService(d.repository, testDBTimeout, testDBTimeout)
	}

	code := "BOS-F026"
	wantPart := &model.Part{
		ID:               gofakeit.UUID(),
		ManufacturerCode: code,
		Active:           true,
	}

	type testCase struct {
		name   string
		code   string
		setup  func(d deps)
		assert func(t *testing.T, res *model.Part, err error, d deps)
	}

	tests := []testCase{
		{
			name: "validation error: empty code after trim",
			code: "  \t ",
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
				assert.ErrorContains(t, err, "code must be non-empty")
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "ByManufacturerCode", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name: "success: trims the code",
			code: "  " + code + " ",
			setup: func(d deps) {
				d.repository.
					On("ByManufacturerCode", mock.Anything, code).
					Return(wantPart, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Part, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, wantPart, res)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPartRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.ByManufacturerCode(context.Background(), tt.code)
			tt.assert(t, res, err, d)
		})
	}
}
