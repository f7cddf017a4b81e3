package service

import (
	"context"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo99/catalog-service/internal/model"
)

// fakeServiceRepository mirrors the store-backed repository in memory:
// insertion-order scans, active-only filtered reads, upserting Save.
type fakeServiceRepository struct {
	services []*model.Service
}

func (f *fakeServiceRepository) Save(_ context.Context, svc *model.Service) (*model.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if svc.CreatedAt == nil || svc.CreatedAt.IsZero() {
		svc.CreatedAt = lo.ToPtr(now)
	}
	svc.UpdatedAt = lo.ToPtr(now)

	stored := cloneService(svc)
	for i, s := range f.services {
		if s.ID == svc.ID {
			f.services[i] = stored
			return svc, nil
		}
	}
	f.services = append(f.services, stored)
	return svc, nil
}

func (f *fakeServiceRepository) ByID(_ context.Context, id string) (*model.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return cloneService(s), nil
		}
	}
	return nil, model.ErrServiceNotFound
}

func (f *fakeServiceRepository) All(_ context.Context) ([]*model.Service, error) {
	return f.scan(func(*model.Service) bool { return true }), nil
}

func (f *fakeServiceRepository) Active(_ context.Context) ([]*model.Service, error) {
	return f.scan(func(s *model.Service) bool { return s.Active }), nil
}

func (f *fakeServiceRepository) ActiveOrderedByName(_ context.Context) ([]*model.Service, error) {
	out := f.scan(func(s *model.Service) bool { return s.Active })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name == "" {
			return false
		}
		if out[j].Name == "" {
			return true
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeServiceRepository) ByCategory(_ context.Context, category string) ([]*model.Service, error) {
	return f.scan(func(s *model.Service) bool {
		return s.Active && slices.Contains(s.Categories, category)
	}), nil
}

func (f *fakeServiceRepository) Delete(_ context.Context, id string) error {
	f.services = slices.DeleteFunc(f.services, func(s *model.Service) bool {
		return s.ID == id
	})
	return nil
}

func (f *fakeServiceRepository) Exists(_ context.Context, id string) (bool, error) {
	for _, s := range f.services {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeServiceRepository) scan(keep func(*model.Service) bool) []*model.Service {
	out := make([]*model.Service, 0)
	for _, s := range f.services {
		if keep(s) {
			out = append(out, cloneService(s))
		}
	}
	return out
}

func cloneService(s *model.Service) *model.Service {
	c := *s
	return &c
}

func seedService(t *testing.T, repo *fakeServiceRepository, svc *model.Service) *model.Service {
	t.Helper()

	saved, err := repo.Save(context.Background(), svc)
	require.NoError(t, err)
	return saved
}

func idsOf(services []*model.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.ID)
	}
	return out
}

func TestFlowDeactivateVisibility(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &fakeServiceRepository{}
	svc := NewServiceService(repo, testDBTimeout, testDBTimeout)

	oilChange := seedService(t, repo, &model.Service{
		Name:       "Oil change",
		Active:     true,
		Categories: []string{"maintenance"},
	})
	alignment := seedService(t, repo, &model.Service{
		Name:       "Wheel alignment",
		Active:     true,
		Categories: []string{"maintenance"},
	})

	require.NoError(t, svc.Deactivate(ctx, oilChange.ID))

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{alignment.ID}, idsOf(active))

	byCategory, err := svc.ByCategory(ctx, "maintenance")
	require.NoError(t, err)
	assert.Equal(t, []string{alignment.ID}, idsOf(byCategory))

	// Hidden from filtered reads, still present in the full listing.
	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Contains(t, idsOf(all), oilChange.ID)

	got, err := svc.ByID(ctx, oilChange.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestFlowDeleteRemovesEntirely(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &fakeServiceRepository{}
	svc := NewServiceService(repo, testDBTimeout, testDBTimeout)

	inspection := seedService(t, repo, &model.Service{Name: "Brake inspection", Active: true})

	require.NoError(t, svc.Delete(ctx, inspection.ID))

	exists, err := repo.Exists(ctx, inspection.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.ByID(ctx, inspection.ID)
	assert.ErrorIs(t, err, model.ErrServiceNotFound)

	err = svc.Delete(ctx, inspection.ID)
	assert.ErrorIs(t, err, model.ErrServiceNotFound)
}
