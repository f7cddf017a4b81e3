package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/pkg/logger"
)

// Same scan-based read path as the part repository: filter documents are
// evaluated server-side against the whole collection, no indexes.
type repository struct {
	coll *mongo.Collection
}

func NewServiceRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Save(ctx context.Context, svc *model.Service) (*model.Service, error) {
	const op = "repository.service.Save"

	applySaveDefaults(svc)

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": svc.ID},
		EntityFromModel(svc),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return svc, nil
}

func (r *repository) ByID(ctx context.Context, id string) (*model.Service, error) {
	const op = "repository.service.ByID"

	var ent ServiceEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrServiceNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) All(ctx context.Context) ([]*model.Service, error) {
	return r.find(ctx, "repository.service.All", bson.M{})
}

func (r *repository) Active(ctx context.Context) ([]*model.Service, error) {
	return r.find(ctx, "repository.service.Active", bson.M{"active": true})
}

// ActiveOrderedByName sorts after the scan, empty names last.
func (r *repository) ActiveOrderedByName(ctx context.Context) ([]*model.Service, error) {
	services, err := r.find(ctx, "repository.service.ActiveOrderedByName", bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	sortByNameAsc(services)
	return services, nil
}

func (r *repository) ByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	return r.find(ctx, "repository.service.ByCategory", bson.M{
		"categories": category,
		"active":     true,
	})
}

// Delete removes the service. Deleting an absent identifier is a no-op.
func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.service.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	const op = "repository.service.Exists"

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (r *repository) find(ctx context.Context, op string, filter bson.M) ([]*model.Service, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, "failed to close cursor",
				logger.String("op", op),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]*model.Service, 0)
	for cur.Next(ctx) {
		var ent ServiceEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func applySaveDefaults(svc *model.Service) {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	if svc.CreatedAt == nil || svc.CreatedAt.IsZero() {
		svc.CreatedAt = lo.ToPtr(now)
	}
	svc.UpdatedAt = lo.ToPtr(now)
}

func sortByNameAsc(services []*model.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Name == "" {
			return false
		}
		if services[j].Name == "" {
			return true
		}
		return services[i].Name < services[j].Name
	})
}
