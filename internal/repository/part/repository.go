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

// All filtered reads are full collection scans with a server-evaluated
// filter document. No secondary indexes are created; this mirrors the
// documented scan semantics of the catalog store.
type repository struct {
	coll *mongo.Collection
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// Save upserts the part. An absent identifier is generated, an absent
// creation timestamp is set, and the update timestamp is always refreshed.
func (r *repository) Save(ctx context.Context, part *model.Part) (*model.Part, error) {
	const op = "repository.part.Save"

	applySaveDefaults(part)

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": part.ID},
		EntityFromModel(part),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (r *repository) ByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "repository.part.ByID"

	var ent PartEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) All(ctx context.Context) ([]*model.Part, error) {
	return r.find(ctx, "repository.part.All", bson.M{})
}

func (r *repository) Active(ctx context.Context) ([]*model.Part, error) {
	return r.find(ctx, "repository.part.Active", bson.M{"active": true})
}

// ActiveOrderedByName lists active parts sorted ascending by name.
// The sort happens after the scan, with empty names last, mirroring the
// nulls-last ordering of the original catalog listing.
func (r *repository) ActiveOrderedByName(ctx context.Context) ([]*model.Part, error) {
	parts, err := r.find(ctx, "repository.part.ActiveOrderedByName", bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	sortByNameAsc(parts)
	return parts, nil
}

// ByManufacturerCode returns the first part matching the code in scan order.
// The code is not guaranteed unique by the store, so the tie-break between
// duplicates is undefined.
func (r *repository) ByManufacturerCode(ctx context.Context, code string) (*model.Part, error) {
	const op = "repository.part.ByManufacturerCode"

	var ent PartEntity
	err := r.coll.FindOne(ctx, bson.M{"manufacturer_code": code}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) ByCategory(ctx context.Context, category string) ([]*model.Part, error) {
	return r.find(ctx, "repository.part.ByCategory", bson.M{
		"categories": category,
		"active":     true,
	})
}

func (r *repository) ByBrand(ctx context.Context, brand string) ([]*model.Part, error) {
	return r.find(ctx, "repository.part.ByBrand", bson.M{
		"brand":  brand,
		"active": true,
	})
}

func (r *repository) ByQuantityAtMost(ctx context.Context, threshold int64) ([]*model.Part, error) {
	return r.find(ctx, "repository.part.ByQuantityAtMost", bson.M{
		"quantity": bson.M{"$lte": threshold},
		"active":   true,
	})
}

// Delete removes the part. Deleting an absent identifier is a no-op.
func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.part.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	const op = "repository.part.Exists"

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (r *repository) find(ctx context.Context, op string, filter bson.M) ([]*model.Part, error) {
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

	out := make([]*model.Part, 0)
	for cur.Next(ctx) {
		var ent PartEntity
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

func applySaveDefaults(part *model.Part) {
	if part.ID == "" {
		part.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	if part.CreatedAt == nil || part.CreatedAt.IsZero() {
		part.CreatedAt = lo.ToPtr(now)
	}
	part.UpdatedAt = lo.ToPtr(now)
}

func sortByNameAsc(parts []*model.Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		if parts[i].Name == "" {
			return false
		}
		if parts[j].Name == "" {
			return true
		}
		return parts[i].Name < parts[j].Name
	})
}
