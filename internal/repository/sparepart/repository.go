package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const Collection = "spare_parts"

type repository struct {
	coll *mongo.Collection
}

func NewSparePartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) SparePartByID(ctx context.Context, id string) (*model.SparePart, error) {
	const op = "repository.SparePartByID"

	var ent SparePartEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSparePartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.SparePartFilter) ([]*model.SparePart, error) {
	const op = "repository.ListSpareParts"

	q := bson.M{}
	if filter.EquipmentType != "" {
		q["equipment_type"] = filter.EquipmentType
	}

	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.SparePart, 0)
	for cur.Next(ctx) {
		var ent SparePartEntity
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

func (r *repository) Create(ctx context.Context, p *model.SparePart) error {
	const op = "repository.CreateSparePart"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(p)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, upd model.SparePartUpdate) error {
	const op = "repository.UpdateSparePart"

	set := bson.M{}
	if upd.StockQuantity != nil {
		set["stock_quantity"] = *upd.StockQuantity
	}
	if upd.MinimumThreshold != nil {
		set["minimum_threshold"] = *upd.MinimumThreshold
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Supplier != nil {
		set["supplier"] = *upd.Supplier
	}
	if upd.UnitPrice != nil {
		set["unit_price"] = *upd.UnitPrice
	}
	if len(set) == 0 {
		return model.ErrNothingToUpdate
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrSparePartNotFound
	}
	return nil
}

// SetStock overwrites the stock counter. Callers are expected to have
// already floored the value at zero.
func (r *repository) SetStock(ctx context.Context, id string, quantity int) error {
	const op = "repository.SetSparePartStock"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"stock_quantity": quantity}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrSparePartNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.DeleteSparePart"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrSparePartNotFound
	}
	return nil
}
