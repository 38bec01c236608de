package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const Collection = "interventions"

type repository struct {
	coll *mongo.Collection
}

func NewInterventionRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) InterventionByID(ctx context.Context, id string) (*model.Intervention, error) {
	const op = "repository.InterventionByID"

	var ent InterventionEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.InterventionFilter) ([]*model.Intervention, error) {
	const op = "repository.ListInterventions"

	q := bson.M{}
	if filter.WorkOrderID != "" {
		q["work_order_id"] = filter.WorkOrderID
	}
	if filter.EquipmentID != "" {
		q["equipment_id"] = filter.EquipmentID
	}

	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.Intervention, 0)
	for cur.Next(ctx) {
		var ent InterventionEntity
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

// Create persists the record. Interventions are append-only: there is no
// update or delete.
func (r *repository) Create(ctx context.Context, i *model.Intervention) error {
	const op = "repository.CreateIntervention"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(i)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
