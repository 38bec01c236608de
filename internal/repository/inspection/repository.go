package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const Collection = "inspections"

type repository struct {
	coll *mongo.Collection
}

func NewInspectionRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) InspectionByID(ctx context.Context, id string) (*model.Inspection, error) {
	const op = "repository.InspectionByID"

	var ent InspectionEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrInspectionNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context) ([]*model.Inspection, error) {
	const op = "repository.ListInspections"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.Inspection, 0)
	for cur.Next(ctx) {
		var ent InspectionEntity
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

func (r *repository) Create(ctx context.Context, i *model.Inspection) error {
	const op = "repository.CreateInspection"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(i)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, i *model.Inspection) error {
	const op = "repository.UpdateInspection"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":           i.Title,
		"control_type":    i.ControlType,
		"periodicity":     i.Periodicity,
		"vessel_id":       i.VesselID,
		"equipment_id":    i.EquipmentID,
		"completion_date": i.CompletionDate,
		"validity_date":   i.ValidityDate,
		"certifying_body": i.CertifyingBody,
		"result":          i.Result,
		"observations":    i.Observations,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrInspectionNotFound
	}
	return nil
}

// SetCompletion records a performed control: the completion date, the
// recomputed validity date and the result, in one write.
func (r *repository) SetCompletion(ctx context.Context, id, completionDate, validityDate, result string) error {
	const op = "repository.SetInspectionCompletion"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"completion_date": completionDate,
		"validity_date":   validityDate,
		"result":          result,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrInspectionNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.DeleteInspection"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrInspectionNotFound
	}
	return nil
}
