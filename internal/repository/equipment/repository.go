package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

// Collection is the mongo collection backing this repository.
const Collection = "equipments"

type repository struct {
	coll *mongo.Collection
}

func NewEquipmentRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) EquipmentByID(ctx context.Context, id string) (*model.Equipment, error) {
	const op = "repository.EquipmentByID"

	var ent EquipmentEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error) {
	const op = "repository.ListEquipments"

	q := bson.M{}
	if filter.VesselID != "" {
		q["vessel_id"] = filter.VesselID
	}
	if filter.Type != "" {
		q["type"] = filter.Type
	}
	if filter.Status != "" {
		q["status"] = string(filter.Status)
	}

	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.Equipment, 0)
	for cur.Next(ctx) {
		var ent EquipmentEntity
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

func (r *repository) Create(ctx context.Context, eq *model.Equipment) error {
	const op = "repository.CreateEquipment"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(eq)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update rewrites the descriptive fields only; run-hour state is owned
// by AppendRunHours.
func (r *repository) Update(ctx context.Context, id string, eq *model.Equipment) error {
	const op = "repository.UpdateEquipment"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"type":          eq.Type,
		"reference":     eq.Reference,
		"serial_number": eq.SerialNumber,
		"criticality":   eq.Criticality,
		"status":        string(eq.Status),
		"vessel_id":     eq.VesselID,
		"description":   eq.Description,
		"install_date":  eq.InstallDate,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrEquipmentNotFound
	}
	return nil
}

// AppendRunHours sets the current counter and appends one immutable
// history entry in a single document write.
func (r *repository) AppendRunHours(ctx context.Context, id string, value float64, entry model.RunHourEntry) error {
	const op = "repository.AppendRunHours"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"run_hours": value},
		"$push": bson.M{"run_hour_history": RunHourEntryEntity{
			Timestamp:     entry.Timestamp,
			Value:         entry.Value,
			RecordedBy:    entry.RecordedBy,
			PreviousValue: entry.PreviousValue,
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrEquipmentNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.DeleteEquipment"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrEquipmentNotFound
	}
	return nil
}
