package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const Collection = "work_orders"

type repository struct {
	coll *mongo.Collection
}

func NewWorkOrderRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) WorkOrderByID(ctx context.Context, id string) (*model.WorkOrder, error) {
	const op = "repository.WorkOrderByID"

	var ent WorkOrderEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.WorkOrderFilter) ([]*model.WorkOrder, error) {
	const op = "repository.ListWorkOrders"

	q := bson.M{}
	if len(filter.Statuses) > 0 {
		q["status"] = bson.M{"$in": lo.Map(filter.Statuses,
			func(s model.WorkOrderStatus, _ int) string { return string(s) })}
	}
	if filter.EquipmentID != "" {
		q["equipment_id"] = filter.EquipmentID
	}
	if filter.VesselID != "" {
		q["vessel_id"] = filter.VesselID
	}
	if filter.MaintenanceType != "" {
		q["maintenance_type"] = string(filter.MaintenanceType)
	}

	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.WorkOrder, 0)
	for cur.Next(ctx) {
		var ent WorkOrderEntity
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

func (r *repository) Create(ctx context.Context, w *model.WorkOrder) error {
	const op = "repository.CreateWorkOrder"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(w)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, w *model.WorkOrder) error {
	const op = "repository.UpdateWorkOrder"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":             w.Title,
		"description":       w.Description,
		"maintenance_type":  string(w.MaintenanceType),
		"priority":          w.Priority,
		"status":            string(w.Status),
		"vessel_id":         w.VesselID,
		"equipment_id":      w.EquipmentID,
		"planned_date":      w.PlannedDate,
		"periodicity_days":  w.PeriodicityDays,
		"periodicity_hours": w.PeriodicityHours,
		"trigger_run_hours": w.TriggerRunHours,
		"assigned_to":       w.AssignedTo,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrWorkOrderNotFound
	}
	return nil
}

func (r *repository) SetStatus(ctx context.Context, id string, status model.WorkOrderStatus) error {
	const op = "repository.SetWorkOrderStatus"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrWorkOrderNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.DeleteWorkOrder"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrWorkOrderNotFound
	}
	return nil
}
