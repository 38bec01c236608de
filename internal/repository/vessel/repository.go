package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const Collection = "vessels"

type repository struct {
	coll *mongo.Collection
}

func NewVesselRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// First returns the site's vessel. The deployment model is one chamber
// per installation, so "the vessel" is whichever record exists.
func (r *repository) First(ctx context.Context) (*model.Vessel, error) {
	const op = "repository.FirstVessel"

	var ent VesselEntity
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrVesselNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) VesselByID(ctx context.Context, id string) (*model.Vessel, error) {
	const op = "repository.VesselByID"

	var ent VesselEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrVesselNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Create(ctx context.Context, v *model.Vessel) error {
	const op = "repository.CreateVessel"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(v)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, v *model.Vessel) error {
	const op = "repository.UpdateVessel"

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"identifier":       v.Identifier,
		"model":            v.Model,
		"manufacturer":     v.Manufacturer,
		"commission_date":  v.CommissionDate,
		"max_pressure_bar": v.MaxPressureBar,
		"standards":        v.Standards,
		"description":      v.Description,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrVesselNotFound
	}
	return nil
}
