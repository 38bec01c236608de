package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

const Collection = "users"

type repository struct {
	coll *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) UserByID(ctx context.Context, id string) (*model.User, error) {
	const op = "repository.UserByID"

	var ent UserEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	const op = "repository.UserByEmail"

	var ent UserEntity
	err := r.coll.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, role string) ([]*model.User, error) {
	const op = "repository.ListUsers"

	q := bson.M{}
	if role != "" {
		q["role"] = role
	}

	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.User, 0)
	for cur.Next(ctx) {
		var ent UserEntity
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

func (r *repository) Create(ctx context.Context, u *model.User) error {
	const op = "repository.CreateUser"

	ent := EntityFromModel(u)
	ent.Email = normalizeEmail(ent.Email)
	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id, role string) error {
	const op = "repository.UpdateUserRole"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.DeleteUser"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
