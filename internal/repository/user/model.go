package repository

import (
	"time"

	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type UserEntity struct {
	ID           string     `bson:"_id"`
	Email        string     `bson:"email"`
	FirstName    string     `bson:"first_name"`
	LastName     string     `bson:"last_name"`
	Role         string     `bson:"role"`
	PasswordHash string     `bson:"password_hash"`
	IsActive     bool       `bson:"is_active"`
	CreatedAt    *time.Time `bson:"created_at,omitempty"`
}

func EntityToModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}

	return &model.User{
		ID:           e.ID,
		Email:        e.Email,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Role:         e.Role,
		PasswordHash: e.PasswordHash,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}

func EntityFromModel(u *model.User) *UserEntity {
	if u == nil {
		return nil
	}

	return &UserEntity{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}
