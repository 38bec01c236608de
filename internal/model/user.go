package model

import "time"

const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash string
	IsActive     bool
	CreatedAt    *time.Time
}

type TokenPair struct {
	AccessToken string
	TokenType   string
	User        *User
}
