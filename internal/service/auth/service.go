package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Radek987976/hyperbare-manager/internal/logger"
	"github.com/Radek987976/hyperbare-manager/internal/model"
)

type UserRepository interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, role string) ([]*model.User, error)
	Create(ctx context.Context, u *model.User) error
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type service struct {
	repo     UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(repo UserRepository, secret []byte, tokenTTL time.Duration) *service {
	return &service{repo: repo, secret: secret, tokenTTL: tokenTTL, now: time.Now}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*model.TokenPair, error) {
	const op = "auth.service.Register"
	log := logger.With(logger.String("email", params.Email))

	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || !strings.Contains(email, "@") || params.Password == "" {
		return nil, fmt.Errorf("%s: email and password are required: %w", op, model.ErrValidation)
	}

	role := params.Role
	if role == "" {
		role = model.RoleTechnician
	}
	if role != model.RoleAdmin && role != model.RoleTechnician {
		return nil, fmt.Errorf("%s: unknown role %q: %w", op, role, model.ErrValidation)
	}

	_, err := s.repo.UserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, model.ErrEmailTaken)
	case !errors.Is(err, model.ErrUserNotFound):
		log.Error(ctx, "lookup user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    lo.ToPtr(s.now()),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.issueToken(u)
}

func (s *service) Login(ctx context.Context, email, password string) (*model.TokenPair, error) {
	const op = "auth.service.Login"
	log := logger.With(logger.String("email", email))

	u, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
		}
		log.Error(ctx, "lookup user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	return s.issueToken(u)
}

// Authenticate resolves a bearer token to its live user record.
func (s *service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	const op = "auth.service.Authenticate"

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	u, err := s.repo.UserByID(ctx, sub)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (s *service) Users(ctx context.Context, role string) ([]*model.User, error) {
	const op = "auth.service.Users"

	out, err := s.repo.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) UpdateRole(ctx context.Context, id, role string) error {
	const op = "auth.service.UpdateRole"

	if role != model.RoleAdmin && role != model.RoleTechnician {
		return fmt.Errorf("%s: unknown role %q: %w", op, role, model.ErrValidation)
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "auth.service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) issueToken(u *model.User) (*model.TokenPair, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &model.TokenPair{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        u,
	}, nil
}
