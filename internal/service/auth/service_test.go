package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/service/mocks"
)

var testSecret = []byte("test-secret")

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockUserRepository
	}

	newSvc := func(d deps) *service {
		return NewAuthService(d.repository, testSecret, time.Hour)
	}

	type testCase struct {
		name   string
		params RegisterParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.TokenPair, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: email without at sign",
			params: RegisterParams{Email: "not-an-email", Password: "secret"},
			assert: func(t *testing.T, res *model.TokenPair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "validation error: unknown role",
			params: RegisterParams{Email: "diver@hyperbare.test", Password: "secret", Role: "captain"},
			assert: func(t *testing.T, res *model.TokenPair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "conflict: email already registered",
			params: RegisterParams{Email: "Diver@Hyperbare.test", Password: "secret"},
			setup: func(d deps) {
				d.repository.
					On("UserByEmail", mock.Anything, "diver@hyperbare.test").
					Return(&model.User{ID: gofakeit.UUID()}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.TokenPair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrEmailTaken)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: email lowercased, technician by default, token issued",
			params: RegisterParams{Email: "  Diver@Hyperbare.test ", Password: "secret", FirstName: "Ana"},
			setup: func(d deps) {
				d.repository.
					On("UserByEmail", mock.Anything, "diver@hyperbare.test").
					Return((*model.User)(nil), model.ErrUserNotFound).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
						return u.Email == "diver@hyperbare.test" &&
							u.Role == model.RoleTechnician &&
							u.IsActive &&
							bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.TokenPair, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.AccessToken)
				assert.Equal(t, "bearer", res.TokenType)
				require.NotNil(t, res.User)
				assert.Equal(t, model.RoleTechnician, res.User.Role)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockUserRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Register(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceLoginAndAuthenticate(t *testing.T) {
	t.Parallel()

	userID := gofakeit.UUID()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID:           userID,
		Email:        "diver@hyperbare.test",
		Role:         model.RoleTechnician,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockUserRepository(t)
		repo.
			On("UserByEmail", mock.Anything, user.Email).
			Return(user, nil).
			Once()

		svc := NewAuthService(repo, testSecret, time.Hour)

		res, err := svc.Login(context.Background(), user.Email, "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Nil(t, res)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockUserRepository(t)
		repo.
			On("UserByEmail", mock.Anything, "ghost@hyperbare.test").
			Return((*model.User)(nil), model.ErrUserNotFound).
			Once()

		svc := NewAuthService(repo, testSecret, time.Hour)

		res, err := svc.Login(context.Background(), "ghost@hyperbare.test", "secret")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Nil(t, res)
	})

	t.Run("issued token round-trips through Authenticate", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockUserRepository(t)
		repo.
			On("UserByEmail", mock.Anything, user.Email).
			Return(user, nil).
			Once()
		repo.
			On("UserByID", mock.Anything, userID).
			Return(user, nil).
			Once()

		svc := NewAuthService(repo, testSecret, time.Hour)

		pair, err := svc.Login(context.Background(), user.Email, "secret")
		require.NoError(t, err)
		require.NotNil(t, pair)

		got, err := svc.Authenticate(context.Background(), pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockUserRepository(t)
		svc := NewAuthService(repo, testSecret, time.Hour)

		got, err := svc.Authenticate(context.Background(), "not.a.token")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Nil(t, got)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockUserRepository(t)
		repo.
			On("UserByEmail", mock.Anything, user.Email).
			Return(user, nil).
			Once()

		svc := NewAuthService(repo, testSecret, time.Hour)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		pair, err := svc.Login(context.Background(), user.Email, "secret")
		require.NoError(t, err)

		got, err := svc.Authenticate(context.Background(), pair.AccessToken)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Nil(t, got)
	})
}
