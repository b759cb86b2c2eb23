package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aliraza-dev/foodatlas-services/api/internal/config"
	"github.com/aliraza-dev/foodatlas-services/api/internal/identity/domain"
)

type fakeUserRepository struct {
	createFn      func(ctx context.Context, user *domain.User) error
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.findByEmailFn(ctx, email)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Issuer: "foodatlas-api",
		Secret: []byte("test-secret"),
		TTL:    24 * time.Hour,
	}
}

func mustEmail(t *testing.T, value string) domain.Email {
	t.Helper()
	email, err := domain.NewEmail(value)
	require.NoError(t, err)
	return email
}

func TestSignup_CreatesUserAndIssuesToken(t *testing.T) {
	var stored *domain.User
	repo := &fakeUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, ErrUnknownEmail
		},
		createFn: func(_ context.Context, user *domain.User) error {
			stored = user
			return nil
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	result, err := svc.Signup(context.Background(), SignupCommand{
		FirstName: "Ali",
		LastName:  "Raza",
		Email:     mustEmail(t, "ali@example.com"),
		Password:  "hunter22",
		Role:      domain.Role("customer"),
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEmpty(t, stored.ID)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	claims := parseTestToken(t, result.Token)
	assert.Equal(t, stored.ID, claims["sub"])
	assert.Equal(t, "ali@example.com", claims["email"])
	assert.Equal(t, "customer", claims["role"])
	assert.Equal(t, "foodatlas-api", claims["iss"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "existing"}, nil
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	_, err := svc.Signup(context.Background(), SignupCommand{
		Email:    mustEmail(t, "ali@example.com"),
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Succeeds(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			assert.Equal(t, "ali@example.com", email)
			return &domain.User{
				ID:           "user-1",
				Email:        "ali@example.com",
				PasswordHash: string(hash),
				Role:         domain.Role("customer"),
			}, nil
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	result, err := svc.Login(context.Background(), mustEmail(t, "ali@example.com"), "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "user-1", parseTestToken(t, result.Token)["sub"])
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	_, err = svc.Login(context.Background(), mustEmail(t, "ali@example.com"), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &fakeUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, ErrUnknownEmail
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	_, err := svc.Login(context.Background(), mustEmail(t, "ghost@example.com"), "hunter22")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func parseTestToken(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return claims
}
