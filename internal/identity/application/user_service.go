package application

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aliraza-dev/foodatlas-services/api/internal/config"
	"github.com/aliraza-dev/foodatlas-services/api/internal/identity/domain"
)

var (
	// ErrEmailTaken signals a signup against an address that already has an account.
	ErrEmailTaken = errors.New("email already in use")
	// ErrUnknownEmail signals a login for an address with no account.
	ErrUnknownEmail = errors.New("user not found")
	// ErrInvalidCredentials signals a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SignupCommand captures a validated registration payload.
type SignupCommand struct {
	FirstName string
	LastName  string
	Email     domain.Email
	Password  string
	Role      domain.Role
}

// AuthResult pairs the issued token with its account.
type AuthResult struct {
	Token string
	User  domain.User
}

// AuthService handles registration and login.
type AuthService interface {
	Signup(ctx context.Context, cmd SignupCommand) (*AuthResult, error)
	Login(ctx context.Context, email domain.Email, password string) (*AuthResult, error)
}

type authService struct {
	repo UserRepository
	jwt  config.JWTConfig
}

// NewAuthService creates an AuthService backed by the given repository and
// token configuration.
func NewAuthService(repo UserRepository, jwtCfg config.JWTConfig) AuthService {
	return &authService{repo: repo, jwt: jwtCfg}
}

func (s *authService) Signup(ctx context.Context, cmd SignupCommand) (*AuthResult, error) {
	if existing, err := s.repo.FindByEmail(ctx, cmd.Email.String()); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrUnknownEmail) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email.String(),
		PasswordHash: string(hash),
		Role:         cmd.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *authService) Login(ctx context.Context, email domain.Email, password string) (*AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: *user}, nil
}

// issueToken signs an HS256 JWT carrying the account identity and role.
func (s *authService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role.String(),
		"iss":   s.jwt.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.jwt.TTL).Unix(),
	}
	if s.jwt.Audience != "" {
		claims["aud"] = s.jwt.Audience
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwt.Secret)
}
