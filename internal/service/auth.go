package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasknest/tasknest/internal/domain"
)

// UnverifiedSubject is a username decoded from a token without signature
// verification. It is deliberately a distinct type so it cannot be passed
// where a verified identity is expected; call ValidateToken to get one of
// those.
type UnverifiedSubject string

// AuthService handles user registration, login, and JWT token operations.
type AuthService struct {
	users      domain.UserRepository
	jwtSecret  []byte
	bcryptCost int
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string, bcryptCost int, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
		tokenTTL:   tokenTTL,
	}
}

// Register creates a new user account and issues a token for it.
// Username and email uniqueness are checked up front; a race between two
// concurrent registrations is caught by the database's unique constraints
// and surfaced as the same duplicate errors.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username, email, and password are required", domain.ErrInvalidInput)
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return "", nil, domain.ErrDuplicateUsername
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return "", nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enabled:      true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Login verifies credentials and returns a fresh signed token.
// Unknown usernames, wrong passwords, and disabled accounts all fail with
// ErrInvalidCredentials so callers cannot probe for valid usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Enabled {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// GenerateToken produces a signed JWT with the username as subject.
func (s *AuthService) GenerateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and fully validates a JWT token string, returning the
// subject username. It fails closed: any parse error, unexpected signing
// method, bad signature, or expiry yields ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}

	return sub, nil
}

// ExtractUsername decodes the subject claim without verifying the signature.
// The result is explicitly unverified; anything that grants access must go
// through ValidateToken instead.
func (s *AuthService) ExtractUsername(tokenString string) (UnverifiedSubject, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}

	return UnverifiedSubject(sub), nil
}

// GetByUsername resolves a user record for a verified token subject.
func (s *AuthService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}
