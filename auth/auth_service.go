package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	InsertUser(ctx context.Context, user User, passwordHash string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, string, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, id, name, phone string) error
}

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	repo     UserRepository
	secret   []byte
	tokenTTL time.Duration
	// users caches token → profile lookups; revoked is the sign-out denylist.
	users   *cache.Cache
	revoked *cache.Cache
}

func NewService(repo UserRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		users:    cache.New(1*time.Minute, 5*time.Minute),
		revoked:  cache.New(tokenTTL, 10*time.Minute),
	}
}

// SignUp registers an account and creates its profile row in one step, then
// signs the user in.
func (s *Service) SignUp(ctx context.Context, email, password, name, phone string) (User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.InsertUser(ctx, User{
		Email:          email,
		Name:           name,
		Phone:          phone,
		Role:           RoleUser,
		MembershipType: "standard",
	}, string(hash))

	if err != nil {
		return User{}, "", err
	}

	token, err := s.issueToken(user)

	return user, token, err
}

// SignIn verifies credentials and issues a session token. An unknown email
// and a bad password fail identically.
func (s *Service) SignIn(ctx context.Context, email, password string) (User, string, error) {
	user, passwordHash, err := s.repo.GetUserByEmail(ctx, email)

	if errors.Is(err, ErrUserNotFound) {
		return User{}, "", ErrInvalidCredentials
	}

	if err != nil {
		return User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)

	return user, token, err
}

// SignOut revokes a token for the rest of its lifetime.
func (s *Service) SignOut(token string) {
	s.users.Delete(token)
	s.revoked.Set(token, true, cache.DefaultExpiration)
}

// CurrentUser resolves a session token to its profile, caching the lookup.
func (s *Service) CurrentUser(ctx context.Context, token string) (User, error) {
	if _, found := s.revoked.Get(token); found {
		return User{}, ErrInvalidToken
	}

	if cached, found := s.users.Get(token); found {
		return cached.(User), nil
	}

	claims, err := s.parseToken(token)

	if err != nil {
		return User{}, ErrInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, claims.Subject)

	if err != nil {
		return User{}, err
	}

	s.users.Set(token, user, cache.DefaultExpiration)

	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID, name, phone string) (User, error) {
	if err := s.repo.UpdateProfile(ctx, userID, name, phone); err != nil {
		return User{}, err
	}

	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) issueToken(user User) (string, error) {
	claims := Claims{
		Role:  user.Role,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)

	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)

	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
