package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bookwyrm/backend/internal/config"
	"github.com/bookwyrm/backend/internal/db"
	"github.com/bookwyrm/backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserReader is the slice of the user store the auth service needs.
type UserReader interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthService issues and verifies access tokens and handles login. Issuance
// and verification share the one secret resolved at construction; there is no
// second source of truth.
type AuthService struct {
	repo      UserReader
	hasher    *PasswordHasher
	jwtSecret []byte
	tokenTTL  time.Duration
}

type authClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewAuthService(repo UserReader, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil || tokenTTL <= 0 {
		return nil, fmt.Errorf("%w: invalid TOKEN_TTL", ErrMisconfigured)
	}

	cost := bcrypt.DefaultCost
	if cfg.BcryptCost != "" {
		cost, err = strconv.Atoi(cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid BCRYPT_COST", ErrMisconfigured)
		}
	}

	return &AuthService{
		repo:      repo,
		hasher:    NewPasswordHasher(cost),
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  tokenTTL,
	}, nil
}

// Hasher exposes the shared password hasher so that user management hashes
// credentials with the same work factor used at login.
func (s *AuthService) Hasher() *PasswordHasher {
	return s.hasher
}

// Login verifies the credentials and returns a fresh access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	if username == "" || password == "" {
		return "", 0, ErrInvalidInput
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return "", 0, ErrUnauthorized
		}
		return "", 0, err
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", 0, ErrUnauthorized
	}

	return s.IssueToken(user)
}

// IssueToken signs a token asserting the user's identity, expiring after the
// configured TTL.
func (s *AuthService) IssueToken(user *model.User) (string, int64, error) {
	now := time.Now()
	claims := authClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.tokenTTL.Seconds()), nil
}

// ParseAccessToken verifies signature and expiry against the process-wide
// secret. Expiry is reported as ErrTokenExpired; every other failure collapses
// to ErrTokenMalformed so no verification detail leaks to callers.
func (s *AuthService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	return &model.AuthUser{
		ID:       claims.Subject,
		Username: claims.Username,
	}, nil
}
