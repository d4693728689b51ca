package service

import (
	"context"

	"github.com/bookwyrm/backend/internal/db"
	"github.com/bookwyrm/backend/internal/model"
	"github.com/google/uuid"
)

type UserRepo interface {
	CreateUser(ctx context.Context, id, username, pseudonym, passwordHash string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) (int64, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
}

type UserService struct {
	repo   UserRepo
	hasher *PasswordHasher
}

func NewUserService(repo UserRepo, hasher *PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Create hashes the plaintext and stores the new account. The plaintext is
// discarded; only the hash is persisted.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, ErrInvalidInput
	}

	user, err := s.repo.CreateUser(ctx, uuid.NewString(), req.Username, req.Pseudonym, hash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

// UpdatePassword re-hashes on every assignment, so setting the same password
// twice still rotates the stored hash.
func (s *UserService) UpdatePassword(ctx context.Context, id string, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return ErrInvalidInput
	}

	affected, err := s.repo.UpdateUserPassword(ctx, id, hash)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the account. Tokens already issued for it stay
// cryptographically valid until they expire.
func (s *UserService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureAdmin seeds the bootstrap account if it does not exist yet. With no
// admin configured the seed is skipped; with a half-configured pair the
// deployment is broken and we refuse to start.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" && password == "" {
		return false, nil
	}
	if username == "" || password == "" {
		return false, ErrMisconfigured
	}

	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		return false, nil
	} else if !db.IsNoRows(err) {
		return false, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	if _, err := s.repo.CreateUser(ctx, uuid.NewString(), username, username, hash); err != nil {
		return false, err
	}
	return true, nil
}
