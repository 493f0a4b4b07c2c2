// Package services contains server-side business logic. UserService validates
// requests, hashes passwords and delegates to the user record store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usersrpc/internal/common"
	"github.com/dmitrijs2005/usersrpc/internal/cryptox"
	"github.com/dmitrijs2005/usersrpc/internal/server/models"
	"github.com/dmitrijs2005/usersrpc/internal/server/repositories/users"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// UserService implements the user use cases on top of a users.Repository.
//
// Returned errors wrap one of the common sentinels: ErrorInvalidArgument
// (as *common.ValidationError), ErrorNotFound, ErrorAlreadyExists, or
// ErrorInternal for everything else.
type UserService struct {
	repo   users.Repository
	hasher cryptox.PasswordHasher
}

func NewUserService(repo users.Repository, hasher cryptox.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// CreateUser validates the input, hashes the password and stores a new user.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validateCreate(name, email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}

	u, err := s.repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return nil, classify("create user", err)
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, classify("get user", err)
	}
	return u, nil
}

// ListUsers returns a page of users and the total number of users. A zero page
// or page size selects the default; a page size above MaxPageSize is clamped.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]*models.User, int, error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, classify("list users", err)
	}
	return list, total, nil
}

// UpdateUser overwrites name and email. The stored password hash is replaced
// only when password is non-empty.
func (s *UserService) UpdateUser(ctx context.Context, id, name, email, password string) (*models.User, error) {
	if err := validateUpdate(id, name, email, password); err != nil {
		return nil, err
	}

	upd := models.UserUpdate{Name: name, Email: email}
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
		}
		upd.PasswordHash = hash
	}

	u, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, classify("update user", err)
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return classify("delete user", err)
	}
	return nil
}

// classify keeps store errors the transport knows how to report and folds
// everything else into ErrorInternal.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorInvalidArgument),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
	}
}
