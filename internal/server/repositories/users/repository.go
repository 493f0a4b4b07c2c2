// Package users holds the user record store.
package users

import (
	"context"

	"github.com/dmitrijs2005/usersrpc/internal/server/models"
)

// Repository is the record store behind the user service. Implementations
// must be safe for concurrent use and return copies, never shared records.
//
// Errors: common.ErrorNotFound for an unknown id, common.ErrorAlreadyExists
// when an email is taken by another live record, common.ErrorInvalidArgument
// for paging parameters below 1.
type Repository interface {
	// Create assigns an id and both timestamps and stores the record.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	// List returns one page of records in insertion order and the number of
	// live records. A page past the end is empty, not an error.
	List(ctx context.Context, page, pageSize int) ([]*models.User, int, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
