package client

import (
	"context"

	"github.com/dmitrijs2005/usersrpc/internal/client/models"
)

type Client interface {
	Close() error
	CreateUser(ctx context.Context, name, email, password string) (*models.User, string, error)
	GetUsers(ctx context.Context, page, pageSize int) ([]*models.User, int, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id, name, email, password string) (*models.User, string, error)
	DeleteUser(ctx context.Context, id string) (deletedID, message string, err error)
}
