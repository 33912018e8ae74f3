package client

import (
	"context"

	"github.com/dmitrijs2005/userlist/internal/client/models"
)

// Client is the remote users store.
type Client interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, name string) (models.User, error)
	Update(ctx context.Context, id string, name string) (models.User, error)
	Delete(ctx context.Context, id string) error
}
