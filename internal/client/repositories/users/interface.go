package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/models"
)

// Repository persists snapshots of the users collection.
type Repository interface {
	// ReplaceAll swaps the stored snapshot for users, keeping their order.
	ReplaceAll(ctx context.Context, users []models.User) error

	// GetAll returns the stored snapshot in the order it was saved.
	GetAll(ctx context.Context) ([]models.User, error)

	// SavedAt reports when the snapshot was last written; zero if never.
	SavedAt(ctx context.Context) (time.Time, error)
}
