package userRepo

import (
	"context"

	"staynest/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Credentials are never loaded.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
