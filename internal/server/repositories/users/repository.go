package users

import (
	"context"

	"github.com/vibesbook/backend/internal/server/models"
)

// Repository persists identity records. Create must fail with
// common.ErrorAlreadyExists when the username or email is already taken,
// without writing a record.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
