package media

import (
	"context"

	"github.com/vibesbook/backend/internal/server/models"
)

// Repository persists media records and lists them per owner.
type Repository interface {
	Create(ctx context.Context, m *models.Media) (*models.Media, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Media, error)
}
