package media

import (
	"context"
	"fmt"

	"github.com/vibesbook/backend/internal/dbx"
	"github.com/vibesbook/backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Media) (*models.Media, error) {

	query :=
		`INSERT INTO media (user_id, image_url, audio_url, image_key, audio_key, description)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.UserID, m.ImageURL, m.AudioURL, m.ImageKey, m.AudioKey, m.Description).
		Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Media, error) {
	query :=
		`SELECT id, user_id, image_url, audio_url, image_key, audio_key, description, created_at
		 FROM media
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []*models.Media
	for rows.Next() {
		m := &models.Media{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.ImageURL, &m.AudioURL,
			&m.ImageKey, &m.AudioKey, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
