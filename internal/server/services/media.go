package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vibesbook/backend/internal/common"
	"github.com/vibesbook/backend/internal/server/blobstore"
	"github.com/vibesbook/backend/internal/server/models"
	"github.com/vibesbook/backend/internal/server/repositories/repomanager"
)

// FileUpload is one in-memory uploaded file handed over by the transport.
type FileUpload struct {
	ContentType string
	Data        []byte
}

// MediaService uploads image+audio pairs to object storage and keeps their
// records scoped to the owning user.
type MediaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       blobstore.ObjectStore
}

func NewMediaService(db *sql.DB, m repomanager.RepositoryManager, store blobstore.ObjectStore) *MediaService {
	return &MediaService{
		db:          db,
		repomanager: m,
		store:       store,
	}
}

// Upload stores both files in the object store and then inserts the media
// record. Both files are required; the description is optional.
func (s *MediaService) Upload(ctx context.Context, userID string, image, audio FileUpload, description string) (*models.Media, error) {
	if userID == "" || len(image.Data) == 0 || len(audio.Data) == 0 {
		return nil, common.ErrorValidation
	}

	imageKey := blobstore.StorageKey("images")
	imageURL, err := s.store.Put(ctx, imageKey, image.ContentType, image.Data)
	if err != nil {
		return nil, fmt.Errorf("error uploading image: %w", err)
	}

	audioKey := blobstore.StorageKey("audios")
	audioURL, err := s.store.Put(ctx, audioKey, audio.ContentType, audio.Data)
	if err != nil {
		return nil, fmt.Errorf("error uploading audio: %w", err)
	}

	m := &models.Media{
		UserID:      userID,
		ImageURL:    imageURL,
		AudioURL:    audioURL,
		ImageKey:    imageKey,
		AudioKey:    audioKey,
		Description: description,
	}

	repo := s.repomanager.Media(s.db)
	created, err := repo.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("error creating media record: %w", err)
	}

	return created, nil
}

// ListByUser returns every media record owned by userID.
func (s *MediaService) ListByUser(ctx context.Context, userID string) ([]*models.Media, error) {
	repo := s.repomanager.Media(s.db)
	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing media: %w", err)
	}
	return items, nil
}
