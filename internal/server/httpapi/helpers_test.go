package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vibesbook/backend/internal/common"
	"github.com/vibesbook/backend/internal/dbx"
	"github.com/vibesbook/backend/internal/logging"
	"github.com/vibesbook/backend/internal/server/auth"
	"github.com/vibesbook/backend/internal/server/config"
	"github.com/vibesbook/backend/internal/server/models"
	mediarepo "github.com/vibesbook/backend/internal/server/repositories/media"
	usersrepo "github.com/vibesbook/backend/internal/server/repositories/users"
	"github.com/vibesbook/backend/internal/server/services"
)

const testSecret = "test-secret"

// memUsersRepo is an in-memory users.Repository enforcing the same
// uniqueness rules as the postgres schema.
type memUsersRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.users = append(r.users, u)
	return u, nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// memMediaRepo is an in-memory media.Repository.
type memMediaRepo struct {
	mu    sync.Mutex
	items []*models.Media
}

func (r *memMediaRepo) Create(ctx context.Context, m *models.Media) (*models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	r.items = append(r.items, m)
	return m, nil
}

func (r *memMediaRepo) ListByUser(ctx context.Context, userID string) ([]*models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Media
	for _, m := range r.items {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memRepoManager struct {
	u *memUsersRepo
	m *memMediaRepo
}

func (f *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return f.u }
func (f *memRepoManager) Media(db dbx.DBTX) mediarepo.Repository      { return f.m }
func (f *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

// memStore is an in-memory blobstore.ObjectStore.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *memStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[key] = data
	return "http://store/vibesbook/" + key, nil
}

func mediaFor(userID string) *models.Media {
	return &models.Media{
		UserID:   userID,
		ImageURL: "http://store/vibesbook/images/x",
		AudioURL: "http://store/vibesbook/audios/x",
		ImageKey: "images/x",
		AudioKey: "audios/x",
	}
}

func newTestServer(t *testing.T) (*Server, *memRepoManager, *memStore) {
	t.Helper()

	rm := &memRepoManager{u: &memUsersRepo{}, m: &memMediaRepo{}}
	store := &memStore{}

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: 2 * time.Hour,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	us := services.NewUserService(nil, rm, auth.NewBcryptHasher(), cfg)
	ms := services.NewMediaService(nil, rm, store)

	return NewServer(":0", logger, us, ms, testSecret), rm, store
}
