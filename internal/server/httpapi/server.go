// Package httpapi exposes the JSON/HTTP surface of the backend: the auth
// endpoints, the media endpoints, and the authorization gate protecting them.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vibesbook/backend/internal/logging"
	"github.com/vibesbook/backend/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	media     *services.MediaService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, ms *services.MediaService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		media:     ms,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table. Media routes sit behind the
// authorization gate; auth routes and the health check do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("POST /api/media/upload", s.authenticate(http.HandlerFunc(s.handleUpload)))
	mux.Handle("GET /api/media/my-media", s.authenticate(http.HandlerFunc(s.handleMyMedia)))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
