package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "error writing response", "error", err)
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	s.writeJSON(ctx, w, status, messageResponse{Message: msg})
}
