package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vibesbook/backend/internal/common"
	"github.com/vibesbook/backend/internal/server/models"
	"github.com/vibesbook/backend/internal/server/services"
)

// maxUploadBytes bounds the in-memory multipart buffer for one upload.
const maxUploadBytes = 32 << 20

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(ctx, w, http.StatusBadRequest, "All fields are required.")
		return
	}

	user, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.writeError(ctx, w, http.StatusBadRequest, "All fields are required.")
		case errors.Is(err, common.ErrorAlreadyExists):
			s.writeError(ctx, w, http.StatusConflict, "Username or email is already registered.")
		default:
			s.logger.Error(ctx, "registration error", "error", err)
			s.writeError(ctx, w, http.StatusInternalServerError, "Internal server error during registration.")
		}
		return
	}

	s.logger.Info(ctx, "Registered", "username", user.Username)
	s.writeJSON(ctx, w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(ctx, w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.writeError(ctx, w, http.StatusBadRequest, "Email and password are required.")
		case errors.Is(err, common.ErrorUnauthorized):
			// Same response whether the email is unknown or the password
			// is wrong.
			s.writeError(ctx, w, http.StatusBadRequest, "Invalid email or password.")
		default:
			s.logger.Error(ctx, "login error", "error", err)
			s.writeError(ctx, w, http.StatusInternalServerError, "Internal server error during login.")
		}
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

type uploadResponse struct {
	Message  string `json:"message"`
	MediaID  string `json:"mediaId"`
	ImageURL string `json:"imageUrl"`
	AudioURL string `json:"audioUrl"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims := claimsFromContext(ctx)
	if claims == nil {
		s.writeError(ctx, w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(ctx, w, http.StatusBadRequest, "Both an image and an audio file are required.")
		return
	}

	image, err := readFormFile(r, "image")
	if err != nil {
		s.logger.Error(ctx, "error reading image field", "error", err)
		s.writeError(ctx, w, http.StatusInternalServerError, "Internal server error while uploading media.")
		return
	}
	audio, err := readFormFile(r, "audio")
	if err != nil {
		s.logger.Error(ctx, "error reading audio field", "error", err)
		s.writeError(ctx, w, http.StatusInternalServerError, "Internal server error while uploading media.")
		return
	}
	if image == nil || audio == nil {
		s.writeError(ctx, w, http.StatusBadRequest, "Both an image and an audio file are required.")
		return
	}

	m, err := s.media.Upload(ctx, claims.UserID, *image, *audio, r.FormValue("description"))
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			s.writeError(ctx, w, http.StatusBadRequest, "Both an image and an audio file are required.")
			return
		}
		s.logger.Error(ctx, "media upload error", "error", err)
		s.writeError(ctx, w, http.StatusInternalServerError, "Internal server error while uploading media.")
		return
	}

	s.logger.Info(ctx, "Media uploaded", "user_id", claims.UserID, "media_id", m.ID)
	s.writeJSON(ctx, w, http.StatusCreated, uploadResponse{
		Message:  "Image and audio uploaded successfully",
		MediaID:  m.ID,
		ImageURL: m.ImageURL,
		AudioURL: m.AudioURL,
	})
}

type mediaResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ImageURL    string    `json:"imageUrl"`
	AudioURL    string    `json:"audioUrl"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *Server) handleMyMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims := claimsFromContext(ctx)
	if claims == nil {
		s.writeError(ctx, w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	items, err := s.media.ListByUser(ctx, claims.UserID)
	if err != nil {
		s.logger.Error(ctx, "error listing media", "error", err)
		s.writeError(ctx, w, http.StatusInternalServerError, "Internal server error while fetching media.")
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, toMediaResponses(items))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "vibesbook photo and audio album backend is running")
}

// readFormFile reads one multipart file field fully into memory. A missing
// field returns (nil, nil) so the caller can report it as a client error.
func readFormFile(r *http.Request, field string) (*services.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &services.FileUpload{ContentType: contentType, Data: data}, nil
}

func toMediaResponses(items []*models.Media) []mediaResponse {
	out := make([]mediaResponse, 0, len(items))
	for _, m := range items {
		out = append(out, mediaResponse{
			ID:          m.ID,
			UserID:      m.UserID,
			ImageURL:    m.ImageURL,
			AudioURL:    m.AudioURL,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
