// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues session JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vibesbook/backend/internal/common"
	"github.com/vibesbook/backend/internal/server/auth"
	"github.com/vibesbook/backend/internal/server/config"
	"github.com/vibesbook/backend/internal/server/models"
	"github.com/vibesbook/backend/internal/server/repositories/repomanager"
)

// dummyPasswordDigest is verified against when a login targets an unknown
// email, so response timing does not reveal whether the account exists.
// It is not a real credential and never matches any password.
const dummyPasswordDigest = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// UserService provides authentication-related operations:
// - Register: create users with hashed passwords
// - Login: verify credentials and mint a session token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                auth.PasswordHasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username, email, and password.
// A username or email collision yields common.ErrorAlreadyExists and no
// record; the store's unique indexes make that check atomic, including
// against concurrent registrations.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: digest}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the password for the account registered under email and,
// on success, returns a signed session token carrying the user's identity.
// An unknown email and a wrong password yield the same ErrorUnauthorized:
// the caller must not be able to tell which check failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn a hash comparison so response timing does not reveal
			// whether the email exists.
			s.hasher.Verify(password, dummyPasswordDigest)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
