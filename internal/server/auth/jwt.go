// Package auth provides the authentication primitives of the backend:
// session token issuance/verification and password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vibesbook/backend/internal/common"
)

// Claims carries the identity facts embedded in a session token alongside
// the registered issued-at and expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GenerateToken mints an HS256-signed token for the given identity, valid
// for validityDuration from now.
func GenerateToken(userID, username, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   userID,
		Username: username,
		Email:    email,
	})

	return token.SignedString(secretKey)
}

// ParseToken checks the signature and expiry of tokenString and returns the
// embedded claims. Expired tokens yield common.ErrTokenExpired; any other
// verification failure yields common.ErrInvalidToken. Callers treat both
// the same way, but logs can tell them apart.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
