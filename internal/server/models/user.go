package models

import "time"

// User is an identity record. It is created only through registration and
// never updated or deleted afterwards; the store assigns the ID. Username
// and email are each unique, enforced by the database schema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
