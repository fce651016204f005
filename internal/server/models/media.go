package models

import "time"

// Media is one image+audio pair owned by a user. The URLs point at the
// object storage backend; the keys identify the stored objects so they can
// be removed later.
type Media struct {
	ID          string
	UserID      string
	ImageURL    string
	AudioURL    string
	ImageKey    string
	AudioKey    string
	Description string
	CreatedAt   time.Time
}
