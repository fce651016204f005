// Package blobstore stores uploaded media bytes in an S3-compatible backend
// and hands back stable public URLs.
package blobstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ObjectStore is the media hosting collaborator: it accepts binary content
// and returns a stable public URL for it.
type ObjectStore interface {
	// Put stores data under key with the given content type and returns
	// the public URL of the stored object.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// StorageKey builds a date-partitioned object key for a new upload,
// e.g. "images/2026/8/31/9f2c...".
func StorageKey(prefix string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%d/%v", prefix, d.Year(), int(d.Month()), d.Day(), uuid.New())
}
