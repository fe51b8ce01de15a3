// Package storage defines the object-store operations the handlers
// depend on. The MinIO implementation works with any S3-compatible
// provider; tests substitute an in-memory fake.
package storage

import (
	"context"
	"io"
	"time"
)

// SignedURLExpiry is how long a presigned read URL stays valid.
const SignedURLExpiry = 24 * time.Hour

type Storage interface {
	// Upload streams an object to the bucket under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// PresignedGet returns a time-limited read URL for an object.
	PresignedGet(ctx context.Context, key string, expires time.Duration) (string, error)
	// Remove deletes an object. Used for compensating cleanup when a
	// database insert fails after a successful upload, and on row
	// deletion.
	Remove(ctx context.Context, key string) error
	// PublicURL builds the browser-facing URL for a key without
	// talking to the store.
	PublicURL(key string) string
}
