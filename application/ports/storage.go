package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStore defines the narrow object-storage contract the import
// pipeline relies on
type ObjectStore interface {
	// Get opens a streaming read of an object's content. The caller owns
	// the returned reader and must close it.
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// Copy duplicates an object within a bucket
	Copy(ctx context.Context, bucket, srcKey, dstKey string) error

	// Delete removes an object
	Delete(ctx context.Context, bucket, key string) error
}

// UploadSigner issues time-limited write URLs for object-store keys
type UploadSigner interface {
	// PresignPut returns a URL that allows a single PUT of the given key
	// until the TTL elapses. No object is created by signing alone.
	PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}
