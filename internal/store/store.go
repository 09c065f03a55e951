package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key has no stored blob.
var ErrNotFound = errors.New("blob not found")

// BlobStore is a key/value store for opaque blobs. The shopping state
// is persisted as a single blob under one key.
type BlobStore interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous blob.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List describes every stored blob, most recently updated first.
	List(ctx context.Context) ([]Entry, error)
}

// Entry describes one stored blob without its value.
type Entry struct {
	Key       string    `db:"key"`
	Size      int       `db:"size"`
	UpdatedAt time.Time `db:"updated_at"`
}
