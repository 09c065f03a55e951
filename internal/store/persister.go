package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nhle/shopping-list/internal/model"
)

// persistTimeout bounds a single load or save against the blob store.
const persistTimeout = 5 * time.Second

// SnapshotPersister stores the shopping snapshot as one JSON blob.
// It satisfies shop.Persister.
type SnapshotPersister struct {
	Blobs BlobStore
	Key   string
}

// NewSnapshotPersister returns a persister for key, falling back to
// model.DefaultSnapshotKey when key is empty.
func NewSnapshotPersister(blobs BlobStore, key string) *SnapshotPersister {
	if key == "" {
		key = model.DefaultSnapshotKey
	}
	return &SnapshotPersister{Blobs: blobs, Key: key}
}

// Load reads and decodes the snapshot. A missing blob yields an empty
// snapshot and no error.
func (p *SnapshotPersister) Load() (model.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	data, err := p.Blobs.Get(ctx, p.Key)
	if errors.Is(err, ErrNotFound) {
		return model.Snapshot{Stores: []model.Store{}}, nil
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("loading snapshot %q: %w", p.Key, err)
	}

	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("loading snapshot %q: %w", p.Key, err)
	}
	return snap, nil
}

// Save encodes and writes the snapshot.
func (p *SnapshotPersister) Save(snap model.Snapshot) error {
	data, err := model.EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.Blobs.Put(ctx, p.Key, data); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", p.Key, err)
	}
	return nil
}

// Clear removes the saved snapshot. Loading afterwards yields an empty
// snapshot.
func (p *SnapshotPersister) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.Blobs.Delete(ctx, p.Key); err != nil {
		return fmt.Errorf("clearing snapshot %q: %w", p.Key, err)
	}
	return nil
}
