package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type memoryBlob struct {
	value     []byte
	updatedAt time.Time
	seq       uint64
}

// MemoryStore implements BlobStore with in-memory storage.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
	seq   uint64
	now   func() time.Time
}

// NewMemoryStore creates a new MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]memoryBlob),
		now:   time.Now,
	}
}

// Get retrieves the blob stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get blob: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, exists := s.blobs[key]
	if !exists {
		return nil, ErrNotFound
	}
	return append([]byte(nil), blob.value...), nil
}

// Put stores a copy of value under key.
func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("put blob: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.blobs[key] = memoryBlob{
		value:     append([]byte{}, value...),
		updatedAt: s.now().UTC(),
		seq:       s.seq,
	}
	return nil
}

// Delete removes the blob stored under key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("delete blob: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

// List describes all stored blobs, most recently written first.
func (s *MemoryStore) List(ctx context.Context) ([]Entry, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list blobs: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type ordered struct {
		entry Entry
		seq   uint64
	}
	all := make([]ordered, 0, len(s.blobs))
	for k, blob := range s.blobs {
		all = append(all, ordered{
			entry: Entry{Key: k, Size: len(blob.value), UpdatedAt: blob.updatedAt},
			seq:   blob.seq,
		})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seq > all[j].seq })

	entries := make([]Entry, len(all))
	for i, o := range all {
		entries[i] = o.entry
	}
	return entries, nil
}
