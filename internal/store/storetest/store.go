// Package storetest provides store fixtures for tests.
package storetest

import (
	"testing"

	"github.com/nhle/shopping-list/internal/store"
)

// NewSQLiteStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
