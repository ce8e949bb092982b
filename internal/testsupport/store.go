package testsupport

import (
	"context"
	"testing"

	"desksort/internal/config"
	"desksort/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// MustSeed installs the default mappings rooted at the config's sorted dir.
func MustSeed(t testing.TB, st *store.Store, cfg *config.Config) {
	t.Helper()

	if _, err := st.Seed(context.Background(), cfg.Paths.SortedDir); err != nil {
		t.Fatalf("store.Seed: %v", err)
	}
}
