package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"desksort/internal/classify"
)

// Mapping associates a category key with its destination directory.
type Mapping struct {
	Key        string    `json:"key" yaml:"key"`
	TargetPath string    `json:"target_path" yaml:"target_path"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"updated_at"`
}

// Get returns the destination for key. ok is false when no mapping exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	ctx = ensureContext(ctx)
	key = classify.NormalizeKey(key)
	if key == "" {
		return "", false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var target string
	err := s.db.QueryRowContext(ctx,
		"SELECT target_path FROM path_mappings WHERE extension = ?", key,
	).Scan(&target)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeError("get mapping "+key, err)
	}
	return target, true, nil
}

// All returns every mapping ordered by key.
func (s *Store) All(ctx context.Context) ([]Mapping, error) {
	ctx = ensureContext(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT extension, target_path, updated_at FROM path_mappings ORDER BY extension",
	)
	if err != nil {
		return nil, storeError("list mappings", err)
	}
	defer rows.Close()

	var mappings []Mapping
	for rows.Next() {
		var (
			m       Mapping
			updated string
		)
		if err := rows.Scan(&m.Key, &m.TargetPath, &updated); err != nil {
			return nil, storeError("scan mapping", err)
		}
		if ts, err := parseTimeString(updated); err == nil {
			m.UpdatedAt = ts
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list mappings", err)
	}
	return mappings, nil
}

// Set inserts or replaces the mapping for key. The last write wins.
func (s *Store) Set(ctx context.Context, key, targetPath string) error {
	ctx = ensureContext(ctx)
	normalized := classify.NormalizeKey(key)
	if normalized == "" {
		return fmt.Errorf("%w: key %q is empty", ErrInvalidMapping, key)
	}
	targetPath = strings.TrimSpace(targetPath)
	if !filepath.IsAbs(targetPath) {
		return fmt.Errorf("%w: target path %q must be absolute", ErrInvalidMapping, targetPath)
	}
	targetPath = filepath.Clean(targetPath)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.execWithRetry(ctx,
		`INSERT INTO path_mappings (extension, target_path, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(extension) DO UPDATE SET target_path = excluded.target_path, updated_at = excluded.updated_at`,
		normalized, targetPath, formatTime(time.Now()),
	)
	if err != nil {
		return storeError("set mapping "+normalized, err)
	}
	return nil
}

// Count returns the number of stored mappings.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM path_mappings").Scan(&count); err != nil {
		return 0, storeError("count mappings", err)
	}
	return count, nil
}

// Seed installs the default category table rooted at sortedRoot when the
// mapping table is empty. It returns the number of rows inserted, which is
// zero on every run after the first. The check and the inserts share one
// transaction so a reader never sees a partial table.
func (s *Store) Seed(ctx context.Context, sortedRoot string) (int, error) {
	ctx = ensureContext(ctx)
	if !filepath.IsAbs(sortedRoot) {
		return 0, fmt.Errorf("%w: sorted root %q must be absolute", ErrInvalidMapping, sortedRoot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	err := retryOnBusy(ctx, func() error {
		inserted = 0
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM path_mappings").Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return tx.Commit()
		}

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO path_mappings (extension, target_path, updated_at) VALUES (?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		now := formatTime(time.Now())
		for _, def := range classify.DefaultKeys() {
			target := filepath.Join(sortedRoot, def.Category)
			if _, err := stmt.ExecContext(ctx, def.Key, target, now); err != nil {
				return fmt.Errorf("insert %s: %w", def.Key, err)
			}
			inserted++
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, storeError("seed defaults", err)
	}
	return inserted, nil
}
