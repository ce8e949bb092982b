package store

import (
	"context"
	"fmt"
	"time"
)

// HistoryRecord is one successful move recorded by a sort run.
type HistoryRecord struct {
	ID          int64     `json:"id" yaml:"id"`
	ScanID      string    `json:"scan_id" yaml:"scan_id"`
	Source      string    `json:"source" yaml:"source"`
	Destination string    `json:"destination" yaml:"destination"`
	MovedAt     time.Time `json:"moved_at" yaml:"moved_at"`
}

// Move is the input to RecordMoves.
type Move struct {
	Source      string
	Destination string
}

// RecordMoves appends the successful moves of one scan to the journal.
func (s *Store) RecordMoves(ctx context.Context, scanID string, movedAt time.Time, moves []Move) error {
	ctx = ensureContext(ctx)
	if len(moves) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := formatTime(movedAt)
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO move_history (scan_id, source_path, destination_path, moved_at) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, move := range moves {
			if _, err := stmt.ExecContext(ctx, scanID, move.Source, move.Destination, stamp); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return storeError(fmt.Sprintf("record %d moves", len(moves)), err)
	}
	return nil
}

// History returns the most recent moves, newest first. A limit of zero or
// less returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]HistoryRecord, error) {
	ctx = ensureContext(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, scan_id, source_path, destination_path, moved_at FROM move_history ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError("list history", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var (
			rec   HistoryRecord
			moved string
		)
		if err := rows.Scan(&rec.ID, &rec.ScanID, &rec.Source, &rec.Destination, &moved); err != nil {
			return nil, storeError("scan history", err)
		}
		if ts, err := parseTimeString(moved); err == nil {
			rec.MovedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list history", err)
	}
	return records, nil
}
