package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/flock"

	"desksort/internal/config"
	"desksort/internal/logging"
	"desksort/internal/sorter"
	"desksort/internal/store"
)

// ErrSortInProgress reports that another sort holds the lock.
var ErrSortInProgress = errors.New("another sort is already running")

// App owns the store and engine for one shell session.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	engine *sorter.Engine
}

// New opens the mapping store, seeds defaults when it is empty, and builds the
// sort engine from cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app requires config")
	}
	base := logger
	logger = logging.NewComponentLogger(logger, "app")

	st, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open mapping store: %w", err)
	}

	seeded, err := st.Seed(ctx, cfg.Paths.SortedDir)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	if seeded > 0 {
		logger.Info("default mappings installed",
			logging.String(logging.FieldEventType, "mappings_seeded"),
			logging.Int("count", seeded),
			logging.String("sorted_dir", cfg.Paths.SortedDir),
		)
	}

	engine := sorter.New(st,
		sorter.WithLogger(base),
		sorter.WithIgnore(cfg.Sort.Ignore...),
		sorter.WithSkipTargetRoots(cfg.Sort.SkipSortedRoot),
	)

	return &App{
		cfg:    cfg,
		logger: logger,
		store:  st,
		engine: engine,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Sort sorts the configured desktop directory.
func (a *App) Sort(ctx context.Context) (*sorter.Report, error) {
	return a.SortDir(ctx, a.cfg.Paths.DesktopDir)
}

// SortDir sorts root under the sort lock and journals the successful moves.
func (a *App) SortDir(ctx context.Context, root string) (*sorter.Report, error) {
	lock := flock.New(a.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire sort lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrSortInProgress, a.cfg.LockPath())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			a.logger.Warn("failed to release sort lock", logging.Error(err))
		}
	}()

	report, err := a.engine.ScanAndSort(ctx, root)
	if err != nil {
		return nil, err
	}

	moved := report.Moved()
	moves := make([]store.Move, 0, len(moved))
	for _, o := range moved {
		moves = append(moves, store.Move{Source: o.Source, Destination: o.Destination})
	}
	if err := a.store.RecordMoves(ctx, report.ScanID, report.FinishedAt, moves); err != nil {
		logging.WarnWithContext(a.logger, "move history not recorded", "history_write_failed",
			logging.String(logging.FieldScanID, report.ScanID),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions on the state directory"),
			logging.String(logging.FieldImpact, "history omits this scan; files were still moved"),
		)
	}
	return report, nil
}

// Mapping returns the destination for key.
func (a *App) Mapping(ctx context.Context, key string) (string, bool, error) {
	return a.store.Get(ctx, key)
}

// Mappings returns every mapping ordered by key.
func (a *App) Mappings(ctx context.Context) ([]store.Mapping, error) {
	return a.store.All(ctx)
}

// SetMapping points key at targetPath. "~" and relative paths are expanded.
func (a *App) SetMapping(ctx context.Context, key, targetPath string) error {
	if strings.TrimSpace(targetPath) == "" {
		return fmt.Errorf("%w: target path is empty", store.ErrInvalidMapping)
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(targetPath))
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidMapping, err)
	}
	if err := a.store.Set(ctx, key, expanded); err != nil {
		return err
	}
	a.logger.Info("mapping updated",
		logging.String(logging.FieldEventType, "mapping_set"),
		logging.Key(key),
		logging.String("target_path", expanded),
	)
	return nil
}

// History returns the most recent moves, newest first.
func (a *App) History(ctx context.Context, limit int) ([]store.HistoryRecord, error) {
	return a.store.History(ctx, limit)
}
