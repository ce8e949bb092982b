package sorter

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"desksort/internal/classify"
	"desksort/internal/logging"
	"desksort/internal/store"
)

// MappingStore is the mapping persistence the engine reads from.
type MappingStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	All(ctx context.Context) ([]store.Mapping, error)
	Set(ctx context.Context, key, targetPath string) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIgnore skips entries whose names match any of the doublestar patterns.
func WithIgnore(patterns ...string) Option {
	return func(e *Engine) {
		e.ignore = append(ignoreSet(nil), patterns...)
	}
}

// WithSkipTargetRoots leaves directories in place when they are, or contain,
// a mapping destination. This keeps the sorted output tree on the desktop.
func WithSkipTargetRoots(enabled bool) Option {
	return func(e *Engine) {
		e.skipTargetRoots = enabled
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine performs scan-and-sort passes.
type Engine struct {
	store           MappingStore
	logger          *slog.Logger
	ignore          ignoreSet
	skipTargetRoots bool
	now             func() time.Time
}

// New constructs an Engine reading mappings from st.
func New(st MappingStore, opts ...Option) *Engine {
	e := &Engine{
		store:  st,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "sorter")
	return e
}

// ScanAndSort moves every eligible immediate child of root into its mapped
// destination. Per-entry problems are recorded in the report; the returned
// error is non-nil only when root is unusable or the mappings cannot be read.
// The context is consulted once before the scan starts.
func (e *Engine) ScanAndSort(ctx context.Context, root string) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := e.checkRoot(root)
	if err != nil {
		return nil, err
	}

	mappings, err := e.store.All(ctx)
	if err != nil {
		return nil, wrap(ErrMappingStore, "read mappings", "", err)
	}
	lookup := make(map[string]string, len(mappings))
	for _, m := range mappings {
		lookup[m.Key] = filepath.Clean(m.TargetPath)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, wrap(ErrDirectoryNotFound, "list", root, err)
	}

	report := &Report{
		ScanID:    uuid.NewString(),
		Root:      root,
		StartedAt: e.now(),
	}
	logger := logging.WithContext(logging.WithScanID(ctx, report.ScanID), e.logger)
	logger.Info("scan started",
		logging.String(logging.FieldEventType, "scan_started"),
		logging.String("root", root),
		logging.Int("entries", len(entries)),
		logging.Int("mappings", len(lookup)),
	)

	for _, dirEntry := range entries {
		e.sortEntry(logger, report, root, dirEntry, lookup)
	}

	report.FinishedAt = e.now()
	failed := len(report.Failed())
	counts := []logging.Attr{
		logging.Int("moved", len(report.Moved())),
		logging.Int("failed", failed),
		logging.Duration("duration", report.Duration()),
	}
	if failed > 0 {
		logging.WarnWithContext(logger, "scan completed with failures", "scan_partial",
			append(counts,
				logging.String(logging.FieldErrorHint, "see report errors for each failed entry"),
				logging.String(logging.FieldImpact, "failed entries were left in place"),
			)...)
	} else {
		logger.Info("scan completed",
			logging.Args(append(counts, logging.String(logging.FieldEventType, "scan_completed"))...)...)
	}
	return report, nil
}

func (e *Engine) checkRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", wrap(ErrDirectoryNotFound, "scan root", "", nil)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", wrap(ErrDirectoryNotFound, "resolve", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", wrap(ErrDirectoryNotFound, "stat", abs, err)
	}
	if !info.IsDir() {
		return "", wrap(ErrDirectoryNotFound, "not a directory", abs, nil)
	}
	return abs, nil
}

func (e *Engine) sortEntry(logger *slog.Logger, report *Report, root string, dirEntry os.DirEntry, lookup map[string]string) {
	name := dirEntry.Name()
	if classify.IsHidden(name) {
		return
	}
	if pattern, ok := e.ignore.match(name); ok {
		logger.Debug("entry ignored", logging.String("name", name), logging.String("pattern", pattern))
		return
	}

	source := filepath.Join(root, name)
	if _, err := dirEntry.Info(); err != nil {
		marker, operation := ErrListEntry, "inspect"
		if errors.Is(err, fs.ErrNotExist) {
			// Removed by someone else after the listing.
			marker, operation = ErrMoveFailed, "entry vanished"
		}
		report.failed(source, "", wrap(marker, operation, source, err))
		logger.Warn("entry could not be inspected", logging.Source(source), logging.Error(err))
		return
	}

	kind := classify.KindFile
	if dirEntry.IsDir() {
		kind = classify.KindDirectory
	}
	entry := classify.Entry{Path: source, Kind: kind}

	key, dest, ok := resolveMapping(entry, lookup)
	if !ok {
		logger.Debug("entry unclassified", logging.String("name", name), logging.String("kind", kind.String()))
		return
	}
	if dest == root {
		logger.Debug("entry already at destination", logging.String("name", name), logging.Key(key))
		return
	}
	if kind == classify.KindDirectory {
		if e.skipTargetRoots && containsTarget(source, lookup) {
			logger.Debug("destination root left in place", logging.String("name", name))
			return
		}
		if isWithin(dest, source) {
			err := wrap(ErrMoveFailed, "destination inside source", source, nil)
			report.failed(source, key, err)
			logger.Warn("directory cannot be moved into itself",
				logging.Source(source),
				logging.String("destination_dir", dest),
			)
			return
		}
	}

	target, err := e.moveEntry(source, name, dest)
	if err != nil {
		report.failed(source, key, err)
		logger.Warn("entry move failed",
			logging.Source(source),
			logging.Key(key),
			logging.Error(err),
		)
		return
	}
	report.moved(source, key, target)
	logger.Info("entry moved",
		logging.Source(source),
		logging.Destination(target),
		logging.Key(key),
	)
}

func (e *Engine) moveEntry(source, name, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", wrap(ErrDirectoryCreateFailed, "create", destDir, err)
	}
	target, err := UniqueTarget(destDir, name)
	if err != nil {
		return "", wrap(ErrMoveFailed, "resolve target for", source, err)
	}
	if err := rename(source, target); err != nil {
		return "", wrap(ErrMoveFailed, "rename", source, err)
	}
	return target, nil
}

// resolveMapping returns the first candidate key of entry that has a mapping.
func resolveMapping(entry classify.Entry, lookup map[string]string) (string, string, bool) {
	for _, key := range classify.Keys(entry) {
		if dest, ok := lookup[key]; ok {
			return key, dest, true
		}
	}
	return "", "", false
}

func containsTarget(dir string, lookup map[string]string) bool {
	for _, dest := range lookup {
		if isWithin(dest, dir) {
			return true
		}
	}
	return false
}

// isWithin reports whether path equals dir or lies beneath it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
