package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"desksort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory. The desktop
// directory is created; the sorted output directory is not.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DesktopDir = filepath.Join(base, "Desktop")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.SortedDir = filepath.Join(base, "Desktop", "Sorted")
	cfgVal.Paths.LogDir = filepath.Join(base, "state", "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := os.MkdirAll(builder.cfg.Paths.DesktopDir, 0o755); err != nil {
		t.Fatalf("mkdir desktop: %v", err)
	}
	return builder.cfg
}

// WithSortedDir places the sorted output directory at base/<rel>.
func WithSortedDir(rel string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.SortedDir = filepath.Join(b.baseDir, rel)
	}
}

// WithIgnore replaces the ignore patterns.
func WithIgnore(patterns ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sort.Ignore = append([]string(nil), patterns...)
	}
}

// WithoutLogDir disables file logging.
func WithoutLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = ""
	}
}
