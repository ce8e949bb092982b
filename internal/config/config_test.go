package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"desksort/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DESKTOP_DIR", "")
	t.Setenv("DESKSORT_DESKTOP_DIR", "")
	t.Setenv("DESKSORT_STATE_DIR", "")
	return home
}

func TestLoadDefaultConfigResolvesEnvironmentPaths(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantDesktop := filepath.Join(home, "Desktop")
	if cfg.Paths.DesktopDir != wantDesktop {
		t.Fatalf("unexpected desktop dir: got %q want %q", cfg.Paths.DesktopDir, wantDesktop)
	}
	wantState := filepath.Join(home, ".config", "desksort")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Paths.SortedDir != filepath.Join(wantDesktop, "Sorted") {
		t.Fatalf("unexpected sorted dir: %q", cfg.Paths.SortedDir)
	}
	if cfg.Paths.LogDir != filepath.Join(wantState, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.DatabasePath() != filepath.Join(wantState, "settings.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
	if cfg.LockPath() != filepath.Join(wantState, "desksort.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
	if !cfg.Sort.SkipSortedRoot {
		t.Fatal("expected skip_sorted_root enabled by default")
	}
	if len(cfg.Sort.Ignore) == 0 {
		t.Fatal("expected default ignore patterns")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.DesktopDir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("EnsureDirectories should not create the desktop, stat err = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "desksort.toml")

	type payload struct {
		Paths struct {
			DesktopDir string `toml:"desktop_dir"`
			StateDir   string `toml:"state_dir"`
			SortedDir  string `toml:"sorted_dir"`
		} `toml:"paths"`
		Sort struct {
			Ignore []string `toml:"ignore"`
		} `toml:"sort"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DesktopDir = filepath.Join(tempDir, "desk")
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Paths.SortedDir = filepath.Join(tempDir, "out")
	custom.Sort.Ignore = []string{"*.tmp", " *.tmp ", ""}
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DesktopDir != custom.Paths.DesktopDir {
		t.Fatalf("unexpected desktop dir: %q", cfg.Paths.DesktopDir)
	}
	if cfg.Paths.SortedDir != custom.Paths.SortedDir {
		t.Fatalf("unexpected sorted dir: %q", cfg.Paths.SortedDir)
	}
	if len(cfg.Sort.Ignore) != 1 || cfg.Sort.Ignore[0] != "*.tmp" {
		t.Fatalf("expected ignore patterns to be trimmed and deduplicated, got %q", cfg.Sort.Ignore)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging values normalized, got %+v", cfg.Logging)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	isolateEnv(t)
	base := t.TempDir()
	t.Setenv("DESKSORT_DESKTOP_DIR", filepath.Join(base, "desktop"))
	t.Setenv("DESKSORT_STATE_DIR", filepath.Join(base, "state"))

	cfg, _, _, err := config.Load(filepath.Join(base, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DesktopDir != filepath.Join(base, "desktop") {
		t.Fatalf("expected desktop override, got %q", cfg.Paths.DesktopDir)
	}
	if cfg.Paths.StateDir != filepath.Join(base, "state") {
		t.Fatalf("expected state override, got %q", cfg.Paths.StateDir)
	}
}

func TestResolveDesktopDirReadsUserDirs(t *testing.T) {
	home := isolateEnv(t)
	userDirs := filepath.Join(home, ".config", "user-dirs.dirs")
	if err := os.MkdirAll(filepath.Dir(userDirs), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "# written by xdg-user-dirs-update\nXDG_DOWNLOAD_DIR=\"$HOME/Downloads\"\nXDG_DESKTOP_DIR=\"$HOME/Schreibtisch\"\n"
	if err := os.WriteFile(userDirs, []byte(content), 0o644); err != nil {
		t.Fatalf("write user-dirs: %v", err)
	}

	got, err := config.ResolveDesktopDir()
	if err != nil {
		t.Fatalf("ResolveDesktopDir: %v", err)
	}
	if want := filepath.Join(home, "Schreibtisch"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestResolveDesktopDirPrefersEnv(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_DESKTOP_DIR", dir)

	got, err := config.ResolveDesktopDir()
	if err != nil {
		t.Fatalf("ResolveDesktopDir: %v", err)
	}
	if got != dir {
		t.Fatalf("got %q want %q", got, dir)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	isolateEnv(t)
	base := t.TempDir()

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "invalid ignore pattern",
			body:    "[sort]\nignore = [\"[unterminated\"]\n",
			wantErr: "sort.ignore",
		},
		{
			name:    "unknown level",
			body:    "[logging]\nlevel = \"loud\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "sorted dir equals desktop",
			body:    "[paths]\ndesktop_dir = \"" + filepath.ToSlash(filepath.Join(base, "desk")) + "\"\nsorted_dir = \"" + filepath.ToSlash(filepath.Join(base, "desk")) + "\"\n",
			wantErr: "paths.sorted_dir",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if len(cfg.Sort.Ignore) != 4 {
		t.Fatalf("expected sample ignore patterns, got %q", cfg.Sort.Ignore)
	}
}
