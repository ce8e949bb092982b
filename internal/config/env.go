package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ErrEnvironmentPathNotFound reports that the platform could not supply a
// desktop or configuration directory.
var ErrEnvironmentPathNotFound = errors.New("environment path not found")

// userDirsFunc reloads the XDG state and returns the desktop and config
// roots. Tests replace it to simulate platforms without them.
var userDirsFunc = func() (desktop, configHome string) {
	// xdg caches the environment at init; Reload picks up later changes.
	xdg.Reload()
	return xdg.UserDirs.Desktop, xdg.ConfigHome
}

// ResolveDesktopDir locates the user's desktop directory: XDG_DESKTOP_DIR,
// the user-dirs.dirs entry, then the platform default (~/Desktop, or the
// known folder on Windows). The directory is not required to exist.
func ResolveDesktopDir() (string, error) {
	desktop, _ := userDirsFunc()
	return checkEnvPath("desktop directory", desktop)
}

// ResolveConfigDir returns the per-user configuration root (for example
// ~/.config on Linux).
func ResolveConfigDir() (string, error) {
	_, configHome := userDirsFunc()
	return checkEnvPath("config directory", configHome)
}

func checkEnvPath(label, dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", fmt.Errorf("%w: %s: not provided by the platform", ErrEnvironmentPathNotFound, label)
	}
	if !filepath.IsAbs(dir) {
		return "", fmt.Errorf("%w: %s: %q is not absolute", ErrEnvironmentPathNotFound, label, dir)
	}
	return filepath.Clean(dir), nil
}
