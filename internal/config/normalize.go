package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSort()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error

	if strings.TrimSpace(c.Paths.DesktopDir) == "" {
		if value, ok := os.LookupEnv("DESKSORT_DESKTOP_DIR"); ok {
			c.Paths.DesktopDir = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Paths.DesktopDir) == "" {
		if c.Paths.DesktopDir, err = ResolveDesktopDir(); err != nil {
			return err
		}
	}
	if c.Paths.DesktopDir, err = expandPath(c.Paths.DesktopDir); err != nil {
		return fmt.Errorf("paths.desktop_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.StateDir) == "" {
		if value, ok := os.LookupEnv("DESKSORT_STATE_DIR"); ok {
			c.Paths.StateDir = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		base, err := ResolveConfigDir()
		if err != nil {
			return err
		}
		c.Paths.StateDir = filepath.Join(base, defaultAppDirName)
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.SortedDir) == "" {
		c.Paths.SortedDir = filepath.Join(c.Paths.DesktopDir, defaultSortedDirName)
	}
	if c.Paths.SortedDir, err = expandPath(c.Paths.SortedDir); err != nil {
		return fmt.Errorf("paths.sorted_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.StateDir, defaultLogDirName)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSort() {
	patterns := make([]string, 0, len(c.Sort.Ignore))
	seen := make(map[string]struct{}, len(c.Sort.Ignore))
	for _, pattern := range c.Sort.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if _, ok := seen[pattern]; ok {
			continue
		}
		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
	}
	c.Sort.Ignore = patterns
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = defaultLogFormat
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
