package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSort(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DesktopDir) == "" {
		return errors.New("paths.desktop_dir must be set")
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	if !filepath.IsAbs(c.Paths.SortedDir) {
		return fmt.Errorf("paths.sorted_dir must be absolute, got %q", c.Paths.SortedDir)
	}
	if filepath.Clean(c.Paths.SortedDir) == filepath.Clean(c.Paths.DesktopDir) {
		return errors.New("paths.sorted_dir must differ from paths.desktop_dir")
	}
	return nil
}

func (c *Config) validateSort() error {
	for _, pattern := range c.Sort.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("sort.ignore: invalid pattern %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
}
