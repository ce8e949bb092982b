package sorter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// UniqueTarget returns a path inside destDir for name that does not exist yet.
// The plain name is tried first, then stem_1.ext, stem_2.ext and so on. The
// stem/extension split is at the last dot; names without one (or whose only
// dot is leading) take the suffix at the end. Existence is checked with Lstat
// so a dangling symlink occupies its name.
func UniqueTarget(destDir, name string) (string, error) {
	candidate := filepath.Join(destDir, name)
	free, err := pathFree(candidate)
	if err != nil || free {
		return candidate, err
	}

	stem, ext := splitName(name)
	for n := 1; ; n++ {
		candidate = filepath.Join(destDir, stem+"_"+strconv.Itoa(n)+ext)
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func pathFree(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}

func splitName(name string) (string, string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}
