package classify

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FolderKey is the sentinel mapping key for directories.
const FolderKey = "folder"

// Kind distinguishes regular entries from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one desktop child considered for sorting.
type Entry struct {
	Path string
	Kind Kind
}

// Name returns the final path element.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Hidden reports whether the entry name carries the hidden-file marker.
func (e Entry) Hidden() bool {
	return IsHidden(e.Name())
}

// Extension returns the classification extension: the lowercase suffix after
// the last dot including the dot, FolderKey for directories, or "" when the
// file has none.
func (e Entry) Extension() string {
	key, _ := Classify(e)
	return key
}

// IsHidden reports whether name starts with a dot.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Classify returns the mapping key for entry. Directories always map to
// FolderKey. Files map to their last extension; files without one are not
// classifiable.
func Classify(entry Entry) (string, bool) {
	if entry.Kind == KindDirectory {
		return FolderKey, true
	}
	keys := extensionKeys(entry.Name())
	if len(keys) == 0 {
		return "", false
	}
	return keys[len(keys)-1], true
}

// Keys returns every candidate mapping key for entry, most specific first.
// "backup.tar.gz" yields [".tar.gz", ".gz"]; callers use the first key that
// has a mapping.
func Keys(entry Entry) []string {
	if entry.Kind == KindDirectory {
		return []string{FolderKey}
	}
	return extensionKeys(entry.Name())
}

// NormalizeKey canonicalizes a user-supplied mapping key: trimmed, lowercased,
// and dot-prefixed unless it is the folder sentinel. "PDF", ".Pdf" and "pdf"
// all normalize to ".pdf". "directory" is accepted as an alias of FolderKey.
func NormalizeKey(key string) string {
	key = lower(strings.TrimSpace(key))
	switch key {
	case "":
		return ""
	case FolderKey, "directory":
		return FolderKey
	}
	key = strings.TrimLeft(key, ".")
	if key == "" {
		return ""
	}
	return "." + key
}

func extensionKeys(name string) []string {
	// Leading dots belong to hidden names, never to the extension.
	trimmed := strings.TrimLeft(name, ".")
	last := strings.LastIndex(trimmed, ".")
	if last < 0 || last == len(trimmed)-1 {
		return nil
	}

	var keys []string
	// Only the final two segments form a compound key (".tar.gz").
	if prev := strings.LastIndex(trimmed[:last], "."); prev >= 0 && prev < last-1 {
		keys = append(keys, lower(trimmed[prev:]))
	}
	return append(keys, lower(trimmed[last:]))
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
