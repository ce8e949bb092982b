package sorter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirectoryNotFound reports that the scan root is missing or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrDirectoryCreateFailed reports that a destination directory could not be created.
	ErrDirectoryCreateFailed = errors.New("directory create failed")
	// ErrMoveFailed reports that an entry could not be renamed into its destination.
	ErrMoveFailed = errors.New("move failed")
	// ErrListEntry reports that a listed entry could not be inspected.
	ErrListEntry = errors.New("list entry failed")
	// ErrMappingStore reports that the mapping snapshot could not be read.
	ErrMappingStore = errors.New("mapping store error")
)

// wrap tags err with marker and a short "operation: path" detail so callers
// can classify with errors.Is while logs keep the context.
func wrap(marker error, operation, path string, err error) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if path = strings.TrimSpace(path); path != "" {
		parts = append(parts, path)
	}
	detail := strings.Join(parts, " ")
	if detail == "" {
		detail = "sort failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
