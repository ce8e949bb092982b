package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStore marks failures reading or writing the mapping database.
	ErrStore = errors.New("mapping store error")
	// ErrInvalidMapping marks a rejected Set call.
	ErrInvalidMapping = errors.New("invalid mapping")
)

func storeError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, operation, err)
}
