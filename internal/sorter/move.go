package sorter

import (
	"errors"
	"fmt"
	"os"
)

// renameFunc is swapped in tests to simulate rename failures.
var renameFunc = os.Rename

// CrossDeviceError reports a rename across filesystems (EXDEV). Entries are
// never copied and deleted as a fallback.
type CrossDeviceError struct {
	Source      string
	Destination string
	Err         error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device move %q -> %q: source and destination must share a filesystem: %v",
		e.Source, e.Destination, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err came from a cross-device rename.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

func rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Source: src, Destination: dst, Err: err}
		}
		return err
	}
	return nil
}
