package database

import (
	"errors"
	"fmt"
)

// ErrStorage marks any failure coming out of the driver or the file system.
// Services convert it at the transaction boundary; handlers map it to the
// StorageError kind without exposing driver detail.
var ErrStorage = errors.New("storage error")

// WrapStorage tags a driver error with ErrStorage, keeping the operation
// name for the log line but hiding it behind the sentinel for callers.
func WrapStorage(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// IsStorageError reports whether err is a storage failure.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
