package interfaces

import (
	"context"
	"errors"
)

// ErrStorageUnavailable is returned, possibly wrapped, whenever the document
// store is not configured or cannot be reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageInfo describes how the document store was configured.
type StorageInfo struct {
	Driver     string
	Database   string
	Endpoint   string
	Configured bool
}

// IStorageProbe exposes the document store metadata used by diagnostics.
type IStorageProbe interface {
	Info() StorageInfo
	Collections(ctx context.Context) ([]string, error)
}
