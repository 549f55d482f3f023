package store

import (
	"errors"
	"fmt"

	models "cart-manager/model"
)

// Supported backends for Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

var (
	// ErrNoSnapshot is returned by Load when nothing has been saved at the path yet.
	ErrNoSnapshot = errors.New("no saved cart")
	// ErrCorrupt is returned by Load when the stored data cannot be decoded.
	ErrCorrupt = errors.New("corrupt cart data")
	// ErrUnknownDriver is returned by Open for an unsupported backend name.
	ErrUnknownDriver = errors.New("unknown store driver")
)

// Store persists a whole cart snapshot. Save overwrites whatever was stored
// before; Load returns the items in the order they were saved and never
// returns a partial result alongside an error.
type Store interface {
	Save(items []models.Item) error
	Load() ([]models.Item, error)
	Path() string

	Close() error
}

// Open returns the backend named by driver, persisting to path.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverFile:
		return NewFileStore(path), nil
	case DriverSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
