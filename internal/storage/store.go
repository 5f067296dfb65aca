package storage

import (
	"errors"

	"github.com/digimosa/exposure-scan/internal/models"
)

// ErrNotFound is returned by Get for unknown scan ids.
var ErrNotFound = errors.New("scan not found")

// DefaultHistoryLimit caps how many scan records a store retains.
const DefaultHistoryLimit = 100

// Store persists scan records. A successful Create must be visible to
// subsequent List/Get calls. Records are immutable; the only destructive
// operation is Clear, which wipes the whole history.
type Store interface {
	// Create assigns an id and timestamp, persists the record, evicting the
	// oldest entry when the history limit is exceeded, and returns the
	// stored form.
	Create(result models.AnalysisResult) (*models.Scan, error)

	// List returns all retained scans, most recent first.
	List() ([]models.Scan, error)

	// Get returns the scan with the given id, or ErrNotFound.
	Get(id string) (*models.Scan, error)

	// Clear removes every record. Irreversible.
	Clear() error
}
