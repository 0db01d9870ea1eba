package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backpack-manager/core/steamapi"
	"backpack-manager/core/storage"

	"gorm.io/gorm"
)

// ErrNotCached is returned by a store that holds no snapshot.
var ErrNotCached = errors.New("catalog not cached")

// Snapshot is a fetched schema and when it was fetched.
type Snapshot struct {
	Items     []steamapi.SchemaItem `json:"items"`
	FetchedAt time.Time             `json:"fetched_at"`
}

// Store persists catalog snapshots between runs.
type Store interface {
	// Load returns the cached snapshot or ErrNotCached.
	Load(ctx context.Context) (*Snapshot, error)
	// Save replaces the cached snapshot.
	Save(ctx context.Context, snap *Snapshot) error
	// Clear drops the cached snapshot. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Backends carries the connections a store may need. Only the one the configured backend
// uses must be set.
type Backends struct {
	Storage storage.Client
	Bucket  string
	DB      *gorm.DB
}

// NewStore creates the store selected by the configuration.
func NewStore(cfg Config, b Backends) (Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStore(cfg.Path), nil
	case BackendStorage:
		if b.Storage == nil {
			return nil, fmt.Errorf("catalog backend %q requires a storage client", cfg.Backend)
		}
		return NewObjectStore(b.Storage, b.Bucket, cfg.ObjectName), nil
	case BackendDatabase:
		if b.DB == nil {
			return nil, fmt.Errorf("catalog backend %q requires a database connection", cfg.Backend)
		}
		return NewDBStore(b.DB), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
	}
}
