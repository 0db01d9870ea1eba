package catalog

import "time"

// Backend names accepted in Config.Backend.
const (
	BackendFile     = "file"
	BackendStorage  = "storage"
	BackendDatabase = "database"
)

// Config holds configuration for the catalog cache.
type Config struct {
	// Backend selects where snapshots are cached (file, storage, database).
	Backend string `mapstructure:"backend" default:"file"`
	// Path is the cache file of the file backend.
	Path string `mapstructure:"path" default:"schema.json"`
	// ObjectName is the object key of the storage backend.
	ObjectName string `mapstructure:"object_name" default:"catalog/schema.json"`
	// TTLHours is how long a snapshot stays fresh. Zero keeps it until cleared.
	TTLHours int `mapstructure:"ttl_hours" default:"0"`
}

// TTL returns the snapshot lifetime; zero means it never expires.
func (c Config) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 0
	}
	return time.Duration(c.TTLHours) * time.Hour
}

// IsValidBackend checks if the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendStorage, BackendDatabase:
		return true
	default:
		return false
	}
}
