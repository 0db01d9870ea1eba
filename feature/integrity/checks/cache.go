package checks

import (
	"context"
	"errors"
	"time"

	"backpack-manager/core/catalog"
)

// Cache check outcomes.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusStale   = "stale"
	StatusError   = "error"
)

// CacheReport describes the cached catalog snapshot.
type CacheReport struct {
	Status    string    `json:"status"`
	Items     int       `json:"items"`
	FetchedAt time.Time `json:"fetched_at"`
	AgeHours  float64   `json:"age_hours,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// NeedsFix reports whether refetching the catalog would repair the cache.
func (r CacheReport) NeedsFix() bool {
	return r.Status == StatusMissing || r.Status == StatusStale
}

// CheckCache loads the snapshot from store and classifies it. A zero ttl never
// marks a snapshot stale. The snapshot is returned when one was loaded.
func CheckCache(ctx context.Context, store catalog.Store, ttl time.Duration, now time.Time) (CacheReport, *catalog.Snapshot) {
	snap, err := store.Load(ctx)
	if errors.Is(err, catalog.ErrNotCached) {
		return CacheReport{Status: StatusMissing}, nil
	}
	if err != nil {
		return CacheReport{Status: StatusError, Error: err.Error()}, nil
	}

	age := now.Sub(snap.FetchedAt)
	report := CacheReport{
		Status:    StatusOK,
		Items:     len(snap.Items),
		FetchedAt: snap.FetchedAt,
		AgeHours:  age.Hours(),
	}
	switch {
	case len(snap.Items) == 0:
		report.Status = StatusMissing
	case ttl > 0 && age > ttl:
		report.Status = StatusStale
	}
	return report, snap
}
