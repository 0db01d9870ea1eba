package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"backpack-manager/core/steamapi"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher downloads the item schema.
type Fetcher interface {
	GetSchema(ctx context.Context, language string) ([]steamapi.SchemaItem, error)
}

// Loader serves the schema from memory, then the store, then the API.
type Loader struct {
	store    Store
	fetcher  Fetcher
	language string
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu        sync.RWMutex
	schema    *Schema
	fetchedAt time.Time
	sf        singleflight.Group
}

// NewLoader creates a loader. A zero ttl keeps a snapshot until it is cleared.
func NewLoader(store Store, fetcher Fetcher, language string, ttl time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		store:    store,
		fetcher:  fetcher,
		language: language,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns the current schema, loading or fetching it if needed.
func (l *Loader) Get(ctx context.Context) (*Schema, error) {
	l.mu.RLock()
	schema, fetchedAt := l.schema, l.fetchedAt
	l.mu.RUnlock()

	if schema != nil && !l.expired(fetchedAt) {
		return schema, nil
	}

	result, err, _ := l.sf.Do("get", func() (interface{}, error) {
		l.mu.RLock()
		schema, fetchedAt := l.schema, l.fetchedAt
		l.mu.RUnlock()
		if schema != nil && !l.expired(fetchedAt) {
			return schema, nil
		}

		snap, err := l.store.Load(ctx)
		switch {
		case err == nil && !l.expired(snap.FetchedAt):
			return l.install(snap), nil
		case err == nil:
			l.logger.Info("Cached catalog expired", zap.Time("fetched_at", snap.FetchedAt))
		case errors.Is(err, ErrNotCached):
			l.logger.Info("Catalog not cached, fetching")
		default:
			l.logger.Warn("Failed to load cached catalog, fetching", zap.Error(err))
		}

		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Schema), nil
}

// Update fetches a fresh schema regardless of what is cached.
func (l *Loader) Update(ctx context.Context) (*Schema, error) {
	result, err, _ := l.sf.Do("update", func() (interface{}, error) {
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Schema), nil
}

// Clear drops both the in-memory schema and the cached snapshot.
func (l *Loader) Clear(ctx context.Context) error {
	l.mu.Lock()
	l.schema = nil
	l.fetchedAt = time.Time{}
	l.mu.Unlock()

	return l.store.Clear(ctx)
}

func (l *Loader) fetch(ctx context.Context) (*Schema, error) {
	items, err := l.fetcher.GetSchema(ctx, l.language)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	snap := &Snapshot{Items: items, FetchedAt: l.now().UTC()}
	if err := l.store.Save(ctx, snap); err != nil {
		// the fetched schema is still usable for this process
		l.logger.Warn("Failed to cache catalog", zap.Error(err))
	}

	schema := l.install(snap)
	l.logger.Info("Catalog updated",
		zap.Int("items", schema.Len()),
		zap.Int("uniques", len(schema.uniques)))
	return schema, nil
}

func (l *Loader) install(snap *Snapshot) *Schema {
	schema := NewSchema(snap.Items)

	l.mu.Lock()
	l.schema = schema
	l.fetchedAt = snap.FetchedAt
	l.mu.Unlock()

	return schema
}

func (l *Loader) expired(fetchedAt time.Time) bool {
	if l.ttl == 0 {
		return false
	}
	return l.now().Sub(fetchedAt) > l.ttl
}
