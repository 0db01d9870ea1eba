package integrity

import (
	"context"
	"time"

	"backpack-manager/core/catalog"
	"backpack-manager/feature/integrity/checks"

	"go.uber.org/zap"
)

// Refresher re-fetches the catalog and replaces the cached snapshot.
type Refresher interface {
	Update(ctx context.Context) (*catalog.Schema, error)
}

// Report combines every check.
type Report struct {
	Cache  checks.CacheReport   `json:"cache"`
	Schema *checks.SchemaReport `json:"schema,omitempty"`
	Fixed  bool                 `json:"fixed"`
}

// Service handles catalog integrity checks.
type Service struct {
	store     catalog.Store
	refresher Refresher
	ttl       time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new integrity service.
func NewService(store catalog.Store, refresher Refresher, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		refresher: refresher,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// CheckCache reports on the cached snapshot.
func (s *Service) CheckCache(ctx context.Context) checks.CacheReport {
	report, _ := checks.CheckCache(ctx, s.store, s.ttl, s.now())
	return report
}

// Check runs every check. With fix set, a missing or stale cache is refetched and
// checked again.
func (s *Service) Check(ctx context.Context, fix bool) (*Report, error) {
	cache, snap := checks.CheckCache(ctx, s.store, s.ttl, s.now())
	report := &Report{Cache: cache}

	if fix && cache.NeedsFix() {
		s.logger.Info("Refreshing catalog cache", zap.String("status", cache.Status))
		if _, err := s.refresher.Update(ctx); err != nil {
			return nil, err
		}
		report.Fixed = true
		report.Cache, snap = checks.CheckCache(ctx, s.store, s.ttl, s.now())
	}

	if snap != nil {
		schema := checks.CheckSchema(snap.Items)
		report.Schema = &schema
		if !schema.Healthy() {
			s.logger.Warn("Catalog schema has problems",
				zap.Ints("duplicate_indices", schema.DuplicateIndices),
				zap.Ints("unknown_qualities", schema.UnknownQualities),
				zap.Strings("unknown_slots", schema.UnknownSlots))
		}
	}

	return report, nil
}
