package reconcile

import (
	"errors"

	"backpack-manager/core/inventory"

	"go.uber.org/zap"
)

// ErrNilCatalog is returned when a run is planned without a catalog.
var ErrNilCatalog = errors.New("catalog is required")

// Run holds what a reconciliation needs besides its inputs.
type Run struct {
	catalog inventory.Catalog
	logger  *zap.Logger
}

// NewRun creates a run over the given catalog. A nil logger discards output.
func NewRun(catalog inventory.Catalog, logger *zap.Logger) *Run {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Run{catalog: catalog, logger: logger}
}

// Plan detects duplicates in items, then optionally allocates surplus to recipients and
// pairs what is left into crafts. Stages run in that order over one pool, so crafting only
// sees the surplus no recipient took.
func (r *Run) Plan(items *inventory.Set[inventory.Item], recipients []Recipient, opts Options) (*Plan, error) {
	if r.catalog == nil {
		return nil, ErrNilCatalog
	}

	groups, err := DetectDuplicates(items, r.catalog)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Groups:     groups,
		Duplicates: countDuplicates(groups),
	}
	pool := NewTradePool(groups)

	r.logger.Debug("duplicates detected",
		zap.Int("items", items.Len()),
		zap.Int("groups", len(groups)),
		zap.Int("surplus", pool.Len()))

	if opts.Allocate {
		plan.Allocations = Allocate(pool, recipients)
		r.logger.Debug("surplus allocated",
			zap.Int("recipients", len(recipients)),
			zap.Int("remaining", pool.Len()))
	}

	if opts.Craft {
		result, err := Craft(pool)
		if err != nil {
			return nil, err
		}
		value := Convert(len(result.Pairs))
		plan.Craft = result
		plan.Value = &value
		r.logger.Debug("craft pairs matched",
			zap.Int("pairs", len(result.Pairs)),
			zap.Int("leftover", len(result.Leftover)))
	}

	plan.Summary = summarize(items, plan, pool)
	return plan, nil
}
