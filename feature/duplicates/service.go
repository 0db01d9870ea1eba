package duplicates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backpack-manager/core/catalog"
	"backpack-manager/core/inventory"
	"backpack-manager/core/reconcile"
	"backpack-manager/feature/accounts"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrNoAccounts is returned when a run has no account to work on.
var ErrNoAccounts = errors.New("no accounts given")

// CatalogSource provides the current item schema.
type CatalogSource interface {
	Get(ctx context.Context) (*catalog.Schema, error)
	Update(ctx context.Context) (*catalog.Schema, error)
}

// Request selects the accounts and stages of a run.
type Request struct {
	// Accounts are ids or profile names whose items are checked.
	Accounts []string `json:"accounts"`
	// Friends are ids or profile names that may receive surplus items.
	Friends []string `json:"friends,omitempty"`
	// List includes the duplicate lists in the text report.
	List bool `json:"list"`
	// Scrap computes craft pairs and their value.
	Scrap bool `json:"scrap"`
}

// Report is the outcome of a run.
type Report struct {
	Accounts []accounts.Account `json:"accounts"`
	Friends  []accounts.Account `json:"friends,omitempty"`
	Plan     *reconcile.Plan    `json:"plan"`

	list     bool
	scrap    bool
	ordering inventory.Ordering
}

// Service runs duplicate checks.
type Service struct {
	catalogs CatalogSource
	accounts *accounts.Service
	logger   *zap.Logger
	progress func(step string)
}

// NewService creates a new duplicates service.
func NewService(catalogs CatalogSource, accts *accounts.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalogs: catalogs,
		accounts: accts,
		logger:   logger,
		progress: func(string) {},
	}
}

// OnProgress registers a callback invoked as each step of a run starts.
func (s *Service) OnProgress(fn func(step string)) {
	if fn != nil {
		s.progress = fn
	}
}

// Run resolves the accounts, gathers their weapons and plans what to do with the duplicates.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	names := cleanNames(req.Accounts)
	if len(names) == 0 {
		return nil, ErrNoAccounts
	}

	schema, err := s.catalogs.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.progress("Finding Steam accounts")
	accts, err := s.accounts.ResolveAll(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(accts) == 0 {
		return nil, fmt.Errorf("%w: none of %s resolved", ErrNoAccounts, strings.Join(names, ", "))
	}

	s.progress("Getting items")
	invs, err := s.accounts.FetchInventories(ctx, accts, schema)
	if err != nil {
		return nil, err
	}
	weapons := inventory.Weapons(inventory.Combine(invs...))

	report := &Report{
		Accounts: accts,
		list:     req.List,
		scrap:    req.Scrap,
		ordering: schema.Ordering(),
	}

	var recipients []reconcile.Recipient
	friends := cleanNames(req.Friends)
	if len(friends) > 0 {
		s.progress("Getting friends' accounts")
		report.Friends, err = s.accounts.ResolveAll(ctx, friends)
		if err != nil {
			return nil, err
		}

		s.progress("Getting friends' missing items")
		recipients, err = s.recipients(ctx, report.Friends, schema)
		if err != nil {
			return nil, err
		}
	}

	run := reconcile.NewRun(schema, s.logger)
	report.Plan, err = run.Plan(weapons, recipients, reconcile.Options{
		Allocate: len(friends) > 0,
		Craft:    req.Scrap,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Duplicate check finished",
		zap.Int("accounts", len(accts)),
		zap.Int("weapons", weapons.Len()),
		zap.Int("groups", report.Plan.Summary.DuplicateGroups),
		zap.Int("allocated", report.Plan.Summary.Allocated),
		zap.Int("pairs", report.Plan.Summary.Pairs))
	return report, nil
}

// RefreshCatalog forces a catalog fetch.
func (s *Service) RefreshCatalog(ctx context.Context) (*catalog.Schema, error) {
	return s.catalogs.Update(ctx)
}

func (s *Service) recipients(ctx context.Context, friends []accounts.Account, schema *catalog.Schema) ([]reconcile.Recipient, error) {
	invs, err := s.accounts.FetchInventories(ctx, friends, schema)
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.Recipient, len(friends))
	for i, f := range friends {
		out[i] = reconcile.Recipient{
			Account: f.SteamID,
			Name:    s.accounts.DisplayName(ctx, f),
			Need:    accounts.Need(invs[i], schema),
		}
	}
	return out, nil
}

// cleanNames trims names and drops empty entries.
func cleanNames(names []string) []string {
	return lo.FilterMap(names, func(n string, _ int) (string, bool) {
		n = strings.TrimSpace(n)
		return n, n != ""
	})
}
