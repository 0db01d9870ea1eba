package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"backpack-manager/core/inventory"
	"backpack-manager/core/steamapi"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrUnresolvable is returned for names that map to no account.
var ErrUnresolvable = errors.New("account cannot be resolved")

var steamIDPattern = regexp.MustCompile(`^[0-9]{17}`)

// maxConcurrentFetches bounds parallel inventory requests.
const maxConcurrentFetches = 4

// Account is a resolved account.
type Account struct {
	// Input is the name or id the account was given as.
	Input string `json:"input"`
	// SteamID is the 64-bit account id.
	SteamID string `json:"steamid"`
}

// Service resolves accounts and fetches their inventories.
type Service struct {
	api    steamapi.API
	logger *zap.Logger
}

// NewService creates a new accounts service.
func NewService(api steamapi.API, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// Resolve maps an id or profile name to an account.
func (s *Service) Resolve(ctx context.Context, nameOrID string) (Account, error) {
	id := nameOrID
	if !steamIDPattern.MatchString(nameOrID) {
		resolved, err := s.api.ResolveVanityURL(ctx, nameOrID)
		if err != nil {
			return Account{}, err
		}
		id = resolved
	}

	if !steamIDPattern.MatchString(id) {
		return Account{}, fmt.Errorf("%w: %q", ErrUnresolvable, nameOrID)
	}
	return Account{Input: nameOrID, SteamID: id}, nil
}

// ResolveAll resolves every name in order, dropping the ones that do not resolve.
func (s *Service) ResolveAll(ctx context.Context, names []string) ([]Account, error) {
	accounts := make([]Account, 0, len(names))
	for _, name := range names {
		acct, err := s.Resolve(ctx, name)
		if errors.Is(err, ErrUnresolvable) {
			s.logger.Warn("Skipping unknown account", zap.String("account", name))
			continue
		}
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// DisplayName returns the profile's display name, or the id when the profile is unavailable.
func (s *Service) DisplayName(ctx context.Context, acct Account) string {
	summary, err := s.api.GetPlayerSummary(ctx, acct.SteamID)
	if err != nil {
		s.logger.Warn("Failed to fetch player summary", zap.String("steamid", acct.SteamID), zap.Error(err))
		return acct.SteamID
	}
	if name := summary.DisplayName(); name != "" {
		return name
	}
	return acct.SteamID
}

// FetchInventory loads the items of one account and joins them with the catalog.
func (s *Service) FetchInventory(ctx context.Context, acct Account, catalog inventory.Catalog) (inventory.Inventory, error) {
	raw, err := s.api.GetPlayerItems(ctx, acct.SteamID)
	if err != nil {
		return inventory.Inventory{}, err
	}

	items := inventory.NewSet[inventory.Item]()
	for _, pi := range raw {
		def, ok := catalog.Lookup(pi.Defindex)
		if !ok {
			s.logger.Warn("Skipping item unknown to the catalog",
				zap.String("steamid", acct.SteamID),
				zap.Uint64("id", pi.ID),
				zap.Int("defindex", pi.Defindex))
			continue
		}
		items.Append(inventory.NewItem(def, pi.ID, inventory.Quality(pi.Quality), !pi.FlagCannotTrade, pi.Inventory))
	}

	s.logger.Debug("Fetched inventory",
		zap.String("steamid", acct.SteamID),
		zap.Int("items", items.Len()))
	return inventory.Inventory{Owner: acct.SteamID, Items: items}, nil
}

// FetchInventories loads several accounts concurrently. The result keeps the input order.
func (s *Service) FetchInventories(ctx context.Context, accts []Account, catalog inventory.Catalog) ([]inventory.Inventory, error) {
	invs := make([]inventory.Inventory, len(accts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, acct := range accts {
		i, acct := i, acct
		g.Go(func() error {
			inv, err := s.FetchInventory(ctx, acct, catalog)
			if err != nil {
				return fmt.Errorf("failed to fetch inventory of %s: %w", acct.Input, err)
			}
			invs[i] = inv
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return invs, nil
}

// Need returns the reference-set indices the inventory does not own, in catalog order.
func Need(inv inventory.Inventory, catalog inventory.Catalog) []int {
	owned := make(map[int]struct{})
	inv.Items.Each(func(i inventory.Item) { owned[i.Index] = struct{}{} })

	return lo.Filter(catalog.ReferenceSet(), func(index int, _ int) bool {
		_, ok := owned[index]
		return !ok
	})
}
