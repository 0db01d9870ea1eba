package reconcile

import (
	"testing"

	"backpack-manager/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMatching checks the pairing properties every craft result must hold against the
// pool it was computed from.
func assertMatching(t *testing.T, pool []inventory.Item, result *CraftResult) {
	t.Helper()

	seen := make(map[uint64]bool)
	for _, p := range result.Pairs {
		assert.True(t, p.First.Roles.Intersects(p.Second.Roles), "%s and %s are not compatible", p.First, p.Second)
		assert.LessOrEqual(t, p.First.Name(), p.Second.Name())
		for _, item := range []inventory.Item{p.First, p.Second} {
			assert.False(t, seen[item.ID], "instance %d paired twice", item.ID)
			seen[item.ID] = true
		}
	}
	for _, item := range result.Leftover {
		assert.False(t, seen[item.ID], "instance %d both paired and left over", item.ID)
		seen[item.ID] = true
	}

	assert.ElementsMatch(t, ids(pool), keys(seen))
}

func keys(m map[uint64]bool) []uint64 {
	out := make([]uint64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestCraft(t *testing.T) {
	scatter := weapon(13, "Scattergun", "Scout")
	pistol := weapon(23, "Pistol", "Scout", "Engineer")
	shovel := weapon(6, "Shovel", "Soldier")
	bottle := weapon(1, "Bottle", "Demoman")
	pain := weapon(264, "Frying Pan", "Soldier", "Demoman", "Heavy", "Pyro", "Scout", "Engineer", "Medic", "Sniper", "Spy")
	saxxy := weapon(423, "Saxxy")

	t.Run("Surplus from one account pairs completely", func(t *testing.T) {
		groups := []DuplicateGroup{
			{Item: scatter, Surplus: copies(scatter, 1, 4)},
			{Item: pistol, Surplus: copies(pistol, 10, 2)},
		}
		pool := NewTradePool(groups)
		before := pool.Items()

		result, err := Craft(pool)
		require.NoError(t, err)

		assert.Len(t, result.Pairs, 3)
		assert.Empty(t, result.Leftover)
		assert.Zero(t, pool.Len())
		assertMatching(t, before, result)
	})

	t.Run("Incompatible singles stay unpaired", func(t *testing.T) {
		groups := []DuplicateGroup{
			{Item: shovel, Surplus: copies(shovel, 1, 1)},
			{Item: bottle, Surplus: copies(bottle, 2, 1)},
		}
		pool := NewTradePool(groups)
		before := pool.Items()

		result, err := Craft(pool)
		require.NoError(t, err)

		assert.Empty(t, result.Pairs)
		assert.ElementsMatch(t, []uint64{1, 2}, ids(result.Leftover))
		assertMatching(t, before, result)
	})

	t.Run("Shared role bridges classes", func(t *testing.T) {
		groups := []DuplicateGroup{
			{Item: shovel, Surplus: copies(shovel, 1, 1)},
			{Item: bottle, Surplus: copies(bottle, 2, 1)},
			{Item: pain, Surplus: copies(pain, 3, 1)},
		}
		pool := NewTradePool(groups)
		before := pool.Items()

		result, err := Craft(pool)
		require.NoError(t, err)

		require.Len(t, result.Pairs, 1)
		assert.Len(t, result.Leftover, 1)
		assertMatching(t, before, result)
	})

	t.Run("All-class items pair with anything", func(t *testing.T) {
		groups := []DuplicateGroup{
			{Item: saxxy, Surplus: copies(saxxy, 1, 1)},
			{Item: bottle, Surplus: copies(bottle, 2, 1)},
		}
		pool := NewTradePool(groups)

		result, err := Craft(pool)
		require.NoError(t, err)
		require.Len(t, result.Pairs, 1)
		assert.Equal(t, "Bottle", result.Pairs[0].First.Name())
		assert.Equal(t, "Saxxy", result.Pairs[0].Second.Name())
	})

	t.Run("Pairs are sorted by name", func(t *testing.T) {
		groups := []DuplicateGroup{
			{Item: shovel, Surplus: copies(shovel, 1, 2)},
			{Item: bottle, Surplus: copies(bottle, 3, 2)},
			{Item: scatter, Surplus: copies(scatter, 5, 2)},
		}
		result, err := Craft(NewTradePool(groups))
		require.NoError(t, err)

		require.Len(t, result.Pairs, 3)
		assert.Equal(t, "Bottle", result.Pairs[0].First.Name())
		assert.Equal(t, "Scattergun", result.Pairs[1].First.Name())
		assert.Equal(t, "Shovel", result.Pairs[2].First.Name())
	})

	t.Run("Empty pool", func(t *testing.T) {
		result, err := Craft(NewTradePool(nil))
		require.NoError(t, err)
		assert.Empty(t, result.Pairs)
		assert.Empty(t, result.Leftover)
	})

	t.Run("Deterministic", func(t *testing.T) {
		build := func() []DuplicateGroup {
			return []DuplicateGroup{
				{Item: scatter, Surplus: copies(scatter, 1, 3)},
				{Item: pistol, Surplus: copies(pistol, 10, 3)},
				{Item: shovel, Surplus: copies(shovel, 20, 2)},
				{Item: pain, Surplus: copies(pain, 30, 1)},
				{Item: bottle, Surplus: copies(bottle, 40, 1)},
			}
		}

		first, err := Craft(NewTradePool(build()))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Craft(NewTradePool(build()))
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("Large mixed pool", func(t *testing.T) {
		defs := []inventory.Definition{scatter, pistol, shovel, bottle, pain, saxxy}
		var groups []DuplicateGroup
		for i, d := range defs {
			groups = append(groups, DuplicateGroup{Item: d, Surplus: copies(d, uint64(i*100), 2+i)})
		}
		pool := NewTradePool(groups)
		before := pool.Items()

		result, err := Craft(pool)
		require.NoError(t, err)

		// 27 items; the all-class copies absorb every odd single.
		assert.Equal(t, len(before)/2, len(result.Pairs))
		assertMatching(t, before, result)
	})
}

func TestStateKey(t *testing.T) {
	assert.Equal(t, "", stateKey([]int{0, 0}))
	assert.Equal(t, "0:2;2:1;", stateKey([]int{2, 0, 1}))
}
