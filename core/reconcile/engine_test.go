package reconcile

import (
	"testing"

	"backpack-manager/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_Plan(t *testing.T) {
	scatter := weapon(13, "Scattergun", "Scout")
	pistol := weapon(23, "Pistol", "Scout", "Engineer")
	shovel := weapon(6, "Shovel", "Soldier")
	catalog := newStubCatalog(scatter, pistol, shovel)

	owned := func() *inventory.Set[inventory.Item] {
		return inventory.NewSet(append(copies(scatter, 1, 5), copies(pistol, 10, 3)...)...)
	}

	t.Run("Detect and craft without recipients", func(t *testing.T) {
		plan, err := NewRun(catalog, nil).Plan(owned(), nil, Options{Craft: true})
		require.NoError(t, err)

		require.Len(t, plan.Groups, 2)
		assert.Equal(t, 5, plan.Groups[0].Count())
		assert.Equal(t, 3, plan.Groups[1].Count())
		assert.Equal(t, []DuplicateCount{{Item: scatter, Count: 4}, {Item: pistol, Count: 2}}, plan.Duplicates)

		require.NotNil(t, plan.Craft)
		assert.Len(t, plan.Craft.Pairs, 3)
		assert.Empty(t, plan.Craft.Leftover)

		require.NotNil(t, plan.Value)
		assert.Equal(t, 3, plan.Value.Pairs)
		assert.Equal(t, 0, plan.Value.High)
		assert.Equal(t, 1, plan.Value.Mid)
		assert.Equal(t, 0, plan.Value.Low)

		assert.Equal(t, PlanSummary{Items: 8, DuplicateGroups: 2, Surplus: 6, Pairs: 3}, plan.Summary)
		assert.Nil(t, plan.Allocations)
	})

	t.Run("Allocation happens before crafting", func(t *testing.T) {
		recipients := []Recipient{
			{Account: "friend", Need: []int{pistol.Index, shovel.Index}},
		}

		plan, err := NewRun(catalog, zap.NewNop()).Plan(owned(), recipients, Options{Allocate: true, Craft: true})
		require.NoError(t, err)

		alloc, ok := plan.Allocated("friend")
		require.True(t, ok)
		require.Len(t, alloc.Items, 1)
		assert.Equal(t, pistol.Index, alloc.Items[0].Index)

		for _, p := range plan.Craft.Pairs {
			assert.NotEqual(t, alloc.Items[0].ID, p.First.ID)
			assert.NotEqual(t, alloc.Items[0].ID, p.Second.ID)
		}
		assert.Len(t, plan.Craft.Pairs, 2)
		assert.Len(t, plan.Craft.Leftover, 1)
		assert.Equal(t, 1, plan.Summary.Allocated)
		assert.Equal(t, 1, plan.Summary.Leftover)
	})

	t.Run("Stages are optional", func(t *testing.T) {
		plan, err := NewRun(catalog, nil).Plan(owned(), nil, Options{})
		require.NoError(t, err)

		assert.Nil(t, plan.Craft)
		assert.Nil(t, plan.Value)
		assert.Equal(t, 6, plan.Summary.Leftover)
		assert.Len(t, plan.Tradable(), 6)
	})

	t.Run("Missing catalog", func(t *testing.T) {
		_, err := NewRun(nil, nil).Plan(owned(), nil, Options{})
		assert.ErrorIs(t, err, ErrNilCatalog)
	})

	t.Run("Inconsistent catalog aborts", func(t *testing.T) {
		_, err := NewRun(newStubCatalog(scatter), nil).Plan(owned(), nil, Options{Craft: true})
		assert.ErrorIs(t, err, ErrCatalogInconsistent)
	})

	t.Run("Logs each stage", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		_, err := NewRun(catalog, zap.New(core)).Plan(owned(), nil, Options{Allocate: true, Craft: true})
		require.NoError(t, err)

		assert.Equal(t, 1, logs.FilterMessage("duplicates detected").Len())
		assert.Equal(t, 1, logs.FilterMessage("surplus allocated").Len())
		assert.Equal(t, 1, logs.FilterMessage("craft pairs matched").Len())
	})
}
