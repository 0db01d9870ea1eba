package reconcile

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"backpack-manager/core/inventory"
)

// ErrInstanceConsumed means a craft pair referenced an instance already drawn from the pool.
var ErrInstanceConsumed = errors.New("instance already consumed")

// affinityClass is every pool item sharing one affinity set. Items within a class are
// interchangeable for matching.
type affinityClass struct {
	roles inventory.Affinity
	items *inventory.Set[inventory.Item]
}

// classPair is a pairing of two class positions, possibly the same class twice.
type classPair struct {
	a, b int
}

// matcher searches for the largest pairing over per-class counts.
// memo maps a canonical state key to the best pairing found from that state.
type matcher struct {
	classes []affinityClass
	memo    map[string][]classPair
}

// Craft pairs the pool's items whose affinity sets intersect, draws the chosen instances
// out of the pool, and returns the pairs sorted by name along with what is left.
//
// The search always extends the first class (in name order of first appearance) that still
// has items, branching over every compatible partner class. It only leaves a unit unpaired
// when that class has no partner left. This is not an exhaustive search over which class to
// extend next.
func Craft(pool *TradePool) (*CraftResult, error) {
	m := newMatcher(pool.Items())

	counts := make([]int, len(m.classes))
	for i, c := range m.classes {
		counts[i] = c.items.Len()
	}

	pairs := make([]CraftPair, 0)
	for _, cp := range m.solve(counts) {
		first, _ := m.classes[cp.a].items.Pop()
		second, _ := m.classes[cp.b].items.Pop()
		if second.Name() < first.Name() {
			first, second = second, first
		}

		for _, item := range []inventory.Item{first, second} {
			if !pool.Remove(item) {
				return nil, fmt.Errorf("%w: %d (%s)", ErrInstanceConsumed, item.ID, item.Name())
			}
		}
		pairs = append(pairs, CraftPair{First: first, Second: second})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if a, b := pairs[i].First.Name(), pairs[j].First.Name(); a != b {
			return a < b
		}
		return pairs[i].Second.Name() < pairs[j].Second.Name()
	})

	leftover := pool.Items()
	if leftover == nil {
		leftover = make([]inventory.Item, 0)
	}
	return &CraftResult{Pairs: pairs, Leftover: leftover}, nil
}

func newMatcher(items []inventory.Item) *matcher {
	sorted := inventory.NewSet(items...).SortBy(func(a, b inventory.Item) bool {
		return a.Name() < b.Name()
	})

	groups := inventory.GroupBy(sorted, func(i inventory.Item) string { return i.Roles.Key() })

	classes := make([]affinityClass, len(groups))
	for i, g := range groups {
		classes[i] = affinityClass{roles: g.Items.Items()[0].Roles, items: g.Items}
	}

	return &matcher{classes: classes, memo: make(map[string][]classPair)}
}

// solve returns the best pairing reachable from counts. counts is never modified.
func (m *matcher) solve(counts []int) []classPair {
	key := stateKey(counts)
	if cached, ok := m.memo[key]; ok {
		return cached
	}

	s := -1
	for i, n := range counts {
		if n > 0 {
			s = i
			break
		}
	}
	if s < 0 {
		return nil
	}

	rest := clone(counts)
	rest[s]--

	var best []classPair
	found := false
	for t, n := range rest {
		if n == 0 || !m.classes[s].roles.Intersects(m.classes[t].roles) {
			continue
		}
		next := clone(rest)
		next[t]--

		candidate := append([]classPair{{a: s, b: t}}, m.solve(next)...)
		if !found || len(candidate) > len(best) {
			best, found = candidate, true
		}
	}
	if !found {
		best = m.solve(rest)
	}

	if _, ok := m.memo[key]; !ok {
		m.memo[key] = best
	}
	return best
}

// stateKey renders the non-zero class counts in class order.
func stateKey(counts []int) string {
	var b strings.Builder
	for i, n := range counts {
		if n == 0 {
			continue
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(';')
	}
	return b.String()
}

func clone(counts []int) []int {
	out := make([]int, len(counts))
	copy(out, counts)
	return out
}
