package inventory

import (
	"sort"

	"github.com/samber/lo"
)

// Set is an ordered multiset. Order of insertion is preserved by every operation
// unless an operation explicitly sorts.
type Set[T any] struct {
	items []T
}

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items *Set[T]
}

// NewSet returns a set holding a copy of items.
func NewSet[T any](items ...T) *Set[T] {
	out := make([]T, len(items))
	copy(out, items)
	return &Set[T]{items: out}
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty reports whether the set has no elements.
func (s *Set[T]) Empty() bool {
	return s.Len() == 0
}

// Items returns a copy of the elements in order.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every element in order.
func (s *Set[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	for _, item := range s.items {
		fn(item)
	}
}

// Append adds elements at the end.
func (s *Set[T]) Append(items ...T) {
	s.items = append(s.items, items...)
}

// Clone returns an independent copy.
func (s *Set[T]) Clone() *Set[T] {
	return NewSet(s.Items()...)
}

// Concat returns a new set with the elements of s followed by those of others.
func (s *Set[T]) Concat(others ...*Set[T]) *Set[T] {
	out := s.Clone()
	for _, o := range others {
		out.Append(o.Items()...)
	}
	return out
}

// Filter returns a new set with the elements keep accepts.
func (s *Set[T]) Filter(keep func(T) bool) *Set[T] {
	return &Set[T]{items: lo.Filter(s.Items(), func(item T, _ int) bool {
		return keep(item)
	})}
}

// Any reports whether some element satisfies pred.
func (s *Set[T]) Any(pred func(T) bool) bool {
	return lo.SomeBy(s.Items(), pred)
}

// All reports whether every element satisfies pred.
func (s *Set[T]) All(pred func(T) bool) bool {
	return lo.EveryBy(s.Items(), pred)
}

// SortBy returns a new set stably sorted by less.
func (s *Set[T]) SortBy(less func(a, b T) bool) *Set[T] {
	out := s.Items()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Set[T]{items: out}
}

// Pop removes and returns the last element.
func (s *Set[T]) Pop() (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// RemoveFirst removes the first element matching and returns it.
// It reports false, and leaves the set untouched, when nothing matches.
func (s *Set[T]) RemoveFirst(match func(T) bool) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	for i, item := range s.items {
		if match(item) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return item, true
		}
	}
	return zero, false
}

// GroupBy buckets the elements of s by key. Groups are returned in order of the first
// appearance of their key, and each group keeps the relative order of its elements.
func GroupBy[T any, K comparable](s *Set[T], key func(T) K) []Group[K, T] {
	var groups []Group[K, T]
	pos := make(map[K]int)
	s.Each(func(item T) {
		k := key(item)
		i, ok := pos[k]
		if !ok {
			i = len(groups)
			pos[k] = i
			groups = append(groups, Group[K, T]{Key: k, Items: NewSet[T]()})
		}
		groups[i].Items.Append(item)
	})
	return groups
}

// Weapons returns the weapon items of s.
func Weapons(s *Set[Item]) *Set[Item] {
	return s.Filter(Item.IsWeapon)
}

// RemoveInstance removes the copy of item with the same instance id.
func RemoveInstance(s *Set[Item], item Item) bool {
	_, ok := s.RemoveFirst(item.SameInstance)
	return ok
}

// SortByName returns the items stably sorted by base name.
func SortByName(s *Set[Item]) *Set[Item] {
	return s.SortBy(func(a, b Item) bool { return a.BaseName < b.BaseName })
}
