// Package orderedset provides a generic set that remembers insertion order
// and supports O(1) access by position, which makes uniform random picks
// reproducible under a fixed seed.
//
// Complexity:
//
//   - Insert, Has, At, Len: O(1).
//   - Remove: O(n) (later members shift down to keep order).
package orderedset

// Set is an insertion-ordered set of comparable values.
// The zero value is not usable; call New.
type Set[T comparable] struct {
	items []T
	index map[T]int
}

// New returns an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{index: make(map[T]int)}
}

// Insert appends v if absent and reports whether it was added.
func (s *Set[T]) Insert(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Has reports membership.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

// At returns the i-th member in insertion order.
func (s *Set[T]) At(i int) T { return s.items[i] }

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.items) }

// Values returns a copy of the members in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
