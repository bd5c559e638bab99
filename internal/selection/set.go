// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package selection tracks what the user picked: algorithms grouped by data
// structure and items of a large ordered collection.
package selection

// Set is a set of unique keys that remembers selection order.
// The zero value is an empty set ready to use.
type Set[K comparable] struct {
	members map[K]uint64
	order   []entry[K]
	next    uint64
}

// entry records one insertion. It is live while members still maps key to seq;
// removed or re-added keys leave dead entries until the next compaction.
type entry[K comparable] struct {
	key K
	seq uint64
}

// NewSet creates an empty set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{members: make(map[K]uint64)}
}

// Toggle adds key if absent and removes it if present.
// It returns whether key is selected afterwards.
func (s *Set[K]) Toggle(key K) bool {
	if s.Remove(key) {
		return false
	}

	s.Add(key)

	return true
}

// Add inserts key. It reports false when key was already present.
func (s *Set[K]) Add(key K) bool {
	if s.members == nil {
		s.members = make(map[K]uint64)
	}

	if _, ok := s.members[key]; ok {
		return false
	}

	s.members[key] = s.next
	s.order = append(s.order, entry[K]{key: key, seq: s.next})
	s.next++

	return true
}

// Remove deletes key. It reports false when key was not present.
func (s *Set[K]) Remove(key K) bool {
	if _, ok := s.members[key]; !ok {
		return false
	}

	delete(s.members, key)

	if len(s.order) > 2*len(s.members)+16 {
		s.compact()
	}

	return true
}

// Has reports whether key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.members[key]

	return ok
}

// Clear empties the set.
func (s *Set[K]) Clear() {
	clear(s.members)
	s.order = s.order[:0]
	s.next = 0
}

// Count returns the number of keys in the set.
func (s *Set[K]) Count() int {
	return len(s.members)
}

// All reports whether the set holds exactly the candidates: every candidate
// is present and nothing else is. Keys left over from an older dataset make
// it false.
func (s *Set[K]) All(candidates []K) bool {
	if len(candidates) != len(s.members) {
		return false
	}

	for _, key := range candidates {
		if !s.Has(key) {
			return false
		}
	}

	return true
}

// Keys returns the keys in the order they were selected.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, len(s.members))

	for _, e := range s.order {
		if s.live(e) {
			keys = append(keys, e.key)
		}
	}

	return keys
}

func (s *Set[K]) live(e entry[K]) bool {
	seq, ok := s.members[e.key]

	return ok && seq == e.seq
}

// compact drops dead entries from the insertion log.
func (s *Set[K]) compact() {
	kept := s.order[:0]

	for _, e := range s.order {
		if s.live(e) {
			kept = append(kept, e)
		}
	}

	clear(s.order[len(kept):])
	s.order = kept
}
