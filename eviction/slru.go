package eviction

import "container/list"

// slru implements Segmented LRU: a probationary LRU segment entries enter
// through, and a protected LRU segment entries are promoted into on a
// second touch.
type slru[K comparable] struct {
	probationary *lru[K]
	protected    *lru[K]
	probCap      int
	protCap      int
}

// NewSLRU creates an empty SLRU policy with the given probationary and
// protected segment capacities. It panics unless both capacities are
// positive.
func NewSLRU[K comparable](probationaryCap, protectedCap int) EvictionPolicy[K] {
	if probationaryCap <= 0 || protectedCap <= 0 {
		panic("eviction: NewSLRU requires positive probationary and protected capacities")
	}
	return &slru[K]{
		probationary: &lru[K]{order: list.New(), elems: make(map[K]*list.Element)},
		protected:    &lru[K]{order: list.New(), elems: make(map[K]*list.Element)},
		probCap:      probationaryCap,
		protCap:      protectedCap,
	}
}

func (s *slru[K]) inProbationary(key K) bool {
	_, ok := s.probationary.elems[key]
	return ok
}

func (s *slru[K]) inProtected(key K) bool {
	_, ok := s.protected.elems[key]
	return ok
}

func (s *slru[K]) OnInsert(key K) {
	if s.inProbationary(key) || s.inProtected(key) {
		return
	}
	if s.probationary.order.Len() >= s.probCap {
		s.probationary.Evict()
	}
	s.probationary.OnInsert(key)
}

func (s *slru[K]) OnAccess(key K) {
	if s.inProbationary(key) {
		s.probationary.OnRemove(key)
		if s.protected.order.Len() >= s.protCap {
			s.protected.Evict()
		}
		s.protected.OnInsert(key)
		return
	}
	if s.inProtected(key) {
		s.protected.OnAccess(key)
	}
}

func (s *slru[K]) OnRemove(key K) {
	s.probationary.OnRemove(key)
	s.protected.OnRemove(key)
}

// Evict always drains the probationary segment before touching the
// protected segment.
func (s *slru[K]) Evict() (K, bool) {
	if s.probationary.order.Len() > 0 {
		return s.probationary.Evict()
	}
	return s.protected.Evict()
}
