package eviction

import "container/list"

// mru implements the Most Recently Used eviction policy: bookkeeping is
// identical to LRU, but Evict takes the most recently touched key instead
// of the least.
type mru[K comparable] struct {
	order *list.List
	elems map[K]*list.Element
}

// NewMRU creates an empty MRU policy.
func NewMRU[K comparable]() EvictionPolicy[K] {
	return &mru[K]{
		order: list.New(),
		elems: make(map[K]*list.Element),
	}
}

func (m *mru[K]) OnInsert(key K) {
	if elem, ok := m.elems[key]; ok {
		m.order.MoveToFront(elem)
		return
	}
	m.elems[key] = m.order.PushFront(&lruEntry[K]{key: key})
}

func (m *mru[K]) OnAccess(key K) {
	if elem, ok := m.elems[key]; ok {
		m.order.MoveToFront(elem)
	}
}

func (m *mru[K]) OnRemove(key K) {
	if elem, ok := m.elems[key]; ok {
		m.order.Remove(elem)
		delete(m.elems, key)
	}
}

func (m *mru[K]) Evict() (K, bool) {
	elem := m.order.Front()
	if elem == nil {
		var zero K
		return zero, false
	}
	m.order.Remove(elem)
	entry := elem.Value.(*lruEntry[K])
	delete(m.elems, entry.key)
	return entry.key, true
}
