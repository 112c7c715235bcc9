package eviction

import "container/list"

// lruEntry is the payload of a container/list element for LRU, MRU and KLRU.
type lruEntry[K comparable] struct {
	key K
}

// lru implements the Least Recently Used eviction policy. Most recently
// touched key sits at the front of the list; Evict takes from the back.
type lru[K comparable] struct {
	order *list.List
	elems map[K]*list.Element
}

// NewLRU creates an empty LRU policy.
func NewLRU[K comparable]() EvictionPolicy[K] {
	return &lru[K]{
		order: list.New(),
		elems: make(map[K]*list.Element),
	}
}

func (l *lru[K]) OnInsert(key K) {
	if elem, ok := l.elems[key]; ok {
		l.order.MoveToFront(elem)
		return
	}
	l.elems[key] = l.order.PushFront(&lruEntry[K]{key: key})
}

func (l *lru[K]) OnAccess(key K) {
	if elem, ok := l.elems[key]; ok {
		l.order.MoveToFront(elem)
	}
}

func (l *lru[K]) OnRemove(key K) {
	if elem, ok := l.elems[key]; ok {
		l.order.Remove(elem)
		delete(l.elems, key)
	}
}

func (l *lru[K]) Evict() (K, bool) {
	elem := l.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	l.order.Remove(elem)
	entry := elem.Value.(*lruEntry[K])
	delete(l.elems, entry.key)
	return entry.key, true
}
