package eviction

import "container/list"

// arc implements the Adaptive Replacement Cache policy: two resident lists
// (T1 recency, T2 frequency) and two ghost lists (B1, B2) of evicted keys
// used only to adapt the preference parameter p. Each list keeps its own
// key->element map so membership and removal are O(1).
type arc[K comparable] struct {
	t1, t2, b1, b2     *list.List
	t1m, t2m, b1m, b2m map[K]*list.Element
	p                  int
	capacity           int
}

// NewARC creates an empty ARC policy with the given capacity. It panics if
// capacity is not positive.
func NewARC[K comparable](capacity int) EvictionPolicy[K] {
	if capacity <= 0 {
		panic("eviction: NewARC requires a positive capacity")
	}
	return &arc[K]{
		t1: list.New(), t2: list.New(), b1: list.New(), b2: list.New(),
		t1m:      make(map[K]*list.Element),
		t2m:      make(map[K]*list.Element),
		b1m:      make(map[K]*list.Element),
		b2m:      make(map[K]*list.Element),
		capacity: capacity,
	}
}

func popFront[K comparable](l *list.List, m map[K]*list.Element) (K, bool) {
	elem := l.Front()
	if elem == nil {
		var zero K
		return zero, false
	}
	l.Remove(elem)
	key := elem.Value.(*lruEntry[K]).key
	delete(m, key)
	return key, true
}

// replace moves the current victim from T1 or T2 into the corresponding
// ghost list, per the ARC adaptation rule. keyInB2 tells it whether the
// key driving this replacement call currently sits in B2.
func (a *arc[K]) replace(keyInB2 bool) {
	if a.t1.Len() > 0 && (a.t1.Len() > a.p || (keyInB2 && a.t1.Len() == a.p)) {
		if k, ok := popFront(a.t1, a.t1m); ok {
			a.b1m[k] = a.b1.PushBack(&lruEntry[K]{key: k})
		}
		return
	}
	if k, ok := popFront(a.t2, a.t2m); ok {
		a.b2m[k] = a.b2.PushBack(&lruEntry[K]{key: k})
	}
}

func (a *arc[K]) OnInsert(key K) {
	if _, ok := a.t1m[key]; ok {
		return
	}
	if _, ok := a.t2m[key]; ok {
		return
	}
	_, keyInB2 := a.b2m[key]

	total := a.t1.Len() + a.t2.Len() + a.b1.Len() + a.b2.Len()
	switch {
	case a.t1.Len()+a.b1.Len() == a.capacity:
		if a.t1.Len() < a.capacity {
			popFront(a.b1, a.b1m)
			a.replace(keyInB2)
		} else {
			popFront(a.t1, a.t1m)
		}
	case total >= a.capacity:
		if total == 2*a.capacity {
			popFront(a.b2, a.b2m)
		}
		a.replace(keyInB2)
	}
	a.t1m[key] = a.t1.PushBack(&lruEntry[K]{key: key})
}

func (a *arc[K]) OnAccess(key K) {
	if elem, ok := a.t1m[key]; ok {
		a.t1.Remove(elem)
		delete(a.t1m, key)
		a.t2m[key] = a.t2.PushBack(&lruEntry[K]{key: key})
		return
	}
	if elem, ok := a.t2m[key]; ok {
		a.t2.MoveToBack(elem)
		return
	}
	if elem, ok := a.b1m[key]; ok {
		b1Len, b2Len := a.b1.Len(), a.b2.Len()
		ratio := b2Len / b1Len
		if ratio < 1 {
			ratio = 1
		}
		a.p += ratio
		if a.p > a.capacity {
			a.p = a.capacity
		}
		a.replace(false)
		a.b1.Remove(elem)
		delete(a.b1m, key)
		a.t2m[key] = a.t2.PushBack(&lruEntry[K]{key: key})
		return
	}
	if elem, ok := a.b2m[key]; ok {
		b1Len, b2Len := a.b1.Len(), a.b2.Len()
		ratio := b1Len / b2Len
		if ratio < 1 {
			ratio = 1
		}
		a.p -= ratio
		if a.p < 0 {
			a.p = 0
		}
		a.replace(true)
		a.b2.Remove(elem)
		delete(a.b2m, key)
		a.t2m[key] = a.t2.PushBack(&lruEntry[K]{key: key})
	}
}

func (a *arc[K]) OnRemove(key K) {
	if elem, ok := a.t1m[key]; ok {
		a.t1.Remove(elem)
		delete(a.t1m, key)
	}
	if elem, ok := a.t2m[key]; ok {
		a.t2.Remove(elem)
		delete(a.t2m, key)
	}
	if elem, ok := a.b1m[key]; ok {
		a.b1.Remove(elem)
		delete(a.b1m, key)
	}
	if elem, ok := a.b2m[key]; ok {
		a.b2.Remove(elem)
		delete(a.b2m, key)
	}
}

func (a *arc[K]) Evict() (K, bool) {
	if a.t1.Len() == 0 && a.t2.Len() == 0 {
		var zero K
		return zero, false
	}
	if a.t1.Len() > a.p {
		return popFront(a.t1, a.t1m)
	}
	return popFront(a.t2, a.t2m)
}
