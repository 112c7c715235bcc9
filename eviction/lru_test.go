package eviction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUEvictsLeastRecentlyTouched(t *testing.T) {
	p := NewLRU[int]()

	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(3)

	// Touch 1 and 2 so 3 becomes the least recently touched.
	p.OnAccess(1)
	p.OnAccess(2)

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 3, key)
}

func TestLRUAccessOnAbsentKeyIsNoop(t *testing.T) {
	p := NewLRU[int]()
	p.OnInsert(1)

	p.OnAccess(99)

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 1, key)
}

func TestLRURemove(t *testing.T) {
	p := NewLRU[int]()
	p.OnInsert(1)
	p.OnInsert(2)

	p.OnRemove(1)

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 2, key)

	_, ok = p.Evict()
	assert.False(t, ok)
}

func TestLRUEvictOnEmptyReturnsFalse(t *testing.T) {
	p := NewLRU[int]()
	_, ok := p.Evict()
	assert.False(t, ok)
}

func TestLRUReinsertMovesToFront(t *testing.T) {
	p := NewLRU[int]()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(1) // touches 1 again

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 2, key)
}
