package eviction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMRUEvictsMostRecentlyTouched(t *testing.T) {
	p := NewMRU[int]()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnAccess(2) // 2 is now most recently touched

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 2, key)
}

func TestMRURemove(t *testing.T) {
	p := NewMRU[int]()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnRemove(2)

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 1, key)
}

func TestMRUEvictOnEmptyReturnsFalse(t *testing.T) {
	p := NewMRU[int]()
	_, ok := p.Evict()
	assert.False(t, ok)
}
