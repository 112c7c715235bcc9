package eviction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecondChanceSurvivesOneRoundWithReferenceBit(t *testing.T) {
	p := NewSecondChance[int]()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnAccess(1) // sets reference bit on 1

	// 1 survives the first pass (bit cleared, requeued); 2 is evicted.
	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 2, key)

	// Now 1 has its bit cleared and is the only entry left.
	key, ok = p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 1, key)
}

func TestSecondChanceRemove(t *testing.T) {
	p := NewSecondChance[int]()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnRemove(1)

	key, ok := p.Evict()
	assert.True(t, ok)
	assert.Equal(t, 2, key)
}

func TestSecondChanceEvictOnEmptyReturnsFalse(t *testing.T) {
	p := NewSecondChance[int]()
	_, ok := p.Evict()
	assert.False(t, ok)
}
