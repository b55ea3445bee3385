package pure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripe_CountsOneMissPerLookup(t *testing.T) {
	s := &stripe[int]{
		table:   NewTable[int](NewConfig()),
		flights: map[any]string{},
	}

	_, flightId, ok := s.loadOrJoin("k")
	assert.False(t, ok)
	assert.NotEmpty(t, flightId)

	_, joined, ok := s.loadOrJoin("k")
	assert.False(t, ok)
	assert.Equal(t, flightId, joined)

	_, ok = s.peek("k")
	assert.False(t, ok)
	s.land("k", 7)
	v, ok := s.peek("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	assert.Equal(t, uint64(2), s.table.Misses())
	assert.Equal(t, uint64(0), s.table.Hits())
	assert.Empty(t, s.flights)

	v, _, ok = s.loadOrJoin("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, uint64(1), s.table.Hits())
}

func TestStripeKey_PointerByAddress(t *testing.T) {
	type pt struct{ x int }
	p1, p2 := &pt{1}, &pt{1}
	assert.NotEqual(t, stripeKey(p1), stripeKey(p2))
	before := stripeKey(p1)
	p1.x = 2
	assert.Equal(t, before, stripeKey(p1))
	assert.Equal(t, stripeKey(3), stripeKey(3))
}
