package demo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqPicker replays fixed choices.
type seqPicker struct {
	vals []int
	i    int
}

func (s *seqPicker) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestPickID(t *testing.T) {
	assert.Equal(t, int64(0), PickID(&seqPicker{vals: []int{0}}, 0))
	assert.Equal(t, int64(1), PickID(&seqPicker{vals: []int{0}}, 10))
	assert.Equal(t, int64(10), PickID(&seqPicker{vals: []int{9}}, 10))

	p := NewPicker(42)
	for i := 0; i < 200; i++ {
		id := PickID(p, 5)
		require.GreaterOrEqual(t, id, int64(1))
		require.LessOrEqual(t, id, int64(5))
	}
}

func TestOrderItems(t *testing.T) {
	// count=2 -> 3 items; then (product, quantity) pairs
	items := OrderItems(&seqPicker{vals: []int{2, 0, 0, 4, 2, 1, 1}}, 5)

	require.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(5), items[1].ProductID)
	assert.Equal(t, 3, items[1].Quantity)
	assert.Equal(t, int64(2), items[2].ProductID)
	assert.Equal(t, 2, items[2].Quantity)

	assert.Nil(t, OrderItems(NewPicker(1), 0))
}

func TestFaker_Product(t *testing.T) {
	g := NewFaker(7)
	g.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	for i := 0; i < 20; i++ {
		p := g.Product()
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, Categories, p.Category)
		assert.Contains(t, Manufacturers, p.Manufacturer)
		assert.True(t, p.Price.GreaterThanOrEqual(decimal.NewFromInt(10)), p.Price.String())
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(1000)), p.Price.String())
		assert.True(t, p.Price.Equal(p.Price.Round(2)))
		assert.GreaterOrEqual(t, p.StockQuantity, 1)
		assert.False(t, p.ReleaseDate.After(g.now()))
	}
}

func TestFaker_Customer(t *testing.T) {
	c := NewFaker(7).Customer()

	assert.NotEmpty(t, c.Username)
	assert.Len(t, c.Password, 8)
	assert.Contains(t, c.Email, "@")
}
