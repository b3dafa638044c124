package demo

import (
	"math/rand/v2"

	"github.com/ariefcatur/simple-shop/internal/orders"
)

// Picker is the selection strategy for demo flows; *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

func NewPicker(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickID returns an id uniformly from [1, max], or 0 when max < 1. Ids come
// from a row count, so a gap left by a failed insert can yield an id that does
// not exist; callers surface that as not found.
func PickID(p Picker, max int64) int64 {
	if max < 1 {
		return 0
	}
	return int64(p.IntN(int(max))) + 1
}

// OrderItems builds 1 to 3 items for random products in [1, productCount],
// each with quantity 1 to 3.
func OrderItems(p Picker, productCount int64) []orders.ItemInput {
	if productCount < 1 {
		return nil
	}
	n := p.IntN(3) + 1
	items := make([]orders.ItemInput, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, orders.ItemInput{
			ProductID: PickID(p, productCount),
			Quantity:  p.IntN(3) + 1,
		})
	}
	return items
}
