package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle rebuilds the identity order and permutes it in place with
// Fisher-Yates. Every draw j in [0, i] is uniform: random.Int rejects
// samples at or above the modulus instead of reducing them.
func (d *Deck) Shuffle() {
	d.reset()
	for i := len(d.order) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		d.order[i], d.order[j] = d.order[j], d.order[i]
	}
}

// Permutation returns a fresh random permutation of 0..size-1 drawn
// from the crypto stream.
func Permutation(size int) []int {
	d := New(size)
	d.Shuffle()
	return d.order
}
