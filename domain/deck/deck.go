package deck

import (
	"crypto/cipher"
	"errors"

	"go.dedis.ch/kyber/v4/suites"
)

// ErrDeckExhausted is returned by DrawCard once every slot has been dealt.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered permutation of DeckSize card slots.
// Slot values are 0-based indices into the caller's card universe.
type Deck struct {
	DeckSize      int
	order         []int
	stream        cipher.Stream
	lastDrawnCard int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type Option func(Deck) Deck

// New creates a deck of the given size in identity order.
// Without options the shuffle draws from the suite's crypto random stream.
func New(size int, opts ...Option) *Deck {
	d := Deck{
		DeckSize: size,
		stream:   suite.RandomStream(),
	}
	for _, opt := range opts {
		d = opt(d)
	}
	d.reset()
	return &d
}

// WithStream sets the randomness source used by Shuffle.
func WithStream(stream cipher.Stream) Option {
	return func(d Deck) Deck {
		d.stream = stream
		return d
	}
}

// WithSeed makes every shuffle reproducible from seed.
// Only meant for simulations and tests: a seeded deck is predictable.
func WithSeed(seed []byte) Option {
	return func(d Deck) Deck {
		d.stream = suite.XOF(seed)
		return d
	}
}

func (d *Deck) reset() {
	d.order = make([]int, d.DeckSize)
	for i := range d.order {
		d.order[i] = i
	}
	d.lastDrawnCard = 0
}

// Order returns a copy of the current slot order.
func (d *Deck) Order() []int {
	order := make([]int, len(d.order))
	copy(order, d.order)
	return order
}

// DrawCard returns the next slot from the front of the deck.
func (d *Deck) DrawCard() (int, error) {
	if d.lastDrawnCard >= len(d.order) {
		return 0, ErrDeckExhausted
	}
	card := d.order[d.lastDrawnCard]
	d.lastDrawnCard++
	return card, nil
}

// Remaining reports how many slots are left to draw.
func (d *Deck) Remaining() int {
	return len(d.order) - d.lastDrawnCard
}
