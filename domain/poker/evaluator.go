package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Category is the paying class of a video poker hand, ordered by value.
type Category uint8

const (
	Nothing Category = iota
	JacksOrBetter
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush

	numCategories = int(RoyalFlush) + 1
)

var categoryNames = [numCategories]string{
	Nothing:       "Nothing",
	JacksOrBetter: "Jacks or Better",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (c Category) String() string {
	if int(c) >= numCategories {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Label is the text shown to the player: empty for a losing hand.
func (c Category) Label() string {
	if c == Nothing {
		return ""
	}
	return c.String()
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= numCategories {
		return nil, fmt.Errorf("unknown category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name produced by MarshalText.
func (c *Category) UnmarshalText(b []byte) error {
	for i, name := range categoryNames {
		if name == string(b) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", b)
}

// Categories lists every category from Nothing up to RoyalFlush.
func Categories() []Category {
	cats := make([]Category, numCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Evaluation is the classification of a hand. WinningIndices are the hand
// positions that make up the category, in ascending order.
type Evaluation struct {
	Category       Category `json:"category"`
	WinningIndices []int    `json:"winning_indices"`
}

var allIndices = []int{0, 1, 2, 3, 4}

// Evaluate classifies a five-card hand. The checks run from the best
// category down because the conditions overlap (a straight flush is also a
// straight and a flush).
func Evaluate(h Hand) Evaluation {
	var counts [15]int
	for _, c := range h {
		counts[c.value()]++
	}

	var quads, trips int
	var pairs []int
	for v := 2; v <= 14; v++ {
		switch counts[v] {
		case 4:
			quads = v
		case 3:
			trips = v
		case 2:
			pairs = append(pairs, v)
		}
	}

	flush := isFlush(h)
	straight, high := straightHigh(counts)

	switch {
	case flush && straight && high == 14:
		return whole(RoyalFlush)
	case flush && straight:
		return whole(StraightFlush)
	case quads != 0:
		return matching(FourOfAKind, h, quads)
	case trips != 0 && len(pairs) == 1:
		return whole(FullHouse)
	case flush:
		return whole(Flush)
	case straight:
		return whole(Straight)
	case trips != 0:
		return matching(ThreeOfAKind, h, trips)
	case len(pairs) == 2:
		return matching(TwoPair, h, pairs...)
	case len(pairs) == 1 && pairs[0] >= Jack:
		return matching(JacksOrBetter, h, pairs[0])
	default:
		return Evaluation{Category: Nothing, WinningIndices: []int{}}
	}
}

func isFlush(h Hand) bool {
	for _, c := range h[1:] {
		if c.suit != h[0].suit {
			return false
		}
	}
	return true
}

// straightHigh reports whether the rank counts hold five consecutive ranks
// and the value of the top card. The wheel A-2-3-4-5 is five-high; the ace
// never wraps from king to two.
func straightHigh(counts [15]int) (bool, int) {
	for high := 14; high >= 6; high-- {
		run := true
		for v := high - 4; v <= high; v++ {
			if counts[v] != 1 {
				run = false
				break
			}
		}
		if run {
			return true, high
		}
	}
	if counts[14] == 1 && counts[2] == 1 && counts[3] == 1 && counts[4] == 1 && counts[5] == 1 {
		return true, 5
	}
	return false, 0
}

func whole(c Category) Evaluation {
	indices := make([]int, len(allIndices))
	copy(indices, allIndices)
	return Evaluation{Category: c, WinningIndices: indices}
}

func matching(c Category, h Hand, values ...int) Evaluation {
	indices := []int{}
	for i, card := range h {
		for _, v := range values {
			if card.value() == v {
				indices = append(indices, i)
				break
			}
		}
	}
	return Evaluation{Category: c, WinningIndices: indices}
}

// Describe returns a long-form description of the hand, such as
// "pair of jacks" or "king-high straight".
func Describe(h Hand) (string, error) {
	cards := make([]poker.Card, 0, HandSize)
	for i, c := range h {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
		if err != nil {
			return "", fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return poker.Describe(cards)
}
