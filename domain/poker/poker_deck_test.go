package poker

import (
	"slices"
	"testing"

	"github.com/luca-patrignani/video-poker/domain/deck"
)

func TestFreshShuffledDeckIsUniverse(t *testing.T) {
	universe := make(map[Card]bool)
	for _, c := range Universe() {
		universe[c] = true
	}
	if len(universe) != DeckSize {
		t.Fatalf("expected %d distinct cards in the universe, got %d", DeckSize, len(universe))
	}

	for trial := 0; trial < 1000; trial++ {
		cards := FreshShuffledDeck()
		if len(cards) != DeckSize {
			t.Fatalf("trial %d: expected %d cards, got %d", trial, DeckSize, len(cards))
		}
		seen := make(map[Card]bool, DeckSize)
		for _, c := range cards {
			if !universe[c] {
				t.Fatalf("trial %d: card %v is not in the universe", trial, c)
			}
			if seen[c] {
				t.Fatalf("trial %d: duplicate card %s", trial, c.Code())
			}
			seen[c] = true
		}
	}
}

func TestDealInitialIsDisjoint(t *testing.T) {
	for trial := 0; trial < 1000; trial++ {
		hand, pool := DealInitial(FreshShuffledDeck())
		seen := make(map[Card]bool, 2*HandSize)
		for _, c := range append(hand[:], pool[:]...) {
			if !c.Valid() {
				t.Fatalf("trial %d: invalid card dealt", trial)
			}
			if seen[c] {
				t.Fatalf("trial %d: %s dealt twice", trial, c.Code())
			}
			seen[c] = true
		}
	}
}

func TestDealInitialTakesTheFrontOfTheDeck(t *testing.T) {
	cards := Universe()
	hand, pool := DealInitial(cards)
	if !slices.Equal(hand[:], cards[:5]) {
		t.Errorf("hand %s is not the first five cards", hand.Code())
	}
	if !slices.Equal(pool[:], cards[5:10]) {
		t.Errorf("pool is not the next five cards")
	}
}

func TestDealInitialPanicsOnShortDeck(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic dealing from nine cards")
		}
	}()
	DealInitial(Universe()[:9])
}

func TestSeededPokerDeckIsReproducible(t *testing.T) {
	a := NewPokerDeck(deck.WithSeed([]byte("table-1")))
	b := NewPokerDeck(deck.WithSeed([]byte("table-1")))
	if !slices.Equal(a.ShuffledCards(), b.ShuffledCards()) {
		t.Fatal("seeded decks dealt different cards")
	}
}
