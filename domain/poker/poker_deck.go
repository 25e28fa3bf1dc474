package poker

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/video-poker/domain/deck"
)

// DeckSize is the number of cards in a poker deck.
const DeckSize = 52

// PokerDeck wraps a generic deck and provides poker-specific card handling.
// It converts between poker Card representations and the slot indices of
// the underlying shuffled deck.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a new poker deck with 52 cards. Without options the
// deck shuffles from a cryptographically strong random stream.
func NewPokerDeck(opts ...deck.Option) PokerDeck {
	return PokerDeck{
		Deck: deck.New(DeckSize, opts...),
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Hearts (Ace through King)
//   - 40-52: Spades (Ace through King)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8(((rawCard - 1) % 13) + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

// DrawCard draws the next card from the front of the deck.
func (d PokerDeck) DrawCard() (Card, error) {
	slot, err := d.Deck.DrawCard()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(slot + 1)
}

// ShuffledCards shuffles the deck and returns all 52 cards in dealing order.
func (d PokerDeck) ShuffledCards() []Card {
	d.Shuffle()
	cards := make([]Card, 0, DeckSize)
	for d.Remaining() > 0 {
		c, err := d.DrawCard()
		if err != nil {
			panic(fmt.Sprintf("drawing from a fresh deck: %v", err))
		}
		cards = append(cards, c)
	}
	return cards
}

// FreshShuffledDeck returns the 52-card universe in a crypto-random order.
func FreshShuffledDeck() []Card {
	return NewPokerDeck().ShuffledCards()
}

// DealInitial splits a shuffled deck into the five-card hand and the five
// cards reserved to replace discards on the draw.
func DealInitial(cards []Card) (Hand, [HandSize]Card) {
	if len(cards) < 2*HandSize {
		panic(fmt.Sprintf("cannot deal from %d cards", len(cards)))
	}
	var hand Hand
	var pool [HandSize]Card
	copy(hand[:], cards[:HandSize])
	copy(pool[:], cards[HandSize:2*HandSize])
	return hand, pool
}
