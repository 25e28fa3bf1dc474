package poker

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (low in straights, high in value)
)

// FaceDown is the display character for an empty card slot
const (
	FaceDown = "▓"
)

// Card represents a playing card with suit and rank.
// The zero Card is not a valid card and renders face down.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// MustCard is NewCard for literals known to be valid.
func MustCard(suit uint8, rank uint8) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Universe returns the 52 distinct cards in IntToCard order.
func Universe() []Card {
	cards := make([]Card, 0, DeckSize)
	for raw := 1; raw <= DeckSize; raw++ {
		c, err := IntToCard(raw)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool {
	return c.suit <= Spade && c.rank >= Ace && c.rank <= King
}

// value is the rank with the ace counted high (2..14).
func (c Card) value() int {
	if c.rank == Ace {
		return 14
	}
	return int(c.rank)
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if !c.Valid() {
		return FaceDown
	}
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	}
	return rankString(c.rank) + suit
}

// Code returns the plain two-character code of the card, e.g. "Th" or "As".
func (c Card) Code() string {
	if !c.Valid() {
		return "??"
	}
	r := rankString(c.rank)
	if c.rank == 10 {
		r = "T"
	}
	return r + string("cdhs"[c.suit])
}

func rankString(rank uint8) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// ParseCard parses a card code such as "As", "Th", "10h" or "2C".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card literal %q", s)
	}
	rankPart, suitPart := s[:len(s)-1], s[len(s)-1]

	var suit uint8
	switch suitPart {
	case 'C':
		suit = Club
	case 'D':
		suit = Diamond
	case 'H':
		suit = Heart
	case 'S':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid suit %q in %q (use c/d/h/s)", suitPart, s)
	}

	var rank uint8
	switch rankPart {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = 10
	default:
		if len(rankPart) != 1 || rankPart[0] < '2' || rankPart[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank %q in %q", rankPart, s)
		}
		rank = rankPart[0] - '0'
	}
	return NewCard(suit, rank)
}

// ParseHand parses five space-separated card codes.
func ParseHand(s string) (Hand, error) {
	fields := strings.Fields(s)
	if len(fields) != HandSize {
		return Hand{}, fmt.Errorf("expected %d cards, got %d", HandSize, len(fields))
	}
	var h Hand
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		h[i] = c
	}
	return h, nil
}

// MarshalJSON encodes a Card as its two-character code.
func (c Card) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card %d, %d", c.suit, c.rank)
	}
	return json.Marshal(c.Code())
}

// UnmarshalJSON decodes a two-character code into a Card.
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
