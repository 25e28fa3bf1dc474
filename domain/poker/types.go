package poker

import "strings"

// HandSize is the number of cards in a video poker hand.
const HandSize = 5

// Betting limits and the stake every session starts with.
const (
	MinBet         = 1
	MaxBet         = 5
	InitialBalance = 100
)

// Hand is a five-card hand. Positions matter only for holds and display.
type Hand [HandSize]Card

// HoldSet flags the hand positions kept through the draw.
type HoldSet [HandSize]bool

func (h Hand) String() string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = c.String()
	}
	return strings.Join(cards, " ")
}

// Code renders the hand as space-separated card codes, e.g. "Th Jh Qh Kh Ah".
func (h Hand) Code() string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = c.Code()
	}
	return strings.Join(cards, " ")
}

// Phase is the round phase of a Machine.
type Phase uint8

const (
	// Idle: no hand is riding on a bet; bets may be adjusted.
	Idle Phase = iota
	// AwaitingDraw: a hand is dealt and the player is choosing holds.
	AwaitingDraw
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingDraw:
		return "awaiting_draw"
	default:
		return "unknown"
	}
}
