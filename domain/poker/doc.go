// Package poker implements the domain logic of a Jacks or Better video poker
// machine: cards and the 52-card deck, hand evaluation, the pay table and the
// deal/hold/draw round cycle.
//
// # Core Types
//
// Card: Represents a playing card with suit and rank.
//
// Hand: The five cards in front of the player.
//
// Evaluation: The category of a hand and the positions of the cards that
// make it.
//
// Machine: Owns the balance and bet and drives a round from Idle to
// AwaitingDraw and back.
//
// # Round Flow
//
// PrimaryAction deals five cards from a freshly shuffled deck and debits the
// bet. The player toggles holds with ToggleHold, then PrimaryAction again
// replaces every card not held, evaluates the final hand and credits
// Payout(category, bet). Inputs that do not apply to the current phase are
// ignored.
//
// # Hand Evaluation
//
// Evaluate classifies a hand into one of ten categories, from Nothing up to
// Royal Flush. Only a pair of jacks or better pays; aces play both low
// (A-2-3-4-5) and high (10-J-Q-K-A) in straights, never around the corner.
package poker
