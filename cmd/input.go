package main

import (
	"atomicgo.dev/keyboard/keys"

	"github.com/luca-patrignani/video-poker/domain/poker"
)

type action uint8

const (
	actionNone action = iota
	actionHold
	actionPrimary
	actionBetUp
	actionBetDown
	actionQuit
)

// command is what a key press asks the machine to do. index is the hand
// position for actionHold.
type command struct {
	action action
	index  int
}

// commandForKey maps a key press onto a command. Unbound keys map to
// actionNone.
func commandForKey(key keys.Key) command {
	switch key.Code {
	case keys.Enter, keys.Space:
		return command{action: actionPrimary}
	case keys.Up:
		return command{action: actionBetUp}
	case keys.Down:
		return command{action: actionBetDown}
	case keys.Escape, keys.CtrlC:
		return command{action: actionQuit}
	case keys.RuneKey:
		if len(key.Runes) != 1 {
			return command{}
		}
		return commandForRune(key.Runes[0])
	}
	return command{}
}

func commandForRune(r rune) command {
	switch {
	case r >= '1' && r <= '0'+poker.HandSize:
		return command{action: actionHold, index: int(r - '1')}
	case r == ' ', r == 'd', r == 'D':
		return command{action: actionPrimary}
	case r == '+', r == '=':
		return command{action: actionBetUp}
	case r == '-', r == '_':
		return command{action: actionBetDown}
	case r == 'q', r == 'Q':
		return command{action: actionQuit}
	}
	return command{}
}

// apply runs c against m and reports whether the session should end.
func apply(m *poker.Machine, c command) (quit bool) {
	switch c.action {
	case actionHold:
		m.ToggleHold(c.index)
	case actionPrimary:
		m.PrimaryAction()
	case actionBetUp:
		m.IncrementBet()
	case actionBetDown:
		m.DecrementBet()
	case actionQuit:
		return true
	}
	return false
}
