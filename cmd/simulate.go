package main

import (
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/video-poker/config"
	"github.com/luca-patrignani/video-poker/domain/poker"
)

// holdWinners holds exactly the cards that make up the dealt hand's
// category. A dealt Nothing is drawn five fresh cards.
func holdWinners(m *poker.Machine) {
	for _, i := range m.Snapshot().WinningIndices {
		m.ToggleHold(i)
	}
}

// simulate plays up to rounds rounds with holdWinners and returns how many
// were played. It stops early once the balance cannot cover a bet.
func simulate(m *poker.Machine, rounds int, onRound func()) int {
	played := 0
	for played < rounds && m.CanDeal() {
		m.PrimaryAction()
		holdWinners(m)
		m.PrimaryAction()
		played++
		if onRound != nil {
			onRound()
		}
	}
	return played
}

func runSimulation(cfg config.Config, rounds int, logger *slog.Logger) error {
	m, chain := newSession(cfg, logger, map[string]string{"strategy": "hold-winners"})
	m.AdjustBet(poker.MaxBet)

	bar, _ := pterm.DefaultProgressbar.WithTotal(rounds).WithTitle("Simulating rounds").Start()
	played := simulate(m, rounds, func() {
		bar.Increment()
	})
	if _, err := bar.Stop(); err != nil {
		logger.Debug("stop progress bar", "error", err)
	}

	if played < rounds {
		pterm.Warning.Printfln("Out of credits after %d of %d rounds", played, rounds)
	}
	return printSummary(chain)
}
