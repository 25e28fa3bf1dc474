package main

import (
	"fmt"
	"log/slog"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/video-poker/config"
	"github.com/luca-patrignani/video-poker/domain/poker"
	"github.com/luca-patrignani/video-poker/ledger"
)

// newSession wires a machine to a fresh ledger. Every resolved round is
// appended to the chain.
func newSession(cfg config.Config, logger *slog.Logger, extra map[string]string) (*poker.Machine, *ledger.Blockchain) {
	sessionID := uuid.NewString()
	chain := ledger.NewBlockchain(sessionID, cfg.Balance)
	opts := []poker.Option{
		poker.WithBalance(cfg.Balance),
		poker.WithLogger(logger.With("session", sessionID)),
		poker.WithRoundCompleteHandler(func(r poker.RoundResult) {
			if err := chain.Append(r, extra); err != nil {
				logger.Error("round not recorded", "round", r.RoundID, "error", err)
			}
		}),
	}
	if seed := cfg.SeedBytes(); seed != nil {
		opts = append(opts, poker.WithSeed(seed))
	}
	return poker.NewMachine(opts...), chain
}

func play(cfg config.Config, logger *slog.Logger) error {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("V", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ideo ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	m, chain := newSession(cfg, logger, nil)

	screen, err := renderMachine(m.Snapshot())
	if err != nil {
		return err
	}
	area, err := pterm.DefaultArea.Start(screen)
	if err != nil {
		return fmt.Errorf("start screen: %w", err)
	}

	var renderErr error
	err = keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		if apply(m, commandForKey(key)) {
			return true, nil
		}
		screen, renderErr = renderMachine(m.Snapshot())
		if renderErr != nil {
			return true, renderErr
		}
		area.Update(screen)
		return false, nil
	})
	if stopErr := area.Stop(); stopErr != nil {
		logger.Debug("stop screen", "error", stopErr)
	}
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}

	return printSummary(chain)
}

// printSummary checks the round history and prints the session totals.
func printSummary(chain *ledger.Blockchain) error {
	if err := chain.Verify(); err != nil {
		pterm.Error.Printfln("Round history is corrupted: %s", err)
		return fmt.Errorf("verify round history: %w", err)
	}
	summary, err := renderSummary(chain.Summary())
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println("Session summary")
	pterm.Println(summary)
	pterm.Success.Printfln("Round history verified (%d rounds)", chain.Len()-1)
	return nil
}
