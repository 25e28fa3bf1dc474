package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/video-poker/domain/poker"
	"github.com/luca-patrignani/video-poker/ledger"
)

// renderMachine draws the whole table: pay table, hand, status and controls.
func renderMachine(s poker.Snapshot) (string, error) {
	payTable, err := renderPayTable(s.Bet)
	if err != nil {
		return "", err
	}
	hand, err := renderHand(s)
	if err != nil {
		return "", err
	}
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|JACKS OR BETTER|")).WithTitleTopCenter().Sprintf(
		"%s\n%s\n%s\n\n%s", payTable, hand, renderStatus(s), renderControls(s),
	), nil
}

// renderPayTable prints credits per category for every bet, highlighting
// the column of the current bet. A zero bet highlights nothing.
func renderPayTable(bet uint) (string, error) {
	header := []string{"Hand"}
	for b := uint(poker.MinBet); b <= poker.MaxBet; b++ {
		header = append(header, highlightIf(b == bet, strconv.Itoa(int(b))))
	}
	data := pterm.TableData{header}
	for _, row := range poker.PayTableRows() {
		line := []string{row.Category.Label()}
		for b := uint(poker.MinBet); b <= poker.MaxBet; b++ {
			line = append(line, highlightIf(b == bet, strconv.Itoa(int(poker.Payout(row.Category, b)))))
		}
		data = append(data, line)
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithRightAlignment().WithData(data).Srender()
}

func highlightIf(cond bool, s string) string {
	if cond {
		return pterm.LightYellow(s)
	}
	return s
}

func renderHand(s poker.Snapshot) (string, error) {
	cards := make([]string, poker.HandSize)
	holds := make([]string, poker.HandSize)
	keys := make([]string, poker.HandSize)
	for i := 0; i < poker.HandSize; i++ {
		cards[i] = poker.FaceDown
		if i < len(s.Hand) {
			cards[i] = s.Hand[i].String()
		}
		if slices.Contains(s.WinningIndices, i) {
			cards[i] = pterm.BgGreen.Sprint(" " + cards[i] + " ")
		}
		if s.Holds[i] {
			holds[i] = pterm.LightCyan("HELD")
		}
		keys[i] = pterm.Gray(fmt.Sprintf("[%d]", i+1))
	}
	return pterm.DefaultTable.WithBoxed().WithData(pterm.TableData{cards, holds, keys}).Srender()
}

func renderStatus(s poker.Snapshot) string {
	status := pterm.Sprintf("Credits: %d    Bet: %d", s.Balance, s.Bet)
	switch {
	case s.IsActive && s.Result != "":
		status += "\n" + pterm.LightYellow(s.Result)
	case s.CreditsWon != nil && *s.CreditsWon > 0:
		status += "\n" + pterm.LightGreen(fmt.Sprintf("%s! You won %d credits", s.Result, *s.CreditsWon))
	case s.CreditsWon != nil:
		status += "\n" + pterm.LightRed("No win")
	}
	if !s.IsActive && len(s.Hand) == poker.HandSize {
		var h poker.Hand
		copy(h[:], s.Hand)
		if desc, err := poker.Describe(h); err == nil {
			status += "\n" + pterm.Gray(desc)
		}
	}
	return status
}

func renderControls(s poker.Snapshot) string {
	primary := "[Enter] Deal"
	if s.IsActive {
		primary = "[Enter] Draw"
	} else if !s.CanDeal {
		primary = pterm.Gray("[Enter] Deal")
	}
	bet := "[+/-] Bet"
	if s.IsActive {
		bet = pterm.Gray(bet)
	}
	hold := pterm.Gray("[1-5] Hold")
	if s.IsActive {
		hold = "[1-5] Hold"
	}
	return primary + "   " + hold + "   " + bet + "   [q] Quit"
}

// renderSummary prints the session totals recorded in the ledger.
func renderSummary(stats ledger.Stats) (string, error) {
	data := pterm.TableData{
		{"Rounds", strconv.Itoa(stats.Rounds)},
		{"Wagered", strconv.Itoa(int(stats.Wagered))},
		{"Paid", strconv.Itoa(int(stats.Paid))},
		{"Winning rounds", strconv.Itoa(stats.Wins)},
		{"Return to player", fmt.Sprintf("%.2f%%", stats.ReturnToPlayer()*100)},
		{"Starting balance", strconv.Itoa(int(stats.StartingBalance))},
		{"Final balance", strconv.Itoa(int(stats.Balance))},
		{"Net", fmt.Sprintf("%+d", stats.Net())},
	}
	if stats.Rounds > 0 {
		data = append(data, []string{"Best hand", stats.Best.String()})
	}
	for _, c := range poker.Categories() {
		if n := stats.Counts[c]; n > 0 {
			data = append(data, []string{"  " + c.String(), strconv.Itoa(n)})
		}
	}
	return pterm.DefaultTable.WithBoxed().WithData(data).Srender()
}
