package ledger

import "github.com/luca-patrignani/video-poker/domain/poker"

// Stats are the session totals derived from the chain.
type Stats struct {
	Rounds          int
	Wagered         uint
	Paid            uint
	Wins            int
	StartingBalance uint
	Balance         uint
	Best            poker.Category
	Counts          map[poker.Category]int
}

// ReturnToPlayer is the fraction of wagered credits paid back, 0 before the
// first round.
func (s Stats) ReturnToPlayer() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.Paid) / float64(s.Wagered)
}

// Net is the balance change since the start of the session.
func (s Stats) Net() int {
	return int(s.Balance) - int(s.StartingBalance)
}

// Summary walks the chain and totals every recorded round.
func (bc *Blockchain) Summary() Stats {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	s := Stats{Counts: make(map[poker.Category]int)}
	if len(bc.blocks) == 0 {
		return s
	}
	s.StartingBalance = bc.blocks[0].Round.Balance
	s.Balance = s.StartingBalance

	for _, b := range bc.blocks[1:] {
		r := b.Round
		s.Rounds++
		s.Wagered += r.Bet
		s.Paid += r.Payout
		if r.Payout > 0 {
			s.Wins++
		}
		s.Counts[r.Evaluation.Category]++
		s.Best = max(s.Best, r.Evaluation.Category)
		s.Balance = r.Balance
	}
	return s
}
