package poker

// Snapshot is a read-only copy of the machine state for the presentation
// layer. Slices are copies; mutating them does not affect the machine.
type Snapshot struct {
	Balance  uint    `json:"balance"`
	Bet      uint    `json:"bet"`
	Hand     []Card  `json:"hand"` // empty before the first deal
	Holds    HoldSet `json:"holds"`
	IsActive bool    `json:"is_active"`
	CanDeal  bool    `json:"can_deal"`
	// Result is the label of the last evaluation: the pre-draw hint while
	// a round is active, the paid category after the draw.
	Result         string   `json:"result"`
	Category       Category `json:"category"`
	WinningIndices []int    `json:"winning_indices"`
	CreditsWon     *uint    `json:"credits_won,omitempty"` // nil until a draw resolves
	RoundID        string   `json:"round_id,omitempty"`
}

// Snapshot returns the current state of the machine.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Balance:        m.balance,
		Bet:            m.bet,
		Hand:           []Card{},
		Holds:          m.holds,
		IsActive:       m.phase == AwaitingDraw,
		CanDeal:        m.CanDeal(),
		WinningIndices: []int{},
		RoundID:        m.roundID,
	}
	if m.dealt {
		s.Hand = append(s.Hand, m.hand[:]...)
	}
	if m.evaluated {
		s.Result = m.evaluation.Category.Label()
		s.Category = m.evaluation.Category
		s.WinningIndices = append(s.WinningIndices, m.evaluation.WinningIndices...)
	}
	if m.lastPayout != nil {
		won := *m.lastPayout
		s.CreditsWon = &won
	}
	return s
}

// RoundResult records a resolved round.
type RoundResult struct {
	RoundID    string     `json:"round_id"`
	Bet        uint       `json:"bet"`
	Dealt      Hand       `json:"dealt"`
	Held       HoldSet    `json:"held"`
	Final      Hand       `json:"final"`
	Evaluation Evaluation `json:"evaluation"`
	Payout     uint       `json:"payout"`
	Balance    uint       `json:"balance"` // after the payout
}
