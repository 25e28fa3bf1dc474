package poker

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/luca-patrignani/video-poker/domain/deck"
)

// Machine runs the deal/hold/draw cycle of a single player and owns the
// balance and bet. It is not safe for concurrent use: every transition
// runs to completion before the next input is handled.
type Machine struct {
	balance uint
	bet     uint
	phase   Phase

	hand     Hand
	dealt    bool
	pool     [HandSize]Card
	nextPool int
	holds    HoldSet

	dealtHand  Hand
	evaluation Evaluation
	evaluated  bool
	lastPayout *uint
	roundID    string

	shuffle func() []Card
	logger  *slog.Logger

	// Callback for resolved rounds
	onRoundComplete func(RoundResult)
}

// Option configures a Machine.
type Option func(Machine) Machine

// NewMachine creates an idle machine holding InitialBalance credits with a
// bet of MinBet, shuffling from a crypto-random deck.
func NewMachine(opts ...Option) *Machine {
	m := Machine{
		balance: InitialBalance,
		bet:     MinBet,
		phase:   Idle,
		shuffle: NewPokerDeck().ShuffledCards,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		m = opt(m)
	}
	m.bet = clampBet(m.bet, m.balance)
	return &m
}

// WithBalance sets the starting balance.
func WithBalance(balance uint) Option {
	return func(m Machine) Machine {
		m.balance = balance
		return m
	}
}

// WithBet sets the starting bet; it is clamped to the table limits.
func WithBet(bet uint) Option {
	return func(m Machine) Machine {
		m.bet = bet
		return m
	}
}

// WithSeed deals from a reproducible deck. Meant for simulations only.
func WithSeed(seed []byte) Option {
	return func(m Machine) Machine {
		m.shuffle = NewPokerDeck(deck.WithSeed(seed)).ShuffledCards
		return m
	}
}

// WithShuffler replaces the deck source. The function must return at least
// ten cards; the first five are dealt and the next five replace discards.
func WithShuffler(shuffle func() []Card) Option {
	return func(m Machine) Machine {
		m.shuffle = shuffle
		return m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m Machine) Machine {
		if logger != nil {
			m.logger = logger
		}
		return m
	}
}

// WithRoundCompleteHandler registers fn to be called after every draw.
func WithRoundCompleteHandler(fn func(RoundResult)) Option {
	return func(m Machine) Machine {
		m.onRoundComplete = fn
		return m
	}
}

// clampBet bounds bet to [MinBet, min(balance, MaxBet)]. A balance below
// MinBet leaves nothing to wager, so the bet drops to the balance.
func clampBet(bet, balance uint) uint {
	upper := min(balance, MaxBet)
	if upper < MinBet {
		return upper
	}
	return max(MinBet, min(bet, upper))
}

// Phase returns the current round phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Balance returns the credits available to bet.
func (m *Machine) Balance() uint {
	return m.balance
}

// Bet returns the current wager.
func (m *Machine) Bet() uint {
	return m.bet
}

// AdjustBet moves the bet by delta, clamped to the table limits and the
// balance. It is ignored while a hand is awaiting the draw.
func (m *Machine) AdjustBet(delta int) {
	if m.phase != Idle {
		m.logger.Debug("bet change ignored while a round is active", "delta", delta)
		return
	}
	next := int(m.bet) + delta
	if next < 0 {
		next = 0
	}
	m.bet = clampBet(uint(next), m.balance)
}

func (m *Machine) IncrementBet() {
	m.AdjustBet(1)
}

func (m *Machine) DecrementBet() {
	m.AdjustBet(-1)
}

// ToggleHold flips the hold flag of the card at index. It is ignored
// outside AwaitingDraw or for an index outside the hand.
func (m *Machine) ToggleHold(index int) {
	if m.phase != AwaitingDraw {
		m.logger.Debug("hold ignored, no active round", "index", index)
		return
	}
	if index < 0 || index >= HandSize {
		m.logger.Debug("hold ignored, index out of range", "index", index)
		return
	}
	m.holds[index] = !m.holds[index]
}

// CanDeal reports whether PrimaryAction would deal a new hand.
func (m *Machine) CanDeal() bool {
	return m.phase == Idle && m.bet >= MinBet && m.balance >= m.bet
}

// PrimaryAction deals a new hand when idle and draws when a hand is
// awaiting the draw. A deal the balance cannot cover is ignored.
func (m *Machine) PrimaryAction() {
	switch m.phase {
	case Idle:
		m.deal()
	case AwaitingDraw:
		m.draw()
	}
}

func (m *Machine) deal() {
	if !m.CanDeal() {
		m.logger.Debug("deal refused", "balance", m.balance, "bet", m.bet)
		return
	}
	m.hand, m.pool = DealInitial(m.shuffle())
	m.nextPool = 0
	m.dealt = true
	m.dealtHand = m.hand

	// Shown to the player as a hint; the payout waits for the draw.
	m.evaluation = Evaluate(m.hand)
	m.evaluated = true
	m.lastPayout = nil

	m.balance -= m.bet
	m.holds = HoldSet{}
	m.roundID = uuid.NewString()
	m.phase = AwaitingDraw

	m.logger.Debug("dealt",
		"round", m.roundID,
		"hand", m.hand.Code(),
		"bet", m.bet,
		"balance", m.balance,
		"category", m.evaluation.Category.String(),
	)
}

func (m *Machine) draw() {
	held := m.holds
	for i := range m.hand {
		if held[i] || m.nextPool >= len(m.pool) {
			continue
		}
		m.hand[i] = m.pool[m.nextPool]
		m.nextPool++
	}

	m.evaluation = Evaluate(m.hand)
	payout := Payout(m.evaluation.Category, m.bet)
	m.balance += payout
	m.lastPayout = &payout
	result := RoundResult{
		RoundID:    m.roundID,
		Bet:        m.bet,
		Dealt:      m.dealtHand,
		Held:       held,
		Final:      m.hand,
		Evaluation: m.evaluation,
		Payout:     payout,
		Balance:    m.balance,
	}

	m.bet = min(m.balance, m.bet)
	m.holds = HoldSet{}
	m.phase = Idle

	m.logger.Debug("drew",
		"round", m.roundID,
		"hand", m.hand.Code(),
		"category", m.evaluation.Category.String(),
		"payout", payout,
		"balance", m.balance,
	)

	if m.onRoundComplete != nil {
		m.onRoundComplete(result)
	}
}
