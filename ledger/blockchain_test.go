package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/video-poker/domain/poker"
)

// playRounds plays n rounds on a machine starting with balance and records
// every result in a fresh chain.
func playRounds(t *testing.T, balance uint, n int, opts ...poker.Option) (*Blockchain, *poker.Machine) {
	t.Helper()
	bc := NewBlockchain("session-test", balance)
	opts = append(opts,
		poker.WithBalance(balance),
		poker.WithRoundCompleteHandler(func(r poker.RoundResult) {
			require.NoError(t, bc.Append(r))
		}),
	)
	m := poker.NewMachine(opts...)
	for i := 0; i < n && m.CanDeal(); i++ {
		m.PrimaryAction()
		m.PrimaryAction()
	}
	return bc, m
}

func stackedDeck(t *testing.T, hand, pool string) poker.Option {
	t.Helper()
	h, err := poker.ParseHand(hand)
	require.NoError(t, err)
	p, err := poker.ParseHand(pool)
	require.NoError(t, err)
	return poker.WithShuffler(func() []poker.Card {
		return append(h[:], p[:]...)
	})
}

// TestNewBlockchain verifies the genesis block records the starting balance and that the
// fresh chain verifies.
func TestNewBlockchain(t *testing.T) {
	bc := NewBlockchain("session-1", 100)
	require.Equal(t, 1, bc.Len())

	genesis, err := bc.GetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, genesis.Index)
	assert.Equal(t, "0", genesis.PrevHash)
	assert.Equal(t, uint(100), genesis.Round.Balance)
	assert.Equal(t, "session-1", genesis.Metadata.SessionID)
	assert.NotEmpty(t, genesis.Hash)
	assert.NoError(t, bc.Verify())
	assert.Empty(t, bc.Rounds())
}

// TestNewBlockchainWithDifferentBalances verifies that the starting balance is part of the
// genesis hash.
func TestNewBlockchainWithDifferentBalances(t *testing.T) {
	a := NewBlockchain("session", 100)
	b := NewBlockchain("session", 50)
	ga, _ := a.GetLatest()
	gb, _ := b.GetLatest()
	assert.NotEqual(t, ga.Hash, gb.Hash)
}

// TestAppendRecordsMachineRounds verifies that results emitted by the machine chain up and
// keep the accounting consistent.
func TestAppendRecordsMachineRounds(t *testing.T) {
	bc, m := playRounds(t, 100, 25, poker.WithSeed([]byte("ledger")))

	rounds := bc.Rounds()
	require.Len(t, rounds, 25)
	require.Equal(t, 26, bc.Len())
	require.NoError(t, bc.Verify())

	for i := 1; i < bc.Len(); i++ {
		prev, err := bc.GetByIndex(i - 1)
		require.NoError(t, err)
		cur, err := bc.GetByIndex(i)
		require.NoError(t, err)
		assert.Equal(t, prev.Hash, cur.PrevHash, "block %d", i)
		assert.Equal(t, i, cur.Index)
	}

	latest, err := bc.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, m.Balance(), latest.Round.Balance)
	assert.Equal(t, m.Snapshot().RoundID, latest.Round.RoundID)
}

// TestAppendRejectsInconsistentRounds verifies that a round whose payout or balance does
// not follow from the previous block is not appended.
func TestAppendRejectsInconsistentRounds(t *testing.T) {
	hand, err := poker.ParseHand("Jh Jd 4c 7s 2h")
	require.NoError(t, err)
	valid := poker.RoundResult{
		RoundID:    "r1",
		Bet:        2,
		Dealt:      hand,
		Final:      hand,
		Evaluation: poker.Evaluate(hand),
		Payout:     2,
		Balance:    100,
	}

	tests := []struct {
		name   string
		mutate func(r *poker.RoundResult)
	}{
		{"wrong payout", func(r *poker.RoundResult) { r.Payout = 10; r.Balance = 108 }},
		{"wrong balance", func(r *poker.RoundResult) { r.Balance = 150 }},
		{"bet above table maximum", func(r *poker.RoundResult) { r.Bet = 6; r.Payout = 6; r.Balance = 100 }},
		{"zero bet", func(r *poker.RoundResult) { r.Bet = 0; r.Payout = 0 }},
		{"bet above balance", func(r *poker.RoundResult) { r.Bet = 5; r.Payout = 5; r.Balance = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := uint(100)
			if tt.name == "bet above balance" {
				start = 4
			}
			bc := NewBlockchain("session", start)
			r := valid
			tt.mutate(&r)
			assert.Error(t, bc.Append(r))
			assert.Equal(t, 1, bc.Len())
		})
	}

	bc := NewBlockchain("session", 100)
	require.NoError(t, bc.Append(valid))
	assert.Equal(t, 2, bc.Len())
}

// TestAppendWithExtraMetadata verifies that extra metadata is stored in the block and
// covered by its hash.
func TestAppendWithExtraMetadata(t *testing.T) {
	bc, _ := playRounds(t, 100, 0)
	m := poker.NewMachine(
		stackedDeck(t, "2h 5d 9c Js Kh", "3d 7d 8c 4s 6c"),
		poker.WithRoundCompleteHandler(func(r poker.RoundResult) {
			require.NoError(t, bc.Append(r, map[string]string{"strategy": "hold-winners"}))
		}),
	)
	m.PrimaryAction()
	m.PrimaryAction()

	latest, err := bc.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, "hold-winners", latest.Metadata.Extra["strategy"])

	bc.blocks[1].Metadata.Extra["strategy"] = "other"
	assert.Error(t, bc.Verify())
}

// TestVerifyDetectsTampering verifies that any modification of a recorded round breaks the
// chain.
func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(bc *Blockchain)
	}{
		{"payout", func(bc *Blockchain) { bc.blocks[2].Round.Payout += 800 }},
		{"balance", func(bc *Blockchain) { bc.blocks[3].Round.Balance = 1000 }},
		{"category", func(bc *Blockchain) { bc.blocks[1].Round.Evaluation.Category = poker.RoyalFlush }},
		{"genesis balance", func(bc *Blockchain) { bc.blocks[0].Round.Balance = 10000 }},
		{"prev hash", func(bc *Blockchain) { bc.blocks[2].PrevHash = bc.blocks[0].Hash }},
		{"index", func(bc *Blockchain) { bc.blocks[4].Index = 7 }},
		{"rehashed payout", func(bc *Blockchain) {
			b := &bc.blocks[5]
			b.Round.Payout += 1
			b.Round.Balance += 1
			b.Hash = calculateHash(*b)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc, _ := playRounds(t, 100, 5, poker.WithSeed([]byte("tamper")))
			require.NoError(t, bc.Verify())
			tt.tamper(bc)
			assert.Error(t, bc.Verify())
		})
	}
}

// TestGetByIndexOutOfRange verifies that out-of-range lookups return an error.
func TestGetByIndexOutOfRange(t *testing.T) {
	bc := NewBlockchain("session", 100)
	_, err := bc.GetByIndex(-1)
	assert.Error(t, err)
	_, err = bc.GetByIndex(1)
	assert.Error(t, err)
}

// TestEmptyChain verifies the zero Blockchain reports ErrEmpty.
func TestEmptyChain(t *testing.T) {
	var bc Blockchain
	_, err := bc.GetLatest()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, bc.Verify(), ErrEmpty)
	assert.ErrorIs(t, bc.Append(poker.RoundResult{}), ErrEmpty)
	assert.Empty(t, bc.Rounds())
}

// TestConcurrentReads verifies readers can walk the chain while rounds are appended.
func TestConcurrentReads(t *testing.T) {
	bc := NewBlockchain("session", 1000)
	m := poker.NewMachine(
		poker.WithBalance(1000),
		poker.WithRoundCompleteHandler(func(r poker.RoundResult) {
			if err := bc.Append(r); err != nil {
				t.Error(err)
			}
		}),
	)

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				_ = bc.Summary()
				_ = bc.Verify()
			}
		}
	}()

	for i := 0; i < 50 && m.CanDeal(); i++ {
		m.PrimaryAction()
		m.PrimaryAction()
	}
	close(done)
	wg.Wait()

	assert.NoError(t, bc.Verify())
}
