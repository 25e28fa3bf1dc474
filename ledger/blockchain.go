package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/video-poker/domain/poker"
)

// ErrEmpty is returned when a chain has no blocks, which only happens to a
// zero Blockchain that was not built with NewBlockchain.
var ErrEmpty = errors.New("blockchain is empty")

type Blockchain struct {
	mu        sync.RWMutex
	sessionID string
	blocks    []Block
}

// NewBlockchain creates a chain whose genesis block records the starting
// balance of the session. The genesis block has index 0, previous hash "0"
// and no bet.
func NewBlockchain(sessionID string, startingBalance uint) *Blockchain {
	bc := &Blockchain{
		sessionID: sessionID,
		blocks:    make([]Block, 0),
	}

	// Crea genesis block
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Round:     poker.RoundResult{RoundID: "genesis", Balance: startingBalance},
		Metadata:  Metadata{SessionID: sessionID},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append records a resolved round. The block is rejected if the round's
// accounting does not follow from the balance of the previous block. The
// extra parameter can optionally carry additional metadata.
func (bc *Blockchain) Append(round poker.RoundResult, extra ...map[string]string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(bc.blocks) == 0 {
		return ErrEmpty
	}

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Round:     round,
		Metadata: Metadata{
			SessionID: bc.sessionID,
			Extra:     extraMsg,
		},
	}

	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)

	return nil
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmpty
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a copy of the block at index. Returns an error if
// the index is out of range.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range [0, %d)", index, len(bc.blocks))
	}

	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Rounds returns the recorded rounds, oldest first, without the genesis block.
func (bc *Blockchain) Rounds() []poker.RoundResult {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	rounds := make([]poker.RoundResult, 0, len(bc.blocks))
	for _, b := range bc.blocks[min(1, len(bc.blocks)):] {
		rounds = append(rounds, b.Round)
	}
	return rounds
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, previous hash linkage
// and balance accounting.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return ErrEmpty
	}

	// Verifica genesis
	genesis := bc.blocks[0]
	if genesis.PrevHash != "0" || genesis.Index != 0 {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis hash")
	}

	// Verifica ogni blocco
	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		if err := validateBlock(current, previous); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage, current hash validity and that the payout and
// balance follow from the bet and the previous balance.
func validateBlock(current, previous Block) error {
	// Verifica indice
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	// Verifica prev hash
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	// Verifica hash corrente
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	round := current.Round
	if round.Bet < poker.MinBet || round.Bet > poker.MaxBet {
		return fmt.Errorf("bet %d outside [%d, %d]", round.Bet, poker.MinBet, poker.MaxBet)
	}
	if round.Bet > previous.Round.Balance {
		return fmt.Errorf("bet %d exceeds balance %d", round.Bet, previous.Round.Balance)
	}
	if want := poker.Payout(round.Evaluation.Category, round.Bet); round.Payout != want {
		return fmt.Errorf("payout for %s at bet %d: expected %d, got %d", round.Evaluation.Category, round.Bet, want, round.Payout)
	}
	if want := previous.Round.Balance - round.Bet + round.Payout; round.Balance != want {
		return fmt.Errorf("invalid balance: expected %d, got %d", want, round.Balance)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index, timestamp,
// previous hash, round and metadata. The extra metadata is JSON marshaled before hashing.
func calculateHash(block Block) string {
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	// Concatena tutti i dati
	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		roundDigest(block.Round),
		block.Metadata.SessionID,
		string(extraBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// roundDigest is a canonical text form of r. Card codes are used instead of
// JSON because the genesis round has no cards.
func roundDigest(r poker.RoundResult) string {
	return fmt.Sprintf("%s|%d|%s|%v|%s|%s|%v|%d|%d",
		r.RoundID,
		r.Bet,
		r.Dealt.Code(),
		r.Held,
		r.Final.Code(),
		r.Evaluation.Category,
		r.Evaluation.WinningIndices,
		r.Payout,
		r.Balance,
	)
}
