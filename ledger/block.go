package ledger

import "github.com/luca-patrignani/video-poker/domain/poker"

// Block rappresenta un round risolto nella catena
type Block struct {
	Index     int               `json:"index"`
	Timestamp int64             `json:"timestamp"`
	PrevHash  string            `json:"prev_hash"`
	Hash      string            `json:"hash"`
	Round     poker.RoundResult `json:"round"`
	Metadata  Metadata          `json:"metadata"`
}

type Metadata struct {
	SessionID string            `json:"session_id"`
	Extra     map[string]string `json:"extra,omitempty"`
}
