// Package ledger implements an append-only history of the rounds played in a
// video poker session.
//
// # Core Components
//
// Blockchain: An append-only log of resolved rounds with hash chaining for
// tamper detection.
//
// Block: A single round result with its cryptographic link to the previous
// block. The genesis block carries the starting balance.
//
// Stats: Session totals computed from the chain.
//
// # Security Properties
//
// Every block hashes the round it records together with the hash of its
// predecessor, and Append refuses a round whose accounting does not follow
// from the previous balance. Any later modification breaks the chain and is
// reported by Verify.
//
// # Usage
//
// Create a blockchain with the session's starting balance and append every
// poker.RoundResult from the machine's round-complete handler. The history
// lives in memory for the lifetime of the process.
package ledger
