// Package database handles the data model for the ledger: transactions,
// block headers, and the proof of work sealing that binds them into blocks.
package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ledgermint/ledgermint/foundation/ledger/signature"
)

// TransRootFunc defines a function that computes the aggregate transaction
// root committed to by a block's header.
type TransRootFunc func(txs []Tx) (string, error)

// =============================================================================

// BlockHeader represents common information required for each block.
type BlockHeader struct {
	Height     uint64    `json:"height"`
	ParentHash string    `json:"parent_hash" validate:"required,len=64,hexadecimal"`
	TransRoot  string    `json:"merkle_root" validate:"required,len=64,hexadecimal"`
	TimeStamp  time.Time `json:"timestamp" validate:"required"`
	Difficulty uint32    `json:"difficulty"`
	Nonce      uint64    `json:"nonce"`
}

// Hash returns the unique hash for the block header.
func (bh BlockHeader) Hash() string {
	return signature.Hash(
		signature.Uint64Bytes(bh.Height),
		[]byte(bh.ParentHash),
		[]byte(bh.TransRoot),
		[]byte(bh.TimeStamp.Format(time.RFC3339Nano)),
		signature.Uint32Bytes(bh.Difficulty),
		signature.Uint64Bytes(bh.Nonce),
	)
}

// MeetsTarget reports whether the header's hash carries at least the
// difficulty number of leading hex zero characters. Difficulty 0 is
// satisfied by any header.
func (bh BlockHeader) MeetsTarget() bool {
	return isHashSolved(bh.Difficulty, bh.Hash())
}

// =============================================================================

// Block represents a group of transactions sealed together under a proof of
// work header. The transaction order is the insertion order and is never
// changed after construction.
type Block struct {
	Header           BlockHeader `json:"header"`
	TransactionCount uint32      `json:"transaction_count"`
	Transactions     []Tx        `json:"transactions"`
}

// NewBlock constructs an unsealed block for the specified height with the
// transaction root computed by the configured strategy, a zero nonce, and
// the current time.
func NewBlock(height uint64, parentHash string, txs []Tx, difficulty uint32, rootFn TransRootFunc) (Block, error) {
	transRoot, err := rootFn(txs)
	if err != nil {
		return Block{}, fmt.Errorf("computing transaction root: %w", err)
	}

	nb := Block{
		Header: BlockHeader{
			Height:     height,
			ParentHash: parentHash,
			TransRoot:  transRoot,
			TimeStamp:  time.Now().UTC(),
			Difficulty: difficulty,
			Nonce:      0,
		},
		TransactionCount: uint32(len(txs)),
		Transactions:     txs,
	}

	return nb, nil
}

// Hash returns the block's externally visible identity, the hash of its
// header.
func (b Block) Hash() string {
	return b.Header.Hash()
}

// PerformPOW does the work of mining to find a nonce that seals the block.
// Pointer semantics are being used since a nonce is being discovered. The
// search runs until the difficulty target is met or the context expires, so
// a deadline or cancellation on the context bounds an otherwise unbounded
// search. The sealed hash is returned.
func (b *Block) PerformPOW(ctx context.Context, ev func(v string, args ...any)) (string, error) {
	ev("database: PerformPOW: MINING: started: block[%d]", b.Header.Height)
	defer ev("database: PerformPOW: MINING: completed: block[%d]", b.Header.Height)

	var attempts uint64
	for {
		attempts++
		if attempts%100_000 == 0 {
			ev("database: PerformPOW: MINING: attempts[%d]: nonce[%d]", attempts, b.Header.Nonce)
		}

		if ctx.Err() != nil {
			ev("database: PerformPOW: MINING: CANCELLED")
			return "", ctx.Err()
		}

		if b.Header.MeetsTarget() {
			hash := b.Hash()
			ev("database: PerformPOW: MINING: SOLVED: hash[%s]: nonce[%d]", hash, b.Header.Nonce)
			return hash, nil
		}

		// The nonce space is exhausted. Refresh the timestamp to restart
		// the search in a new space rather than deadlock.
		if b.Header.Nonce == math.MaxUint64 {
			ev("database: PerformPOW: MINING: nonce space exhausted: restarting search")
			b.Header.TimeStamp = time.Now().UTC()
			b.Header.Nonce = 0
			continue
		}

		b.Header.Nonce++
	}
}

// ValidateBlock checks the block can follow the specified previous block in
// the chain. The checks are structural only: parent linkage and difficulty.
// Transaction roots and signatures are not re-examined.
func (b Block) ValidateBlock(previousBlock Block, ev func(v string, args ...any)) error {
	ev("database: ValidateBlock: blk[%d]: check: parent hash matches previous block", b.Header.Height)

	if b.Header.ParentHash != previousBlock.Hash() {
		return fmt.Errorf("parent hash doesn't match previous block, got %s, exp %s", b.Header.ParentHash, previousBlock.Hash())
	}

	ev("database: ValidateBlock: blk[%d]: check: block hash has been solved", b.Header.Height)

	if !b.Header.MeetsTarget() {
		return fmt.Errorf("block hash %s doesn't satisfy difficulty %d", b.Hash(), b.Header.Difficulty)
	}

	return nil
}

// isHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of leading 0's.
func isHashSolved(difficulty uint32, hash string) bool {
	const match = "0000000000000000000000000000000000000000000000000000000000000000"

	if len(hash) != 64 || int(difficulty) > len(hash) {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
