package state

import (
	"context"
	"errors"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
)

// ErrNoTransactions is returned when a block is requested to be created
// and there are no transactions in the pending pool.
var ErrNoTransactions = errors.New("no transactions in mempool")

// MineNextBlock builds the next block from the entire pending pool, performs
// the proof of work, appends the sealed block to the chain and clears the
// pool. The append and the pool truncation are one atomic transition from
// the caller's perspective. The returned block's Hash is the sealed digest.
func (s *State) MineNextBlock(ctx context.Context) (database.Block, error) {
	s.evHandler("state: MineNextBlock: MINING: check mempool count")

	if s.mempool.Count() == 0 {
		return database.Block{}, ErrNoTransactions
	}

	txs := s.mempool.Copy()
	latestBlock := s.LatestBlock()

	block, err := database.NewBlock(latestBlock.Header.Height+1, latestBlock.Hash(), txs, s.difficulty, s.rootFn)
	if err != nil {
		return database.Block{}, err
	}

	s.evHandler("state: MineNextBlock: MINING: perform POW")

	if _, err := block.PerformPOW(ctx, s.evHandler); err != nil {
		return database.Block{}, err
	}

	s.evHandler("state: MineNextBlock: MINING: update local state")

	s.mu.Lock()
	{
		s.chain = append(s.chain, block)
		s.mempool.Truncate()
	}
	s.mu.Unlock()

	return block, nil
}
