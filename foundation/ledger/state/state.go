// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"context"
	"sync"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"github.com/ledgermint/ledgermint/foundation/ledger/database/transroot"
	"github.com/ledgermint/ledgermint/foundation/ledger/mempool"
	"github.com/ledgermint/ledgermint/foundation/ledger/signature"
)

// EventHandler defines a function that is called when events occur in the
// processing of the ledger.
type EventHandler func(v string, args ...any)

// DisplayFunc defines a function the ledger may call with a fully rendered
// block report. It is a fire and forget side channel: a failure is logged
// through the event handler and never affects chain or pool state.
type DisplayFunc func(artifact string, report string) error

// Config represents the configuration required to start the ledger.
type Config struct {
	Difficulty        uint32
	TransRootStrategy string
	EvHandler         EventHandler
	Display           DisplayFunc
}

// State manages the ledger: the append-only chain of blocks and the pool of
// pending transactions. The chain only grows, never shrinks or reorganizes.
type State struct {
	difficulty uint32
	rootFn     database.TransRootFunc
	evHandler  EventHandler
	display    DisplayFunc

	mu      sync.Mutex
	chain   []database.Block
	mempool *mempool.Mempool
}

// New constructs the ledger and mines the genesis block synchronously before
// returning. Construction blocks for as long as the genesis search takes at
// the configured difficulty.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	strategy := cfg.TransRootStrategy
	if strategy == "" {
		strategy = transroot.StrategyPlaceholder
	}

	rootFn, err := transroot.Retrieve(strategy)
	if err != nil {
		return nil, err
	}

	s := State{
		difficulty: cfg.Difficulty,
		rootFn:     rootFn,
		evHandler:  ev,
		display:    cfg.Display,
		mempool:    mempool.New(),
	}

	// The genesis block uses the zero parent hash and carries no
	// transactions. It is mined like any other block so the whole chain
	// satisfies the difficulty target.
	genesis, err := database.NewBlock(0, signature.ZeroHash, nil, cfg.Difficulty, rootFn)
	if err != nil {
		return nil, err
	}

	if _, err := genesis.PerformPOW(context.Background(), ev); err != nil {
		return nil, err
	}

	s.chain = append(s.chain, genesis)

	return &s, nil
}

// SubmitTransaction appends the transaction to the pending pool. There are
// no side effects beyond that and no duplicate or replay checking.
func (s *State) SubmitTransaction(tx database.Tx) {
	s.evHandler("state: SubmitTransaction: tx[%s]", tx)

	s.mempool.Add(tx)
}

// LatestBlock returns the last block appended to the chain.
func (s *State) LatestBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chain[len(s.chain)-1]
}

// ChainLength returns the number of blocks in the chain.
func (s *State) ChainLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.chain)
}

// PendingCount returns the number of transactions in the pending pool.
func (s *State) PendingCount() int {
	return s.mempool.Count()
}

// Difficulty returns the difficulty applied to every block in this ledger.
func (s *State) Difficulty() uint32 {
	return s.difficulty
}
