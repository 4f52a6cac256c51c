// Package transroot provides the different transaction root strategies a
// block can commit to.
package transroot

import (
	"encoding/hex"
	"fmt"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"github.com/ledgermint/ledgermint/foundation/ledger/merkle"
	"github.com/ledgermint/ledgermint/foundation/ledger/signature"
)

// List of different transaction root strategies.
const (
	StrategyPlaceholder = "placeholder"
	StrategyTree        = "tree"
)

// Map of different transaction root strategies with functions.
var strategies = map[string]database.TransRootFunc{
	StrategyPlaceholder: placeholderRoot,
	StrategyTree:        treeRoot,
}

// Retrieve returns the specified transaction root strategy function.
func Retrieve(strategy string) (database.TransRootFunc, error) {
	fn, exists := strategies[strategy]
	if !exists {
		return nil, fmt.Errorf("strategy %q does not exist", strategy)
	}
	return fn, nil
}

// =============================================================================

// placeholderRoot computes a single hash over the concatenation of each
// transaction's id in list order. This commits to the existence and order of
// the set as a whole but provides no per-transaction inclusion proof. An
// empty set yields the all-zero sentinel, which is a syntactic marker and
// not an actual hash output.
func placeholderRoot(txs []database.Tx) (string, error) {
	if len(txs) == 0 {
		return signature.ZeroHash, nil
	}

	segments := make([][]byte, len(txs))
	for i, tx := range txs {
		segments[i] = []byte(tx.ID)
	}

	return signature.Hash(segments...), nil
}

// treeRoot computes a real pairwise merkle tree over the transactions,
// supporting per-transaction inclusion proofs via the Proof function. An
// empty set yields the same all-zero sentinel the placeholder strategy uses.
func treeRoot(txs []database.Tx) (string, error) {
	if len(txs) == 0 {
		return signature.ZeroHash, nil
	}

	tree, err := merkle.NewTree(toLeafs(txs))
	if err != nil {
		return "", err
	}

	return tree.RootHex(), nil
}

// =============================================================================

// leaf adapts a transaction to the merkle Hashable interface.
type leaf database.Tx

// Hash returns the transaction's content hash as raw bytes.
func (l leaf) Hash() ([]byte, error) {
	return hex.DecodeString(database.Tx(l).Hash())
}

// Equals tests for equality of two transactions by content hash.
func (l leaf) Equals(other leaf) bool {
	return database.Tx(l).Hash() == database.Tx(other).Hash()
}

// toLeafs converts the transactions for use in the merkle tree.
func toLeafs(txs []database.Tx) []leaf {
	leafs := make([]leaf, len(txs))
	for i, tx := range txs {
		leafs[i] = leaf(tx)
	}
	return leafs
}

// =============================================================================

// Proof returns the inclusion proof for the specified transaction under the
// tree strategy. The proof hashes and their concatenation order reproduce
// the block's transaction root when processed in sequence.
func Proof(txs []database.Tx, tx database.Tx) ([][]byte, []int64, error) {
	tree, err := merkle.NewTree(toLeafs(txs))
	if err != nil {
		return nil, nil, err
	}

	return tree.Proof(leaf(tx))
}
