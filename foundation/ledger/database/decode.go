package database

import (
	"encoding/json"
	"fmt"

	"github.com/ledgermint/ledgermint/foundation/validate"
)

// DecodeTx parses the serialized representation of a transaction. Malformed
// or incomplete input fails the parse with a descriptive error and no
// partial value is ever returned.
func DecodeTx(data []byte) (Tx, error) {
	var tx Tx
	if err := json.Unmarshal(data, &tx); err != nil {
		return Tx{}, fmt.Errorf("unable to decode transaction: %w", err)
	}

	if err := validate.Check(tx); err != nil {
		return Tx{}, fmt.Errorf("invalid transaction: %w", err)
	}

	return tx, nil
}

// DecodeBlock parses the serialized representation of a block. Malformed or
// incomplete input fails the parse with a descriptive error and no partial
// value is ever returned.
func DecodeBlock(data []byte) (Block, error) {
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return Block{}, fmt.Errorf("unable to decode block: %w", err)
	}

	if err := validate.Check(b.Header); err != nil {
		return Block{}, fmt.Errorf("invalid block header: %w", err)
	}

	for i, tx := range b.Transactions {
		if err := validate.Check(tx); err != nil {
			return Block{}, fmt.Errorf("invalid transaction[%d]: %w", i, err)
		}
	}

	return b, nil
}
