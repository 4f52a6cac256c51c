package database

import (
	"fmt"
	"time"

	"github.com/ledgermint/ledgermint/foundation/ledger/signature"
)

// TxFee is the fixed fee every transaction carries. Fees are not negotiable
// per transaction.
const TxFee uint64 = 1_000_000

// Tx is the transactional information between two parties. Once constructed
// a transaction is never mutated.
type Tx struct {
	ID        string    `json:"id" validate:"required,len=64,hexadecimal"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Amount    uint64    `json:"amount"`
	Fee       uint64    `json:"fee"`
	Nonce     uint64    `json:"nonce"`
	TimeStamp time.Time `json:"timestamp" validate:"required"`
	Signature string    `json:"signature"`
}

// NewTx constructs a new transaction stamped with the current time. The
// signature is produced by an external signer and only ever verified here.
// No validation is performed on any field value.
func NewTx(sender string, recipient string, amount uint64, nonce uint64, sig string) Tx {
	tx := Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Fee:       TxFee,
		Nonce:     nonce,
		TimeStamp: time.Now().UTC(),
		Signature: sig,
	}

	tx.ID = tx.Hash()

	return tx
}

// Hash returns the content hash over the six non-identity fields. The ID and
// the signature are excluded from their own hash input.
func (tx Tx) Hash() string {
	return signature.Hash(
		[]byte(tx.Sender),
		[]byte(tx.Recipient),
		signature.Uint64Bytes(tx.Amount),
		signature.Uint64Bytes(tx.Fee),
		signature.Uint64Bytes(tx.Nonce),
		[]byte(tx.TimeStamp.Format(time.RFC3339Nano)),
	)
}

// VerifySignature checks the transaction's signature against the canonical
// signing message using the hex encoded ed25519 public key. A wrong length
// or cryptographically invalid signature yields false, not an error.
func (tx Tx) VerifySignature(publicKey string) (bool, error) {
	return signature.Verify(tx.SigningMessage(), publicKey, tx.Signature)
}

// SigningMessage returns the canonical message an external signer signs for
// this transaction's field values.
func (tx Tx) SigningMessage() string {
	return SigningMessage(tx.Sender, tx.Recipient, tx.Amount, tx.Fee, tx.Nonce, tx.TimeStamp)
}

// SigningMessage builds the canonical signing message for the specified
// transaction field values. Wallets use this to sign before the transaction
// exists; the ledger uses it to verify afterwards.
func SigningMessage(sender string, recipient string, amount uint64, fee uint64, nonce uint64, timeStamp time.Time) string {
	return fmt.Sprintf("%s%s%d%d%d%s", sender, recipient, amount, fee, nonce, timeStamp.Format(time.RFC3339Nano))
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%d", tx.Sender, tx.Nonce)
}
