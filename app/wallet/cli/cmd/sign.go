package cmd

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ledgermint/ledgermint/foundation/keystore"
	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"github.com/spf13/cobra"
)

var (
	recipient string
	amount    uint64
	nonce     uint64
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a transaction for submission to the ledger",
	Run:   signRun,
}

func init() {
	signCmd.Flags().StringVarP(&recipient, "to", "t", "", "Recipient address.")
	signCmd.Flags().Uint64VarP(&amount, "amount", "m", 0, "Amount in smallest units.")
	signCmd.Flags().Uint64VarP(&nonce, "nonce", "n", 0, "Account nonce.")
	rootCmd.AddCommand(signCmd)
}

func signRun(cmd *cobra.Command, args []string) {
	privateKey, err := keystore.Load(getPrivateKeyPath())
	if err != nil {
		log.Fatal(err)
	}

	sender := hex.EncodeToString(privateKey.Public().(ed25519.PublicKey))

	// The timestamp is part of the signed message, so it is fixed here and
	// carried on the transaction the ledger receives.
	timeStamp := time.Now().UTC()

	message := database.SigningMessage(sender, recipient, amount, database.TxFee, nonce, timeStamp)
	sig := ed25519.Sign(privateKey, []byte(message))

	tx := database.Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Fee:       database.TxFee,
		Nonce:     nonce,
		TimeStamp: timeStamp,
		Signature: hex.EncodeToString(sig),
	}
	tx.ID = tx.Hash()

	doc, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(doc))
}
