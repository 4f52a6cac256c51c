package cmd

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/ledgermint/ledgermint/foundation/keystore"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the public key for the account",
	Run:   addressRun,
}

func init() {
	rootCmd.AddCommand(addressCmd)
}

func addressRun(cmd *cobra.Command, args []string) {
	privateKey, err := keystore.Load(getPrivateKeyPath())
	if err != nil {
		log.Fatal(err)
	}

	publicKey := privateKey.Public().(ed25519.PublicKey)
	fmt.Println(hex.EncodeToString(publicKey))
}
