package cmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/ledgermint/ledgermint/foundation/keystore"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key pair",
	Run:   generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) {

	// Name the key with a fresh id when the caller didn't pick one.
	if !rootCmd.PersistentFlags().Changed("account") {
		accountName = uuid.NewString()
	}

	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatal(err)
	}

	path := getPrivateKeyPath()
	if err := keystore.Save(path, privateKey); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("New key saved: %s\n", path)
}
