// Package keystore reads a folder of ed25519 key files and creates a name
// lookup for the wallet accounts. The ledger core never touches private
// keys; this package serves the wallet and the node's startup report.
package keystore

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// keyExtension is the file extension for stored key files.
const keyExtension = ".key"

// KeyStore maintains a map of public keys to account names.
type KeyStore struct {
	accounts map[string]string
}

// New constructs a key store with the accounts found in the specified
// folder. The folder is created when it doesn't exist yet.
func New(root string) (*KeyStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating keystore folder: %w", err)
	}

	ks := KeyStore{
		accounts: make(map[string]string),
	}

	fn := func(fileName string, info fs.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walkdir failure: %w", err)
		}

		if path.Ext(fileName) != keyExtension {
			return nil
		}

		privateKey, err := Load(fileName)
		if err != nil {
			return err
		}

		publicKey := hex.EncodeToString(privateKey.Public().(ed25519.PublicKey))
		ks.accounts[publicKey] = strings.TrimSuffix(path.Base(fileName), keyExtension)

		return nil
	}

	if err := filepath.Walk(root, fn); err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return &ks, nil
}

// Lookup returns the name for the specified hex encoded public key.
func (ks *KeyStore) Lookup(publicKey string) string {
	name, exists := ks.accounts[publicKey]
	if !exists {
		return publicKey
	}
	return name
}

// Copy returns a copy of the map of public keys and account names.
func (ks *KeyStore) Copy() map[string]string {
	cpy := make(map[string]string, len(ks.accounts))
	for publicKey, name := range ks.accounts {
		cpy[publicKey] = name
	}
	return cpy
}

// =============================================================================

// Save writes the private key's seed to the specified file as hex.
func Save(fileName string, privateKey ed25519.PrivateKey) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return fmt.Errorf("creating keystore folder: %w", err)
	}

	seed := hex.EncodeToString(privateKey.Seed())

	if err := os.WriteFile(fileName, []byte(seed), 0600); err != nil {
		return fmt.Errorf("writing key file: %w", err)
	}

	return nil
}

// Load reads a hex encoded seed from the specified file and reconstructs
// the private key.
func Load(fileName string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	seed, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("decoding key file: %w", err)
	}

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("key file %s has wrong seed length %d", fileName, len(seed))
	}

	return ed25519.NewKeyFromSeed(seed), nil
}
