package keystore_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledgermint/ledgermint/foundation/keystore"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_SaveLoad(t *testing.T) {
	t.Log("Given the need to save and load private keys.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen saving a key and loading it back.", testID)
		{
			_, privateKey, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to generate a key: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to generate a key.", success, testID)

			fileName := filepath.Join(t.TempDir(), "kennedy.key")

			if err := keystore.Save(fileName, privateKey); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to save the key: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to save the key.", success, testID)

			loaded, err := keystore.Load(fileName)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to load the key: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to load the key.", success, testID)

			if !bytes.Equal(loaded, privateKey) {
				t.Fatalf("\t%s\tTest %d:\tShould get back the same private key.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould get back the same private key.", success, testID)

			msg := []byte("the quick brown fox")
			sig := ed25519.Sign(loaded, msg)
			if !ed25519.Verify(privateKey.Public().(ed25519.PublicKey), msg, sig) {
				t.Fatalf("\t%s\tTest %d:\tShould produce signatures the original key verifies.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould produce signatures the original key verifies.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen loading a corrupted key file.", testID)
		{
			fileName := filepath.Join(t.TempDir(), "broken.key")

			if err := os.WriteFile(fileName, []byte("not-hex"), 0600); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
			}

			if _, err := keystore.Load(fileName); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould not be able to load a non hex key file.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not be able to load a non hex key file.", success, testID)

			if err := os.WriteFile(fileName, []byte("abcd"), 0600); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
			}

			if _, err := keystore.Load(fileName); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould not be able to load a short seed.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not be able to load a short seed.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen loading a missing key file.", testID)
		{
			if _, err := keystore.Load(filepath.Join(t.TempDir(), "missing.key")); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould not be able to load a missing key file.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not be able to load a missing key file.", success, testID)
		}
	}
}

func Test_KeyStore(t *testing.T) {
	t.Log("Given the need to look up account names by public key.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen loading a folder of key files.", testID)
		{
			root := t.TempDir()

			names := []string{"kennedy", "pavel"}
			keys := make(map[string]string)

			for _, name := range names {
				publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to generate a key: %v", failed, testID, err)
				}

				if err := keystore.Save(filepath.Join(root, name+".key"), privateKey); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to save the key: %v", failed, testID, err)
				}

				keys[name] = hex.EncodeToString(publicKey)
			}

			// A file without the key extension must be ignored.
			if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignore me"), 0644); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
			}

			ks, err := keystore.New(root)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the keystore: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to construct the keystore.", success, testID)

			for name, publicKey := range keys {
				if got := ks.Lookup(publicKey); got != name {
					t.Fatalf("\t%s\tTest %d:\tShould look up %q, got %q.", failed, testID, name, got)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould look up every account by public key.", success, testID)

			if got := ks.Lookup("deadbeef"); got != "deadbeef" {
				t.Fatalf("\t%s\tTest %d:\tShould return the public key for unknown accounts, got %q.", failed, testID, got)
			}
			t.Logf("\t%s\tTest %d:\tShould return the public key for unknown accounts.", success, testID)

			cpy := ks.Copy()
			if len(cpy) != len(names) {
				t.Fatalf("\t%s\tTest %d:\tShould copy %d accounts, got %d.", failed, testID, len(names), len(cpy))
			}
			t.Logf("\t%s\tTest %d:\tShould copy every account.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen the folder doesn't exist yet.", testID)
		{
			root := filepath.Join(t.TempDir(), "accounts")

			ks, err := keystore.New(root)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the keystore: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to construct the keystore.", success, testID)

			if len(ks.Copy()) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould start with no accounts.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould start with no accounts.", success, testID)

			if _, err := os.Stat(root); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould create the folder: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould create the folder.", success, testID)
		}
	}
}
