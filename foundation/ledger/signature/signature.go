// Package signature provides helper functions for handling the ledger
// hashing and signature needs.
package signature

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// ZeroHash represents a hash code of zeros. It is the parent hash of the
// genesis block and the transaction root of an empty block.
const ZeroHash string = "0000000000000000000000000000000000000000000000000000000000000000"

// =============================================================================

// Hash returns the lowercase hex encoded sha256 digest over the specified
// segments in order.
func Hash(segments ...[]byte) string {
	h := sha256.New()
	for _, segment := range segments {
		h.Write(segment)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Uint64Bytes encodes the value as 8 little endian bytes for hashing.
func Uint64Bytes(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

// Uint32Bytes encodes the value as 4 little endian bytes for hashing.
func Uint32Bytes(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// =============================================================================

// Verify checks the hex encoded ed25519 signature against the message using
// the hex encoded public key. A signature or key of the wrong byte length, or
// one that fails the cryptographic check, yields false. Only malformed hex
// surfaces as an error.
func Verify(message string, publicKey string, sig string) (bool, error) {
	pub, err := hex.DecodeString(publicKey)
	if err != nil {
		return false, fmt.Errorf("decoding public key: %w", err)
	}

	sigBytes, err := hex.DecodeString(sig)
	if err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	if len(pub) != ed25519.PublicKeySize {
		return false, nil
	}

	if len(sigBytes) != ed25519.SignatureSize {
		return false, nil
	}

	return ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sigBytes), nil
}
