package testutil

import (
	"crypto/rand"

	"github.com/kruug/gridaes/cipher"
)

// FixedRoundKey is the round key the reference block vectors were computed
// against.
var FixedRoundKey = cipher.RoundKey{0, 2, 4, 8, 12, 1, 3, 5, 7, 9, 11, 13, 15, 2, 3, 4}

// FixedSchedule returns a full-length schedule repeating FixedRoundKey.
// Encrypting block {0..15} with it yields the reference ciphertext vector.
func FixedSchedule() cipher.KeySchedule {
	keys := make(cipher.KeySchedule, cipher.Rounds+1)
	for i := range keys {
		keys[i] = FixedRoundKey
	}
	return keys
}

// TestKey returns a fixed, arbitrary 16-byte master key.
func TestKey() cipher.Key {
	return cipher.Key{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
}

// TestSchedule returns the expansion of TestKey.
func TestSchedule() cipher.KeySchedule {
	return cipher.ExpandKey(TestKey())
}

// RandomBytes returns n cryptographically random bytes. It panics on
// failure; tests have no sensible recovery path.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}
