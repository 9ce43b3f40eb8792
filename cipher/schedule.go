package cipher

import (
	"errors"
	"fmt"
)

// KeySize is the only supported key length in bytes (128-bit keys).
const KeySize = 16

// Rounds is the number of derivation steps the schedule expansion runs,
// yielding Rounds+1 round keys.
const Rounds = 10

// ErrKeySize reports key material that is not exactly KeySize bytes.
var ErrKeySize = errors.New("cipher: key must be exactly 16 bytes")

// rcon holds the round constants XORed into the first byte of each derived
// word, one per derivation step.
var rcon = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Key is 16 bytes of master key material.
type Key [KeySize]byte

// NewKey creates a Key from a byte slice. The input must be exactly
// KeySize bytes; it is copied, never aliased.
func NewKey(data []byte) (Key, error) {
	var k Key
	if len(data) != KeySize {
		return k, fmt.Errorf("%w, got %d", ErrKeySize, len(data))
	}
	copy(k[:], data)
	return k, nil
}

// RoundKey is a 16-byte per-round key, produced only by ExpandKey.
type RoundKey [BlockSize]byte

// KeySchedule is the ordered sequence of round keys consumed by the block
// cipher. ExpandKey always produces exactly Rounds+1 entries.
type KeySchedule []RoundKey

// ExpandKey derives the full key schedule from a master key. The first
// round key is the key itself; each of the 10 derivation steps builds the
// next round key from the previous one. The expansion is deterministic.
func ExpandKey(key Key) KeySchedule {
	keys := make(KeySchedule, 0, Rounds+1)
	keys = append(keys, RoundKey(key))
	prev := RoundKey(key)
	for i := 0; i < Rounds; i++ {
		prev = nextRoundKey(prev, i)
		keys = append(keys, prev)
	}
	return keys
}

// nextRoundKey derives one round key from its predecessor: the last word is
// rotated, substituted through the forward S-box and mixed with the round
// constant, then each word of the new key is the XOR of the previous word
// and the matching word of the old key.
func nextRoundKey(prev RoundKey, iteration int) RoundKey {
	var word [4]byte
	word[0] = prev[13]
	word[1] = prev[14]
	word[2] = prev[15]
	word[3] = prev[12]
	for i := range word {
		word[i] = sbox[word[i]]
	}
	word[0] ^= rcon[iteration]

	var next RoundKey
	for i := 0; i < 4; i++ {
		next[i] = word[i] ^ prev[i]
	}
	for i := 4; i < BlockSize; i++ {
		next[i] = next[i-4] ^ prev[i]
	}
	return next
}
