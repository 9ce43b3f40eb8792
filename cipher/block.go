package cipher

import (
	"errors"
	"fmt"
)

// BlockSize is the cipher block size in bytes.
const BlockSize = 16

var (
	// ErrBlockSize reports a block input that is not exactly BlockSize bytes.
	ErrBlockSize = errors.New("cipher: block must be exactly 16 bytes")

	// ErrShortSchedule reports a key schedule with fewer than two round keys.
	ErrShortSchedule = errors.New("cipher: key schedule needs at least 2 round keys")
)

// State is a 16-byte cipher state viewed as a 4x4 byte matrix in row-major
// order (byte index 4*row + col). The transform primitives in this package
// map State to State without mutating their input.
type State [BlockSize]byte

// PlainBlock is a single 16-byte block of plaintext. It can only be
// encrypted; there is no decrypt operation on a PlainBlock.
type PlainBlock [BlockSize]byte

// CipherBlock is a single 16-byte block of ciphertext. It can only be
// decrypted; there is no encrypt operation on a CipherBlock.
type CipherBlock [BlockSize]byte

// NewPlainBlock creates a PlainBlock from a byte slice. The input must be
// exactly BlockSize bytes; it is copied, never aliased.
func NewPlainBlock(data []byte) (PlainBlock, error) {
	var b PlainBlock
	if len(data) != BlockSize {
		return b, fmt.Errorf("%w, got %d", ErrBlockSize, len(data))
	}
	copy(b[:], data)
	return b, nil
}

// NewCipherBlock creates a CipherBlock from a byte slice. The input must be
// exactly BlockSize bytes; it is copied, never aliased.
func NewCipherBlock(data []byte) (CipherBlock, error) {
	var b CipherBlock
	if len(data) != BlockSize {
		return b, fmt.Errorf("%w, got %d", ErrBlockSize, len(data))
	}
	copy(b[:], data)
	return b, nil
}

// Bytes returns the block contents as a fresh byte slice.
func (b PlainBlock) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, b[:])
	return out
}

// Bytes returns the block contents as a fresh byte slice.
func (b CipherBlock) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, b[:])
	return out
}

// AddRoundKey XORs the round key into the state byte-wise. It is its own
// inverse.
func AddRoundKey(s State, key RoundKey) State {
	var out State
	for i := range s {
		out[i] = s[i] ^ key[i]
	}
	return out
}

// Encrypt runs the full cipher over the block: an initial round-key XOR,
// then one round per remaining schedule entry of Substitute, RotateRows,
// MixColumns and AddRoundKey.
//
// MixColumns runs on every round, including the last. The canonical
// Rijndael structure skips it on the final round; this cipher does not,
// and Decrypt mirrors that, so the two remain exact inverses.
func (b PlainBlock) Encrypt(keys KeySchedule) (CipherBlock, error) {
	if len(keys) < 2 {
		return CipherBlock{}, ErrShortSchedule
	}
	s := AddRoundKey(State(b), keys[0])
	for k := 1; k < len(keys); k++ {
		s = Substitute(s)
		s = RotateRows(s)
		s = MixColumns(s)
		s = AddRoundKey(s, keys[k])
	}
	return CipherBlock(s), nil
}

// Decrypt runs the exact algebraic inverse of Encrypt: the final round key
// is removed first, then each round is unwound walking the schedule in
// reverse with InverseMixColumns, InverseRotateRows, InverseSubstitute and
// AddRoundKey.
func (b CipherBlock) Decrypt(keys KeySchedule) (PlainBlock, error) {
	if len(keys) < 2 {
		return PlainBlock{}, ErrShortSchedule
	}
	s := AddRoundKey(State(b), keys[len(keys)-1])
	for k := len(keys) - 2; k >= 0; k-- {
		s = InverseMixColumns(s)
		s = InverseRotateRows(s)
		s = InverseSubstitute(s)
		s = AddRoundKey(s, keys[k])
	}
	return PlainBlock(s), nil
}
