package codec_test

import (
	"bytes"
	"testing"

	"github.com/kruug/gridaes/cipher"
	"github.com/kruug/gridaes/codec"
)

func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	f.Add([]byte{0}, make([]byte, cipher.KeySize))
	f.Add([]byte("hello world"), bytes.Repeat([]byte{0x13}, cipher.KeySize))
	f.Add(bytes.Repeat([]byte{0xAB}, 48), []byte("0123456789abcdef"))

	f.Fuzz(func(t *testing.T, plaintext, keyBytes []byte) {
		if len(plaintext) == 0 || len(keyBytes) != cipher.KeySize {
			t.Skip()
		}
		key, err := cipher.NewKey(keyBytes)
		if err != nil {
			t.Fatalf("NewKey: %v", err)
		}
		keys := cipher.ExpandKey(key)

		encoded, err := codec.Encode(codec.NewPlainMessage(plaintext), keys)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}

		// Invariant 1: output is block-aligned and strictly longer than
		// the input (padding adds at least 17 bytes).
		if len(encoded)%cipher.BlockSize != 0 {
			t.Errorf("encoded length %d not block aligned", len(encoded))
		}
		if len(encoded) < len(plaintext)+17 {
			t.Errorf("encoded length %d too short for input %d", len(encoded), len(plaintext))
		}

		// Invariant 2: decode recovers the plaintext exactly. The padding
		// sentinel always differs from the final plaintext byte, so the
		// run-length strip removes exactly the padding.
		decoded, err := codec.Decode(encoded, keys)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(plaintext, decoded.Bytes()) {
			t.Errorf("round trip failed: got %x, want %x", decoded.Bytes(), plaintext)
		}

		// Invariant 3: encoding is deterministic.
		again, err := codec.Encode(codec.NewPlainMessage(plaintext), keys)
		if err != nil {
			t.Fatalf("Encode (repeat): %v", err)
		}
		if !bytes.Equal(encoded.Bytes(), again.Bytes()) {
			t.Errorf("determinism failed")
		}
	})
}
