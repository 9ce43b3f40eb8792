package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kruug/gridaes/cipher"
	"github.com/kruug/gridaes/codec"
	"github.com/kruug/gridaes/testutil"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	keys := testutil.TestSchedule()

	for _, plaintext := range [][]byte{
		{0x42},
		[]byte("hello"),
		[]byte("exactly 16 bytes"),
		bytes.Repeat([]byte{0x00}, 33),
		bytes.Repeat([]byte{0xFF}, 64),
		testutil.RandomBytes(1000),
	} {
		encoded, err := codec.Encode(codec.NewPlainMessage(plaintext), keys)
		require.NoError(t, err)

		decoded, err := codec.Decode(encoded, keys)
		require.NoError(t, err)
		require.Equal(t, plaintext, decoded.Bytes())
	}
}

func TestEncodePadding(t *testing.T) {
	keys := testutil.TestSchedule()

	// Padding always adds 32 - (len mod 16) bytes: between 17 and 32.
	for _, tc := range []struct {
		length, encoded int
	}{
		{1, 32},
		{15, 32},
		{16, 48},
		{17, 48},
		{31, 48},
		{32, 64},
		{100, 128},
	} {
		encoded, err := codec.Encode(codec.NewPlainMessage(testutil.RandomBytes(tc.length)), keys)
		require.NoError(t, err)
		require.Len(t, encoded, tc.encoded, "input length %d", tc.length)
	}
}

func TestEncodeRejectsEmptyMessage(t *testing.T) {
	_, err := codec.Encode(codec.PlainMessage{}, testutil.TestSchedule())
	require.ErrorIs(t, err, codec.ErrEmptyMessage)
}

func TestDecodeRejectsUnalignedLength(t *testing.T) {
	keys := testutil.TestSchedule()

	for _, length := range []int{1, 15, 17, 33} {
		_, err := codec.Decode(codec.NewCipherMessage(make([]byte, length)), keys)
		require.ErrorIs(t, err, codec.ErrCipherLength, "length %d", length)
	}

	_, err := codec.Decode(codec.CipherMessage{}, keys)
	require.ErrorIs(t, err, codec.ErrCipherLength)
}

func TestCodecRejectsShortSchedule(t *testing.T) {
	_, err := codec.New(nil)
	require.ErrorIs(t, err, cipher.ErrShortSchedule)

	_, err = codec.New(cipher.KeySchedule{testutil.FixedRoundKey})
	require.ErrorIs(t, err, cipher.ErrShortSchedule)
}

func TestEncodeDeterministic(t *testing.T) {
	keys := testutil.TestSchedule()
	msg := codec.NewPlainMessage([]byte("the same input, the same output"))

	first, err := codec.Encode(msg, keys)
	require.NoError(t, err)
	second, err := codec.Encode(msg, keys)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// A decrypted stream made entirely of one byte value strips nothing: the
// whole content would otherwise vanish into the sentinel run.
func TestDecodeAllSentinelKeepsEverything(t *testing.T) {
	keys := testutil.TestSchedule()

	block, err := cipher.NewPlainBlock(bytes.Repeat([]byte{0x42}, cipher.BlockSize))
	require.NoError(t, err)
	encrypted, err := block.Encrypt(keys)
	require.NoError(t, err)

	decoded, err := codec.Decode(codec.NewCipherMessage(encrypted.Bytes()), keys)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0x42}, cipher.BlockSize), decoded.Bytes())
}

func TestParallelEncodeMatchesSequential(t *testing.T) {
	keys := testutil.TestSchedule()
	plaintext := testutil.RandomBytes(16 * 100)

	sequential, err := codec.New(keys)
	require.NoError(t, err)
	parallel, err := codec.New(keys, codec.WithWorkers(8))
	require.NoError(t, err)

	wantEncoded, err := sequential.Encode(codec.NewPlainMessage(plaintext))
	require.NoError(t, err)
	gotEncoded, err := parallel.Encode(codec.NewPlainMessage(plaintext))
	require.NoError(t, err)
	require.Equal(t, wantEncoded, gotEncoded)

	wantDecoded, err := sequential.Decode(wantEncoded)
	require.NoError(t, err)
	gotDecoded, err := parallel.Decode(gotEncoded)
	require.NoError(t, err)
	require.Equal(t, wantDecoded, gotDecoded)
	require.Equal(t, plaintext, gotDecoded.Bytes())
}

func TestWorkerCountAboveBlockCount(t *testing.T) {
	keys := testutil.TestSchedule()
	c, err := codec.New(keys, codec.WithWorkers(64))
	require.NoError(t, err)

	encoded, err := c.Encode(codec.NewPlainMessage([]byte("short")))
	require.NoError(t, err)
	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte("short"), decoded.Bytes())
}
