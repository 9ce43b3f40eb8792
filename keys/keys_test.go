package keys

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kruug/gridaes/cipher"
)

func TestFromPasswordTruncatesAndPads(t *testing.T) {
	require.Equal(t,
		cipher.Key{'s', 'e', 'c', 'r', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		FromPassword("secret"))

	// Longer passwords are truncated to the first 16 bytes.
	require.Equal(t,
		cipher.Key{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'},
		FromPassword("0123456789abcdef-and-then-some"))

	require.Equal(t, cipher.Key{}, FromPassword(""))
}

func TestDeriveDeterministic(t *testing.T) {
	first, err := Derive([]byte("hunter2"), []byte("salt"))
	require.NoError(t, err)
	second, err := Derive([]byte("hunter2"), []byte("salt"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDeriveSeparatesInputs(t *testing.T) {
	base, err := Derive([]byte("hunter2"), []byte("salt"))
	require.NoError(t, err)

	otherSecret, err := Derive([]byte("hunter3"), []byte("salt"))
	require.NoError(t, err)
	require.NotEqual(t, base, otherSecret)

	otherSalt, err := Derive([]byte("hunter2"), []byte("pepper"))
	require.NoError(t, err)
	require.NotEqual(t, base, otherSalt)

	// A derived key never matches the legacy truncation rule.
	require.NotEqual(t, FromPassword("hunter2"), base)
}
