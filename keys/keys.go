package keys

import (
	"fmt"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/kruug/gridaes/cipher"
)

// domainLabel binds derived keys to this application.
const domainLabel = "gridaes-filekey-v1"

// FromPassword builds a key by truncating or zero-padding the password to
// 16 bytes. The mapping is stable, so a file encrypted with a password on
// one machine opens with the same password anywhere.
func FromPassword(password string) cipher.Key {
	var key cipher.Key
	copy(key[:], password)
	return key
}

// Derive builds a key from a secret and an optional salt using HKDF over
// SHA3-256.
func Derive(secret, salt []byte) (cipher.Key, error) {
	var key cipher.Key
	kdf := hkdf.New(sha3.New256, secret, salt, []byte(domainLabel))
	if _, err := kdf.Read(key[:]); err != nil {
		return cipher.Key{}, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}
