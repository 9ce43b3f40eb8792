// Package keys turns caller-supplied secrets into 16-byte cipher keys.
//
// Two derivations are provided. FromPassword maps the password bytes onto
// the key verbatim, truncated or zero-padded to 16 bytes; it is what the
// gridaes file CLI uses, so files stay openable by password alone. Derive
// is the stronger option, running HKDF over SHA3-256 with a fixed domain
// label, and should be preferred when password compatibility is not needed.
package keys
