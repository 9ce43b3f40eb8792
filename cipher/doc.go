// Package cipher implements a 128-bit block cipher following the Rijndael
// design: S-box substitution, row rotation, GF(2^8) column mixing, and a
// deterministic key schedule driving an 11-round-key encrypt/decrypt pair.
//
// The cipher is self-consistent but deliberately not FIPS-197 compliant:
// column mixing runs on every round, including the final one, on both the
// encrypt and decrypt paths. Ciphertext produced here will not match
// reference AES test vectors; Decrypt is the exact inverse of Encrypt and
// that is the only correctness contract.
//
// # Phase typing
//
// PlainBlock and CipherBlock are distinct 16-byte array types. Encrypt is
// defined only on PlainBlock and yields a CipherBlock; Decrypt is defined
// only on CipherBlock and yields a PlainBlock. Encrypting a ciphertext or
// decrypting a plaintext is therefore a compile-time error, not a runtime
// check.
//
// # State layout
//
// A block is viewed as a 4x4 byte matrix in row-major order: byte index
// 4*row + col. Every transform returns a fresh state; inputs are never
// mutated.
//
// Note: table lookups and field math are not constant-time. Do not use this
// package where side-channel resistance matters.
package cipher
