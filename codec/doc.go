// Package codec extends the fixed 16-byte block cipher to arbitrary-length
// byte streams. It pads plaintext, splits it into blocks, drives the block
// cipher over each block independently, and strips the padding again on
// decode.
//
// # Padding
//
// The sentinel byte is the last plaintext byte XOR 0x01. Encode appends
// 32 - (len mod 16) sentinel bytes, so padding is always between 17 and 32
// bytes and a block-aligned input gains two full blocks. This is not a
// minimal padding scheme and is not meant to be one: decode strips the
// trailing run of sentinel bytes, and the oversized padding is what that
// run-length rule was designed against. If the plaintext itself ends in a
// run of the sentinel value, those bytes are stripped too; callers that
// cannot tolerate this must frame their data themselves.
//
// # Phase typing
//
// PlainMessage and CipherMessage are distinct types. Encode accepts only
// PlainMessage, Decode only CipherMessage, so double encryption or double
// decryption does not compile.
//
// # Concurrency
//
// Blocks are independent (there is no chaining mode), so a Codec can fan
// block work out to multiple workers. Output is byte-identical regardless
// of worker count.
package codec
