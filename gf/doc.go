// Package gf implements byte arithmetic in GF(2^8), the finite field of 256
// elements used by the Rijndael column-mixing step.
//
// All operations use the Rijndael reduction polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11B). The package is a leaf: it has no
// dependencies and no state, and every function is total over its byte
// inputs.
//
// Note: none of these operations are constant-time.
package gf
