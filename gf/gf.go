package gf

// poly is the Rijndael reduction polynomial with the x^8 term dropped:
// x^4 + x^3 + x + 1.
const poly = 0x1B

// Mul multiplies a and b in GF(2^8) modulo the Rijndael polynomial using
// the shift-and-XOR (Russian peasant) method. Mul(a, 0) == 0 and
// Mul(a, 1) == a for all a.
func Mul(a, b byte) byte {
	var product byte
	for b > 0 {
		if b&1 != 0 {
			product ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= poly
		}
		b >>= 1
	}
	return product
}
