package cipher

import "github.com/kruug/gridaes/gf"

// Circulant coefficient matrices for column mixing. Rows are the output
// byte positions, columns the input byte positions.
var (
	mixMatrix = [4][4]byte{
		{0x02, 0x03, 0x01, 0x01},
		{0x01, 0x02, 0x03, 0x01},
		{0x01, 0x01, 0x02, 0x03},
		{0x03, 0x01, 0x01, 0x02},
	}
	invMixMatrix = [4][4]byte{
		{0x0e, 0x0b, 0x0d, 0x09},
		{0x09, 0x0e, 0x0b, 0x0d},
		{0x0d, 0x09, 0x0e, 0x0b},
		{0x0b, 0x0d, 0x09, 0x0e},
	}
)

// mixColumn multiplies a single 4-byte column by the coefficient matrix in
// GF(2^8).
func mixColumn(col [4]byte, matrix *[4][4]byte) [4]byte {
	var out [4]byte
	for r := 0; r < 4; r++ {
		var acc byte
		for c := 0; c < 4; c++ {
			acc ^= gf.Mul(matrix[r][c], col[c])
		}
		out[r] = acc
	}
	return out
}

func mixColumns(s State, matrix *[4][4]byte) State {
	var out State
	for c := 0; c < 4; c++ {
		col := mixColumn([4]byte{s[c], s[c+4], s[c+8], s[c+12]}, matrix)
		out[c], out[c+4], out[c+8], out[c+12] = col[0], col[1], col[2], col[3]
	}
	return out
}

// MixColumns applies the forward Rijndael column mix ({2,3,1,1} circulant)
// to each of the four columns of the state independently.
func MixColumns(s State) State {
	return mixColumns(s, &mixMatrix)
}

// InverseMixColumns applies the inverse column mix ({14,11,13,9} circulant),
// undoing MixColumns.
func InverseMixColumns(s State) State {
	return mixColumns(s, &invMixMatrix)
}
