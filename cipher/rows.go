package cipher

// rotateRow rotates a 4-byte row left by shift positions: the element at
// index i moves to index (i + 4 - shift) mod 4.
func rotateRow(row [4]byte, shift int) [4]byte {
	var out [4]byte
	for i, v := range row {
		out[(i+4-shift)%4] = v
	}
	return out
}

// RotateRows rotates row r of the state left by r positions. Row 0 is
// unchanged.
func RotateRows(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		row := rotateRow([4]byte{s[4*r], s[4*r+1], s[4*r+2], s[4*r+3]}, r)
		copy(out[4*r:4*r+4], row[:])
	}
	return out
}

// InverseRotateRows rotates row r of the state left by (4-r) mod 4
// positions, undoing RotateRows.
func InverseRotateRows(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		row := rotateRow([4]byte{s[4*r], s[4*r+1], s[4*r+2], s[4*r+3]}, (4-r)%4)
		copy(out[4*r:4*r+4], row[:])
	}
	return out
}
