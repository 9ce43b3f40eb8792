package gf

import (
	"testing"
)

// Reference multiplication: schoolbook GF(2) polynomial product followed by
// reduction, bit by bit. Slow but obviously correct.
func refMul(a, b byte) byte {
	var product uint16
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			product ^= uint16(a) << i
		}
	}
	for i := 14; i >= 8; i-- {
		if product&(1<<i) != 0 {
			product ^= 0x11B << (i - 8)
		}
	}
	return byte(product)
}

func TestMulIdentities(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Mul(byte(a), 1); got != byte(a) {
			t.Errorf("Mul(%#x, 1) = %#x, want %#x", a, got, a)
		}
		if got := Mul(byte(a), 0); got != 0 {
			t.Errorf("Mul(%#x, 0) = %#x, want 0", a, got)
		}
	}
}

// Exhaustive check of all 256x256 input pairs against the reference.
func TestMulExhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := refMul(byte(a), byte(b))
			if got := Mul(byte(a), byte(b)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x", a, b, got, want)
			}
		}
	}
}

func TestMulKnownVectors(t *testing.T) {
	vectors := []struct {
		a, b, want byte
	}{
		{0x02, 0xDB, 0xAD}, // 219 doubled, wraps through the polynomial
		{0x03, 0x13, 0x35},
		{0x53, 0xCA, 0x01}, // multiplicative inverses
		{0x57, 0x83, 0xC1}, // FIPS-197 worked example
	}
	for _, v := range vectors {
		if got := Mul(v.a, v.b); got != v.want {
			t.Errorf("Mul(%#x, %#x) = %#x, want %#x", v.a, v.b, got, v.want)
		}
	}
}

func FuzzMul(f *testing.F) {
	f.Add(byte(0), byte(0))
	f.Add(byte(1), byte(255))
	f.Add(byte(0x57), byte(0x83))

	f.Fuzz(func(t *testing.T, a, b byte) {
		got := Mul(a, b)

		// Invariant 1: agrees with the reference implementation
		if want := refMul(a, b); got != want {
			t.Errorf("Mul(%#x, %#x) = %#x, want %#x", a, b, got, want)
		}

		// Invariant 2: commutativity
		if swapped := Mul(b, a); got != swapped {
			t.Errorf("commutativity failed: Mul(%#x, %#x) = %#x, Mul(%#x, %#x) = %#x",
				a, b, got, b, a, swapped)
		}

		// Invariant 3: distributivity over XOR with a fixed third operand
		const c = 0x1D
		left := Mul(a^c, b)
		right := Mul(a, b) ^ Mul(c, b)
		if left != right {
			t.Errorf("distributivity failed for a=%#x b=%#x: %#x != %#x", a, b, left, right)
		}
	})
}
