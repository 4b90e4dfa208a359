package bn254

// signedWindowDigits recodes a positive odd BIG e into a most-significant-
// digit-last sequence of signed table indices for selectECP/selectECP2:
// e == sum_i value(digits[i]) * 16^i, where value(b) is the odd integer
// 2*(|b|-1)+1 with the sign of b.
//
// Each step reads t mod 32 (5 bits) and centers it into raw = (t mod 32) -
// 16, which is always odd and nonzero because t stays odd throughout (e is
// odd to start, and t - raw is always 16 mod 32, so the quotient after
// shifting right 4 is always odd too). Subtracting raw from t and
// shifting right 4 bits moves the recoding to the next window with no
// separate carry step: the "+1 to make a window odd" that an in-place
// per-window patch would need to borrow from its neighbor falls straight
// out of doing the subtraction on the full remaining value instead of on
// four bits in isolation. The loop runs a fixed number of extra rounds past
// e's bit length so the final remainder - itself guaranteed small and odd -
// can be taken directly as the top digit.
func signedWindowDigits(e *BIG) []int32 {
	t := *e
	t.norm()
	n := t.nbits()/4 + 10
	digits := make([]int32, n+1)
	for i := 0; i < n; i++ {
		raw := int32(t[0]&31) - 16
		digits[i] = encodeWindowDigit(raw)
		subtractSigned(&t, raw)
		t.shr(4)
	}
	digits[n] = encodeWindowDigit(int32(t[0] & 31))
	return digits
}

// encodeWindowDigit maps a nonzero odd raw digit in [-15,15] to a signed
// table index with magnitude in [1,8], biased away from zero: b=0 and
// b=-0 are the same int32, so a magnitude-1 digit's sign could never
// survive an unbiased index.
func encodeWindowDigit(raw int32) int32 {
	mag := raw
	neg := raw < 0
	if neg {
		mag = -mag
	}
	b := (mag-1)/2 + 1
	if neg {
		b = -b
	}
	return b
}

// subtractSigned subtracts a small signed digit from a non-negative BIG in
// place, normalizing afterward.
func subtractSigned(t *BIG, d int32) {
	var s BIG
	if d >= 0 {
		s.setInt(int64(d))
		t.sub(&s)
	} else {
		s.setInt(int64(-d))
		t.add(&s)
	}
	t.norm()
}
