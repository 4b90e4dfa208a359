package bn254

import "github.com/giuliop/bn254/rom"

// Limb-level parameters shared across the whole tower. BASEBITS of 24 leaves
// int64 headroom for the schoolbook limb-product accumulation in mul/sqr;
// a 64-bit limb with BASEBITS 58 is an equally
// valid choice and does not change any externally observable byte encoding.
const (
	CHUNK    = 32
	BASEBITS = rom.BASEBITS
	MODBYTES = rom.MODBYTES
	NLEN     = rom.NLEN
	DNLEN    = 2 * NLEN
	BMASK    = (int64(1) << BASEBITS) - 1
)

// BIG is a fixed-width multi-precision integer: NLEN limbs of BASEBITS bits,
// little-endian (limbs[0] is least significant). Limbs may temporarily
// exceed BMASK after add/sub; norm restores the [0, 2^BASEBITS) invariant.
// BIG is always non-negative; norm resolves any sign-extended borrow left
// by sub/rsub.
type BIG [NLEN]int64

// DBIG is a double-width integer holding an unreduced product.
type DBIG [DNLEN]int64

// rcopy loads a ROM table into z without interpretation.
func (z *BIG) rcopy(src *rom.Limbs) *BIG {
	for i := 0; i < NLEN; i++ {
		z[i] = src[i]
	}
	return z
}

// zero clears z.
func (z *BIG) zero() *BIG {
	for i := range z {
		z[i] = 0
	}
	return z
}

// set copies x into z.
func (z *BIG) set(x *BIG) *BIG {
	*z = *x
	return z
}

// setInt installs a small non-negative value.
func (z *BIG) setInt(x int64) *BIG {
	z.zero()
	z[0] = x
	return z
}

// add adds y into z limb-wise without normalizing.
func (z *BIG) add(y *BIG) *BIG {
	for i := 0; i < NLEN; i++ {
		z[i] += y[i]
	}
	return z
}

// sub subtracts y from z limb-wise without normalizing; limbs may go
// negative until norm is called.
func (z *BIG) sub(y *BIG) *BIG {
	for i := 0; i < NLEN; i++ {
		z[i] -= y[i]
	}
	return z
}

// rsub sets z = x - z, limb-wise, unnormalized.
func (z *BIG) rsub(x *BIG) *BIG {
	for i := 0; i < NLEN; i++ {
		z[i] = x[i] - z[i]
	}
	return z
}

// norm propagates carries (or borrows, which show up as negative limbs)
// so every limb lands in [0, 2^BASEBITS). Returns the final carry out of
// the top limb, used by Fp.reduce to detect residual excess.
func (z *BIG) norm() int64 {
	carry := int64(0)
	for i := 0; i < NLEN-1; i++ {
		d := z[i] + carry
		z[i] = d & BMASK
		carry = d >> BASEBITS
	}
	z[NLEN-1] += carry
	return z[NLEN-1] >> BASEBITS
}

// shl shifts z left by k < BASEBITS*NLEN bits, assuming z is normalized.
func (z *BIG) shl(k int) *BIG {
	words := k / BASEBITS
	bits := k % BASEBITS
	if words >= NLEN {
		z.zero()
		return z
	}
	if words > 0 {
		for i := NLEN - 1; i >= words; i-- {
			z[i] = z[i-words]
		}
		for i := 0; i < words; i++ {
			z[i] = 0
		}
	}
	if bits > 0 {
		carry := int64(0)
		for i := 0; i < NLEN; i++ {
			nc := z[i] >> (BASEBITS - bits)
			z[i] = ((z[i] << bits) | carry) & BMASK
			carry = nc
		}
	}
	return z
}

// shr shifts z right by k bits, assuming z is normalized.
func (z *BIG) shr(k int) *BIG {
	words := k / BASEBITS
	bits := k % BASEBITS
	if words >= NLEN {
		z.zero()
		return z
	}
	if words > 0 {
		for i := 0; i < NLEN-words; i++ {
			z[i] = z[i+words]
		}
		for i := NLEN - words; i < NLEN; i++ {
			z[i] = 0
		}
	}
	if bits > 0 {
		for i := 0; i < NLEN-1; i++ {
			z[i] = (z[i] >> bits) | ((z[i+1] << (BASEBITS - bits)) & BMASK)
		}
		z[NLEN-1] >>= bits
	}
	return z
}

// fshl is the fast path for k < BASEBITS, requiring z already normalized.
func (z *BIG) fshl(k int) int64 {
	top := z[NLEN-1] >> (BASEBITS - k)
	for i := NLEN - 1; i > 0; i-- {
		z[i] = ((z[i] << k) | (z[i-1] >> (BASEBITS - k))) & BMASK
	}
	z[0] = (z[0] << k) & BMASK
	return top
}

// fshr is the fast path for k < BASEBITS, requiring z already normalized.
func (z *BIG) fshr(k int) int64 {
	bottom := z[0] & ((int64(1) << k) - 1)
	for i := 0; i < NLEN-1; i++ {
		z[i] = (z[i] >> k) | ((z[i+1] << (BASEBITS - k)) & BMASK)
	}
	z[NLEN-1] >>= k
	return bottom
}

// cmp compares two normalized BIGs, returning -1, 0, or 1.
func (z *BIG) cmp(y *BIG) int {
	for i := NLEN - 1; i >= 0; i-- {
		if z[i] != y[i] {
			if z[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// iszilch reports whether a normalized BIG is zero.
func (z *BIG) iszilch() bool {
	for i := 0; i < NLEN; i++ {
		if z[i] != 0 {
			return false
		}
	}
	return true
}

// parity returns the low bit of a normalized BIG.
func (z *BIG) parity() int64 {
	return z[0] & 1
}

// bit returns bit n of a normalized BIG.
func (z *BIG) bit(n int) int64 {
	w := n / BASEBITS
	b := n % BASEBITS
	if w >= NLEN {
		return 0
	}
	return (z[w] >> uint(b)) & 1
}

// nbits returns the bit length of a normalized, non-negative BIG.
func (z *BIG) nbits() int {
	t := *z
	t.norm()
	for i := NLEN - 1; i >= 0; i-- {
		if t[i] != 0 {
			n := i * BASEBITS
			v := t[i]
			for v != 0 {
				n++
				v >>= 1
			}
			return n
		}
	}
	return 0
}

// cmove does a constant-time conditional move: z = y if d == 1, else z is
// unchanged. d must be 0 or 1; the mask is computed branchlessly.
func (z *BIG) cmove(y *BIG, d int) {
	mask := int64(0) - int64(d&1)
	for i := 0; i < NLEN; i++ {
		z[i] = z[i] ^ ((z[i] ^ y[i]) & mask)
	}
}

// cswap conditionally swaps z and y in constant time when d == 1.
func cswap(z, y *BIG, d int) {
	mask := int64(0) - int64(d&1)
	for i := 0; i < NLEN; i++ {
		t := mask & (z[i] ^ y[i])
		z[i] ^= t
		y[i] ^= t
	}
}

// teq is a branchless equality test on small non-negative integers,
// returning 1 when equal and 0 otherwise. Used by window-selection code to
// avoid comparisons that branch on a secret index.
func teq(a, b int32) int32 {
	d := a ^ b
	d--
	return (d >> 31) & 1
}

// mul multiplies two normalized BIGs into a DBIG via schoolbook
// accumulation into 64-bit limbs (safe: BASEBITS=24 leaves 16 bits of
// headroom per product, NLEN=11 terms per diagonal).
func (z *DBIG) mul(x, y *BIG) *DBIG {
	var w [DNLEN]int64
	for i := 0; i < NLEN; i++ {
		for j := 0; j < NLEN; j++ {
			w[i+j] += x[i] * y[j]
		}
	}
	carry := int64(0)
	for i := 0; i < DNLEN; i++ {
		d := w[i] + carry
		z[i] = d & BMASK
		carry = d >> BASEBITS
	}
	return z
}

// sqr squares a normalized BIG into a DBIG, halving the number of
// cross-term multiplications by exploiting symmetry.
func (z *DBIG) sqr(x *BIG) *DBIG {
	var w [DNLEN]int64
	for i := 0; i < NLEN; i++ {
		w[2*i] += x[i] * x[i]
		for j := i + 1; j < NLEN; j++ {
			w[i+j] += 2 * x[i] * x[j]
		}
	}
	carry := int64(0)
	for i := 0; i < DNLEN; i++ {
		d := w[i] + carry
		z[i] = d & BMASK
		carry = d >> BASEBITS
	}
	return z
}

// split extracts the low and high NLEN-limb halves of a normalized DBIG.
func (d *DBIG) split() (lo, hi BIG) {
	for i := 0; i < NLEN; i++ {
		lo[i] = d[i]
		hi[i] = d[i+NLEN]
	}
	return
}

// dadd adds two DBIGs limb-wise, unnormalized.
func (z *DBIG) dadd(y *DBIG) *DBIG {
	for i := 0; i < DNLEN; i++ {
		z[i] += y[i]
	}
	return z
}

// dnorm propagates carries across a DBIG, leaving the top limb unmasked so
// its sign survives (mirrors BIG.norm; a negative top limb after dsub
// signals a borrow, read directly by ddivmod).
func (z *DBIG) dnorm() {
	carry := int64(0)
	for i := 0; i < DNLEN-1; i++ {
		d := z[i] + carry
		z[i] = d & BMASK
		carry = d >> BASEBITS
	}
	z[DNLEN-1] += carry
}

// dcmp compares two normalized DBIGs.
func (z *DBIG) dcmp(y *DBIG) int {
	for i := DNLEN - 1; i >= 0; i-- {
		if z[i] != y[i] {
			if z[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// dshl shifts a normalized DBIG left by k bits.
func (z *DBIG) dshl(k int) *DBIG {
	words := k / BASEBITS
	bits := k % BASEBITS
	if words >= DNLEN {
		for i := range z {
			z[i] = 0
		}
		return z
	}
	if words > 0 {
		for i := DNLEN - 1; i >= words; i-- {
			z[i] = z[i-words]
		}
		for i := 0; i < words; i++ {
			z[i] = 0
		}
	}
	if bits > 0 {
		carry := int64(0)
		for i := 0; i < DNLEN; i++ {
			nc := z[i] >> (BASEBITS - bits)
			z[i] = ((z[i] << bits) | carry) & BMASK
			carry = nc
		}
	}
	return z
}

// dshr shifts a normalized DBIG right by k bits.
func (z *DBIG) dshr(k int) *DBIG {
	words := k / BASEBITS
	bits := k % BASEBITS
	if words >= DNLEN {
		for i := range z {
			z[i] = 0
		}
		return z
	}
	if words > 0 {
		for i := 0; i < DNLEN-words; i++ {
			z[i] = z[i+words]
		}
		for i := DNLEN - words; i < DNLEN; i++ {
			z[i] = 0
		}
	}
	if bits > 0 {
		for i := 0; i < DNLEN-1; i++ {
			z[i] = (z[i] >> bits) | ((z[i+1] << (BASEBITS - bits)) & BMASK)
		}
		z[DNLEN-1] >>= bits
	}
	return z
}

// dnbits returns the bit length of a normalized, non-negative DBIG.
func (z *DBIG) dnbits() int {
	t := *z
	for i := DNLEN - 1; i >= 0; i-- {
		if t[i] != 0 {
			n := i * BASEBITS
			v := t[i]
			for v != 0 {
				n++
				v >>= 1
			}
			return n
		}
	}
	return 0
}

// dcmove is the DBIG analogue of BIG.cmove.
func (z *DBIG) dcmove(y *DBIG, d int) {
	mask := int64(0) - int64(d&1)
	for i := 0; i < DNLEN; i++ {
		z[i] = z[i] ^ ((z[i] ^ y[i]) & mask)
	}
}

// ddivmod computes q = floor(z/m), replacing z with the remainder, via
// binary long division (shift-subtract): the same shape as BIG.mod but
// widened to DBIG so a full double-width product can be divided by a
// single-width modulus. Used only by the GLV/GS basis-rounding helpers in
// lattice.go, never on secret data in a way requiring constant time.
// The returned quotient must fit a BIG; callers only use this for
// lattice-basis rounding coefficients that are small by construction
// (bounded by the curve parameter u, never by the full modulus width).
func (z *DBIG) ddivmod(m *BIG) BIG {
	var q BIG
	var wm DBIG
	for i := 0; i < NLEN; i++ {
		wm[i] = m[i]
	}
	nb := z.dnbits() - wm.dnbits()
	if nb < 0 {
		nb = 0
	}
	wm.dshl(nb)
	for i := nb; i >= 0; i-- {
		var t DBIG
		t = *z
		t.dsub(&wm)
		t.dnorm()
		neg := t[DNLEN-1] < 0
		z.dcmove(&t, boolToInt(!neg))
		if !neg {
			q[i/BASEBITS] |= int64(1) << uint(i%BASEBITS)
		}
		wm.dshr(1)
	}
	return q
}

// dsub subtracts y from z limb-wise, unnormalized.
func (z *DBIG) dsub(y *DBIG) *DBIG {
	for i := 0; i < DNLEN; i++ {
		z[i] -= y[i]
	}
	return z
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// monty performs Montgomery reduction of d modulo m, with nd = -m^-1 mod
// 2^BASEBITS precomputed by the caller. The classic CIOS-style interleaved
// reduction: each of the low NLEN limbs of d is cancelled by adding a
// multiple of m, then the result is shifted down by one limb.
func monty(m *BIG, nd int64, d *DBIG) *BIG {
	var t DBIG
	t = *d
	for i := 0; i < NLEN; i++ {
		q := (t[i] * nd) & BMASK
		carry := int64(0)
		for j := 0; j < NLEN; j++ {
			w := t[i+j] + q*m[j] + carry
			t[i+j] = w & BMASK
			carry = w >> BASEBITS
		}
		// propagate the remaining carry upward through the double-width value
		k := i + NLEN
		for carry != 0 && k < DNLEN {
			w := t[k] + carry
			t[k] = w & BMASK
			carry = w >> BASEBITS
			k++
		}
	}
	var r BIG
	for i := 0; i < NLEN; i++ {
		r[i] = t[i+NLEN]
	}
	r.norm()
	if r.cmp(m) >= 0 {
		r.sub(m)
		r.norm()
	}
	return &r
}

// ssn computes r = a - m (normalized) and returns the borrow bit out of the
// top limb: 1 if a was smaller than m, 0 otherwise. This is the primitive
// underlying both Fp.reduce and BIG.mod: every caller performs the
// subtraction unconditionally and uses the borrow bit to cmove the
// pre-subtraction value back in, rather than branching on the comparison.
func ssn(r, a, m *BIG) int64 {
	*r = *a
	r.sub(m)
	borrow := r.norm()
	// norm returns carry of the (possibly negative) top limb; on a borrow
	// the top limb's sign bit survives into bit BASEBITS after norm's
	// unsigned shift, so recover it explicitly.
	if r[NLEN-1]>>(BASEBITS-1) != 0 || borrow < 0 {
		return 1
	}
	return 0
}

// mod reduces z modulo m in place using repeated conditional subtraction
// driven by ssn, executing the same number of steps regardless of the
// value of z (only the bit-length of m, which is public, determines the
// iteration count). z must be below 2^(NLEN*BASEBITS-1).
func (z *BIG) mod(m *BIG) *BIG {
	sh := *m
	nb := NLEN*BASEBITS - 1 - m.nbits()
	if nb < 0 {
		nb = 0
	}
	sh.shl(nb)
	for i := nb; i >= 0; i-- {
		var t BIG
		borrow := ssn(&t, z, &sh)
		z.cmove(&t, int(1-borrow))
		sh.shr(1)
	}
	return z
}

// invmodp computes the modular inverse of z mod p via the binary extended
// Euclidean algorithm. Not constant-time. Within this package only the
// tests call it; Fp inversion is done via Fermat's little theorem instead,
// see fp.go.
func (z *BIG) invmodp(p *BIG) *BIG {
	u := *z
	v := *p
	var x1, x2 BIG
	x1.setInt(1)
	x2.zero()
	u.norm()
	v.norm()
	for !u.iszilch() && u.cmp(&BIG{1}) != 0 && v.cmp(&BIG{1}) != 0 {
		for u.parity() == 0 {
			u.shr(1)
			if x1.parity() != 0 {
				x1.add(p)
				x1.norm()
			}
			x1.shr(1)
		}
		for v.parity() == 0 && v.cmp(&u) != 0 {
			v.shr(1)
			if x2.parity() != 0 {
				x2.add(p)
				x2.norm()
			}
			x2.shr(1)
		}
		if u.cmp(&v) >= 0 {
			u.sub(&v)
			u.norm()
			x1.sub(&x2)
			x1.norm()
			if x1.cmp(p) > 0 || isNegative(&x1) {
				x1.add(p)
				x1.norm()
			}
		} else {
			v.sub(&u)
			v.norm()
			x2.sub(&x1)
			x2.norm()
			if x2.cmp(p) > 0 || isNegative(&x2) {
				x2.add(p)
				x2.norm()
			}
		}
	}
	if u.cmp(&BIG{1}) == 0 {
		*z = x1
	} else {
		*z = x2
	}
	z.mod(p)
	return z
}

func isNegative(z *BIG) bool {
	return z[NLEN-1] < 0
}

// jacobi computes the Jacobi symbol (z/p) in {-1, 0, 1}. Only called on
// public values (Fp.jacobi feeds a square-root-failure test, which is a
// public outcome, not a secret-dependent branch over the field element's
// bits).
func (z *BIG) jacobi(p *BIG) int {
	var n, d BIG
	n = *z
	d = *p
	n.mod(&d)
	result := 1
	for !n.iszilch() {
		for n.parity() == 0 {
			n.shr(1)
			r := d[0] & 7
			if r == 3 || r == 5 {
				result = -result
			}
		}
		n, d = d, n
		if (n[0]&3) == 3 && (d[0]&3) == 3 {
			result = -result
		}
		n.mod(&d)
	}
	if d.cmp(&BIG{1}) == 0 {
		return result
	}
	return 0
}

// fromBytes decodes a big-endian MODBYTES-byte slice into z.
func (z *BIG) fromBytes(b []byte) *BIG {
	z.zero()
	for _, c := range b {
		z.fshl(8)
		z[0] |= int64(c)
	}
	return z
}

// toBytes encodes a normalized z into a big-endian MODBYTES-byte slice.
func (z *BIG) toBytes(out []byte) {
	t := *z
	for i := MODBYTES - 1; i >= 0; i-- {
		out[i] = byte(t.fshr(8))
	}
}
