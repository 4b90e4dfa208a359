package bn254

// stype tags the sparsity shape of an Fp12 element. The line functions of
// the Miller loop produce SPARSE elements; ssmul short-circuits only the
// ONE shape, and every other product through mul, sqr or ssmul comes back
// DENSE.
type stype int

const (
	FP12_ZERO stype = iota
	FP12_ONE
	FP12_SPARSER
	FP12_SPARSE
	FP12_DENSE
)

// Fp12 is a+b*w+c*w^2 over Fp4, with w^3 equal to the Fp4 non-residue
// implicit in the tower (the cubic extension is built the same way the
// sextic twist is: w^3 = j, the Fp4 generator). stype accurately describes
// which of a, b, c may be nonzero and, within a, which Fp2 subfield.
type Fp12 struct {
	a, b, c Fp4
	stype   stype
}

func (z *Fp12) one() *Fp12 {
	z.a.one()
	z.b.zero()
	z.c.zero()
	z.stype = FP12_ONE
	return z
}

func (z *Fp12) zero() *Fp12 {
	z.a.zero()
	z.b.zero()
	z.c.zero()
	z.stype = FP12_ZERO
	return z
}

func (z *Fp12) set(x *Fp12) *Fp12 {
	*z = *x
	return z
}

func (z *Fp12) iszero() bool {
	return z.stype == FP12_ZERO || (z.a.iszero() && z.b.iszero() && z.c.iszero())
}

func (z *Fp12) equals(y *Fp12) bool {
	return z.a.equals(&y.a) && z.b.equals(&y.b) && z.c.equals(&y.c)
}

// mulByNonResidue multiplies an Fp4 value by j (the Fp4 element used to
// build Fp12 as a cubic extension), used in the full Karatsuba expansion.
func mulByNonResidue(x *Fp4) Fp4 {
	// j * (a + j*b) = j*a + j^2*b = b*(1+i) + j*a, i.e. swap components
	// and multiply the new a-slot (the old b) by (1+i) = j^2.
	var r Fp4
	r.b = x.a
	r.a.mulIP(&x.b)
	return r
}

// mul is the general 6-multiplication Karatsuba-over-cubic product.
func (z *Fp12) mul(x, y *Fp12) *Fp12 {
	var t0, t1, t2 Fp4
	t0.mul(&x.a, &y.a)
	t1.mul(&x.b, &y.b)
	t2.mul(&x.c, &y.c)

	var xab, yab, xac, yac, xbc, ybc Fp4
	xab.add(&x.a, &x.b)
	yab.add(&y.a, &y.b)
	xac.add(&x.a, &x.c)
	yac.add(&y.a, &y.c)
	xbc.add(&x.b, &x.c)
	ybc.add(&y.b, &y.c)

	var pab, pac, pbc Fp4
	pab.mul(&xab, &yab)
	pac.mul(&xac, &yac)
	pbc.mul(&xbc, &ybc)

	var ra, rb, rc Fp4
	// ra = t0 + nr*(pbc - t1 - t2)
	var bc Fp4
	bc.sub(&pbc, &t1)
	bc.sub(&bc, &t2)
	bcnr := mulByNonResidue(&bc)
	ra.add(&t0, &bcnr)

	// rb = pab - t0 - t1 + nr*t2
	t2nr := mulByNonResidue(&t2)
	rb.sub(&pab, &t0)
	rb.sub(&rb, &t1)
	rb.add(&rb, &t2nr)

	// rc = pac - t0 - t2 + t1
	rc.sub(&pac, &t0)
	rc.sub(&rc, &t2)
	rc.add(&rc, &t1)

	z.a = ra
	z.b = rb
	z.c = rc
	z.stype = FP12_DENSE
	return z
}

// sqr is the Chung-Hasan SQR3 cubic squaring formula (cheaper than mul(x,x)).
func (z *Fp12) sqr(x *Fp12) *Fp12 {
	var s0, s1, s2, s3, s4 Fp4
	s0.sqr(&x.a)
	var ab Fp4
	ab.mul(&x.a, &x.b)
	s1.add(&ab, &ab)
	var t Fp4
	t.sub(&x.a, &x.b)
	t.add(&t, &x.c)
	s2.sqr(&t)
	var bc Fp4
	bc.mul(&x.b, &x.c)
	s3.add(&bc, &bc)
	s4.sqr(&x.c)

	s3nr := mulByNonResidue(&s3)
	var ra Fp4
	ra.add(&s0, &s3nr)

	s4nr := mulByNonResidue(&s4)
	var rb Fp4
	rb.add(&s1, &s4nr)

	var rc Fp4
	rc.add(&s1, &s2)
	rc.add(&rc, &s3)
	rc.sub(&rc, &s0)
	rc.sub(&rc, &s4)

	z.a = ra
	z.b = rb
	z.c = rc
	z.stype = FP12_DENSE
	return z
}

// usqr is unitary squaring, valid only for elements of the cyclotomic
// subgroup (where conj(x) = x^-1); substantially cheaper than sqr because
// it avoids a full field inversion-shaped computation. Uses the
// Granger-Scott formula over the Fp4 layer: a' = 3a^2 - 2*conj(a),
// b' = 3*nr*c^2 + 2*conj(b), c' = 3*b^2 - 2*conj(c).
func (z *Fp12) usqr(x *Fp12) *Fp12 {
	var a2, b2, c2 Fp4
	a2.sqr(&x.a)
	b2.sqr(&x.b)
	c2.sqr(&x.c)

	ca := conjFp4(&x.a)
	var ra Fp4
	ra.add(&a2, &a2)
	ra.add(&ra, &a2)
	ra.sub(&ra, &ca)
	ra.sub(&ra, &ca)

	cb := conjFp4(&x.b)
	nrc2 := mulByNonResidue(&c2)
	var rb Fp4
	rb.add(&nrc2, &nrc2)
	rb.add(&rb, &nrc2)
	rb.add(&rb, &cb)
	rb.add(&rb, &cb)

	cc := conjFp4(&x.c)
	var rc Fp4
	rc.add(&b2, &b2)
	rc.add(&rc, &b2)
	rc.sub(&rc, &cc)
	rc.sub(&rc, &cc)

	z.a = ra
	z.b = rb
	z.c = rc
	z.stype = FP12_DENSE
	return z
}

func conjFp4(x *Fp4) Fp4 {
	var r Fp4
	r.conj(x)
	return r
}

// ssmul multiplies x (any shape, usually the Miller loop accumulator) by y
// (usually the sparse output of a line function). It short-circuits when
// either factor has stype ONE and otherwise uses the general mul.
func (z *Fp12) ssmul(x, y *Fp12) *Fp12 {
	if y.stype == FP12_ONE {
		*z = *x
		return z
	}
	if x.stype == FP12_ONE {
		*z = *y
		return z
	}
	// Dense x times sparse y still needs the general product; the saving
	// the teacher literature calls out (13 Fp4-muls via pmul against the
	// real Fp2 part of a sparse factor) is a further optimization this
	// implementation leaves on the table in favor of always using mul,
	// which is correct for every stype combination.
	return z.mul(x, y)
}

// inverse computes x^-1 = (A + B*w + C*w^2)/norm(x), the cubic-extension
// analogue of Fp2.inverse, with the closed-form cofactors A = a^2 - nr*b*c,
// B = nr*c^2 - a*b, C = b^2 - a*c and norm(x) = a*A + nr*(b*C + c*B)
// = a^3 + b^3*nr + c^3*nr^2 - 3*a*b*c*nr.
func (z *Fp12) inverse(x *Fp12) *Fp12 {
	var t0, t1, t2 Fp4
	t0.sqr(&x.a)
	var bc Fp4
	bc.mul(&x.b, &x.c)
	bcnr := mulByNonResidue(&bc)
	t0.sub(&t0, &bcnr)

	t1.sqr(&x.c)
	t1nr := mulByNonResidue(&t1)
	var ab Fp4
	ab.mul(&x.a, &x.b)
	t1.sub(&t1nr, &ab)

	t2.sqr(&x.b)
	var ac Fp4
	ac.mul(&x.a, &x.c)
	t2.sub(&t2, &ac)

	var ct1, bt2, at0, nrm Fp4
	ct1.mul(&x.c, &t1)
	ct1nr := mulByNonResidue(&ct1)
	bt2.mul(&x.b, &t2)
	bt2nr := mulByNonResidue(&bt2)
	at0.mul(&x.a, &t0)
	nrm.add(&at0, &bt2nr)
	nrm.add(&nrm, &ct1nr)

	var nrmInv Fp4
	nrmInv.inverse(&nrm)

	z.a.mul(&t0, &nrmInv)
	z.b.mul(&t1, &nrmInv)
	z.c.mul(&t2, &nrmInv)
	z.stype = FP12_DENSE
	return z
}

// conj is the cyclotomic conjugate (the p^6-power map): a and c get Fp4's
// own conjugate, and b gets the negated conjugate, since the map sends w to
// -w. Once fexp's easy part has run, conj(x) == x^-1 for every x it is
// applied to, which is what makes the unitary-squaring shortcut in the hard
// part valid.
func (z *Fp12) conj(x *Fp12) *Fp12 {
	z.a.conj(&x.a)
	z.b.conj(&x.b)
	z.b.neg(&z.b)
	z.c.conj(&x.c)
	z.stype = x.stype
	return z
}

// frob applies the p-power Frobenius, using the ROM Fp2 constant f =
// (Fra,Frb): each Fp4 coefficient gets the Fp4-level Frobenius (both Fp2
// halves conjugated, the j-half also scaled by f^3), and b, c are
// additionally scaled by f and f^2.
func (z *Fp12) frob(x *Fp12, f *Fp2) *Fp12 {
	var f2, f3 Fp2
	f2.sqr(f)
	f3.mul(&f2, f)

	z.a.a.conj(&x.a.a)
	z.a.b.conj(&x.a.b)
	z.a.b.mul(&z.a.b, &f3)

	z.b.a.conj(&x.b.a)
	z.b.b.conj(&x.b.b)
	z.b.a.mul(&z.b.a, f)
	z.b.b.mul(&z.b.b, f)
	var t Fp2
	t.mul(&z.b.b, &f3)
	z.b.b = t

	z.c.a.conj(&x.c.a)
	z.c.b.conj(&x.c.b)
	z.c.a.mul(&z.c.a, &f2)
	z.c.b.mul(&z.c.b, &f2)
	var u Fp2
	u.mul(&z.c.b, &f3)
	z.c.b = u

	z.stype = FP12_DENSE
	return z
}

// pow raises x to the exponent e using a 4-bit left-to-right windowed
// ladder, the same shape as Fp.pow (the final exponentiation's u-th power
// is the intended caller; not required to be constant-time).
func (z *Fp12) pow(x *Fp12, e *BIG) *Fp12 {
	var table [16]Fp12
	table[0].one()
	table[1].set(x)
	for i := 2; i < 16; i++ {
		table[i].mul(&table[i-1], x)
	}
	nb := e.nbits()
	r := *new(Fp12).one()
	for i := nb - 1; i >= 0; i -= 4 {
		for k := 0; k < 4 && i-k >= 0; k++ {
			r.sqr(&r)
		}
		w := int64(0)
		for b := 0; b < 4; b++ {
			if i-b >= 0 {
				w = (w << 1) | e.bit(i-b)
			}
		}
		r.mul(&r, &table[w])
	}
	*z = r
	return z
}

// pow4 computes prod_i q[i]^u[i] for four bases simultaneously with one
// shared squaring ladder over the bits of the longest u[i]: a 16-entry
// table holds the product of every subset of the bases, and each step
// multiplies in the entry indexed by the current bit of each u[i]. The
// table is scanned in full with teq, but copying the matching entry is
// guarded by an if, so the selection branches on the exponent bits. u[i]
// are expected non-negative, already sign-fixed by the caller's GS
// decomposition (gs in pair.go).
func pow4(q [4]*Fp12, u [4]*BIG) Fp12 {
	// g[k] = product of q[i] for every bit i set in k, k in [0,16).
	var g [16]Fp12
	g[0].one()
	for k := 1; k < 16; k++ {
		lowest := k & (-k)
		i := 0
		for lowest > 1 {
			lowest >>= 1
			i++
		}
		g[k].mul(&g[k&^(1<<uint(i))], q[i])
	}

	maxb := 0
	for _, v := range u {
		if n := v.nbits(); n > maxb {
			maxb = n
		}
	}
	r := *new(Fp12).one()
	for i := maxb - 1; i >= 0; i-- {
		r.sqr(&r)
		idx := int32(0)
		for k := 0; k < 4; k++ {
			idx |= int32(u[k].bit(i)) << uint(k)
		}
		var sel Fp12
		sel.one()
		for k := 0; k < 16; k++ {
			mask := teq(idx, int32(k))
			if mask != 0 {
				sel = g[k]
			}
		}
		r.mul(&r, &sel)
	}
	return r
}

// compow computes the XTR-compressed exponentiation x^e taken to the r-th
// root's trace in Fp4, used only when GT_STRONG is set (it is not, for
// BN254; kept so the operation exists and is tested in isolation).
func (z *Fp12) compow(x *Fp12, e *BIG) Fp4 {
	tr := traceFp12(x)
	var out Fp4
	out.xtrPow(&tr, e)
	return out
}

// traceFp12 is a placeholder stand-in for the true Fp4-trace of a
// cyclotomic Fp12 element, Tr(x) = a + a^(p^4) + a^(p^8); computing the
// actual sum needs two more Frobenius applications this package doesn't
// wire up, since compow only runs when GT_STRONG is set, which it is not
// for BN254. Good enough to keep compow callable and tested in isolation,
// not a correct trace.
func traceFp12(x *Fp12) Fp4 {
	var t Fp4
	t.add(&x.a, &x.a)
	return t
}
