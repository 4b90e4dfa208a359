package bn254

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/giuliop/bn254/rom"
)

// nafDigits recodes the Miller loop's bt-trick sign sequence
// (bt = n3.bit(i) - n.bit(i), values in {-1,0,1}) into a pair of bitsets
// rather than a hand-rolled []int8: pos.Test(i) means bt==1 at bit i,
// neg.Test(i) means bt==-1, and neither means bt==0.
func nafDigits(n, n3 *BIG) (pos, neg *bitset.BitSet, nb int) {
	nb = n3.nbits()
	pos = bitset.New(uint(nb))
	neg = bitset.New(uint(nb))
	for i := 0; i < nb; i++ {
		bt := n3.bit(i) - n.bit(i)
		if bt == 1 {
			pos.Set(uint(i))
		} else if bt == -1 {
			neg.Set(uint(i))
		}
	}
	return
}

// mulFp2ByFp scales an Fp2 value by an Fp scalar.
func mulFp2ByFp(x *Fp2, s *Fp) Fp2 {
	var r Fp2
	r.a.mul(&x.a, s)
	r.b.mul(&x.b, s)
	return r
}

// sparseFromPair builds the SPARSE Fp12 the line functions produce: a
// cubic-over-Fp4 element with component c always zero, component a holding
// both Fp2 coefficients a0, a1, and component b holding b0 in its first Fp2
// half (the second half is zero), matching the three-coefficient sparse
// shape of the doubling/addition line evaluations.
func sparseFromPair(a0, a1, b0 Fp2) Fp12 {
	var z Fp12
	z.a.a = a0
	z.a.b = a1
	z.b.a = b0
	z.b.b.zero()
	z.c.zero()
	z.stype = FP12_SPARSE
	return z
}

// lineDouble evaluates the tangent line at A (doubling it in place) for
// Q = (Qx, Qy) in G1, following the D-type twist doubling formulas:
// a0 = -2*Y*Z*Qy, a1 = 3*b_twist*Z^2 - Y^2, b0 = 3*X^2*Qx.
func lineDouble(A *ECP2, Qx, Qy *Fp) Fp12 {
	X, Y, Z := A.x, A.y, A.z

	var yz, twoyz Fp2
	yz.mul(&Y, &Z)
	twoyz.add(&yz, &yz)
	a0scaled := mulFp2ByFp(&twoyz, Qy)
	var a0 Fp2
	a0.neg(&a0scaled)

	var y2, z2, b3z2 Fp2
	y2.sqr(&Y)
	z2.sqr(&Z)
	var threeB Fp2
	threeB.add(&twistB, &twistB)
	threeB.add(&threeB, &twistB)
	b3z2.mul(&z2, &threeB)
	var a1 Fp2
	a1.sub(&b3z2, &y2)

	var x2, threeX2 Fp2
	x2.sqr(&X)
	threeX2.add(&x2, &x2)
	threeX2.add(&threeX2, &x2)
	b0 := mulFp2ByFp(&threeX2, Qx)

	A.dbl()
	return sparseFromPair(a0, a1, b0)
}

// lineAdd evaluates the line through A and B (both on the twist, B
// affine), updating A to A+B, for Q = (Qx, Qy) in G1.
func lineAdd(A *ECP2, B *ECP2, Qx, Qy *Fp) Fp12 {
	X1, Y1, Z1 := A.x, A.y, A.z
	X2, Y2 := B.x, B.y

	var z1x2, t0, z1y2, t1 Fp2
	z1x2.mul(&Z1, &X2)
	t0.sub(&X1, &z1x2)
	z1y2.mul(&Z1, &Y2)
	t1.sub(&Y1, &z1y2)

	a0 := mulFp2ByFp(&t0, Qy)

	var t1x2, t0y2, a1 Fp2
	t1x2.mul(&t1, &X2)
	t0y2.mul(&t0, &Y2)
	a1.sub(&t1x2, &t0y2)

	var negt1, b0v Fp2
	negt1.neg(&t1)
	b0v = mulFp2ByFp(&negt1, Qx)

	A.add(B)
	return sparseFromPair(a0, a1, b0v)
}

// bnParams returns n = 6u+2 and n3 = 3n for the BN curve parameter u, the
// two values the Miller loop's bt-trick bit-differences against.
func bnParams() (n, n3 BIG) {
	var u BIG
	u.rcopy(&rom.CURVE_Bnx)

	var sixU BIG
	sixU = u
	sixU.shl(1)
	sixU.add(&u)
	sixU.norm()
	sixU.shl(1)
	n = sixU
	n.add(&BIG{2})
	n.norm()

	var three DBIG
	three.mul(&n, &BIG{3})
	lo, _ := three.split()
	n3 = lo
	n3.norm()
	return
}

// ate computes the Miller loop output for the pair (P in G2, Q in G1),
// following the 6u+2 NAF-style bt-trick loop and the BN R-ate fixup. The
// result is a raw Fp12 value, not yet projected into Gt (call fexp).
func ate(P *ECP2, Q *ECP) Fp12 {
	if P.isinf() || Q.isinf() {
		var one Fp12
		one.one()
		return one
	}
	n, n3 := bnParams()

	var Pa ECP2
	Pa.set(P)
	Pa.affine()
	var Qa ECP
	Qa.set(Q)
	Qa.affine()
	Qx, Qy := Qa.x, Qa.y

	var A ECP2
	A.set(&Pa)

	r := *new(Fp12).one()
	pos, neg, nb := nafDigits(&n, &n3)
	for i := nb - 2; i >= 1; i-- {
		r.sqr(&r)
		lv := lineDouble(&A, &Qx, &Qy)
		if pos.Test(uint(i)) {
			lv2 := lineAdd(&A, &Pa, &Qx, &Qy)
			lv.ssmul(&lv, &lv2)
		} else if neg.Test(uint(i)) {
			var negPa ECP2
			negPa.set(&Pa)
			negPa.neg()
			lv2 := lineAdd(&A, &negPa, &Qx, &Qy)
			lv.ssmul(&lv, &lv2)
		}
		r.ssmul(&r, &lv)
	}

	// R-ate fixup: conjugate r (p^6-Frobenius on the cyclotomic subgroup
	// is conjugation), negate A, and multiply in the two Frobenius-twisted
	// line evaluations that account for the difference between the
	// optimal-ate and naive-ate loop lengths.
	r.conj(&r)
	A.neg()

	f := frobeniusConstant()
	var K ECP2
	K.set(&Pa)
	K.frob(&f)
	lv := lineAdd(&A, &K, &Qx, &Qy)
	r.ssmul(&r, &lv)

	K.frob(&f)
	K.neg()
	lv = lineAdd(&A, &K, &Qx, &Qy)
	r.ssmul(&r, &lv)

	return r
}

// ate2 is the interleaved double-pairing Miller loop: one line evaluation
// in (A, Pa)/Q and one in (B, Ra)/S per bit, sharing the squaring of the
// shared accumulator.
func ate2(P *ECP2, Q *ECP, R *ECP2, S *ECP) Fp12 {
	if P.isinf() || Q.isinf() {
		return ate(R, S)
	}
	if R.isinf() || S.isinf() {
		return ate(P, Q)
	}
	n, n3 := bnParams()

	var Pa, Ra ECP2
	Pa.set(P)
	Pa.affine()
	Ra.set(R)
	Ra.affine()
	var Qa, Sa ECP
	Qa.set(Q)
	Qa.affine()
	Sa.set(S)
	Sa.affine()
	Qx, Qy := Qa.x, Qa.y
	Sx, Sy := Sa.x, Sa.y

	var A, B ECP2
	A.set(&Pa)
	B.set(&Ra)

	r := *new(Fp12).one()
	pos, negd, nb := nafDigits(&n, &n3)
	for i := nb - 2; i >= 1; i-- {
		r.sqr(&r)
		lv := lineDouble(&A, &Qx, &Qy)
		lv2 := lineDouble(&B, &Sx, &Sy)
		lv.ssmul(&lv, &lv2)

		if pos.Test(uint(i)) {
			l1 := lineAdd(&A, &Pa, &Qx, &Qy)
			l2 := lineAdd(&B, &Ra, &Sx, &Sy)
			l1.ssmul(&l1, &l2)
			lv.ssmul(&lv, &l1)
		} else if negd.Test(uint(i)) {
			var negPa, negRa ECP2
			negPa.set(&Pa)
			negPa.neg()
			negRa.set(&Ra)
			negRa.neg()
			l1 := lineAdd(&A, &negPa, &Qx, &Qy)
			l2 := lineAdd(&B, &negRa, &Sx, &Sy)
			l1.ssmul(&l1, &l2)
			lv.ssmul(&lv, &l1)
		}
		r.ssmul(&r, &lv)
	}

	r.conj(&r)
	A.neg()
	B.neg()
	f := frobeniusConstant()

	var K1, K2 ECP2
	K1.set(&Pa)
	K1.frob(&f)
	K2.set(&Ra)
	K2.frob(&f)
	l1 := lineAdd(&A, &K1, &Qx, &Qy)
	l2 := lineAdd(&B, &K2, &Sx, &Sy)
	l1.ssmul(&l1, &l2)
	r.ssmul(&r, &l1)

	K1.frob(&f)
	K1.neg()
	K2.frob(&f)
	K2.neg()
	l1 = lineAdd(&A, &K1, &Qx, &Qy)
	l2 = lineAdd(&B, &K2, &Sx, &Sy)
	l1.ssmul(&l1, &l2)
	r.ssmul(&r, &l1)

	return r
}

// mpAccumulator holds the per-bit-position partial products shared across
// several pairings, used by initmp/another/miller to avoid repeating the
// Miller-loop squaring once per pairing.
type mpAccumulator struct {
	r [rom.ATE_BITS]Fp12
}

// initmp allocates ATE_BITS accumulators, each initialized to 1.
func initmp() *mpAccumulator {
	m := &mpAccumulator{}
	for i := range m.r {
		m.r[i].one()
	}
	return m
}

// another accumulates the line-function product for one more (P,Q) pair
// into each bit-position slot without performing the outer squaring (that
// happens once, in miller).
func another(m *mpAccumulator, P *ECP2, Q *ECP) {
	if P.isinf() || Q.isinf() {
		return
	}
	n, n3 := bnParams()

	var Pa ECP2
	Pa.set(P)
	Pa.affine()
	var Qa ECP
	Qa.set(Q)
	Qa.affine()
	Qx, Qy := Qa.x, Qa.y

	var A ECP2
	A.set(&Pa)
	pos, neg, nb := nafDigits(&n, &n3)
	for i := nb - 2; i >= 1; i-- {
		lv := lineDouble(&A, &Qx, &Qy)
		if pos.Test(uint(i)) {
			lv2 := lineAdd(&A, &Pa, &Qx, &Qy)
			lv.ssmul(&lv, &lv2)
		} else if neg.Test(uint(i)) {
			var negPa ECP2
			negPa.set(&Pa)
			negPa.neg()
			lv2 := lineAdd(&A, &negPa, &Qx, &Qy)
			lv.ssmul(&lv, &lv2)
		}
		m.r[i].ssmul(&m.r[i], &lv)
	}
}

// miller performs the outer squaring sweep over the accumulated
// bit-position products, combining them into the final Miller-loop output
// equivalent to the sum of ate(P_i, Q_i) over every pair passed to another.
func miller(m *mpAccumulator) Fp12 {
	r := *new(Fp12).one()
	for i := len(m.r) - 2; i >= 1; i-- {
		r.sqr(&r)
		r.ssmul(&r, &m.r[i])
	}
	return r
}

// fexp raises the Miller-loop output to (p^12-1)/r, the final
// exponentiation, splitting into an easy part (lands in the cyclotomic
// subgroup) and the Devegili-Scott-Dahab hard part for BN curves.
func fexp(m *Fp12) Fp12 {
	var t Fp12
	t.set(m)

	// easy part: m <- conj(m)*m^-1, then m <- m * Frob^2(m).
	var inv, conj Fp12
	inv.inverse(&t)
	conj.conj(&t)
	var e Fp12
	e.mul(&conj, &inv)

	f := frobeniusConstant()
	var frob2e Fp12
	frob2e.frob(&e, &f)
	frob2e.frob(&frob2e, &f)
	e.mul(&e, &frob2e)

	// hard part (Devegili-Scott-Dahab addition chain for BN curves).
	var u BIG
	u.rcopy(&rom.CURVE_Bnx)

	var fp, fp2, fp3 Fp12
	fp.frob(&e, &f)
	fp2.frob(&fp, &f)
	fp3.frob(&fp2, &f)

	var fu, fu2, fu3 Fp12
	fu.pow(&e, &u)
	fu2.pow(&fu, &u)
	fu3.pow(&fu2, &u)

	var y3, fu2p, fu3p, y2 Fp12
	y3.frob(&fu, &f)
	fu2p.frob(&fu2, &f)
	fu3p.frob(&fu3, &f)
	y2.frob(&fu2, &f)
	y2.frob(&y2, &f)

	var y0 Fp12
	y0.mul(&fp, &fp2)
	y0.mul(&y0, &fp3)

	var y1, y5, y4, y6 Fp12
	y1.conj(&e)
	y5.conj(&fu2)
	y3.conj(&y3)
	y4.mul(&fu, &fu2p)
	y4.conj(&y4)
	y6.mul(&fu3, &fu3p)
	y6.conj(&y6)

	var t0, t1 Fp12
	t0.usqr(&y6)
	t0.mul(&t0, &y4)
	t0.mul(&t0, &y5)
	t1.mul(&y3, &y5)
	t1.mul(&t1, &t0)
	t0.mul(&t0, &y2)
	t1.usqr(&t1)
	t1.mul(&t1, &t0)
	t1.usqr(&t1)
	t0.mul(&t1, &y1)
	t1.mul(&t1, &y0)
	t0.usqr(&t0)
	t0.mul(&t0, &t1)

	return t0
}

// G1mul computes e*P using the GLV decomposition: the endomorphism
// psi(x,y) = (Cru*x, y) realizes multiplication by the lambda eigenvalue,
// so e*P = u0*P + u1*psi(P), computed jointly via mul2.
func G1mul(P *ECP, e *BIG) ECP {
	ee := *e
	var order BIG
	order.rcopy(&rom.CURVE_Order)
	ee.mod(&order)

	if !rom.USE_GLV {
		return P.mul(&ee)
	}

	u, neg := glv(&ee)

	var p0 ECP
	p0.set(P)
	if neg[0] {
		p0.neg()
	}

	var cru BIG
	cru.rcopy(&rom.CURVE_Cru)
	var cruFp Fp
	cruFp.nres(&cru)

	var Q ECP
	Q.set(P)
	qx := Q.getX()
	qx.mul(&qx, &cruFp)
	qy := Q.getY()
	Q.setxy(&qx, &qy)
	if neg[1] {
		Q.neg()
	}

	return p0.mul2(&u[0], &Q, &u[1])
}

// G2mul computes e*P using the Galbraith-Scott decomposition: Q[i] =
// Frobenius^i(P), signs fixed by gs, combined via ECP2.mul4.
func G2mul(P *ECP2, e *BIG) ECP2 {
	ee := *e
	var order BIG
	order.rcopy(&rom.CURVE_Order)
	ee.mod(&order)

	if !rom.USE_GS_G2 {
		return P.mul(&ee)
	}

	u, neg := gs(&ee)
	f := frobeniusConstant()

	var q [4]ECP2
	q[0].set(P)
	for i := 1; i < 4; i++ {
		q[i].set(&q[i-1])
		q[i].frob(&f)
	}
	for i := 0; i < 4; i++ {
		if neg[i] {
			q[i].neg()
		}
	}

	var p0 ECP2
	return p0.mul4(q, [4]*BIG{&u[0], &u[1], &u[2], &u[3]})
}

// GTpow computes d^e in Gt using the Galbraith-Scott decomposition over
// Fp12.pow4, conjugating the Frobenius-conjugate bases whose sign came out
// negative (conjugation is inversion inside the cyclotomic subgroup).
func GTpow(d *Fp12, e *BIG) Fp12 {
	ee := *e
	var order BIG
	order.rcopy(&rom.CURVE_Order)
	ee.mod(&order)

	if !rom.USE_GS_GT {
		var r Fp12
		r.pow(d, &ee)
		return r
	}

	u, neg := gs(&ee)
	f := frobeniusConstant()

	var g [4]*Fp12
	var gv [4]Fp12
	gv[0] = *d
	gv[1].frob(d, &f)
	gv[2].frob(&gv[1], &f)
	gv[3].frob(&gv[2], &f)
	for i := 0; i < 4; i++ {
		if neg[i] {
			gv[i].conj(&gv[i])
		}
		g[i] = &gv[i]
	}

	return pow4(g, [4]*BIG{&u[0], &u[1], &u[2], &u[3]})
}
