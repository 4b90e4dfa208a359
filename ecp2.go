package bn254

// ECP2 is a G2 point in projective coordinates over Fp2, on the D-type
// sextic twist y^2*z = x^3 + (b/(1+i))*z^3. The point at infinity is z = 0.
type ECP2 struct {
	x, y, z Fp2
}

var twistB Fp2

func init() {
	b := fp2FromInts(CURVE_B_I_const, 0)
	twistB.divIP(&b)
}

// CURVE_B_I_const mirrors rom.CURVE_B_I (this file does not import rom);
// kept as a package-level const for readability at the call site.
const CURVE_B_I_const = 3

func (p *ECP2) inf() *ECP2 {
	p.x.zero()
	p.y.one()
	p.z.zero()
	return p
}

func (p *ECP2) isinf() bool {
	return p.z.iszero()
}

func (p *ECP2) set(q *ECP2) *ECP2 {
	*p = *q
	return p
}

func (p *ECP2) equals(q *ECP2) bool {
	if p.isinf() && q.isinf() {
		return true
	}
	if p.isinf() != q.isinf() {
		return false
	}
	var l, r Fp2
	l.mul(&p.x, &q.z)
	r.mul(&q.x, &p.z)
	if !l.equals(&r) {
		return false
	}
	l.mul(&p.y, &q.z)
	r.mul(&q.y, &p.z)
	return l.equals(&r)
}

func (p *ECP2) neg() *ECP2 {
	p.y.neg(&p.y)
	return p
}

func (p *ECP2) setxy(x, y *Fp2) *ECP2 {
	var y2, x3 Fp2
	y2.sqr(y)
	x3.sqr(x)
	x3.mul(&x3, x)
	x3.add(&x3, &twistB)
	if !y2.equals(&x3) {
		p.inf()
		return p
	}
	p.x = *x
	p.y = *y
	p.z.one()
	return p
}

func (p *ECP2) affine() *ECP2 {
	if p.isinf() {
		return p
	}
	var zinv Fp2
	zinv.inverse(&p.z)
	p.x.mul(&p.x, &zinv)
	p.y.mul(&p.y, &zinv)
	p.z.one()
	return p
}

// dbl is the complete Renes-Costello-Batina doubling formula, a=0, lifted
// to Fp2 coefficients.
func (p *ECP2) dbl() *ECP2 {
	var t0, t1, t2, x3, y3, z3, b3 Fp2
	b3.add(&twistB, &twistB)
	b3.add(&b3, &twistB)

	t0.sqr(&p.y)
	z3.add(&t0, &t0)
	z3.add(&z3, &z3)
	z3.add(&z3, &z3)
	t1.mul(&p.y, &p.z)
	t2.sqr(&p.z)
	t2.mul(&t2, &b3)
	x3.mul(&t2, &z3)
	y3.add(&t0, &t2)
	z3.mul(&t1, &z3)
	t1.add(&t2, &t2)
	t2.add(&t1, &t2)
	t0.sub(&t0, &t2)
	y3.mul(&t0, &y3)
	y3.add(&x3, &y3)
	t1.mul(&p.x, &p.y)
	x3.mul(&t0, &t1)
	x3.add(&x3, &x3)

	p.x = x3
	p.y = y3
	p.z = z3
	return p
}

// add is the complete Renes-Costello-Batina addition formula lifted to Fp2.
func (p *ECP2) add(q *ECP2) *ECP2 {
	var t0, t1, t2, t3, t4, x3, y3, z3, b3 Fp2
	b3.add(&twistB, &twistB)
	b3.add(&b3, &twistB)

	t0.mul(&p.x, &q.x)
	t1.mul(&p.y, &q.y)
	t2.mul(&p.z, &q.z)
	t3.add(&p.x, &p.y)
	t4.add(&q.x, &q.y)
	t3.mul(&t3, &t4)
	t4.add(&t0, &t1)
	t3.sub(&t3, &t4)
	t4.add(&p.y, &p.z)
	x3.add(&q.y, &q.z)
	t4.mul(&t4, &x3)
	x3.add(&t1, &t2)
	t4.sub(&t4, &x3)
	x3.add(&p.x, &p.z)
	y3.add(&q.x, &q.z)
	x3.mul(&x3, &y3)
	y3.add(&t0, &t2)
	y3.sub(&x3, &y3)
	x3.add(&t0, &t0)
	t0.add(&x3, &t0)
	t2.mul(&t2, &b3)
	z3.add(&t1, &t2)
	t1.sub(&t1, &t2)
	y3.mul(&y3, &b3)
	x3.mul(&t4, &y3)
	t2.mul(&t3, &t1)
	x3.sub(&t2, &x3)
	y3.mul(&y3, &t0)
	t1.mul(&t1, &z3)
	y3.add(&t1, &y3)
	t0.mul(&t0, &t3)
	z3.mul(&z3, &t4)
	z3.add(&z3, &t0)

	p.x = x3
	p.y = y3
	p.z = z3
	return p
}

func (p *ECP2) sub(q *ECP2) *ECP2 {
	var m ECP2
	m.set(q)
	m.neg()
	return p.add(&m)
}

// frob applies the Frobenius endomorphism of the twist using a ROM Fp2
// element X: x <- conj(x)*X^2, y <- conj(y)*X^3, z <- conj(z).
func (p *ECP2) frob(x *Fp2) *ECP2 {
	var x2, x3 Fp2
	x2.sqr(x)
	x3.mul(&x2, x)

	var cx, cy, cz Fp2
	cx.conj(&p.x)
	cy.conj(&p.y)
	cz.conj(&p.z)

	p.x.mul(&cx, &x2)
	p.y.mul(&cy, &x3)
	p.z = cz
	return p
}

// selectECP2 is the ECP2 counterpart of selectECP: a constant-time pick of
// +-W[|b|-1] for a signed, never-zero window index b.
func selectECP2(z *ECP2, w []ECP2, b int32) {
	m := b >> 31
	babs := ((b ^ m) - m) - 1

	var p ECP2
	p.inf()
	for i := 0; i < len(w); i++ {
		d := int(teq(int32(i), babs))
		dst := [6]*Fp{&p.x.a, &p.x.b, &p.y.a, &p.y.b, &p.z.a, &p.z.b}
		src := [6]*Fp{&w[i].x.a, &w[i].x.b, &w[i].y.a, &w[i].y.b, &w[i].z.a, &w[i].z.b}
		for k := range dst {
			dst[k].f.cmove(&src[k].f, d)
			dst[k].XES ^= (dst[k].XES ^ src[k].XES) & -int64(d)
		}
	}
	var neg ECP2
	neg.set(&p)
	neg.neg()
	mneg := int(m & 1)
	p.x.a.f.cmove(&neg.x.a.f, mneg)
	p.x.b.f.cmove(&neg.x.b.f, mneg)
	p.y.a.f.cmove(&neg.y.a.f, mneg)
	p.y.b.f.cmove(&neg.y.b.f, mneg)
	p.z.a.f.cmove(&neg.z.a.f, mneg)
	p.z.b.f.cmove(&neg.z.b.f, mneg)
	*z = p
}

// mul mirrors ECP.mul's signed 4-bit window with parity correction, lifted
// to the twist: signedWindowDigits recodes the whole scalar up front so the
// round-to-odd carry at an even window is absorbed by the neighboring
// window exactly, rather than patched in place.
func (p *ECP2) mul(e *BIG) ECP2 {
	if e.iszilch() || p.isinf() {
		var inf ECP2
		inf.inf()
		return inf
	}
	var w [8]ECP2
	w[0].set(p)
	var p2 ECP2
	p2.set(p)
	p2.dbl()
	for i := 1; i < 8; i++ {
		w[i].set(&w[i-1])
		w[i].add(&p2)
	}

	cu := *e
	cu.norm()
	parity := cu.parity()
	var c ECP2
	c.inf()
	if parity == 0 {
		c.set(p)
		cu.add(&BIG{1})
		cu.norm()
	}

	digits := signedWindowDigits(&cu)
	top := len(digits) - 1
	var r ECP2
	selectECP2(&r, w[:], digits[top])
	for i := top - 1; i >= 0; i-- {
		for k := 0; k < 4; k++ {
			r.dbl()
		}
		var t ECP2
		selectECP2(&t, w[:], digits[i])
		r.add(&t)
	}
	if !c.isinf() {
		r.sub(&c)
	}
	r.affine()
	return r
}

// mul4 is the sign-pivot multi-scalar used by GS-decomposed G2
// multiplication: given four points Q[i] = Frob^i(P) (signs already fixed
// by the caller so every u[i] is non-negative) it computes
// sum_i u[i]*Q[i] via a shared doubling ladder over the bits of the
// longest u[i].
func (p *ECP2) mul4(q [4]ECP2, u [4]*BIG) ECP2 {
	// table[k] = sum of q[i] for every bit i set in k, k in [0,16).
	var table [16]ECP2
	table[0].inf()
	for k := 1; k < 16; k++ {
		lowest := k & (-k)
		i := 0
		for lowest > 1 {
			lowest >>= 1
			i++
		}
		table[k].set(&table[k&^(1<<uint(i))])
		table[k].add(&q[i])
	}

	maxb := 0
	for _, v := range u {
		if n := v.nbits(); n > maxb {
			maxb = n
		}
	}
	var r ECP2
	r.inf()
	for i := maxb - 1; i >= 0; i-- {
		r.dbl()
		idx := int32(0)
		for k := 0; k < 4; k++ {
			idx |= int32(u[k].bit(i)) << uint(k)
		}
		var sel ECP2
		sel.inf()
		for k := 0; k < 16; k++ {
			mask := teq(int32(k), idx)
			if mask != 0 {
				sel = table[k]
			}
		}
		r.add(&sel)
	}
	r.affine()
	return r
}

// toBytes serializes the 128-byte uncompressed form: X.a||X.b||Y.a||Y.b.
func (p *ECP2) toBytes(out []byte) {
	var t ECP2
	t.set(p)
	t.affine()
	xa := t.x.a.redc()
	xb := t.x.b.redc()
	ya := t.y.a.redc()
	yb := t.y.b.redc()
	xa.toBytes(out[0:MODBYTES])
	xb.toBytes(out[MODBYTES : 2*MODBYTES])
	ya.toBytes(out[2*MODBYTES : 3*MODBYTES])
	yb.toBytes(out[3*MODBYTES : 4*MODBYTES])
}

// fromBytes decodes the 128-byte uncompressed form; out-of-range or
// non-curve coordinates decode to infinity.
func (p *ECP2) fromBytes(in []byte) *ECP2 {
	var xa, xb, ya, yb BIG
	xa.fromBytes(in[0:MODBYTES])
	xb.fromBytes(in[MODBYTES : 2*MODBYTES])
	ya.fromBytes(in[2*MODBYTES : 3*MODBYTES])
	yb.fromBytes(in[3*MODBYTES : 4*MODBYTES])
	if xa.cmp(&modulus) >= 0 || xb.cmp(&modulus) >= 0 || ya.cmp(&modulus) >= 0 || yb.cmp(&modulus) >= 0 {
		p.inf()
		return p
	}
	var x, y Fp2
	x.a.nres(&xa)
	x.b.nres(&xb)
	y.a.nres(&ya)
	y.b.nres(&yb)
	p.setxy(&x, &y)
	return p
}
