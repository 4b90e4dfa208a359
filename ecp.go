package bn254

import "github.com/giuliop/bn254/rom"

// ECP is a G1 point in projective (Jacobian-free) coordinates over Fp:
// y^2*z = x^3 + b*z^3. The point at infinity is z = 0.
type ECP struct {
	x, y, z Fp
}

var curveB Fp

func init() {
	curveB = fpFromInt(rom.CURVE_B_I)
}

func (p *ECP) inf() *ECP {
	p.x.zero()
	p.y = fpFromInt(1)
	p.z.zero()
	return p
}

func (p *ECP) isinf() bool {
	return p.z.iszero()
}

func (p *ECP) set(q *ECP) *ECP {
	*p = *q
	return p
}

func (p *ECP) equals(q *ECP) bool {
	if p.isinf() && q.isinf() {
		return true
	}
	if p.isinf() != q.isinf() {
		return false
	}
	var l, r Fp
	l.mul(&p.x, &q.z)
	r.mul(&q.x, &p.z)
	if !l.equals(&r) {
		return false
	}
	l.mul(&p.y, &q.z)
	r.mul(&q.y, &p.z)
	return l.equals(&r)
}

// neg negates y.
func (p *ECP) neg() *ECP {
	p.y.neg(&p.y)
	return p
}

// setxy installs an affine point, checking the curve equation; on failure
// sets p to infinity.
func (p *ECP) setxy(x, y *Fp) *ECP {
	var y2, x3 Fp
	y2.sqr(y)
	x3.sqr(x)
	x3.mul(&x3, x)
	x3.add(&x3, &curveB)
	if !y2.equals(&x3) {
		p.inf()
		return p
	}
	p.x = *x
	p.y = *y
	p.z = fpFromInt(1)
	return p
}

// setxi recovers y from x and a sign bit s = parity(y); sets p to infinity
// if x is not on the curve.
func (p *ECP) setxi(x *Fp, s int) *ECP {
	var x3 Fp
	x3.sqr(x)
	x3.mul(&x3, x)
	x3.add(&x3, &curveB)
	var y Fp
	if !y.sqrt(&x3) {
		p.inf()
		return p
	}
	yb := y.redc()
	if int(yb.parity()) != s {
		y.neg(&y)
	}
	p.x = *x
	p.y = y
	p.z = fpFromInt(1)
	return p
}

// affine normalizes p to z = 1 (or leaves infinity untouched).
func (p *ECP) affine() *ECP {
	if p.isinf() {
		return p
	}
	var zinv Fp
	zinv.inverse(&p.z)
	p.x.mul(&p.x, &zinv)
	p.y.mul(&p.y, &zinv)
	p.z = fpFromInt(1)
	return p
}

func (p *ECP) getX() Fp {
	var t ECP
	t.set(p)
	t.affine()
	return t.x
}

func (p *ECP) getY() Fp {
	var t ECP
	t.set(p)
	t.affine()
	return t.y
}

// dbl is the complete Renes-Costello-Batina doubling formula for a=0
// curves (algorithm 9 of their paper), 6 field multiplications.
func (p *ECP) dbl() *ECP {
	var t0, t1, t2, x3, y3, z3 Fp
	b3 := fpFromInt(3 * rom.CURVE_B_I)

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

// add is the complete Renes-Costello-Batina addition formula for a=0
// curves, 12 field multiplications, exception-free (handles P=Q, P=-Q).
func (p *ECP) add(q *ECP) *ECP {
	var t0, t1, t2, t3, t4, x3, y3, z3 Fp
	b3 := fpFromInt(3 * rom.CURVE_B_I)

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

// sub adds -q.
func (p *ECP) sub(q *ECP) *ECP {
	var m ECP
	m.set(q)
	m.neg()
	return p.add(&m)
}

// selectECP is a constant-time pick of +-W[|b|-1] for a signed, never-zero
// window index b (as produced by encodeWindowDigit), using cmove/teq so the
// table access and sign fixup do not branch on b.
func selectECP(z *ECP, w []ECP, b int32) {
	m := b >> 31
	babs := ((b ^ m) - m) - 1

	var p ECP
	p.inf()
	for i := 0; i < len(w); i++ {
		d := int(teq(int32(i), babs))
		dst := [3]*Fp{&p.x, &p.y, &p.z}
		src := [3]*Fp{&w[i].x, &w[i].y, &w[i].z}
		for k := range dst {
			dst[k].f.cmove(&src[k].f, d)
			dst[k].XES ^= (dst[k].XES ^ src[k].XES) & -int64(d)
		}
	}
	var neg ECP
	neg.set(&p)
	neg.neg()
	mneg := int(m & 1)
	p.x.f.cmove(&neg.x.f, mneg)
	p.y.f.cmove(&neg.y.f, mneg)
	p.z.f.cmove(&neg.z.f, mneg)
	*z = p
}

// mul computes e*P using a signed 4-bit window over odd multiples. A
// parity-correction point C is added before the ladder and subtracted
// afterward so the recoded exponent is always odd, and signedWindowDigits
// recodes the whole scalar up front so every window's "round to odd" carry
// is absorbed into its neighbor correctly instead of patched in place.
func (p *ECP) mul(e *BIG) ECP {
	if e.iszilch() || p.isinf() {
		var inf ECP
		inf.inf()
		return inf
	}

	var w [8]ECP
	w[0].set(p)
	var p2 ECP
	p2.set(p)
	p2.dbl()
	for i := 1; i < 8; i++ {
		w[i].set(&w[i-1])
		w[i].add(&p2)
	}

	cu := *e
	cu.norm()
	parity := cu.parity()
	var c ECP
	c.inf()
	if parity == 0 {
		c.set(p)
		cu.add(&BIG{1})
		cu.norm()
	}

	digits := signedWindowDigits(&cu)
	top := len(digits) - 1
	var r ECP
	selectECP(&r, w[:], digits[top])
	for i := top - 1; i >= 0; i-- {
		for k := 0; k < 4; k++ {
			r.dbl()
		}
		var t ECP
		selectECP(&t, w[:], digits[i])
		r.add(&t)
	}
	if !c.isinf() {
		r.sub(&c)
	}
	r.affine()
	return r
}

// mul2 computes a*P + b*Q via Shamir's trick: a joint table of the four
// subset sums {O, P, Q, P+Q} indexed by one bit each of a and b per
// iteration, halving the doublings compared to two independent mul calls.
func (p *ECP) mul2(e *BIG, q *ECP, f *BIG) ECP {
	var table [4]ECP
	table[0].inf()
	table[1].set(p)
	table[2].set(q)
	table[3].set(p)
	table[3].add(q)

	na, nb := e.nbits(), f.nbits()
	nbit := na
	if nb > nbit {
		nbit = nb
	}
	var r ECP
	r.inf()
	for i := nbit - 1; i >= 0; i-- {
		r.dbl()
		idx := int32(e.bit(i)) | (int32(f.bit(i)) << 1)
		var sel ECP
		sel.inf()
		for k := 0; k < 4; k++ {
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

// toBytes serializes p; compress=true emits the 33-byte tagged-X form,
// false emits the 65-byte uncompressed 0x04||X||Y form.
func (p *ECP) toBytes(out []byte, compress bool) {
	var t ECP
	t.set(p)
	t.affine()
	xb := t.x.redc()
	if compress {
		out[0] = 0x02
		yb := t.y.redc()
		if yb.parity() == 1 {
			out[0] = 0x03
		}
		xb.toBytes(out[1 : 1+MODBYTES])
		return
	}
	out[0] = 0x04
	xb.toBytes(out[1 : 1+MODBYTES])
	yb := t.y.redc()
	yb.toBytes(out[1+MODBYTES : 1+2*MODBYTES])
}

// fromBytes decodes p from the tagged wire encoding; out-of-range
// coordinates or non-curve points decode to infinity.
func (p *ECP) fromBytes(in []byte) *ECP {
	if len(in) == 0 {
		p.inf()
		return p
	}
	tag := in[0]
	var x BIG
	x.fromBytes(in[1 : 1+MODBYTES])
	if x.cmp(&modulus) >= 0 {
		p.inf()
		return p
	}
	var xf Fp
	xf.nres(&x)

	switch tag {
	case 0x02, 0x03:
		p.setxi(&xf, int(tag-0x02))
	case 0x04:
		var y BIG
		y.fromBytes(in[1+MODBYTES : 1+2*MODBYTES])
		if y.cmp(&modulus) >= 0 {
			p.inf()
			return p
		}
		var yf Fp
		yf.nres(&y)
		p.setxy(&xf, &yf)
	default:
		p.inf()
	}
	return p
}

func (p *ECP) frob() *ECP {
	// The p-power Frobenius is the identity on G1 (Fp-rational points), so
	// this exists only for interface symmetry with ECP2.
	return p
}
