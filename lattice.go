package bn254

import "github.com/giuliop/bn254/rom"

// sbig is a sign-and-magnitude big integer, used only inside the GLV/GS
// Babai-rounding decomposition where intermediate lattice coordinates can
// go negative; BIG itself is always non-negative (see big.go).
type sbig struct {
	mag BIG
	neg bool
}

func sbigFromInt64(v int64) sbig {
	neg := v < 0
	if neg {
		v = -v
	}
	var b BIG
	b.setInt(v)
	return sbig{mag: b, neg: neg}
}

func sbigFromBig(b BIG) sbig {
	return sbig{mag: b, neg: false}
}

func (a sbig) add(b sbig) sbig {
	if a.neg == b.neg {
		m := a.mag
		m.add(&b.mag)
		m.norm()
		return sbig{mag: m, neg: a.neg}
	}
	if a.mag.cmp(&b.mag) >= 0 {
		m := a.mag
		m.sub(&b.mag)
		m.norm()
		return sbig{mag: m, neg: a.neg}
	}
	m := b.mag
	m.sub(&a.mag)
	m.norm()
	return sbig{mag: m, neg: b.neg}
}

func (a sbig) sub(b sbig) sbig {
	return a.add(sbig{mag: b.mag, neg: !b.neg})
}

// mulInt multiplies a by a small machine-word coefficient c.
func (a sbig) mulInt(c int64) sbig {
	coeff := sbigFromInt64(c)
	d := mulBig(&a.mag, &coeff.mag)
	lo, _ := d.split()
	return sbig{mag: lo, neg: a.neg != coeff.neg}
}

// mulBigMag multiplies a by a non-negative BIG magnitude m.
func (a sbig) mulBigMag(m *BIG) sbig {
	d := mulBig(&a.mag, m)
	lo, _ := d.split()
	return sbig{mag: lo, neg: a.neg}
}

// mulBig is a*b as an unsigned product, widened into a DBIG (safe for every
// caller here: curve-parameter-sized coefficients times a sub-order
// scalar, product well within DBIG's double width).
func mulBig(a, b *BIG) DBIG {
	var d DBIG
	d.mul(a, b)
	return d
}

// roundDivFromProduct computes round(|product| / den) given the signed
// product's magnitude, by floor-dividing then checking whether twice the
// remainder reaches the divisor (round half away from zero).
func roundDivFromProduct(product *DBIG, den *BIG) BIG {
	work := *product
	q := work.ddivmod(den)
	rem, _ := work.split()
	rem.norm()
	var twice BIG
	twice = rem
	twice.add(&rem)
	twice.norm()
	if twice.cmp(den) >= 0 {
		q.add(&BIG{1})
		q.norm()
	}
	return q
}

// roundCoeff computes round(coeff * e / order) as a signed value, where
// coeff is a small machine-word lattice coefficient and e, order are plain
// non-negative BIGs.
func roundCoeff(coeff int64, e, order *BIG) sbig {
	c := sbigFromInt64(coeff)
	prod := mulBig(&c.mag, e)
	q := roundDivFromProduct(&prod, order)
	return sbig{mag: q, neg: c.neg}
}

// glv splits a scalar e (already reduced mod the curve order) into two
// sub-scalars u0, u1 with e == u0 + u1*lambda (mod r), using the
// precomputed 2-dimensional lattice basis CURVE_W (long coordinates) and
// CURVE_SB (short coordinates): basis vectors v0 = (CURVE_W[0],
// CURVE_SB[0][1]), v1 = (CURVE_W[1], CURVE_SB[1][1]). Standard Babai
// rounding (Guide to Elliptic Curve Cryptography, algorithm 3.74):
// c0 = round(b1*e/r), c1 = round(-b0*e/r), then (k0,k1) = (e,0) -
// c0*v0 - c1*v1.
func glv(e *BIG) (u [2]BIG, neg [2]bool) {
	var order BIG
	order.rcopy(&rom.CURVE_Order)

	var a0, a1 BIG
	a0.rcopy(&rom.CURVE_W[0])
	a1.rcopy(&rom.CURVE_W[1])
	b0 := rom.CURVE_SB[0][1]
	b1 := rom.CURVE_SB[1][1]

	c0 := roundCoeff(b1, e, &order)
	c1 := roundCoeff(-b0, e, &order)

	k0 := sbigFromBig(*e)
	k0 = k0.sub(c0.mulBigMag(&a0))
	k0 = k0.sub(c1.mulBigMag(&a1))

	k1 := sbig{}
	k1 = k1.sub(c0.mulInt(b0))
	k1 = k1.sub(c1.mulInt(b1))

	u[0], neg[0] = k0.mag, k0.neg
	u[1], neg[1] = k1.mag, k1.neg
	return
}

// gs splits a scalar e into four sub-scalars using the Galbraith-Scott
// 4-dimensional basis: CURVE_WB holds the four independent Babai-rounding
// coefficients (the "long" coordinate of each basis vector, the 4-way
// analogue of glv's CURVE_W), and CURVE_BB's rows give each basis vector's
// full (k0,k1,k2,k3) lattice coordinates.
func gs(e *BIG) (u [4]BIG, neg [4]bool) {
	var order BIG
	order.rcopy(&rom.CURVE_Order)

	var c [4]sbig
	for j := 0; j < 4; j++ {
		c[j] = roundCoeff(rom.CURVE_WB[j], e, &order)
	}

	k := [4]sbig{{mag: *e}, {}, {}, {}}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			coeff := rom.CURVE_BB[j][i]
			if coeff == 0 {
				continue
			}
			term := c[j].mulInt(coeff)
			k[i] = k[i].sub(term)
		}
	}

	for i := 0; i < 4; i++ {
		u[i], neg[i] = k[i].mag, k[i].neg
	}
	return
}
