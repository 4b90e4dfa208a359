package bn254

import "github.com/giuliop/bn254/rom"

// Fp2 is a + i*b with i^2 = -1.
type Fp2 struct {
	a, b Fp
}

func fp2FromInts(a, b int64) Fp2 {
	return Fp2{fpFromInt(a), fpFromInt(b)}
}

func (z *Fp2) zero() *Fp2 {
	z.a.zero()
	z.b.zero()
	return z
}

func (z *Fp2) one() *Fp2 {
	z.a = fpFromInt(1)
	z.b.zero()
	return z
}

func (z *Fp2) iszero() bool {
	return z.a.iszero() && z.b.iszero()
}

func (z *Fp2) equals(y *Fp2) bool {
	return z.a.equals(&y.a) && z.b.equals(&y.b)
}

func (z *Fp2) set(x *Fp2) *Fp2 {
	*z = *x
	return z
}

func (z *Fp2) add(x, y *Fp2) *Fp2 {
	z.a.add(&x.a, &y.a)
	z.b.add(&x.b, &y.b)
	return z
}

func (z *Fp2) sub(x, y *Fp2) *Fp2 {
	z.a.sub(&x.a, &y.a)
	z.b.sub(&x.b, &y.b)
	return z
}

func (z *Fp2) neg(x *Fp2) *Fp2 {
	z.a.neg(&x.a)
	z.b.neg(&x.b)
	return z
}

// conj sets z = conjugate(x) = a - i*b.
func (z *Fp2) conj(x *Fp2) *Fp2 {
	z.a = x.a
	z.b.neg(&x.b)
	return z
}

// mul is Karatsuba: (a+ib)(c+id) = (ac-bd) + i((a+b)(c+d)-ac-bd), three Fp
// multiplications instead of four.
func (z *Fp2) mul(x, y *Fp2) *Fp2 {
	var ac, bd, t0, t1, cross Fp
	ac.mul(&x.a, &y.a)
	bd.mul(&x.b, &y.b)
	t0.add(&x.a, &x.b)
	t1.add(&y.a, &y.b)
	cross.mul(&t0, &t1)
	var re, im Fp
	re.sub(&ac, &bd)
	im.sub(&cross, &ac)
	im.sub(&im, &bd)
	z.a = re
	z.b = im
	return z
}

// sqr is (a+ib)^2 = (a+b)(a-b) + i*2ab.
func (z *Fp2) sqr(x *Fp2) *Fp2 {
	var apb, amb, re, im, ab Fp
	apb.add(&x.a, &x.b)
	amb.sub(&x.a, &x.b)
	re.mul(&apb, &amb)
	ab.mul(&x.a, &x.b)
	im.add(&ab, &ab)
	z.a = re
	z.b = im
	return z
}

// mulIP multiplies x by (1+i).
func (z *Fp2) mulIP(x *Fp2) *Fp2 {
	var re, im Fp
	re.sub(&x.a, &x.b)
	im.add(&x.a, &x.b)
	z.a = re
	z.b = im
	return z
}

// timesI multiplies x by i: (a+ib)*i = -b + ia.
func (z *Fp2) timesI(x *Fp2) *Fp2 {
	var re Fp
	re.neg(&x.b)
	z.b = x.a
	z.a = re
	return z
}

// divIP2 divides x by (1+i)/2 = x*(1-i).
func (z *Fp2) divIP2(x *Fp2) *Fp2 {
	var re, im Fp
	re.add(&x.a, &x.b)
	im.sub(&x.b, &x.a)
	z.a = re
	z.b = im
	return z
}

// divIP divides x by (1+i) = x*(1-i)/2.
func (z *Fp2) divIP(x *Fp2) *Fp2 {
	z.divIP2(x)
	two := fpFromInt(2)
	var twoInv Fp
	twoInv.inverse(&two)
	z.a.mul(&z.a, &twoInv)
	z.b.mul(&z.b, &twoInv)
	return z
}

// inverse computes x^-1 = conj(x) / norm(x), norm(x) = a^2+b^2.
func (z *Fp2) inverse(x *Fp2) *Fp2 {
	var a2, b2, n, ninv Fp
	a2.sqr(&x.a)
	b2.sqr(&x.b)
	n.add(&a2, &b2)
	ninv.inverse(&n)
	z.a.mul(&x.a, &ninv)
	z.b.neg(&x.b)
	z.b.mul(&z.b, &ninv)
	return z
}

// sqrt computes a square root of x = a+ib, when one exists, via the
// standard algebraic identity: let n = sqrt(a^2+b^2) in Fp (picking the
// sign that makes (a+n)/2 a residue), w = sqrt((a+n)/2), then x = (w +
// i*b/(2w))^2.
func (z *Fp2) sqrt(x *Fp2) bool {
	if x.iszero() {
		z.zero()
		return true
	}
	var a2, b2, nrm Fp
	a2.sqr(&x.a)
	b2.sqr(&x.b)
	nrm.add(&a2, &b2)
	var n Fp
	if !n.sqrt(&nrm) {
		return false
	}
	two := fpFromInt(2)
	var twoInv Fp
	twoInv.inverse(&two)

	var apn, amn, w2 Fp
	apn.add(&x.a, &n)
	amn.neg(&n)
	amn.add(&x.a, &amn)

	var w Fp
	w2.mul(&apn, &twoInv)
	if !w.sqrt(&w2) {
		w2.mul(&amn, &twoInv)
		if !w.sqrt(&w2) {
			return false
		}
	}
	var winv, im Fp
	winv.inverse(&w)
	im.mul(&x.b, &twoInv)
	im.mul(&im, &winv)
	z.a = w
	z.b = im
	return true
}

// frobeniusConstant loads the Fra/Frb Frobenius constant from ROM.
func frobeniusConstant() Fp2 {
	var a, b BIG
	a.rcopy(&rom.Fra)
	b.rcopy(&rom.Frb)
	var z Fp2
	z.a.nres(&a)
	z.b.nres(&b)
	return z
}
