package bn254

import (
	"github.com/giuliop/bn254/rom"
)

// FEXCESS bounds how far a lazily-reduced Fp value may drift from fully
// reduced before an operation forces reduce. f.limbs[i]*XES < 2^32 must
// hold at all times so that one more lazy add cannot overflow a 32-bit
// accumulator in a narrower port; kept as a documented invariant here even
// though Go's 64-bit limbs have room to spare.
const FEXCESS = 1<<10 - 1

// modulus and r2modp are set at declaration, so they hold their values
// before any init function of the package runs (ecp.go and ecp2.go derive
// curveB and twistB from them in init).
var modulus = *new(BIG).rcopy(&rom.Modulus)
var r2modp = *new(BIG).rcopy(&rom.R2modp)

// Fp is a field element mod p, stored in Montgomery form: f holds v*R mod p
// with R = 2^(BASEBITS*NLEN). XES is an upper bound on how many multiples
// of p f might exceed a single reduced representative by; XES == 1 means
// fully reduced.
type Fp struct {
	f   BIG
	XES int64
}

// nres converts a plain BIG into Montgomery form.
func (z *Fp) nres(x *BIG) *Fp {
	var d DBIG
	d.mul(x, &r2modp)
	z.f = *monty(&modulus, rom.MConst, &d)
	z.XES = 1
	return z
}

// redc converts out of Montgomery form back to a plain BIG.
func (z *Fp) redc() BIG {
	var d DBIG
	for i := 0; i < NLEN; i++ {
		d[i] = z.f[i]
	}
	return *monty(&modulus, rom.MConst, &d)
}

// fromInt builds an Fp from a small non-negative machine integer.
func fpFromInt(x int64) Fp {
	var b BIG
	b.setInt(x)
	var z Fp
	z.nres(&b)
	return z
}

// mul sets z = x*y in Montgomery form; result has XES = 2 (one reduced
// factor of residual excess from the reduction itself).
func (z *Fp) mul(x, y *Fp) *Fp {
	if x.XES+y.XES > FEXCESS {
		x.reduce()
	}
	var d DBIG
	d.mul(&x.f, &y.f)
	z.f = *monty(&modulus, rom.MConst, &d)
	z.XES = 2
	return z
}

// sqr sets z = x*x.
func (z *Fp) sqr(x *Fp) *Fp {
	if 2*x.XES > FEXCESS {
		x.reduce()
	}
	var d DBIG
	d.sqr(&x.f)
	z.f = *monty(&modulus, rom.MConst, &d)
	z.XES = 2
	return z
}

// add is lazy: it adds limb-wise without a modular reduction and bumps
// XES; the caller (or the next operation that needs a bounded XES) forces
// reduce once XES would exceed FEXCESS.
func (z *Fp) add(x, y *Fp) *Fp {
	z.f = x.f
	z.f.add(&y.f)
	z.XES = x.XES + y.XES
	if z.XES > FEXCESS {
		z.reduce()
	}
	return z
}

// sub is lazy like add; it adds in a multiple of the modulus scaled by
// y.XES before subtracting, so the limb-wise subtraction never produces a
// result that norm cannot correct back to non-negative.
func (z *Fp) sub(x, y *Fp) *Fp {
	var padded BIG
	padded.zero()
	for k := int64(0); k < y.XES; k++ {
		padded.add(&modulus)
	}
	padded.norm()
	padded.add(&x.f)
	padded.sub(&y.f)
	padded.norm()
	z.f = padded
	z.XES = x.XES + y.XES
	if z.XES > FEXCESS {
		z.reduce()
	}
	return z
}

// neg sets z = -x.
func (z *Fp) neg(x *Fp) *Fp {
	var zero Fp
	zero.XES = x.XES
	return z.sub(&zero, x)
}

// imul multiplies by a small public integer c.
func (z *Fp) imul(x *Fp, c int64) *Fp {
	if c*x.XES <= FEXCESS {
		z.f = x.f
		for i := range z.f {
			z.f[i] *= c
		}
		z.f.norm()
		z.XES = c * x.XES
		return z
	}
	cf := fpFromInt(c)
	return z.mul(x, &cf)
}

// reduce fully reduces z to a canonical representative with XES == 1.
// When XES is above 16 it first subtracts q = XES/2 multiples of p (adding
// them back if that made z negative). It then performs XES-1 subtractions
// of p through ssn, each kept or undone by cmove, and a final
// compare-and-subtract. XES grows through add, sub and imul, so either
// path can follow any of them. The add-back and the final subtraction are
// branches on the value of z, so reduce is not constant-time.
func (z *Fp) reduce() *Fp {
	xes := z.XES
	if xes > 16 {
		// coarse step: subtract q = XES/2 multiples of p, then refine with
		// the small-XES path below.
		q := xes / 2
		var scaled BIG
		scaled = modulus
		for i := range scaled {
			scaled[i] *= q
		}
		scaled.norm()
		z.f.sub(&scaled)
		z.f.norm()
		if isNegative(&z.f) {
			z.f.add(&scaled)
			z.f.norm()
		}
		xes -= q
	}
	for xes > 1 {
		var t BIG
		borrow := ssn(&t, &z.f, &modulus)
		z.f.cmove(&t, int(1-borrow))
		xes--
	}
	z.f.norm()
	if z.f.cmp(&modulus) >= 0 {
		z.f.sub(&modulus)
		z.f.norm()
	}
	z.XES = 1
	return z
}

// equals compares two Fp values after reducing both.
func (z *Fp) equals(y *Fp) bool {
	a := *z
	b := *y
	a.reduce()
	b.reduce()
	return a.f.cmp(&b.f) == 0
}

func (z *Fp) iszero() bool {
	t := *z
	t.reduce()
	return t.f.iszilch()
}

// pow raises z to the exponent e using a 4-bit left-to-right windowed
// ladder. e is a public exponent path (final-exponentiation's u-th power,
// ROM constant derivation); it is not applied to secret scalars.
func (z *Fp) pow(x *Fp, e *BIG) *Fp {
	var table [16]Fp
	table[0] = fpFromInt(1)
	table[1] = *x
	for i := 2; i < 16; i++ {
		table[i].mul(&table[i-1], x)
	}
	nb := e.nbits()
	r := fpFromInt(1)
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

// fpow computes x^((p-3)/4) (Scott-Barreto, "Efficient computation of
// roots"). Nothing in this package calls it: sqrt raises x to (p+1)/4
// through pow directly. It reuses the same windowed ladder as
// pow; a hand-tuned fixed addition chain for this one exponent would be
// faster but is a ROM-style micro-optimization this implementation leaves
// to the windowed path.
func (z *Fp) fpow(x *Fp) *Fp {
	p := new(BIG).rcopy(&rom.Modulus)
	three := new(BIG).setInt(3)
	var e BIG
	e = *p
	e.sub(three)
	e.norm()
	e.shr(2)
	return z.pow(x, &e)
}

// inverse computes x^-1 via Fermat's little theorem: x^(p-2) mod p. Not
// constant-time as written (pow's table lookups are data-independent but
// the exponent here is the fixed public value p-2, never a secret scalar).
func (z *Fp) inverse(x *Fp) *Fp {
	p := new(BIG).rcopy(&rom.Modulus)
	two := new(BIG).setInt(2)
	var e BIG
	e = *p
	e.sub(two)
	e.norm()
	return z.pow(x, &e)
}

// sqrt computes a square root of x when one exists (p ≡ 3 mod 4 for BN254,
// so x^((p+1)/4) is a square root whenever x is a residue). Returns false
// and zeros the receiver when x is a non-residue.
func (z *Fp) sqrt(x *Fp) bool {
	if x.jacobi() != 1 {
		z.zero()
		return x.iszero()
	}
	p := new(BIG).rcopy(&rom.Modulus)
	one := new(BIG).setInt(1)
	var e BIG
	e = *p
	e.add(one)
	e.norm()
	e.shr(2)
	z.pow(x, &e)
	return true
}

func (z *Fp) zero() *Fp {
	z.f.zero()
	z.XES = 1
	return z
}

// jacobi returns the Jacobi symbol of the reduced representative of z
// against the modulus.
func (z *Fp) jacobi() int {
	t := *z
	t.reduce()
	plain := t.redc()
	return plain.jacobi(&modulus)
}
