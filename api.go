package bn254

import "github.com/giuliop/bn254/rom"

// This file is the library's public surface: the lowercase methods on BIG,
// ECP, ECP2 and Fp12 throughout this package mirror the internal operation
// names used by the arithmetic (and by the pairing algorithm's own
// description), the way a vendored core-crypto library keeps its field and
// curve layer private to the package. Ambient consumers (selfcheck, codec,
// testutils, cmd/bn254check) live in their own packages and need a minimal
// exported entry point to drive that arithmetic; this is that entry point,
// not a general-purpose re-export of every internal name.

// G1Generator returns the canonical G1 generator (1, 2) from the ROM table.
func G1Generator() ECP {
	var x, y Fp
	var bx, by BIG
	bx.rcopy(&rom.CURVE_Gx)
	by.rcopy(&rom.CURVE_Gy)
	x.nres(&bx)
	y.nres(&by)
	var p ECP
	p.setxy(&x, &y)
	return p
}

// G2Generator returns the canonical G2 generator from the ROM table.
func G2Generator() ECP2 {
	var x, y Fp2
	var xa, xb, ya, yb BIG
	xa.rcopy(&rom.CURVE_Pxa)
	xb.rcopy(&rom.CURVE_Pxb)
	ya.rcopy(&rom.CURVE_Pya)
	yb.rcopy(&rom.CURVE_Pyb)
	x.a.nres(&xa)
	x.b.nres(&xb)
	y.a.nres(&ya)
	y.b.nres(&yb)
	var p ECP2
	p.setxy(&x, &y)
	return p
}

// CurveOrder returns the prime subgroup order r.
func CurveOrder() BIG {
	var r BIG
	r.rcopy(&rom.CURVE_Order)
	return r
}

// ScalarFromBytes decodes a big-endian MODBYTES-length byte slice into a
// scalar BIG.
func ScalarFromBytes(b []byte) BIG {
	var e BIG
	e.fromBytes(b)
	return e
}

// Bytes encodes e as a big-endian MODBYTES-length byte slice.
func (e BIG) Bytes() []byte {
	out := make([]byte, rom.MODBYTES)
	cp := e
	cp.toBytes(out)
	return out
}

// IsZero reports whether e is the zero scalar.
func (e BIG) IsZero() bool {
	cp := e
	return cp.iszilch()
}

// IsInfinity reports whether p is the point at infinity.
func (p ECP) IsInfinity() bool {
	cp := p
	return cp.isinf()
}

// IsInfinity reports whether p is the point at infinity.
func (p ECP2) IsInfinity() bool {
	cp := p
	return cp.isinf()
}

// Equal reports whether p and q represent the same projective point.
func (p ECP) Equal(q ECP) bool {
	cp := p
	cq := q
	return cp.equals(&cq)
}

// Equal reports whether p and q represent the same projective point.
func (p ECP2) Equal(q ECP2) bool {
	cp := p
	cq := q
	return cp.equals(&cq)
}

// Equal reports whether x and y are the same Gt element.
func (x Fp12) Equal(y Fp12) bool {
	cx := x
	cy := y
	return cx.equals(&cy)
}

// IsOne reports whether x is the Gt identity.
func (x Fp12) IsOne() bool {
	var one Fp12
	one.one()
	return x.Equal(one)
}

// ScalarMul computes e*p using the GLV-accelerated G1mul.
func (p ECP) ScalarMul(e BIG) ECP {
	cp := p
	return G1mul(&cp, &e)
}

// ScalarMul computes e*p using the Galbraith-Scott-accelerated G2mul.
func (p ECP2) ScalarMul(e BIG) ECP2 {
	cp := p
	return G2mul(&cp, &e)
}

// Pow computes x^e in Gt using the Galbraith-Scott-accelerated GTpow.
func (x Fp12) Pow(e BIG) Fp12 {
	cx := x
	return GTpow(&cx, &e)
}

// Bytes serializes p; compress selects the 33-byte tagged form over the
// 65-byte uncompressed form.
func (p ECP) Bytes(compress bool) []byte {
	size := 1 + rom.MODBYTES
	if !compress {
		size = 1 + 2*rom.MODBYTES
	}
	out := make([]byte, size)
	cp := p
	cp.toBytes(out, compress)
	return out
}

// ECPFromBytes decodes the wire form written by ECP.Bytes.
func ECPFromBytes(in []byte) ECP {
	var p ECP
	p.fromBytes(in)
	return p
}

// Bytes serializes p in the 128-byte uncompressed form.
func (p ECP2) Bytes() []byte {
	out := make([]byte, 4*rom.MODBYTES)
	cp := p
	cp.toBytes(out)
	return out
}

// ECP2FromBytes decodes the wire form written by ECP2.Bytes.
func ECP2FromBytes(in []byte) ECP2 {
	var p ECP2
	p.fromBytes(in)
	return p
}

// Pair computes the Optimal Ate pairing e(Q, P) of P in G2 and Q in G1,
// running the Miller loop followed by the final exponentiation.
func Pair(P ECP2, Q ECP) Fp12 {
	m := ate(&P, &Q)
	return fexp(&m)
}

// Pair2 computes e(Q,P)*e(S,R) via the interleaved double-pairing Miller
// loop, cheaper than two independent Pair calls.
func Pair2(P ECP2, Q ECP, R ECP2, S ECP) Fp12 {
	m := ate2(&P, &Q, &R, &S)
	return fexp(&m)
}

// MultiPairingAccumulator batches several Miller loops so their outer
// squarings are shared; call Add for each (P, Q) pair and Finalize once.
type MultiPairingAccumulator struct {
	m *mpAccumulator
}

// NewMultiPairingAccumulator starts a fresh batch.
func NewMultiPairingAccumulator() *MultiPairingAccumulator {
	return &MultiPairingAccumulator{m: initmp()}
}

// Add folds one more (P, Q) pair into the batch.
func (a *MultiPairingAccumulator) Add(P ECP2, Q ECP) {
	another(a.m, &P, &Q)
}

// Finalize runs the shared outer squaring sweep and the final exponentiation,
// returning the product of e(Q_i, P_i) over every pair added.
func (a *MultiPairingAccumulator) Finalize() Fp12 {
	r := miller(a.m)
	return fexp(&r)
}
