package bn254

import "testing"

func TestECPInfIsInfinity(t *testing.T) {
	var p ECP
	p.inf()
	if !p.isinf() {
		t.Errorf("inf() should report isinf")
	}
}

func TestECPSetxyRejectsOffCurvePoint(t *testing.T) {
	x := fpFromInt(1)
	y := fpFromInt(1)
	var p ECP
	p.setxy(&x, &y)
	if !p.isinf() {
		t.Errorf("setxy with an off-curve point should yield infinity")
	}
}

func TestECPSetxiAffineRoundTrip(t *testing.T) {
	g := G1Generator()
	gx := g.getX()
	gy := g.getY()
	s := int(gy.redc().parity())

	var p ECP
	p.setxi(&gx, s)
	if p.isinf() {
		t.Fatalf("setxi(x, s) should recover a point for the generator's x")
	}
	if !p.equals(&g) {
		t.Errorf("setxi did not recover the generator from its x and parity")
	}
}

func TestECPDoubleMatchesAdd(t *testing.T) {
	g := G1Generator()
	var dbl, add ECP
	dbl.set(&g)
	dbl.dbl()
	add.set(&g)
	add.add(&g)
	if !dbl.equals(&add) {
		t.Errorf("P.dbl() != P+P")
	}
}

func TestECPAddSubInverse(t *testing.T) {
	g := G1Generator()
	var doubled, back ECP
	doubled.set(&g)
	doubled.add(&g)
	back.set(&doubled)
	back.sub(&g)
	if !back.equals(&g) {
		t.Errorf("(2G)-G != G")
	}
}

func TestECPMulMatchesRepeatedAdd(t *testing.T) {
	g := G1Generator()
	var e BIG
	e.setInt(7)
	got := g.mul(&e)

	var want ECP
	want.set(&g)
	for i := 0; i < 6; i++ {
		want.add(&g)
	}
	want.affine()
	if !got.equals(&want) {
		t.Errorf("mul(G,7) != G+G+G+G+G+G+G")
	}
}

func TestECPMulSmallEvenScalars(t *testing.T) {
	g := G1Generator()
	for _, n := range []int64{2, 4, 6, 8, 12} {
		var e BIG
		e.setInt(n)
		got := g.mul(&e)

		var want ECP
		want.inf()
		for i := int64(0); i < n; i++ {
			want.add(&g)
		}
		want.affine()
		if !got.equals(&want) {
			t.Errorf("mul(G,%d) != G added %d times", n, n)
		}
	}
}

func TestECPMul2MatchesIndependentMuls(t *testing.T) {
	g := G1Generator()
	var h ECP
	h.set(&g)
	h.dbl()

	var a, b BIG
	a.setInt(3)
	b.setInt(5)

	got := g.mul2(&a, &h, &b)

	ga := g.mul(&a)
	hb := h.mul(&b)
	want := ga
	want.add(&hb)
	want.affine()
	if !got.equals(&want) {
		t.Errorf("mul2(a,P,b,Q) != a*P + b*Q")
	}
}

func TestECPToFromBytesCompressed(t *testing.T) {
	g := G1Generator()
	buf := make([]byte, 1+MODBYTES)
	g.toBytes(buf, true)
	var back ECP
	back.fromBytes(buf)
	if !back.equals(&g) {
		t.Errorf("compressed toBytes/fromBytes round trip failed")
	}
}

func TestECPToFromBytesUncompressed(t *testing.T) {
	g := G1Generator()
	buf := make([]byte, 1+2*MODBYTES)
	g.toBytes(buf, false)
	var back ECP
	back.fromBytes(buf)
	if !back.equals(&g) {
		t.Errorf("uncompressed toBytes/fromBytes round trip failed")
	}
}

func TestECPFrobIsIdentityOnG1(t *testing.T) {
	g := G1Generator()
	var p ECP
	p.set(&g)
	p.frob()
	if !p.equals(&g) {
		t.Errorf("frob should be the identity on G1")
	}
}

func TestECPGeneratorHasCorrectOrder(t *testing.T) {
	g := G1Generator()
	r := CurveOrder()
	res := g.mul(&r)
	if !res.isinf() {
		t.Errorf("r*G should be infinity")
	}
}
