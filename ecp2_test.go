package bn254

import "testing"

func TestECP2InfIsInfinity(t *testing.T) {
	var p ECP2
	p.inf()
	if !p.isinf() {
		t.Errorf("inf() should report isinf")
	}
}

func TestECP2SetxyRejectsOffCurvePoint(t *testing.T) {
	x := fp2FromInts(1, 0)
	y := fp2FromInts(1, 0)
	var p ECP2
	p.setxy(&x, &y)
	if !p.isinf() {
		t.Errorf("setxy with an off-curve point should yield infinity")
	}
}

func TestECP2DoubleMatchesAdd(t *testing.T) {
	g := G2Generator()
	var dbl, add ECP2
	dbl.set(&g)
	dbl.dbl()
	add.set(&g)
	add.add(&g)
	if !dbl.equals(&add) {
		t.Errorf("P.dbl() != P+P")
	}
}

func TestECP2AddSubInverse(t *testing.T) {
	g := G2Generator()
	var doubled, back ECP2
	doubled.set(&g)
	doubled.add(&g)
	back.set(&doubled)
	back.sub(&g)
	if !back.equals(&g) {
		t.Errorf("(2G)-G != G")
	}
}

func TestECP2MulMatchesRepeatedAdd(t *testing.T) {
	g := G2Generator()
	var e BIG
	e.setInt(7)
	got := g.mul(&e)

	var want ECP2
	want.set(&g)
	for i := 0; i < 6; i++ {
		want.add(&g)
	}
	want.affine()
	if !got.equals(&want) {
		t.Errorf("mul(G,7) != G+G+G+G+G+G+G")
	}
}

func TestECP2MulSmallEvenScalars(t *testing.T) {
	g := G2Generator()
	for _, n := range []int64{2, 4, 6, 8, 12} {
		var e BIG
		e.setInt(n)
		got := g.mul(&e)

		var want ECP2
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

func TestECP2Mul4MatchesIndependentMuls(t *testing.T) {
	g := G2Generator()
	f := frobeniusConstant()

	var q1, q2, q3 ECP2
	q1.set(&g)
	q1.frob(&f)
	q2.set(&q1)
	q2.frob(&f)
	q3.set(&q2)
	q3.frob(&f)

	var u0, u1, u2, u3 BIG
	u0.setInt(3)
	u1.setInt(5)
	u2.setInt(2)
	u3.setInt(7)

	got := g.mul4([4]ECP2{g, q1, q2, q3}, [4]*BIG{&u0, &u1, &u2, &u3})

	p0 := g.mul(&u0)
	p1 := q1.mul(&u1)
	p2 := q2.mul(&u2)
	p3 := q3.mul(&u3)
	want := p0
	want.add(&p1)
	want.add(&p2)
	want.add(&p3)
	want.affine()
	if !got.equals(&want) {
		t.Errorf("mul4 != sum of independent muls")
	}
}

func TestECP2ToFromBytes(t *testing.T) {
	g := G2Generator()
	buf := make([]byte, 4*MODBYTES)
	g.toBytes(buf)
	var back ECP2
	back.fromBytes(buf)
	if !back.equals(&g) {
		t.Errorf("toBytes/fromBytes round trip failed")
	}
}

func TestECP2GeneratorHasCorrectOrder(t *testing.T) {
	g := G2Generator()
	r := CurveOrder()
	res := g.mul(&r)
	if !res.isinf() {
		t.Errorf("r*G should be infinity")
	}
}
