package bn254

import "testing"

func TestPairNonDegenerate(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	gt := Pair(g2, g1)
	if gt.IsOne() {
		t.Errorf("e(G2,G1) should not be 1")
	}
	var inf1 ECP
	inf1.inf()
	gtInf := Pair(g2, inf1)
	if !gtInf.IsOne() {
		t.Errorf("e(G2, O) should be 1")
	}
}

func TestPairBilinearG1(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	var a BIG
	a.setInt(5)

	aG1 := G1mul(&g1, &a)
	lhs := Pair(g2, aG1)

	base := Pair(g2, g1)
	var rhsExp Fp12
	rhsExp.pow(&base, &a)

	if !lhs.Equal(rhsExp) {
		t.Errorf("e(Q, a*P) != e(Q,P)^a")
	}
}

func TestPairBilinearG2(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	var b BIG
	b.setInt(11)

	bG2 := G2mul(&g2, &b)
	lhs := Pair(bG2, g1)

	base := Pair(g2, g1)
	var rhsExp Fp12
	rhsExp.pow(&base, &b)

	if !lhs.Equal(rhsExp) {
		t.Errorf("e(b*Q, P) != e(Q,P)^b")
	}
}

func TestPairFullBilinearity(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	var a, b, ab BIG
	a.setInt(3)
	b.setInt(4)
	var d DBIG
	d.mul(&a, &b)
	lo, _ := d.split()
	ab = lo
	ab.norm()

	aP := G1mul(&g1, &a)
	bQ := G2mul(&g2, &b)
	lhs := Pair(bQ, aP)

	base := Pair(g2, g1)
	var want Fp12
	want.pow(&base, &ab)

	if !lhs.Equal(want) {
		t.Errorf("e(b*Q, a*P) != e(Q,P)^(ab)")
	}
}

func TestPair2MatchesIndependentPairings(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	var two, three BIG
	two.setInt(2)
	three.setInt(3)
	R := G2mul(&g2, &two)
	S := G1mul(&g1, &three)

	got := Pair2(g2, g1, R, S)

	e1 := Pair(g2, g1)
	e2 := Pair(R, S)
	var want Fp12
	want.mul(&e1, &e2)

	if !got.Equal(want) {
		t.Errorf("Pair2(P,Q,R,S) != e(Q,P)*e(S,R)")
	}
}

func TestMultiPairingAccumulatorMatchesPair2(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	var two, three BIG
	two.setInt(2)
	three.setInt(3)
	R := G2mul(&g2, &two)
	S := G1mul(&g1, &three)

	acc := NewMultiPairingAccumulator()
	acc.Add(g2, g1)
	acc.Add(R, S)
	got := acc.Finalize()

	want := Pair2(g2, g1, R, S)
	if !got.Equal(want) {
		t.Errorf("MultiPairingAccumulator result != Pair2")
	}
}

func TestG1mulMatchesPlainMul(t *testing.T) {
	g1 := G1Generator()
	var e BIG
	e.setInt(123456789)
	got := G1mul(&g1, &e)
	want := g1.mul(&e)
	if !got.equals(&want) {
		t.Errorf("GLV-accelerated G1mul != plain mul")
	}
}

func TestG2mulMatchesPlainMul(t *testing.T) {
	g2 := G2Generator()
	var e BIG
	e.setInt(987654321)
	got := G2mul(&g2, &e)
	want := g2.mul(&e)
	if !got.equals(&want) {
		t.Errorf("GS-accelerated G2mul != plain mul")
	}
}

func TestGTpowMatchesPlainPow(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	x := Pair(g2, g1)
	var e BIG
	e.setInt(13579)
	got := GTpow(&x, &e)
	var want Fp12
	want.pow(&x, &e)
	if !got.Equal(want) {
		t.Errorf("GS-accelerated GTpow != plain pow")
	}
}

func TestScalarMulByCurveOrderIsInfinity(t *testing.T) {
	g1 := G1Generator()
	r := CurveOrder()
	res := g1.ScalarMul(r)
	if !res.IsInfinity() {
		t.Errorf("r*G1 should be infinity")
	}

	g2 := G2Generator()
	res2 := g2.ScalarMul(r)
	if !res2.IsInfinity() {
		t.Errorf("r*G2 should be infinity")
	}
}
