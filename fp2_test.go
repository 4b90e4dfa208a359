package bn254

import "testing"

func TestFp2MulMatchesSqr(t *testing.T) {
	x := fp2FromInts(3, 5)
	var sq, mu Fp2
	sq.sqr(&x)
	mu.mul(&x, &x)
	if !sq.equals(&mu) {
		t.Errorf("sqr(x) != x*x")
	}
}

func TestFp2Inverse(t *testing.T) {
	x := fp2FromInts(2, 9)
	var inv, prod Fp2
	inv.inverse(&x)
	prod.mul(&x, &inv)
	var one Fp2
	one.one()
	if !prod.equals(&one) {
		t.Errorf("x * x^-1 != 1")
	}
}

func TestFp2ConjIsInvolution(t *testing.T) {
	x := fp2FromInts(7, 11)
	var c1, c2 Fp2
	c1.conj(&x)
	c2.conj(&c1)
	if !c2.equals(&x) {
		t.Errorf("conj(conj(x)) != x")
	}
}

func TestFp2MulIPMatchesExplicitMul(t *testing.T) {
	x := fp2FromInts(4, 6)
	onePlusI := fp2FromInts(1, 1)
	var viaHelper, viaMul Fp2
	viaHelper.mulIP(&x)
	viaMul.mul(&x, &onePlusI)
	if !viaHelper.equals(&viaMul) {
		t.Errorf("mulIP(x) != x*(1+i)")
	}
}

func TestFp2DivIPUndoesMulIP(t *testing.T) {
	x := fp2FromInts(13, 17)
	var scaled, back Fp2
	scaled.mulIP(&x)
	back.divIP(&scaled)
	if !back.equals(&x) {
		t.Errorf("divIP(mulIP(x)) != x")
	}
}

func TestFp2TimesIMatchesExplicitMul(t *testing.T) {
	x := fp2FromInts(2, 3)
	i := fp2FromInts(0, 1)
	var viaHelper, viaMul Fp2
	viaHelper.timesI(&x)
	viaMul.mul(&x, &i)
	if !viaHelper.equals(&viaMul) {
		t.Errorf("timesI(x) != x*i")
	}
}

func TestFp2SqrtRoundTrip(t *testing.T) {
	x := fp2FromInts(4, 0)
	var root Fp2
	if !root.sqrt(&x) {
		t.Fatalf("4 should have a square root in Fp2")
	}
	var sq Fp2
	sq.sqr(&root)
	if !sq.equals(&x) {
		t.Errorf("sqrt(x)^2 != x")
	}
}

func TestFrobeniusConstantIsNonZero(t *testing.T) {
	f := frobeniusConstant()
	if f.iszero() {
		t.Errorf("Frobenius constant must not be zero")
	}
}
