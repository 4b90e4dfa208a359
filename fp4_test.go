package bn254

import "testing"

func fp4FromInts(a0, a1, b0, b1 int64) Fp4 {
	return Fp4{a: fp2FromInts(a0, a1), b: fp2FromInts(b0, b1)}
}

func TestFp4MulMatchesSqr(t *testing.T) {
	x := fp4FromInts(3, 1, 2, 4)
	var sq, mu Fp4
	sq.sqr(&x)
	mu.mul(&x, &x)
	if !sq.equals(&mu) {
		t.Errorf("sqr(x) != x*x")
	}
}

func TestFp4Inverse(t *testing.T) {
	x := fp4FromInts(5, 2, 3, 7)
	var inv, prod Fp4
	inv.inverse(&x)
	prod.mul(&x, &inv)
	var one Fp4
	one.one()
	if !prod.equals(&one) {
		t.Errorf("x * x^-1 != 1")
	}
}

func TestFp4ConjIsInvolution(t *testing.T) {
	x := fp4FromInts(9, 4, 1, 8)
	var c1, c2 Fp4
	c1.conj(&x)
	c2.conj(&c1)
	if !c2.equals(&x) {
		t.Errorf("conj(conj(x)) != x")
	}
}

func TestXtrDMatchesSquareMinusTwiceConj(t *testing.T) {
	x := fp4FromInts(6, 3, 2, 5)
	var x2, cx, twoCx, want Fp4
	x2.sqr(&x)
	cx.conj(&x)
	twoCx.add(&cx, &cx)
	want.sub(&x2, &twoCx)
	got := xtrD(&x)
	if !got.equals(&want) {
		t.Errorf("xtrD(x) != x^2 - 2*conj(x)")
	}
}

func TestXtrPowAtOneIsTraceItself(t *testing.T) {
	x := fp4FromInts(4, 1, 0, 2)
	var one BIG
	one.setInt(1)
	var got Fp4
	got.xtrPow(&x, &one)
	if !got.equals(&x) {
		t.Errorf("xtrPow(x, 1) != x")
	}
}

func TestXtrPowAtZeroIsThree(t *testing.T) {
	x := fp4FromInts(4, 1, 0, 2)
	var zero BIG
	zero.zero()
	var got, want Fp4
	got.xtrPow(&x, &zero)
	want.one()
	want.add(&want, &want)
	want.add(&want, oneFp4())
	if !got.equals(&want) {
		t.Errorf("xtrPow(x, 0) != 3")
	}
}
