package bn254

import "testing"

func fp12FromFp4(a, b, c Fp4) Fp12 {
	return Fp12{a: a, b: b, c: c, stype: FP12_DENSE}
}

func TestFp12MulMatchesSqr(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 3), fp4FromInts(1, 4, 2, 0), fp4FromInts(0, 1, 1, 1))
	var sq, mu Fp12
	sq.sqr(&x)
	mu.mul(&x, &x)
	if !sq.equals(&mu) {
		t.Errorf("sqr(x) != x*x")
	}
}

func TestFp12InverseRoundTrip(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(3, 2, 1, 0), fp4FromInts(0, 2, 1, 3), fp4FromInts(1, 0, 3, 2))
	var inv, prod Fp12
	inv.inverse(&x)
	prod.mul(&x, &inv)
	var one Fp12
	one.one()
	if !prod.equals(&one) {
		t.Errorf("x * x^-1 != 1")
	}
}

func TestFp12ConjIsInvolution(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(5, 1, 2, 4), fp4FromInts(3, 0, 1, 1), fp4FromInts(2, 2, 0, 3))
	var c1, c2 Fp12
	c1.conj(&x)
	c2.conj(&c1)
	if !c2.equals(&x) {
		t.Errorf("conj(conj(x)) != x")
	}
}

func TestFp12ZeroOneAndIszero(t *testing.T) {
	var z, o Fp12
	z.zero()
	o.one()
	if !z.iszero() {
		t.Errorf("zero() should report iszero")
	}
	if o.iszero() {
		t.Errorf("one() should not report iszero")
	}
	if z.equals(&o) {
		t.Errorf("0 should not equal 1")
	}
}

func TestFp12SsmulOneShortCircuits(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 3), fp4FromInts(1, 4, 2, 0), fp4FromInts(0, 1, 1, 1))
	var one, viaSsmul, viaMul Fp12
	one.one()

	viaSsmul.ssmul(&x, &one)
	viaMul.mul(&x, &one)
	if !viaSsmul.equals(&viaMul) {
		t.Errorf("ssmul(x, one) != mul(x, one)")
	}

	viaSsmul.ssmul(&one, &x)
	viaMul.mul(&one, &x)
	if !viaSsmul.equals(&viaMul) {
		t.Errorf("ssmul(one, x) != mul(one, x)")
	}
}

func TestFp12PowMatchesRepeatedMul(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 1), fp4FromInts(1, 0, 1, 0), fp4FromInts(0, 1, 0, 1))
	var e BIG
	e.setInt(5)
	var viaPow, viaMul Fp12
	viaPow.pow(&x, &e)
	viaMul.one()
	for i := 0; i < 5; i++ {
		viaMul.mul(&viaMul, &x)
	}
	if !viaPow.equals(&viaMul) {
		t.Errorf("pow(x,5) != x*x*x*x*x")
	}
}

func TestFp12PowNonPalindromicExponent(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 1), fp4FromInts(1, 0, 1, 0), fp4FromInts(0, 1, 0, 1))
	for _, e64 := range []int64{6, 11, 22} {
		var e BIG
		e.setInt(e64)
		var viaPow, viaMul Fp12
		viaPow.pow(&x, &e)
		viaMul.one()
		for i := int64(0); i < e64; i++ {
			viaMul.mul(&viaMul, &x)
		}
		if !viaPow.equals(&viaMul) {
			t.Errorf("pow(x,%d) != x multiplied %d times", e64, e64)
		}
	}
}

// cyclotomicElement runs fexp's easy part on x, which lands any nonzero x
// in the cyclotomic subgroup (conj(x) == x^-1), the precondition usqr
// relies on.
func cyclotomicElement(x *Fp12) Fp12 {
	var inv, conj, e Fp12
	inv.inverse(x)
	conj.conj(x)
	e.mul(&conj, &inv)

	f := frobeniusConstant()
	var frob2e Fp12
	frob2e.frob(&e, &f)
	frob2e.frob(&frob2e, &f)
	e.mul(&e, &frob2e)
	return e
}

func TestFp12UsqrMatchesSqrOnCyclotomicElement(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 3), fp4FromInts(1, 4, 2, 0), fp4FromInts(0, 1, 1, 1))
	c := cyclotomicElement(&x)

	var conj, inv Fp12
	conj.conj(&c)
	inv.inverse(&c)
	if !conj.equals(&inv) {
		t.Fatalf("cyclotomicElement did not land in the cyclotomic subgroup")
	}

	var viaUsqr, viaSqr Fp12
	viaUsqr.usqr(&c)
	viaSqr.sqr(&c)
	if !viaUsqr.equals(&viaSqr) {
		t.Errorf("usqr(x) != sqr(x) for a cyclotomic-subgroup element")
	}
}

func TestPow4MatchesIndependentPows(t *testing.T) {
	q0 := fp12FromFp4(fp4FromInts(2, 1, 0, 1), fp4FromInts(1, 0, 1, 0), fp4FromInts(0, 1, 0, 1))
	q1 := fp12FromFp4(fp4FromInts(1, 1, 1, 0), fp4FromInts(0, 2, 0, 1), fp4FromInts(1, 0, 2, 0))
	q2 := fp12FromFp4(fp4FromInts(3, 0, 1, 1), fp4FromInts(1, 1, 0, 0), fp4FromInts(0, 0, 1, 2))
	q3 := fp12FromFp4(fp4FromInts(0, 2, 1, 1), fp4FromInts(2, 0, 0, 1), fp4FromInts(1, 1, 1, 0))

	var u0, u1, u2, u3 BIG
	u0.setInt(3)
	u1.setInt(5)
	u2.setInt(2)
	u3.setInt(7)

	got := pow4([4]*Fp12{&q0, &q1, &q2, &q3}, [4]*BIG{&u0, &u1, &u2, &u3})

	var p0, p1, p2, p3, want Fp12
	p0.pow(&q0, &u0)
	p1.pow(&q1, &u1)
	p2.pow(&q2, &u2)
	p3.pow(&q3, &u3)
	want.mul(&p0, &p1)
	want.mul(&want, &p2)
	want.mul(&want, &p3)

	if !got.equals(&want) {
		t.Errorf("pow4 != product of independent pows")
	}
}

func TestFp12FrobIsEndomorphism(t *testing.T) {
	f := frobeniusConstant()
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 3), fp4FromInts(1, 4, 2, 0), fp4FromInts(0, 1, 1, 1))
	y := fp12FromFp4(fp4FromInts(1, 0, 2, 1), fp4FromInts(0, 1, 0, 2), fp4FromInts(1, 1, 0, 0))

	var xy, fxy Fp12
	xy.mul(&x, &y)
	fxy.frob(&xy, &f)

	var fx, fy, want Fp12
	fx.frob(&x, &f)
	fy.frob(&y, &f)
	want.mul(&fx, &fy)

	if !fxy.equals(&want) {
		t.Errorf("frob(x*y) != frob(x)*frob(y)")
	}
}

func TestCompowAtOneEqualsTrace(t *testing.T) {
	x := fp12FromFp4(fp4FromInts(2, 1, 0, 3), fp4FromInts(1, 4, 2, 0), fp4FromInts(0, 1, 1, 1))
	var e BIG
	e.setInt(1)
	var z Fp12
	out := z.compow(&x, &e)
	want := traceFp12(&x)
	if !out.equals(&want) {
		t.Errorf("compow(x, 1) != traceFp12(x)")
	}
}
