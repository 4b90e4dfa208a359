package bn254

import "testing"

func TestFpAddSubInverse(t *testing.T) {
	a := fpFromInt(123)
	b := fpFromInt(456)
	var sum, back Fp
	sum.add(&a, &b)
	back.sub(&sum, &b)
	if !back.equals(&a) {
		t.Errorf("(a+b)-b != a")
	}
}

func TestFpMulInverse(t *testing.T) {
	a := fpFromInt(7)
	var inv, prod Fp
	inv.inverse(&a)
	prod.mul(&a, &inv)
	one := fpFromInt(1)
	if !prod.equals(&one) {
		t.Errorf("a * a^-1 != 1")
	}
}

func TestFpSqrMatchesMul(t *testing.T) {
	a := fpFromInt(99)
	var sq, mu Fp
	sq.sqr(&a)
	mu.mul(&a, &a)
	if !sq.equals(&mu) {
		t.Errorf("sqr(a) != a*a")
	}
}

func TestFpNegAddsToZero(t *testing.T) {
	a := fpFromInt(42)
	var neg, sum Fp
	neg.neg(&a)
	sum.add(&a, &neg)
	if !sum.iszero() {
		t.Errorf("a + (-a) != 0")
	}
}

func TestFpZeroAndOneDistinct(t *testing.T) {
	var zero Fp
	zero.zero()
	one := fpFromInt(1)
	if zero.equals(&one) {
		t.Errorf("0 should not equal 1")
	}
	if !zero.iszero() {
		t.Errorf("zero() should report iszero")
	}
}

func TestFpSqrtRoundTrip(t *testing.T) {
	a := fpFromInt(16)
	var root Fp
	ok := root.sqrt(&a)
	if !ok {
		t.Fatalf("16 should be a quadratic residue mod p")
	}
	var sq Fp
	sq.sqr(&root)
	if !sq.equals(&a) {
		t.Errorf("sqrt(a)^2 != a")
	}
}

func TestFpPowMatchesRepeatedMul(t *testing.T) {
	a := fpFromInt(5)
	var e BIG
	e.setInt(7)
	var viaPow, viaMul Fp
	viaPow.pow(&a, &e)
	viaMul = fpFromInt(1)
	for i := 0; i < 7; i++ {
		viaMul.mul(&viaMul, &a)
	}
	if !viaPow.equals(&viaMul) {
		t.Errorf("pow(a,7) != a*a*a*a*a*a*a")
	}
}

func TestFpPowNonPalindromicExponent(t *testing.T) {
	a := fpFromInt(5)
	for _, e64 := range []int64{6, 11, 22} {
		var e BIG
		e.setInt(e64)
		var viaPow, viaMul Fp
		viaPow.pow(&a, &e)
		viaMul = fpFromInt(1)
		for i := int64(0); i < e64; i++ {
			viaMul.mul(&viaMul, &a)
		}
		if !viaPow.equals(&viaMul) {
			t.Errorf("pow(a,%d) != a multiplied %d times", e64, e64)
		}
	}
}

func TestFpImulMatchesRepeatedAdd(t *testing.T) {
	a := fpFromInt(11)
	var viaImul, viaAdd Fp
	viaImul.imul(&a, 6)
	viaAdd = fpFromInt(0)
	for i := 0; i < 6; i++ {
		viaAdd.add(&viaAdd, &a)
	}
	if !viaImul.equals(&viaAdd) {
		t.Errorf("imul(a,6) != a+a+a+a+a+a")
	}
}

func TestFpJacobiOfSquareIsOne(t *testing.T) {
	a := fpFromInt(9)
	var sq Fp
	sq.sqr(&a)
	if sq.jacobi() != 1 {
		t.Errorf("jacobi symbol of a square should be 1")
	}
}
