// Package selfcheck verifies that the fixed BN254 ROM data (the curve
// generators, order, and Frobenius constants baked into the rom package) is
// internally consistent. Since this library is hard-wired to one curve
// parameterization rather than negotiating curves at runtime, self-checking
// the ROM plays the role the teacher's setup.Run(ccs, curve, setupConf)
// dispatch-by-enum plays for ceremony selection: a small table of
// independent checks, run concurrently and reported through internal/logz.
package selfcheck

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/giuliop/bn254"
	"github.com/giuliop/bn254/internal/logz"
)

// Check is one named, independently runnable ROM consistency check.
type Check struct {
	Name string
	Run  func() error
}

// Result is the outcome of running one Check.
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Checks returns the full table of ROM self-checks.
func Checks() []Check {
	return []Check{
		{"g1-generator-on-curve", checkG1OnCurve},
		{"g2-generator-on-curve", checkG2OnCurve},
		{"g1-order", checkG1Order},
		{"g2-order", checkG2Order},
		{"pairing-non-degenerate", checkPairingNonDegenerate},
		{"pairing-bilinear-g1", checkBilinearG1},
		{"pairing-bilinear-g2", checkBilinearG2},
		{"gt-order", checkGtOrder},
	}
}

// Run executes every check concurrently with errgroup and returns one
// Result per check, in table order.
func Run(ctx context.Context) []Result {
	checks := Checks()
	results := make([]Result, len(checks))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			err := c.Run()
			results[i] = Result{Name: c.Name, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.Passed() {
			logz.L.Info().Str("check", r.Name).Msg("ok")
		} else {
			logz.L.Error().Str("check", r.Name).Err(r.Err).Msg("failed")
		}
	}
	return results
}

func checkG1OnCurve() error {
	g1 := bn254.G1Generator()
	if g1.IsInfinity() {
		return fmt.Errorf("G1 generator decoded to infinity")
	}
	return nil
}

func checkG2OnCurve() error {
	g2 := bn254.G2Generator()
	if g2.IsInfinity() {
		return fmt.Errorf("G2 generator decoded to infinity")
	}
	return nil
}

func checkG1Order() error {
	g1 := bn254.G1Generator()
	r := bn254.CurveOrder()
	p := g1.ScalarMul(r)
	if !p.IsInfinity() {
		return fmt.Errorf("r*G1 is not the point at infinity")
	}
	return nil
}

func checkG2Order() error {
	g2 := bn254.G2Generator()
	r := bn254.CurveOrder()
	p := g2.ScalarMul(r)
	if !p.IsInfinity() {
		return fmt.Errorf("r*G2 is not the point at infinity")
	}
	return nil
}

func checkPairingNonDegenerate() error {
	g1 := bn254.G1Generator()
	g2 := bn254.G2Generator()
	gt := bn254.Pair(g2, g1)
	if gt.IsOne() {
		return fmt.Errorf("e(G1, G2) is the Gt identity")
	}
	return nil
}

func checkGtOrder() error {
	g1 := bn254.G1Generator()
	g2 := bn254.G2Generator()
	gt := bn254.Pair(g2, g1)
	r := bn254.CurveOrder()
	if !gt.Pow(r).IsOne() {
		return fmt.Errorf("e(G1, G2)^r is not the Gt identity")
	}
	return nil
}

// checkBilinearG1 verifies e(a*G1, G2) == e(G1, G2)^a for a small fixed
// scalar, confirming G1mul's GLV decomposition agrees with the pairing.
func checkBilinearG1() error {
	g1 := bn254.G1Generator()
	g2 := bn254.G2Generator()
	a := bn254.ScalarFromBytes(smallScalarBytes(7))

	lhs := bn254.Pair(g2, g1.ScalarMul(a))
	rhs := bn254.Pair(g2, g1).Pow(a)
	if !lhs.Equal(rhs) {
		return fmt.Errorf("e(a*G1, G2) != e(G1, G2)^a")
	}
	return nil
}

// checkBilinearG2 verifies e(G1, a*G2) == e(G1, G2)^a, confirming G2mul's
// Galbraith-Scott decomposition agrees with the pairing.
func checkBilinearG2() error {
	g1 := bn254.G1Generator()
	g2 := bn254.G2Generator()
	a := bn254.ScalarFromBytes(smallScalarBytes(11))

	lhs := bn254.Pair(g2.ScalarMul(a), g1)
	rhs := bn254.Pair(g2, g1).Pow(a)
	if !lhs.Equal(rhs) {
		return fmt.Errorf("e(G1, a*G2) != e(G1, G2)^a")
	}
	return nil
}

// smallScalarBytes returns the MODBYTES-length big-endian encoding of a
// small non-negative machine-word value v.
func smallScalarBytes(v uint64) []byte {
	const modbytes = 32
	out := make([]byte, modbytes)
	for i := 0; i < 8; i++ {
		out[modbytes-1-i] = byte(v)
		v >>= 8
	}
	return out
}
