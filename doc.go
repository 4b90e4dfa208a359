// Package bn254 implements field, curve, and pairing arithmetic for the
// Barreto-Naehrig curve BN254 (embedding degree 12): a fixed-width BigInt,
// the Fp -> Fp2 -> Fp4 -> Fp12 tower, projective Weierstrass arithmetic on
// G1 and its sextic twist G2, and the Optimal Ate pairing with GLV /
// Galbraith-Scott scalar decomposition.
//
// The package is hard-wired to one curve parameterization (see the rom
// subpackage); it does not negotiate curves at runtime and does not hash to
// a curve point. All types are plain value-ish data: no I/O and no global
// mutable state. Window selection in ECP.mul and ECP2.mul uses teq/cmove and
// BIG.mod runs a loop count set by the modulus alone, but the arithmetic as
// a whole is not branch-free on its inputs: the parity fixup in ECP.mul and
// ECP2.mul, the table lookups in mul2, mul4 and pow4, and the conditional
// subtractions in Fp.reduce branch on data.
package bn254
