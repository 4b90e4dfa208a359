// Package rom holds the fixed, immutable constant tables for the BN254
// parameterization: the field modulus, Montgomery helpers, curve generators,
// Frobenius coefficients, and the GLV / Galbraith-Scott lattice bases.
//
// Everything here is data, not algorithm. Limbs are little-endian (index 0
// is least significant) in the library's BASEBITS-bit radix, so that a
// consumer can rcopy a table straight into a BigInt without interpretation.
//
//go:generate go run ../internal/romgen
package rom

// BASEBITS is the limb radix shared with the bn254 package's BigInt.
const BASEBITS = 24

// NLEN is the number of BASEBITS-bit limbs in a BigInt.
const NLEN = 11

// Limbs is a little-endian fixed-width multi-precision integer laid out the
// way BigInt expects to rcopy it.
type Limbs [NLEN]int64

// Modulus is the BN254 base field prime p (254 bits, p ≡ 3 mod 4).
var Modulus = Limbs{8191303, 9180888, 9255968, 6844874, 8481425, 5791127, 11960705, 12079173, 3252265, 5141217, 12388}

// R2modp is R² mod p, where R = 2^(BASEBITS*NLEN), used to convert into
// Montgomery form.
var R2modp = Limbs{1087935, 274660, 6323626, 9506194, 4684887, 9469273, 13991103, 3928677, 15728841, 13131480, 7900}

// MConst is -p⁻¹ mod 2^BASEBITS, the Montgomery reduction constant.
const MConst int64 = 8807305

// CURVE_Order is the prime subgroup order r (also 254 bits).
var CURVE_Order = Limbs{1, 16094192, 9520097, 7977328, 3401800, 5791016, 11960705, 12079173, 3252265, 5141217, 12388}

// CURVE_B_I is the short Weierstrass b coefficient of G1: y² = x³ + b.
const CURVE_B_I = 3

// CURVE_Cof is the G1 cofactor; BN curves have cofactor 1.
const CURVE_Cof = 1

// CURVE_Gx, CURVE_Gy are the canonical G1 generator (1, 2).
var CURVE_Gx = Limbs{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
var CURVE_Gy = Limbs{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// CURVE_Bnx is the BN curve parameter u (here the alt_bn128 / EIP-197 value).
var CURVE_Bnx = Limbs{6883825, 9614410, 17641, 0, 0, 0, 0, 0, 0, 0, 0}

// CURVE_Cru is a nontrivial cube root of unity in Fp, used by G1mul to
// realize the GLV endomorphism ψ(x,y) = (Cru·x, y).
var CURVE_Cru = Limbs{8191304, 4515168, 4056253, 12293742, 9373343, 13414594, 15196332, 6188505, 3252265, 5141217, 12388}

// CURVE_Pxa, CURVE_Pxb, CURVE_Pya, CURVE_Pyb are the four Fp coordinates
// (real, imaginary) of the G2 generator on the sextic twist.
var CURVE_Pxa = Limbs{9631469, 12410073, 14501598, 16211674, 4399828, 4487527, 6708828, 4352512, 2039414, 14610194, 6144}
var CURVE_Pxb = Limbs{15930050, 8763310, 1218532, 3516903, 11159859, 6104561, 12005883, 7495871, 870458, 9671570, 6542}
var CURVE_Pya = Limbs{16416170, 13369702, 8080614, 803795, 13756265, 4231139, 8424907, 4893553, 9203179, 6202843, 4808}
var CURVE_Pyb = Limbs{2266971, 14343377, 15947180, 7385998, 4927795, 3380668, 11364620, 15507097, 6287477, 9031768, 2310}

// Fra, Frb are the two Fp coordinates of the Fp2 Frobenius constant
// f = xi^((p-1)/6) used by FP12.frob and ECP2.frob.
var Fra = Limbs{13231216, 3529436, 7788043, 2699041, 5381640, 9134172, 14513894, 15251871, 6662111, 12000296, 4740}
var Frb = Limbs{15950508, 15753088, 15059548, 9367239, 7967351, 757364, 16650773, 10891900, 16443366, 9892788, 9321}

// CURVE_W holds the two "long" coordinates of a reduced 2-dimensional GLV
// lattice basis {v0, v1} for the decomposition lattice
// L = {(x,y) : x + y*lambda ≡ 0 (mod r)}, lambda being the eigenvalue of
// ψ(x,y) = (Cru·x, y) on the r-torsion. v0 = (CURVE_W[0], CURVE_SB[0][1]),
// v1 = (CURVE_W[1], CURVE_SB[1][1]).
var CURVE_W = [2]Limbs{
	{2539483, 1523102, 5604483, 13593256, 5726047, 9153526, 13541588, 5890667, 0, 0, 0},
	{5181736, 12315517, 16548369, 15644761, 5079624, 111, 0, 0, 0, 0, 0},
}

// CURVE_SB is the GLV sign/short-coordinate basis: CURVE_SB[i][0] is the
// sign convention bit (always 1, kept for shape parity with the spec) and
// CURVE_SB[i][1] is the short coordinate of basis vector i, small enough to
// fit a machine word.
var CURVE_SB = [2][2]int64{
	{1, -4965661367192848882},
	{1, 9931322734385697763},
}

// CURVE_WB holds the four diagonal-ish primary coefficients of the
// 4-dimensional Galbraith-Scott lattice basis for G2/Gt (expressed in terms
// of the curve parameter u; all fit a machine word for this curve).
var CURVE_WB = [4]int64{2 * 4965661367192848881, 4965661367192848881 + 1, -4965661367192848881, 4965661367192848881}

// CURVE_BB is the full 4x4 Galbraith-Scott basis matrix: each row is a
// vector of the lattice {(k0,k1,k2,k3) : k0 + k1*lambda + k2*lambda^2 +
// k3*lambda^3 ≡ 0 (mod r)}, lambda = p mod r being the Frobenius eigenvalue.
// LLL-reduced, so all entries are O(u).
var CURVE_BB = [4][4]int64{
	{2 * 4965661367192848881, 4965661367192848881 + 1, -4965661367192848881, 4965661367192848881},
	{-4965661367192848881, 4965661367192848881, -4965661367192848881, -(2*4965661367192848881 + 1)},
	{4965661367192848881 + 1, 4965661367192848881, 4965661367192848881, -2 * 4965661367192848881},
	{2*4965661367192848881 + 1, -4965661367192848881, -(4965661367192848881 + 1), -4965661367192848881},
}

// Feature flags, per the BN254 parameterization.
const (
	USE_GLV    = true
	USE_GS_G2  = true
	USE_GS_GT  = true
	GT_STRONG  = false
	ATE_BITS   = 66
	MODBYTES   = 32
)
