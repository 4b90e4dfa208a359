// Package testutils derives deterministic field and scalar test vectors for
// the bn254 test suite. It is not a hash-to-curve implementation: the
// values it produces are test fixtures (scalars, byte strings to round-trip
// through encoders), picked deterministically from a fixed seed so the test
// suite doesn't depend on a random source, the way the teacher's
// setup/setup_test.go hard-codes its hex vectors instead of generating them
// at test time.
package testutils

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ModBytes is the field/scalar element width in bytes, mirrored here so
// this package doesn't need to import bn254 just for the constant.
const ModBytes = 32

// seed is the fixed HKDF input keying material for every vector this
// package derives; deterministic across runs and platforms.
var seed = []byte("bn254-pairing-test-vectors")

// Scalar derives a deterministic ModBytes-length big-endian scalar byte
// string for test index i, with the top two bits zeroed so the value is
// below 2^254. That bound is above the curve order, so the value is not
// always below it.
func Scalar(i int) []byte {
	out := expand(fmt32("scalar", i), ModBytes)
	out[0] &= 0x3f
	return out
}

// FieldElement derives a deterministic ModBytes-length big-endian byte
// string for test index i, with the top two bits zeroed so the value is
// below 2^254. The base field modulus is a 254-bit number below that bound,
// so the value is not always below the modulus.
func FieldElement(i int) []byte {
	out := expand(fmt32("field", i), ModBytes)
	out[0] &= 0x3f
	return out
}

// Bytes derives n deterministic bytes for test index i under label,
// useful for building fixed-but-arbitrary payloads in codec round-trip
// tests.
func Bytes(label string, i, n int) []byte {
	return expand(fmt32(label, i), n)
}

func fmt32(label string, i int) []byte {
	buf := make([]byte, len(label)+4)
	copy(buf, label)
	binary.BigEndian.PutUint32(buf[len(label):], uint32(i))
	return buf
}

// expand runs HKDF-SHA256 over the fixed seed with info as the context
// string, returning n pseudorandom but fully deterministic bytes.
func expand(info []byte, n int) []byte {
	r := hkdf.New(sha256.New, seed, nil, info)
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		panic("testutils: hkdf expand failed: " + err.Error())
	}
	return out
}
