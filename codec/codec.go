// Package codec serializes bn254 artifacts (points and multi-pairing
// accumulators) to and from bytes, mirroring the teacher's
// utils.SerializeCompiledCircuit / DeserializeCompiledCircuit pattern: wrap
// the wire-format bytes in a small envelope struct and hand it to an
// encoding package rather than hand-rolling a binary layout.
package codec

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/giuliop/bn254"
)

// g1Bytes, g2Bytes are the gob/cbor envelopes around the library's own
// compressed/uncompressed wire formats (ECP.Bytes, ECP2.Bytes).
type g1Bytes struct {
	X []byte
}

type g2Bytes struct {
	X []byte
}

// EncodeG1 serializes a G1 point to gob bytes, compressed form.
func EncodeG1(p bn254.ECP) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g1Bytes{X: p.Bytes(true)}); err != nil {
		return nil, fmt.Errorf("error encoding G1 point: %v", err)
	}
	return buf.Bytes(), nil
}

// DecodeG1 deserializes a G1 point produced by EncodeG1.
func DecodeG1(data []byte) (bn254.ECP, error) {
	var g g1Bytes
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return bn254.ECP{}, fmt.Errorf("error decoding G1 point: %v", err)
	}
	return bn254.ECPFromBytes(g.X), nil
}

// EncodeG2 serializes a G2 point to gob bytes.
func EncodeG2(p bn254.ECP2) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g2Bytes{X: p.Bytes()}); err != nil {
		return nil, fmt.Errorf("error encoding G2 point: %v", err)
	}
	return buf.Bytes(), nil
}

// DecodeG2 deserializes a G2 point produced by EncodeG2.
func DecodeG2(data []byte) (bn254.ECP2, error) {
	var g g2Bytes
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return bn254.ECP2{}, fmt.Errorf("error decoding G2 point: %v", err)
	}
	return bn254.ECP2FromBytes(g.X), nil
}

// EncodeG1CBOR is the same envelope as EncodeG1, serialized with cbor
// instead of gob: an alternate compact encoding alongside the library's
// bit-exact wire format, for consumers that prefer a self-describing,
// cross-language format over gob's Go-specific one.
func EncodeG1CBOR(p bn254.ECP) ([]byte, error) {
	data, err := cbor.Marshal(g1Bytes{X: p.Bytes(true)})
	if err != nil {
		return nil, fmt.Errorf("error cbor-encoding G1 point: %v", err)
	}
	return data, nil
}

// DecodeG1CBOR deserializes a G1 point produced by EncodeG1CBOR.
func DecodeG1CBOR(data []byte) (bn254.ECP, error) {
	var g g1Bytes
	if err := cbor.Unmarshal(data, &g); err != nil {
		return bn254.ECP{}, fmt.Errorf("error cbor-decoding G1 point: %v", err)
	}
	return bn254.ECPFromBytes(g.X), nil
}

// AccumulatorSnapshot is the serializable form of a MultiPairingAccumulator
// in progress: the (P, Q) pairs folded in so far. The accumulator itself
// holds per-bit Fp12 partial products with no exported layout, so a
// snapshot persists the inputs and replays them on load rather than the
// internal accumulator state.
type AccumulatorSnapshot struct {
	G2Points [][]byte
	G1Points [][]byte
}

// SerializeMultiPairingAccumulator persists every (P, Q) pair recorded in
// snap to filepath, via gob.
func SerializeMultiPairingAccumulator(snap AccumulatorSnapshot, filepath string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("error encoding multi-pairing accumulator: %v", err)
	}
	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing multi-pairing accumulator to file: %v", err)
	}
	return nil
}

// DeserializeMultiPairingAccumulator reads filepath and rebuilds a fresh
// bn254.MultiPairingAccumulator from the snapshot written by
// SerializeMultiPairingAccumulator, replaying every pair through Add.
func DeserializeMultiPairingAccumulator(filepath string) (*bn254.MultiPairingAccumulator, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading multi-pairing accumulator file: %v", err)
	}
	var snap AccumulatorSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("error decoding multi-pairing accumulator: %v", err)
	}
	if len(snap.G1Points) != len(snap.G2Points) {
		return nil, fmt.Errorf("mismatched point counts in accumulator snapshot: %d G1, %d G2",
			len(snap.G1Points), len(snap.G2Points))
	}
	acc := bn254.NewMultiPairingAccumulator()
	for i := range snap.G1Points {
		g1 := bn254.ECPFromBytes(snap.G1Points[i])
		g2 := bn254.ECP2FromBytes(snap.G2Points[i])
		acc.Add(g2, g1)
	}
	return acc, nil
}
