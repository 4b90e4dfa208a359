package codec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giuliop/bn254"
)

func TestEncodeDecodeG1RoundTrip(t *testing.T) {
	g1 := bn254.G1Generator()

	data, err := EncodeG1(g1)
	require.NoError(t, err)

	back, err := DecodeG1(data)
	require.NoError(t, err)
	assert.True(t, back.Equal(g1), "decoded G1 point should equal the original")
}

func TestEncodeDecodeG2RoundTrip(t *testing.T) {
	g2 := bn254.G2Generator()

	data, err := EncodeG2(g2)
	require.NoError(t, err)

	back, err := DecodeG2(data)
	require.NoError(t, err)
	assert.True(t, back.Equal(g2), "decoded G2 point should equal the original")
}

func TestEncodeDecodeG1CBORRoundTrip(t *testing.T) {
	g1 := bn254.G1Generator()

	data, err := EncodeG1CBOR(g1)
	require.NoError(t, err)

	back, err := DecodeG1CBOR(data)
	require.NoError(t, err)
	assert.True(t, back.Equal(g1), "cbor-decoded G1 point should equal the original")
}

func TestMultiPairingAccumulatorSnapshotRoundTrip(t *testing.T) {
	g1 := bn254.G1Generator()
	g2 := bn254.G2Generator()
	var two, three bn254.BIG
	two = bn254.ScalarFromBytes(smallScalarBytesForTest(2))
	three = bn254.ScalarFromBytes(smallScalarBytesForTest(3))
	R := g2.ScalarMul(two)
	S := g1.ScalarMul(three)

	snap := AccumulatorSnapshot{
		G2Points: [][]byte{g2.Bytes(), R.Bytes()},
		G1Points: [][]byte{g1.Bytes(false), S.Bytes(false)},
	}

	path := filepath.Join(t.TempDir(), "accumulator.gob")
	err := SerializeMultiPairingAccumulator(snap, path)
	require.NoError(t, err)

	acc, err := DeserializeMultiPairingAccumulator(path)
	require.NoError(t, err)

	got := acc.Finalize()
	want := bn254.Pair2(g2, g1, R, S)
	assert.True(t, got.Equal(want), "replayed accumulator should match Pair2 on the same pairs")
}

func TestDeserializeMultiPairingAccumulatorMissingFile(t *testing.T) {
	_, err := DeserializeMultiPairingAccumulator(filepath.Join(t.TempDir(), "does-not-exist.gob"))
	assert.Error(t, err)
}

func smallScalarBytesForTest(v uint64) []byte {
	out := make([]byte, 32)
	for i := 0; i < 8; i++ {
		out[31-i] = byte(v)
		v >>= 8
	}
	return out
}
