package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testModulus() *big.Int {
	// a small prime, easier to reason about in tests than secp256k1's N
	return big.NewInt(97)
}

func TestModInverse(t *testing.T) {
	N := testModulus()
	for a := int64(1); a < 97; a++ {
		inv, err := ModInverse(big.NewInt(a), N)
		require.NoError(t, err)
		got := Mul(big.NewInt(a), inv, N)
		require.Equal(t, int64(1), got.Int64())
	}
}

func TestModInverseZero(t *testing.T) {
	N := testModulus()
	_, err := ModInverse(big.NewInt(0), N)
	require.ErrorIs(t, err, ErrNotInvertible)

	_, err = ModInverse(N, N) // N mod N == 0
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestReduceCanonical(t *testing.T) {
	N := testModulus()
	r := Reduce(big.NewInt(-3), N)
	require.True(t, r.Sign() >= 0)
	require.True(t, r.Cmp(N) < 0)
	require.Equal(t, int64(94), r.Int64())
}

func TestPowMod(t *testing.T) {
	N := testModulus()
	got := PowMod(big.NewInt(2), big.NewInt(10), N)
	require.Equal(t, int64(1024%97), got.Int64())
}

func TestScalarEncodeDecodeRoundTrip(t *testing.T) {
	N := testModulus()
	a := big.NewInt(42)
	enc := EncodeScalar(a, N)
	require.Len(t, enc, ScalarSize)

	dec, err := DecodeScalar(enc)
	require.NoError(t, err)
	require.Equal(t, a.Int64(), dec.Int64())
}

func TestEncodeScalarIsZeroPadded(t *testing.T) {
	N := testModulus()
	enc := EncodeScalar(big.NewInt(1), N)
	for _, b := range enc[:ScalarSize-1] {
		require.Equal(t, byte(0), b)
	}
	require.Equal(t, byte(1), enc[ScalarSize-1])
}

func TestEncodeScalarReducesFirst(t *testing.T) {
	N := testModulus()
	enc := EncodeScalar(big.NewInt(97+5), N)
	dec, err := DecodeScalar(enc)
	require.NoError(t, err)
	require.Equal(t, int64(5), dec.Int64())
}
