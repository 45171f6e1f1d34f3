package vector

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func modulus() *big.Int { return big.NewInt(97) }

func ints(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestAddSubRoundTrip(t *testing.T) {
	N := modulus()
	a := New(N, ints(1, 2, 3)...)
	b := New(N, ints(10, 20, 30)...)

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, a.At(i).Int64(), back.At(i).Int64())
	}
}

func TestHadamard(t *testing.T) {
	N := modulus()
	a := New(N, ints(2, 3, 4)...)
	b := New(N, ints(5, 6, 7)...)
	got, err := a.Hadamard(b)
	require.NoError(t, err)
	require.Equal(t, int64(10), got.At(0).Int64())
	require.Equal(t, int64(18), got.At(1).Int64())
	require.Equal(t, int64(28), got.At(2).Int64())
}

func TestInnerProduct(t *testing.T) {
	N := modulus()
	a := New(N, ints(1, 2, 3)...)
	b := New(N, ints(4, 5, 6)...)
	got, err := a.InnerProduct(b)
	require.NoError(t, err)
	require.Equal(t, int64(1*4+2*5+3*6), got.Int64())
}

func TestLengthMismatchErrors(t *testing.T) {
	N := modulus()
	a := New(N, ints(1, 2)...)
	b := New(N, ints(1, 2, 3)...)

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Hadamard(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.InnerProduct(b)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestHalvesSplitsEvenly(t *testing.T) {
	N := modulus()
	v := New(N, ints(1, 2, 3, 4)...)
	lo, hi, err := v.Halves()
	require.NoError(t, err)
	require.Equal(t, 2, lo.Len())
	require.Equal(t, 2, hi.Len())
	require.Equal(t, int64(1), lo.At(0).Int64())
	require.Equal(t, int64(3), hi.At(0).Int64())
}

func TestHalvesRejectsOddLength(t *testing.T) {
	N := modulus()
	v := New(N, ints(1, 2, 3)...)
	_, _, err := v.Halves()
	require.ErrorIs(t, err, ErrOddLength)
}

func TestPowerVector(t *testing.T) {
	N := modulus()
	pv := PowerVector(big.NewInt(3), 4, N)
	require.Equal(t, int64(1), pv.At(0).Int64())
	require.Equal(t, int64(3), pv.At(1).Int64())
	require.Equal(t, int64(9), pv.At(2).Int64())
	require.Equal(t, int64(27), pv.At(3).Int64())
}

func TestBitDecomposeReconstructsViaPowerVectorOfTwo(t *testing.T) {
	N := modulus()
	v := big.NewInt(11) // 1011
	bits := BitDecompose(v, 8, N)
	powersOfTwo := PowerVector(big.NewInt(2), 8, N)
	got, err := bits.InnerProduct(powersOfTwo)
	require.NoError(t, err)
	require.Equal(t, v.Int64(), got.Int64())
}

func TestSub1(t *testing.T) {
	N := modulus()
	v := New(N, ints(1, 0, 5)...)
	got := v.Sub1(N)
	require.Equal(t, int64(0), got.At(0).Int64())
	require.Equal(t, int64(96), got.At(1).Int64()) // -1 mod 97
	require.Equal(t, int64(4), got.At(2).Int64())
}
