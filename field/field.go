// Package field implements modular arithmetic over Z_N, the scalar
// field of the curve's prime-order group, plus the fixed-width byte
// encoding used for hashing, transport, and EC scalar multiplication.
package field

import (
	"errors"
	"math/big"

	"github.com/ing-bank/zkrp/util/bn"
	"github.com/ing-bank/zkrp/util/byteconversion"
)

// ErrNotInvertible is returned by ModInverse when a is congruent to
// zero modulo N; the taxonomy name for this failure is InvalidScalar.
var ErrNotInvertible = errors.New("field: element is not invertible mod N")

// ScalarSize is the fixed byte width of the big-endian scalar encoding.
const ScalarSize = 32

// Reduce returns a mod N in [0, N).
func Reduce(a, N *big.Int) *big.Int {
	return bn.Mod(a, N)
}

// Add returns (a + b) mod N.
func Add(a, b, N *big.Int) *big.Int {
	return bn.Mod(bn.Add(a, b), N)
}

// Sub returns (a - b) mod N.
func Sub(a, b, N *big.Int) *big.Int {
	return bn.Mod(bn.Sub(a, b), N)
}

// Mul returns (a * b) mod N.
func Mul(a, b, N *big.Int) *big.Int {
	return bn.Mod(bn.Multiply(a, b), N)
}

// PowMod returns a^k mod N.
func PowMod(a, k, N *big.Int) *big.Int {
	return new(big.Int).Exp(a, k, N)
}

// ModInverse returns the unique x in [1, N) with a*x = 1 (mod N).
// N must be prime; the only non-invertible residue is then 0.
func ModInverse(a, N *big.Int) (*big.Int, error) {
	r := Reduce(a, N)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	return bn.ModInverse(r, N), nil
}

// EncodeScalar renders a, reduced mod N, as 32 zero-padded big-endian bytes.
func EncodeScalar(a, N *big.Int) []byte {
	out := make([]byte, ScalarSize)
	Reduce(a, N).FillBytes(out)
	return out
}

// DecodeScalar recovers the integer represented by a 32-byte big-endian
// string. The result is not reduced mod N; callers reduce on use.
func DecodeScalar(b []byte) (*big.Int, error) {
	return byteconversion.FromByteArray(b)
}
