// Package vector implements fixed-length vectors of scalars modulo N,
// the algebraic building block shared by the Pedersen commitment and
// inner-product argument packages.
package vector

import (
	"errors"
	"math/big"

	"github.com/zkrange/bulletproofs/field"
)

// ErrLengthMismatch is returned when two vectors of differing length
// are combined.
var ErrLengthMismatch = errors.New("vector: length mismatch")

// ErrOddLength is returned by Halves when the vector's length is odd.
var ErrOddLength = errors.New("vector: odd length")

// Vector is an immutable sequence of scalars reduced modulo N.
type Vector struct {
	elems []*big.Int
	N     *big.Int
}

// New builds a Vector from the given elements, reducing each mod N.
func New(N *big.Int, elems ...*big.Int) Vector {
	out := make([]*big.Int, len(elems))
	for i, e := range elems {
		out[i] = field.Reduce(e, N)
	}
	return Vector{elems: out, N: N}
}

// Zero returns the length-n all-zero vector.
func Zero(N *big.Int, n int) Vector {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(0)
	}
	return Vector{elems: out, N: N}
}

// One returns the length-n all-one vector.
func One(N *big.Int, n int) Vector {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(1)
	}
	return Vector{elems: out, N: N}
}

// Len returns the vector's length.
func (v Vector) Len() int { return len(v.elems) }

// At returns the i-th element.
func (v Vector) At(i int) *big.Int { return v.elems[i] }

// Slice returns the underlying elements; callers must not mutate them.
func (v Vector) Slice() []*big.Int { return v.elems }

func (v Vector) checkLen(other Vector) error {
	if v.Len() != other.Len() {
		return ErrLengthMismatch
	}
	return nil
}

// Add returns the element-wise sum of v and other.
func (v Vector) Add(other Vector) (Vector, error) {
	if err := v.checkLen(other); err != nil {
		return Vector{}, err
	}
	out := make([]*big.Int, v.Len())
	for i := range out {
		out[i] = field.Add(v.elems[i], other.elems[i], v.N)
	}
	return Vector{elems: out, N: v.N}, nil
}

// Sub returns the element-wise difference v - other.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := v.checkLen(other); err != nil {
		return Vector{}, err
	}
	out := make([]*big.Int, v.Len())
	for i := range out {
		out[i] = field.Sub(v.elems[i], other.elems[i], v.N)
	}
	return Vector{elems: out, N: v.N}, nil
}

// Hadamard returns the element-wise product of v and other.
func (v Vector) Hadamard(other Vector) (Vector, error) {
	if err := v.checkLen(other); err != nil {
		return Vector{}, err
	}
	out := make([]*big.Int, v.Len())
	for i := range out {
		out[i] = field.Mul(v.elems[i], other.elems[i], v.N)
	}
	return Vector{elems: out, N: v.N}, nil
}

// ScalarMul returns k*v, scaling every element by k.
func (v Vector) ScalarMul(k *big.Int) Vector {
	out := make([]*big.Int, v.Len())
	for i := range out {
		out[i] = field.Mul(v.elems[i], k, v.N)
	}
	return Vector{elems: out, N: v.N}
}

// Sub1 returns v with 1 subtracted (mod N) from every element.
func (v Vector) Sub1(N *big.Int) Vector {
	return v.AddConst(big.NewInt(-1))
}

// AddConst returns v with k added to every element.
func (v Vector) AddConst(k *big.Int) Vector {
	out := make([]*big.Int, v.Len())
	for i := range out {
		out[i] = field.Add(v.elems[i], k, v.N)
	}
	return Vector{elems: out, N: v.N}
}

// InnerProduct returns sum_i(v_i * other_i) mod N.
func (v Vector) InnerProduct(other Vector) (*big.Int, error) {
	if err := v.checkLen(other); err != nil {
		return nil, err
	}
	acc := big.NewInt(0)
	for i := range v.elems {
		acc = field.Add(acc, field.Mul(v.elems[i], other.elems[i], v.N), v.N)
	}
	return acc, nil
}

// Halves splits v into its first and second half. The length must be even.
func (v Vector) Halves() (lo, hi Vector, err error) {
	if v.Len()%2 != 0 {
		return Vector{}, Vector{}, ErrOddLength
	}
	half := v.Len() / 2
	return Vector{elems: v.elems[:half], N: v.N}, Vector{elems: v.elems[half:], N: v.N}, nil
}

// PowerVector returns (y^0, y^1, ..., y^(n-1)).
func PowerVector(y *big.Int, n int, N *big.Int) Vector {
	out := make([]*big.Int, n)
	acc := big.NewInt(1)
	for i := 0; i < n; i++ {
		out[i] = field.Reduce(acc, N)
		acc = field.Mul(acc, y, N)
	}
	return Vector{elems: out, N: N}
}

// BitDecompose returns the little-endian bit vector of v with n bits.
// It performs no range check: if v does not fit in n bits, the
// resulting vector simply does not reconstruct v under PowerVector's
// inner product, which later fails proof verification rather than
// erroring here.
func BitDecompose(v *big.Int, n int, N *big.Int) Vector {
	out := make([]*big.Int, n)
	tmp := new(big.Int).Set(v)
	for i := 0; i < n; i++ {
		bit := new(big.Int).And(tmp, big.NewInt(1))
		out[i] = bit
		tmp.Rsh(tmp, 1)
	}
	return Vector{elems: out, N: N}
}
