// Package pedersen implements Pedersen commitments to a single scalar
// (PC) and vector Pedersen / inner-product commitments (VPC / IPC) over
// NUMS basepoints, as used by the range-proof and inner-product-argument
// packages. Every commitment here is perfectly hiding and computationally
// binding under the discrete-log assumption, and additively homomorphic
// in its committed values.
package pedersen

import (
	"math/big"

	"github.com/zkrange/bulletproofs/curve"
	"github.com/zkrange/bulletproofs/nums"
	"github.com/zkrange/bulletproofs/vector"
)

// Generators holds the NUMS basepoint set used by a vector commitment
// of a fixed length n: U for the blinding/inner-product term, and the
// G and H vectors of length n for the a and b vectors respectively.
type Generators struct {
	U    curve.Point
	G, H []curve.Point
}

// NewGenerators derives the basepoint set for vectors of length n:
// U = NUMS(0), G_i = NUMS(i+1) for i in [0,n), H_j = NUMS(n+j+1) for j in [0,n).
func NewGenerators(n int) Generators {
	g := make([]curve.Point, n)
	h := make([]curve.Point, n)
	for i := 0; i < n; i++ {
		g[i] = nums.Point(uint8(i + 1))
	}
	for j := 0; j < n; j++ {
		h[j] = nums.Point(uint8(n + j + 1))
	}
	return Generators{U: nums.Point(0), G: g, H: h}
}

// H is the dedicated blinding-generator basepoint used by single-value
// Pedersen commitments, NUMS(255).
func H() curve.Point {
	return nums.Point(255)
}

// Commit computes a single-value Pedersen commitment C = v*G + r*H,
// binding value v under blinding factor r.
func Commit(v, r *big.Int, g curve.Point) curve.Point {
	return curve.Add(curve.ScalarMult(g, v), curve.ScalarMult(H(), r))
}

// VectorCommit computes a vector Pedersen commitment
// P = c*U + sum_i(a_i*G_i) + sum_i(b_i*H_i)
// for the given blinding value c (interpreted as the commitment's
// "blinding amount", which may equally be an inner product — see
// InnerProductCommit).
func VectorCommit(a, b vector.Vector, c *big.Int, gens Generators) (curve.Point, error) {
	if a.Len() != len(gens.G) || b.Len() != len(gens.H) {
		return curve.Point{}, vector.ErrLengthMismatch
	}
	terms := make([]curve.Point, 0, a.Len()+b.Len()+1)
	terms = append(terms, curve.ScalarMult(gens.U, c))
	for i := 0; i < a.Len(); i++ {
		terms = append(terms, curve.ScalarMult(gens.G[i], a.At(i)))
	}
	for i := 0; i < b.Len(); i++ {
		terms = append(terms, curve.ScalarMult(gens.H[i], b.At(i)))
	}
	return curve.Add(terms...), nil
}

// InnerProductCommit computes the inner-product commitment
// P = a*G* + b*H* + <a,b>*U, i.e. a VectorCommit whose blinding term
// is fixed to the inner product of a and b.
func InnerProductCommit(a, b vector.Vector, gens Generators) (curve.Point, error) {
	ip, err := a.InnerProduct(b)
	if err != nil {
		return curve.Point{}, err
	}
	return VectorCommit(a, b, ip, gens)
}
