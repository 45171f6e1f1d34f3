// Package ipa implements the inner-product argument: an O(log n)-size
// proof that a claimed inner product of two committed vectors is
// correct, folding the vectors and their generators in half each round
// until a single pair of scalars remains.
package ipa

import (
	"math/big"

	"github.com/zkrange/bulletproofs/curve"
	"github.com/zkrange/bulletproofs/field"
	"github.com/zkrange/bulletproofs/transcript"
	"github.com/zkrange/bulletproofs/vector"
)

// Params holds the generator vectors and blinding basepoint against
// which an inner-product commitment P = a*G* + b*H* + <a,b>*U is formed.
type Params struct {
	G, H []curve.Point
	U    curve.Point
	N    *big.Int
}

// Proof is the O(log n)-size inner-product argument: the folded
// scalars A, B, and the per-round commitment pairs L, R.
type Proof struct {
	A, B *big.Int
	L, R []curve.Point
}

// Prove constructs an inner-product argument that a and b, committed
// under p's generators, have the inner product implicit in P (the
// commitment the caller derived separately). It proceeds iteratively,
// halving the working vectors and generators each round rather than
// recursing, since the fixed maximum depth (6, for n=64) makes
// iteration both simpler and allocation-cheaper than recursion.
func Prove(tr transcript.Transcript, commitment curve.Point, a, b vector.Vector, p Params) (Proof, error) {
	if a.Len() != b.Len() || a.Len() != len(p.G) || a.Len() != len(p.H) {
		return Proof{}, vector.ErrLengthMismatch
	}

	g := append([]curve.Point(nil), p.G...)
	h := append([]curve.Point(nil), p.H...)
	curA, curB := a, b
	curP := commitment
	var ls, rs []curve.Point

	for curA.Len() > 1 {
		n := curA.Len()
		half := n / 2

		aL, aR, err := curA.Halves()
		if err != nil {
			return Proof{}, err
		}
		bL, bR, err := curB.Halves()
		if err != nil {
			return Proof{}, err
		}
		gL, gR := g[:half], g[half:]
		hL, hR := h[:half], h[half:]

		cL, err := aL.InnerProduct(bR)
		if err != nil {
			return Proof{}, err
		}
		cR, err := aR.InnerProduct(bL)
		if err != nil {
			return Proof{}, err
		}

		L := commitHalf(aL, bR, gR, hL, p.U, cL, p.N)
		R := commitHalf(aR, bL, gL, hR, p.U, cR, p.N)
		ls = append(ls, L)
		rs = append(rs, R)

		var challenges []*big.Int
		challenges, tr = tr.Challenge(2, p.N, transcript.Pt(L), transcript.Pt(R), transcript.Pt(curP))
		x := field.Reduce(challenges[0], p.N)
		xInv, err := field.ModInverse(x, p.N)
		if err != nil {
			return Proof{}, err
		}

		g = foldGenerators(gL, gR, xInv, x, p.N)
		h = foldGenerators(hL, hR, x, xInv, p.N)

		curA, err = foldScalars(aL, aR, x, xInv, p.N)
		if err != nil {
			return Proof{}, err
		}
		curB, err = foldScalars(bL, bR, xInv, x, p.N)
		if err != nil {
			return Proof{}, err
		}

		xSq := field.Mul(x, x, p.N)
		xInvSq := field.Mul(xInv, xInv, p.N)
		curP = curve.Add(curP, curve.ScalarMult(L, xSq), curve.ScalarMult(R, xInvSq))
	}

	return Proof{A: curA.At(0), B: curB.At(0), L: ls, R: rs}, nil
}

// Verify checks proof against the claimed commitment under p,
// replaying the same fold the prover performed. It never panics or
// returns an error: any structural or cryptographic failure, including
// a zero Fiat-Shamir challenge, simply yields false.
func Verify(tr transcript.Transcript, commitment curve.Point, p Params, proof Proof) bool {
	n := len(p.G)
	if n != len(p.H) || proof.A == nil || proof.B == nil {
		return false
	}
	if len(proof.L) != len(proof.R) {
		return false
	}

	g := append([]curve.Point(nil), p.G...)
	h := append([]curve.Point(nil), p.H...)
	curP := commitment

	for i := 0; n > 1; i++ {
		if i >= len(proof.L) {
			return false
		}
		half := n / 2
		gL, gR := g[:half], g[half:]
		hL, hR := h[:half], h[half:]
		L, R := proof.L[i], proof.R[i]

		var challenges []*big.Int
		challenges, tr = tr.Challenge(2, p.N, transcript.Pt(L), transcript.Pt(R), transcript.Pt(curP))
		x := field.Reduce(challenges[0], p.N)
		if x.Sign() == 0 {
			return false
		}
		xInv, err := field.ModInverse(x, p.N)
		if err != nil {
			return false
		}

		g = foldGenerators(gL, gR, xInv, x, p.N)
		h = foldGenerators(hL, hR, x, xInv, p.N)

		xSq := field.Mul(x, x, p.N)
		xInvSq := field.Mul(xInv, xInv, p.N)
		curP = curve.Add(curP, curve.ScalarMult(L, xSq), curve.ScalarMult(R, xInvSq))
		n = half
	}
	c := field.Mul(proof.A, proof.B, p.N)
	want := curve.Add(
		curve.ScalarMult(g[0], proof.A),
		curve.ScalarMult(h[0], proof.B),
		curve.ScalarMult(p.U, c),
	)
	return curve.Equal(curP, want)
}

func commitHalf(a, b vector.Vector, g, h []curve.Point, u curve.Point, c *big.Int, N *big.Int) curve.Point {
	terms := make([]curve.Point, 0, a.Len()+b.Len()+1)
	terms = append(terms, curve.ScalarMult(u, c))
	for i := 0; i < a.Len(); i++ {
		terms = append(terms, curve.ScalarMult(g[i], a.At(i)))
	}
	for i := 0; i < b.Len(); i++ {
		terms = append(terms, curve.ScalarMult(h[i], b.At(i)))
	}
	return curve.Add(terms...)
}

func foldGenerators(lo, hi []curve.Point, loScale, hiScale *big.Int, N *big.Int) []curve.Point {
	half := len(lo)
	out := make([]curve.Point, half)
	for i := 0; i < half; i++ {
		out[i] = curve.Add(curve.ScalarMult(lo[i], loScale), curve.ScalarMult(hi[i], hiScale))
	}
	return out
}

func foldScalars(lo, hi vector.Vector, loScale, hiScale *big.Int, N *big.Int) (vector.Vector, error) {
	a, err := lo.ScalarMul(loScale).Add(hi.ScalarMul(hiScale))
	if err != nil {
		return vector.Vector{}, err
	}
	return a, nil
}
