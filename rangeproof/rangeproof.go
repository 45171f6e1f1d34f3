// Package rangeproof implements the single-value Bulletproofs range
// proof: a non-interactive, logarithmic-size zero-knowledge proof that
// a Pedersen-committed value v lies in [0, 2^n) without revealing v.
package rangeproof

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/zkrange/bulletproofs/curve"
	"github.com/zkrange/bulletproofs/field"
	"github.com/zkrange/bulletproofs/ipa"
	"github.com/zkrange/bulletproofs/pedersen"
	"github.com/zkrange/bulletproofs/transcript"
	"github.com/zkrange/bulletproofs/vector"
)

// ErrBitlengthUnsupported is returned by Setup for any n outside
// {2,4,8,16,32,64}.
var ErrBitlengthUnsupported = errors.New("rangeproof: unsupported bit length")

var supportedBitlengths = map[int]bool{2: true, 4: true, 8: true, 16: true, 32: true, 64: true}

// Params holds the fixed public parameters for range proofs of a given
// bit length: the bit length itself and the derived generator set.
type Params struct {
	N    int
	Gens pedersen.Generators
}

// Setup builds the parameters for n-bit range proofs.
func Setup(n int) (Params, error) {
	if !supportedBitlengths[n] {
		return Params{}, ErrBitlengthUnsupported
	}
	return Params{N: n, Gens: pedersen.NewGenerators(n)}, nil
}

// Proof is a complete range proof, matching the fixed wire layout of
// the external wire format: A, S, T1, T2, tau_x, mu, t, a, b, plus the
// L/R arrays from the inner-product argument.
type Proof struct {
	A, S, T1, T2 curve.Point
	TauX, Mu, T  *big.Int
	A_, B_       *big.Int
	L, R         []curve.Point
}

// SelfCheck, when true, makes Prove re-verify its own output before
// returning it, panicking if the self-check fails. This mirrors the
// reference prover's in-proof sanity assertion; it exists purely as a
// test aid and is never enabled by library callers.
var SelfCheck = false

func order() *big.Int { return curve.Order() }

func randScalar(N *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, N)
}

// Prove constructs a range proof that value lies in [0, 2^params.N).
// Callers are responsible for ensuring value is actually in range: the
// prover performs no such check, and an out-of-range value simply
// yields a proof that Verify rejects (see vector.BitDecompose's
// documentation and spec-level Open Question 3).
func Prove(value *big.Int, params Params) (curve.Point, Proof, error) {
	N := order()
	n := params.N
	g, h := params.Gens.G, params.Gens.H
	hBlind := pedersen.H()
	gGen := curve.Generator()

	gamma, err := randScalar(N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	V := pedersen.Commit(value, gamma, gGen)

	aL := vector.BitDecompose(value, n, N)
	aR := aL.Sub1(N)

	alpha, err := randScalar(N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	A, err := commitBlinded(aL, aR, alpha, hBlind, g, h)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	sL, err := randomVector(n, N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	sR, err := randomVector(n, N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	rho, err := randScalar(N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	S, err := commitBlinded(sL, sR, rho, hBlind, g, h)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	tr := transcript.New()
	var yz []*big.Int
	yz, tr = tr.Challenge(2, N, transcript.Pt(V), transcript.Pt(A), transcript.Pt(S))
	y, z := field.Reduce(yz[0], N), field.Reduce(yz[1], N)

	yPow := vector.PowerVector(y, n, N)
	twoPow := vector.PowerVector(big.NewInt(2), n, N)
	onesN := vector.One(N, n)

	zOnes := onesN.ScalarMul(z)
	l0, err := aL.Sub(zOnes)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	l1 := sL

	aRplusZ, err := aR.Add(zOnes)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	yHad, err := yPow.Hadamard(aRplusZ)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	zSq := field.Mul(z, z, N)
	r0, err := yHad.Add(twoPow.ScalarMul(zSq))
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	r1, err := yPow.Hadamard(sR)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	ip01, err := l0.InnerProduct(r1)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	ip10, err := l1.InnerProduct(r0)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	t1 := field.Add(ip01, ip10, N)
	t2, err := l1.InnerProduct(r1)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	tau1, err := randScalar(N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	tau2, err := randScalar(N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	T1 := pedersen.Commit(t1, tau1, gGen)
	T2 := pedersen.Commit(t2, tau2, gGen)

	var xs []*big.Int
	xs, tr = tr.Challenge(1, N, transcript.Pt(T1), transcript.Pt(T2))
	x := field.Reduce(xs[0], N)

	lx, err := l0.Add(l1.ScalarMul(x))
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	rx, err := r0.Add(r1.ScalarMul(x))
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	t, err := lx.InnerProduct(rx)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	xSq := field.Mul(x, x, N)
	tauX := field.Add(field.Add(field.Mul(tau1, x, N), field.Mul(tau2, xSq, N), N), field.Mul(zSq, gamma, N), N)
	mu := field.Add(alpha, field.Mul(rho, x, N), N)

	hPrime, err := primedH(h, y, N)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	var us []*big.Int
	us, tr = tr.Challenge(1, N, transcript.Sc(tauX), transcript.Sc(mu), transcript.Sc(t))
	uChal := field.Reduce(us[0], N)
	uPoint := curve.ScalarMult(gGen, uChal)

	ipaParams := ipa.Params{G: g, H: hPrime, U: uPoint, N: N}
	ipaCommitment, err := commitForIPA(lx, rx, ipaParams)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}
	ipaProof, err := ipa.Prove(tr, ipaCommitment, lx, rx, ipaParams)
	if err != nil {
		return curve.Point{}, Proof{}, err
	}

	proof := Proof{
		A: A, S: S, T1: T1, T2: T2,
		TauX: tauX, Mu: mu, T: t,
		A_: ipaProof.A, B_: ipaProof.B,
		L: ipaProof.L, R: ipaProof.R,
	}

	if SelfCheck && !Verify(V, proof, params) {
		panic("rangeproof: self-check failed on freshly generated proof")
	}

	return V, proof, nil
}

// Verify checks proof against commitment under params, following the
// verifier procedure exactly: it replays the transcript, checks the
// eq. 61 linear identity, reconstructs the folded commitment P', and
// delegates to the inner-product verifier. It never panics: any
// structural problem yields false.
func Verify(commitment curve.Point, proof Proof, params Params) bool {
	N := order()
	n := params.N
	g, h := params.Gens.G, params.Gens.H
	hBlind := pedersen.H()
	gGen := curve.Generator()

	if proof.A_ == nil || proof.B_ == nil || proof.TauX == nil || proof.Mu == nil || proof.T == nil {
		return false
	}

	tr := transcript.New()
	var yz []*big.Int
	yz, tr = tr.Challenge(2, N, transcript.Pt(commitment), transcript.Pt(proof.A), transcript.Pt(proof.S))
	y, z := field.Reduce(yz[0], N), field.Reduce(yz[1], N)

	var xs []*big.Int
	xs, tr = tr.Challenge(1, N, transcript.Pt(proof.T1), transcript.Pt(proof.T2))
	x := field.Reduce(xs[0], N)

	var us []*big.Int
	us, tr = tr.Challenge(1, N, transcript.Sc(proof.TauX), transcript.Sc(proof.Mu), transcript.Sc(proof.T))
	uChal := field.Reduce(us[0], N)
	uPoint := curve.ScalarMult(gGen, uChal)

	hPrime, err := primedH(h, y, N)
	if err != nil {
		return false
	}

	delta, err := deltaYZ(y, z, n, N)
	if err != nil {
		return false
	}

	xSq := field.Mul(x, x, N)
	zSq := field.Mul(z, z, N)
	lhs := curve.Add(curve.ScalarMult(gGen, proof.T), curve.ScalarMult(hBlind, proof.TauX))
	rhs := curve.Add(
		curve.ScalarMult(gGen, delta),
		curve.ScalarMult(commitment, zSq),
		curve.ScalarMult(proof.T1, x),
		curve.ScalarMult(proof.T2, xSq),
	)
	if !curve.Equal(lhs, rhs) {
		return false
	}

	P, err := reconstructP(proof.A, proof.S, x, z, y, g, hPrime, n, N)
	if err != nil {
		return false
	}
	P = curve.Add(P, curve.ScalarMult(uPoint, proof.T))
	pPrime := curve.Add(P, curve.ScalarMult(hBlind, new(big.Int).Neg(proof.Mu)))

	ipaParams := ipa.Params{G: g, H: hPrime, U: uPoint, N: N}
	ipaProof := ipa.Proof{A: proof.A_, B: proof.B_, L: proof.L, R: proof.R}
	return ipa.Verify(tr, pPrime, ipaParams, ipaProof)
}

func randomVector(n int, N *big.Int) (vector.Vector, error) {
	elems := make([]*big.Int, n)
	for i := range elems {
		s, err := randScalar(N)
		if err != nil {
			return vector.Vector{}, err
		}
		elems[i] = s
	}
	return vector.New(N, elems...), nil
}

func commitBlinded(aL, aR vector.Vector, blind *big.Int, hBlind curve.Point, g, h []curve.Point) (curve.Point, error) {
	if aL.Len() != len(g) || aR.Len() != len(h) {
		return curve.Point{}, vector.ErrLengthMismatch
	}
	terms := make([]curve.Point, 0, aL.Len()+aR.Len()+1)
	terms = append(terms, curve.ScalarMult(hBlind, blind))
	for i := 0; i < aL.Len(); i++ {
		terms = append(terms, curve.ScalarMult(g[i], aL.At(i)))
	}
	for i := 0; i < aR.Len(); i++ {
		terms = append(terms, curve.ScalarMult(h[i], aR.At(i)))
	}
	return curve.Add(terms...), nil
}

func commitForIPA(a, b vector.Vector, p ipa.Params) (curve.Point, error) {
	ip, err := a.InnerProduct(b)
	if err != nil {
		return curve.Point{}, err
	}
	terms := make([]curve.Point, 0, a.Len()+b.Len()+1)
	terms = append(terms, curve.ScalarMult(p.U, ip))
	for i := 0; i < a.Len(); i++ {
		terms = append(terms, curve.ScalarMult(p.G[i], a.At(i)))
	}
	for i := 0; i < b.Len(); i++ {
		terms = append(terms, curve.ScalarMult(p.H[i], b.At(i)))
	}
	return curve.Add(terms...), nil
}

// primedH computes H'_i = y^(-i) * H_i for i in [0,n).
func primedH(h []curve.Point, y *big.Int, N *big.Int) ([]curve.Point, error) {
	yInv, err := field.ModInverse(y, N)
	if err != nil {
		return nil, err
	}
	out := make([]curve.Point, len(h))
	scale := big.NewInt(1)
	for i := range h {
		out[i] = curve.ScalarMult(h[i], scale)
		scale = field.Mul(scale, yInv, N)
	}
	return out, nil
}

// deltaYZ computes delta(y,z) = (z - z^2)*<1^n,y^n> - z^3*<1^n,2^n> mod N.
func deltaYZ(y, z *big.Int, n int, N *big.Int) (*big.Int, error) {
	ones := vector.One(N, n)
	yPow := vector.PowerVector(y, n, N)
	twoPow := vector.PowerVector(big.NewInt(2), n, N)

	ipOnesY, err := ones.InnerProduct(yPow)
	if err != nil {
		return nil, err
	}
	ipOnesTwo, err := ones.InnerProduct(twoPow)
	if err != nil {
		return nil, err
	}

	zSq := field.Mul(z, z, N)
	zCube := field.Mul(zSq, z, N)
	zMinusZsq := field.Sub(z, zSq, N)

	term1 := field.Mul(zMinusZsq, ipOnesY, N)
	term2 := field.Mul(zCube, ipOnesTwo, N)
	return field.Sub(term1, term2, N), nil
}

// reconstructP computes eq. 62:
// P = A + x*S + sum_i(-z)*G_i + sum_i(z*y^i + z^2*2^i)*H'_i + t*U'
// except the final +t*U' term, which the caller adds before subtracting
// mu*H_blind and passing the result to the inner-product verifier; here
// we build only the generator-side accumulation plus A and x*S.
func reconstructP(A, S curve.Point, x, z, y *big.Int, g, hPrime []curve.Point, n int, N *big.Int) (curve.Point, error) {
	negZ := new(big.Int).Neg(z)
	twoPow := vector.PowerVector(big.NewInt(2), n, N)
	yPow := vector.PowerVector(y, n, N)

	terms := make([]curve.Point, 0, 2*n+2)
	terms = append(terms, A, curve.ScalarMult(S, x))
	for i := 0; i < n; i++ {
		terms = append(terms, curve.ScalarMult(g[i], negZ))
	}
	for i := 0; i < n; i++ {
		coeff := field.Add(field.Mul(z, yPow.At(i), N), field.Mul(field.Mul(z, z, N), twoPow.At(i), N), N)
		terms = append(terms, curve.ScalarMult(hPrime[i], coeff))
	}
	return curve.Add(terms...), nil
}

// ProveValue is the library entry point matching the external
// interface: it runs Setup for the given bitlength and produces a
// serialized proof alongside the commitment it opens.
func ProveValue(value *big.Int, bitlength int) (curve.Point, []byte, error) {
	params, err := Setup(bitlength)
	if err != nil {
		return curve.Point{}, nil, err
	}
	commitment, proof, err := Prove(value, params)
	if err != nil {
		return curve.Point{}, nil, fmt.Errorf("rangeproof: prove failed: %w", err)
	}
	bytes, err := proof.MarshalBinary()
	if err != nil {
		return curve.Point{}, nil, err
	}
	return commitment, bytes, nil
}

// VerifyProof is the library entry point matching the external
// interface: it deserializes proofBytes and verifies it against
// commitment for the given bitlength. Any deserialization failure
// yields false, matching the no-panic verifier policy.
func VerifyProof(proofBytes []byte, commitment curve.Point, bitlength int) bool {
	params, err := Setup(bitlength)
	if err != nil {
		return false
	}
	var proof Proof
	if err := proof.UnmarshalBinary(proofBytes, bitlength); err != nil {
		return false
	}
	return Verify(commitment, proof, params)
}
