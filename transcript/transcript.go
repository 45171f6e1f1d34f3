// Package transcript implements the Fiat-Shamir transformation used to
// turn the interactive Bulletproofs protocol into a non-interactive
// proof: every challenge is derived from a running SHA-256 state seeded
// by the canonical encoding of whatever the verifier would have seen
// immediately before issuing it.
package transcript

import (
	"crypto/sha256"
	"math/big"

	"github.com/zkrange/bulletproofs/curve"
	"github.com/zkrange/bulletproofs/field"
)

// Transcript is an immutable snapshot of Fiat-Shamir state. The zero
// value is the initial transcript; New returns it.
type Transcript struct {
	state [sha256.Size]byte
}

// New returns the empty transcript.
func New() Transcript {
	return Transcript{}
}

// Elem is anything that can be appended to a transcript: either a
// curve point or a scalar value, encoded canonically (33-byte
// compressed point, or 32-byte big-endian scalar reduced mod N).
type Elem struct {
	point  *curve.Point
	scalar *big.Int
}

// Pt wraps a curve point for appending to a transcript.
func Pt(p curve.Point) Elem {
	return Elem{point: &p}
}

// Sc wraps a scalar for appending to a transcript.
func Sc(s *big.Int) Elem {
	return Elem{scalar: s}
}

// Challenge folds the given elements into the transcript state and
// derives n chained scalar challenges. Each successive challenge
// re-hashes the previous digest, and the returned state is one hash past
// the last emitted challenge. A later Challenge call hashes that state
// again, so three chained Challenge(1, ...) calls yield digests 0, 2 and
// 4 of a single Challenge(5, ...) call, not digests 0, 1 and 2 of
// Challenge(3, ...). It returns the derived
// challenges (raw, unreduced 256-bit integers — callers reduce mod N
// only where they are used arithmetically) along with the transcript
// advanced to the final state.
func (t Transcript) Challenge(n int, N *big.Int, elems ...Elem) ([]*big.Int, Transcript) {
	h := sha256.New()
	h.Write(t.state[:])
	for _, e := range elems {
		switch {
		case e.point != nil:
			enc := curve.Encode(*e.point)
			h.Write(enc[:])
		case e.scalar != nil:
			h.Write(field.EncodeScalar(e.scalar, N))
		}
	}
	var digest [sha256.Size]byte
	copy(digest[:], h.Sum(nil))

	out := make([]*big.Int, n)
	state := digest
	for i := 0; i < n; i++ {
		out[i] = new(big.Int).SetBytes(state[:])
		state = sha256.Sum256(state[:])
	}
	return out, Transcript{state: state}
}
