package rangeproof

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/zkrange/bulletproofs/curve"
	"github.com/zkrange/bulletproofs/field"
)

// ErrProofLength is returned by UnmarshalBinary when the input does
// not match the expected fixed length for the given bit length.
var ErrProofLength = errors.New("rangeproof: wrong proof byte length")

const (
	offA    = 0
	offS    = 33
	offT1   = 66
	offT2   = 99
	offTauX = 132
	offMu   = 164
	offT    = 196
	offA_   = 228
	offB_   = 260
	offLR   = 292
)

// log2 returns the base-2 logarithm of n, which must be a power of two.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// wireLength returns the total proof byte length for a given bit
// length n: 292 + 66*log2(n).
func wireLength(n int) int {
	return offLR + 66*log2(n)
}

// MarshalBinary serializes the proof into the fixed wire layout:
// compressed points A, S, T1, T2 (33 bytes each), then the scalars
// tau_x, mu, t, a, b (32 bytes each), then the L and R arrays in level
// order (33 bytes each). V is not included; it is transmitted
// independently by the caller.
func (p Proof) MarshalBinary() ([]byte, error) {
	if len(p.L) != len(p.R) {
		return nil, fmt.Errorf("rangeproof: mismatched L/R lengths (%d vs %d)", len(p.L), len(p.R))
	}
	N := order()
	levels := len(p.L)
	out := make([]byte, offLR+2*33*levels)

	putPoint(out, offA, p.A)
	putPoint(out, offS, p.S)
	putPoint(out, offT1, p.T1)
	putPoint(out, offT2, p.T2)

	copy(out[offTauX:offTauX+32], field.EncodeScalar(p.TauX, N))
	copy(out[offMu:offMu+32], field.EncodeScalar(p.Mu, N))
	copy(out[offT:offT+32], field.EncodeScalar(p.T, N))
	copy(out[offA_:offA_+32], field.EncodeScalar(p.A_, N))
	copy(out[offB_:offB_+32], field.EncodeScalar(p.B_, N))

	lOff := offLR
	rOff := offLR + 33*levels
	for i := 0; i < levels; i++ {
		putPoint(out, lOff+33*i, p.L[i])
		putPoint(out, rOff+33*i, p.R[i])
	}
	return out, nil
}

// UnmarshalBinary parses a proof in the fixed wire layout for a range
// proof over the given bit length n, which determines the expected
// number of IPA rounds (log2(n)) and hence the total byte length.
func (p *Proof) UnmarshalBinary(data []byte, n int) error {
	levels := log2(n)
	want := wireLength(n)
	if len(data) != want {
		return ErrProofLength
	}

	var err error
	if p.A, err = getPoint(data, offA); err != nil {
		return err
	}
	if p.S, err = getPoint(data, offS); err != nil {
		return err
	}
	if p.T1, err = getPoint(data, offT1); err != nil {
		return err
	}
	if p.T2, err = getPoint(data, offT2); err != nil {
		return err
	}

	if p.TauX, err = field.DecodeScalar(data[offTauX : offTauX+32]); err != nil {
		return err
	}
	if p.Mu, err = field.DecodeScalar(data[offMu : offMu+32]); err != nil {
		return err
	}
	if p.T, err = field.DecodeScalar(data[offT : offT+32]); err != nil {
		return err
	}
	if p.A_, err = field.DecodeScalar(data[offA_ : offA_+32]); err != nil {
		return err
	}
	if p.B_, err = field.DecodeScalar(data[offB_ : offB_+32]); err != nil {
		return err
	}

	lOff := offLR
	rOff := offLR + 33*levels
	p.L = make([]curve.Point, levels)
	p.R = make([]curve.Point, levels)
	for i := 0; i < levels; i++ {
		if p.L[i], err = getPoint(data, lOff+33*i); err != nil {
			return err
		}
		if p.R[i], err = getPoint(data, rOff+33*i); err != nil {
			return err
		}
	}
	return nil
}

func putPoint(out []byte, off int, p curve.Point) {
	enc := curve.Encode(p)
	copy(out[off:off+33], enc[:])
}

func getPoint(data []byte, off int) (curve.Point, error) {
	return curve.Decode(data[off : off+33])
}
