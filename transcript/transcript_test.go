package transcript

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkrange/bulletproofs/curve"
)

func TestChallengeIsDeterministic(t *testing.T) {
	N := curve.Order()
	g := curve.Generator()

	c1, _ := New().Challenge(1, N, Pt(g), Sc(big.NewInt(7)))
	c2, _ := New().Challenge(1, N, Pt(g), Sc(big.NewInt(7)))
	require.Equal(t, 0, c1[0].Cmp(c2[0]))
}

func TestChallengeDependsOnInputs(t *testing.T) {
	N := curve.Order()
	g := curve.Generator()

	c1, _ := New().Challenge(1, N, Pt(g), Sc(big.NewInt(7)))
	c2, _ := New().Challenge(1, N, Pt(g), Sc(big.NewInt(8)))
	require.NotEqual(t, 0, c1[0].Cmp(c2[0]))
}

func TestChallengeNIsChainedRehash(t *testing.T) {
	N := curve.Order()
	g := curve.Generator()

	multi, _ := New().Challenge(5, N, Pt(g))

	// Each Challenge(1, ...) leaves the state one hash past the digest it
	// emitted, and the next call hashes that state again, so chained
	// single draws land on every second digest of the multi draw.
	single1, t1 := New().Challenge(1, N, Pt(g))
	single2, t2 := t1.Challenge(1, N)
	single3, _ := t2.Challenge(1, N)

	require.Equal(t, 0, multi[0].Cmp(single1[0]))
	require.Equal(t, 0, multi[2].Cmp(single2[0]))
	require.Equal(t, 0, multi[4].Cmp(single3[0]))
}

func TestChallengeAdvancesTranscriptState(t *testing.T) {
	N := curve.Order()
	g := curve.Generator()

	_, t1 := New().Challenge(1, N, Pt(g))
	a, _ := t1.Challenge(1, N, Pt(g))
	b, _ := New().Challenge(1, N, Pt(g))
	require.NotEqual(t, 0, a[0].Cmp(b[0]))
}
