package pedersen

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkrange/bulletproofs/curve"
	"github.com/zkrange/bulletproofs/vector"
)

func TestCommitIsHomomorphic(t *testing.T) {
	g := curve.Generator()

	v1, r1 := big.NewInt(3), big.NewInt(11)
	v2, r2 := big.NewInt(4), big.NewInt(17)

	c1 := Commit(v1, r1, g)
	c2 := Commit(v2, r2, g)
	sum := Commit(new(big.Int).Add(v1, v2), new(big.Int).Add(r1, r2), g)

	require.True(t, curve.Equal(curve.Add(c1, c2), sum))
}

func TestCommitDifferentBlindingsDifferentPoints(t *testing.T) {
	g := curve.Generator()
	c1 := Commit(big.NewInt(5), big.NewInt(1), g)
	c2 := Commit(big.NewInt(5), big.NewInt(2), g)
	require.False(t, curve.Equal(c1, c2))
}

func TestVectorCommitMatchesInnerProductCommitWhenBlindingIsInnerProduct(t *testing.T) {
	N := curve.Order()
	gens := NewGenerators(4)
	a := vector.New(N, big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
	b := vector.New(N, big.NewInt(5), big.NewInt(6), big.NewInt(7), big.NewInt(8))

	ip, err := a.InnerProduct(b)
	require.NoError(t, err)

	direct, err := VectorCommit(a, b, ip, gens)
	require.NoError(t, err)
	viaIPC, err := InnerProductCommit(a, b, gens)
	require.NoError(t, err)

	require.True(t, curve.Equal(direct, viaIPC))
}

// TestVectorCommitIsHomomorphic exercises VPC homomorphism (property
// P3) with the literal end-to-end scenario: committing [1,2,3] under
// gamma1, committing [4,5,6] under gamma2, and checking the EC sum
// equals the commitment to [5,7,9] under gamma1+gamma2.
func TestVectorCommitIsHomomorphic(t *testing.T) {
	N := curve.Order()
	gens := NewGenerators(3)
	zero := vector.Zero(N, 3)

	a1 := vector.New(N, big.NewInt(1), big.NewInt(2), big.NewInt(3))
	a2 := vector.New(N, big.NewInt(4), big.NewInt(5), big.NewInt(6))
	gamma1, gamma2 := big.NewInt(11), big.NewInt(17)

	c1, err := VectorCommit(a1, zero, gamma1, gens)
	require.NoError(t, err)
	c2, err := VectorCommit(a2, zero, gamma2, gens)
	require.NoError(t, err)

	aSum, err := a1.Add(a2)
	require.NoError(t, err)
	gammaSum := new(big.Int).Add(gamma1, gamma2)
	cSum, err := VectorCommit(aSum, zero, gammaSum, gens)
	require.NoError(t, err)

	require.True(t, curve.Equal(curve.Add(c1, c2), cSum))
}

func TestVectorCommitRejectsLengthMismatch(t *testing.T) {
	N := curve.Order()
	gens := NewGenerators(4)
	a := vector.New(N, big.NewInt(1), big.NewInt(2))
	b := vector.New(N, big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
	_, err := VectorCommit(a, b, big.NewInt(0), gens)
	require.Error(t, err)
}

func TestNewGeneratorsAreDistinct(t *testing.T) {
	gens := NewGenerators(4)
	seen := map[string]bool{}
	all := append([]curve.Point{gens.U}, gens.G...)
	all = append(all, gens.H...)
	for _, p := range all {
		enc := curve.Encode(p)
		key := string(enc[:])
		require.False(t, seen[key])
		seen[key] = true
	}
}
