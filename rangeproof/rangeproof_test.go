package rangeproof

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProveVerifyCompleteness(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64} {
		params, err := Setup(n)
		require.NoError(t, err)

		for _, v := range []int64{0, 1, 2} {
			if v >= int64(1)<<uint(n) {
				continue
			}
			commitment, proof, err := Prove(big.NewInt(v), params)
			require.NoError(t, err)
			require.True(t, Verify(commitment, proof, params), "n=%d v=%d", n, v)
		}

		maxVal := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(n)), big.NewInt(1))
		commitment, proof, err := Prove(maxVal, params)
		require.NoError(t, err)
		require.True(t, Verify(commitment, proof, params))
	}
}

// TestEndToEndScenario1 is spec scenario 1: n=8, v=5, prove/serialize/
// deserialize/verify round trip, proof length 292 + 66*3 = 490 bytes.
func TestEndToEndScenario1(t *testing.T) {
	params, err := Setup(8)
	require.NoError(t, err)

	commitment, proof, err := Prove(big.NewInt(5), params)
	require.NoError(t, err)

	data, err := proof.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 490)

	var decoded Proof
	require.NoError(t, decoded.UnmarshalBinary(data, 8))
	require.True(t, Verify(commitment, decoded, params))
}

// TestEndToEndScenario3 is spec scenario 3: n=64, v=2^63, verify true,
// proof length 688 bytes.
func TestEndToEndScenario3(t *testing.T) {
	params, err := Setup(64)
	require.NoError(t, err)

	v := new(big.Int).Lsh(big.NewInt(1), 63)
	commitment, proof, err := Prove(v, params)
	require.NoError(t, err)
	require.True(t, Verify(commitment, proof, params))

	data, err := proof.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 688)
}

// TestEndToEndScenario4 is spec scenario 4: n=2, v=3, verify true, L*
// and R* each have length 1.
func TestEndToEndScenario4(t *testing.T) {
	params, err := Setup(2)
	require.NoError(t, err)

	commitment, proof, err := Prove(big.NewInt(3), params)
	require.NoError(t, err)
	require.Len(t, proof.L, 1)
	require.Len(t, proof.R, 1)
	require.True(t, Verify(commitment, proof, params))
}

func TestSetupRejectsUnsupportedBitlength(t *testing.T) {
	_, err := Setup(3)
	require.ErrorIs(t, err, ErrBitlengthUnsupported)
	_, err = Setup(128)
	require.ErrorIs(t, err, ErrBitlengthUnsupported)
}

func TestVerifyRejectsOutOfRangeValue(t *testing.T) {
	n := 4
	params, err := Setup(n)
	require.NoError(t, err)

	tooLarge := big.NewInt(1 << uint(n+2))
	commitment, proof, err := Prove(tooLarge, params)
	require.NoError(t, err, "prover performs no range check and must still produce a proof")
	require.False(t, Verify(commitment, proof, params))
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	params, err := Setup(8)
	require.NoError(t, err)
	_, proof, err := Prove(big.NewInt(42), params)
	require.NoError(t, err)

	otherCommitment, _, err := Prove(big.NewInt(7), params)
	require.NoError(t, err)
	require.False(t, Verify(otherCommitment, proof, params))
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	n := 8
	params, err := Setup(n)
	require.NoError(t, err)
	commitment, proof, err := Prove(big.NewInt(123), params)
	require.NoError(t, err)

	data, err := proof.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 292+66*3) // log2(8) == 3

	var decoded Proof
	require.NoError(t, decoded.UnmarshalBinary(data, n))
	require.True(t, Verify(commitment, decoded, params))
}

func TestProveValueVerifyProofEntryPoints(t *testing.T) {
	commitment, bytes, err := ProveValue(big.NewInt(9000), 16)
	require.NoError(t, err)
	require.Len(t, bytes, 292+66*4) // log2(16) == 4
	require.True(t, VerifyProof(bytes, commitment, 16))
}

func TestVerifyProofRejectsTruncatedBytes(t *testing.T) {
	commitment, bytes, err := ProveValue(big.NewInt(1), 8)
	require.NoError(t, err)
	require.False(t, VerifyProof(bytes[:len(bytes)-1], commitment, 8))
}

func TestSelfCheckPassesOnHonestProof(t *testing.T) {
	SelfCheck = true
	defer func() { SelfCheck = false }()

	params, err := Setup(4)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		_, _, err := Prove(big.NewInt(5), params)
		require.NoError(t, err)
	})
}
