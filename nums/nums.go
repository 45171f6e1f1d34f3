// Package nums derives "nothing up my sleeve" basepoints for secp256k1
// by iterated SHA-256 against the curve's compressed-point encoding,
// so that no generator's discrete logarithm relative to any other is
// known to anyone, including the implementer.
package nums

import (
	"crypto/sha256"
	"sync"

	"github.com/zkrange/bulletproofs/curve"
)

var (
	mu    sync.Mutex
	cache = map[uint8]curve.Point{}
)

// Point returns the NUMS basepoint for the given index. Results are
// memoized process-wide since derivation is deterministic.
func Point(index uint8) curve.Point {
	mu.Lock()
	defer mu.Unlock()
	if p, ok := cache[index]; ok {
		return p
	}
	p := derive(index)
	cache[index] = p
	return p
}

// derive implements getNUMS: it tries seeds built from the compressed
// encoding of G, then from the uncompressed encoding of G, each with
// counters 0..255, hashing seed||index||counter with SHA-256 and
// attempting to decode the digest as an x-coordinate with a fixed
// 0x02 parity tag, stopping at the first digest that decodes to a
// valid curve point.
func derive(index uint8) curve.Point {
	g := curve.Generator()
	seeds := [][]byte{compressedSeed(g), uncompressedSeed(g)}
	for _, seed := range seeds {
		for counter := 0; counter < 256; counter++ {
			msg := make([]byte, 0, len(seed)+2)
			msg = append(msg, seed...)
			msg = append(msg, index, byte(counter))
			digest := sha256.Sum256(msg)

			candidate := make([]byte, curve.Size)
			candidate[0] = 0x02
			copy(candidate[1:], digest[:])

			if p, err := curve.Decode(candidate); err == nil {
				return p
			}
		}
	}
	panic("nums: exhausted candidate space without finding a valid point")
}

func compressedSeed(g curve.Point) []byte {
	enc := curve.Encode(g)
	return enc[:]
}

func uncompressedSeed(g curve.Point) []byte {
	enc := curve.EncodeUncompressed(g)
	return enc[:]
}
