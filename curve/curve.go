// Package curve adapts github.com/btcsuite/btcd/btcec/v2 into the fixed
// 33-byte compressed-point representation used throughout the proof
// system. crypto/elliptic's generic compressed-point codec assumes a
// Weierstrass curve with a = -3, which does not hold for secp256k1
// (a = 0, b = 7), so compression/decompression is implemented directly
// against the curve equation here rather than borrowed from stdlib.
package curve

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Size is the fixed length, in bytes, of a compressed point.
const Size = 33

// UncompressedSize is the fixed length, in bytes, of an uncompressed
// point: a 0x04 tag followed by the 32-byte x and y coordinates.
const UncompressedSize = 65

var (
	// ErrInvalidPoint is returned when a byte string does not decode to
	// a point on the curve.
	ErrInvalidPoint = errors.New("curve: invalid point encoding")
	// ErrLength is returned when a byte string has the wrong length to
	// be a compressed point.
	ErrLength = errors.New("curve: wrong encoded length")
)

var koblitz = btcec.S256()
var curveParams = koblitz.Params()

// Order is the order N of the secp256k1 base point group.
func Order() *big.Int {
	return new(big.Int).Set(curveParams.N)
}

// FieldPrime is the prime p underlying the curve's coordinate field.
func FieldPrime() *big.Int {
	return new(big.Int).Set(curveParams.P)
}

// Point is an affine point on secp256k1. The zero value is the point at
// infinity, the same value Identity() returns.
type Point struct {
	x, y *big.Int
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.x == nil || p.y == nil
}

// Generator returns the standard secp256k1 base point G.
func Generator() Point {
	return Point{x: curveParams.Gx, y: curveParams.Gy}
}

// ScalarMult computes k*p.
func ScalarMult(p Point, k *big.Int) Point {
	if p.IsIdentity() {
		return p
	}
	kb := new(big.Int).Mod(k, curveParams.N).Bytes()
	x, y := koblitz.ScalarMult(p.x, p.y, kb)
	return pointFromCoords(x, y)
}

// ScalarBaseMult computes k*G.
func ScalarBaseMult(k *big.Int) Point {
	kb := new(big.Int).Mod(k, curveParams.N).Bytes()
	x, y := koblitz.ScalarBaseMult(kb)
	return pointFromCoords(x, y)
}

// Add returns the sum of one or more points. It panics when called with
// zero arguments; callers should special-case an empty accumulator.
func Add(points ...Point) Point {
	if len(points) == 0 {
		panic("curve: Add requires at least one point")
	}
	acc := Identity()
	for _, p := range points {
		acc = add2(acc, p)
	}
	return acc
}

// Neg returns -p.
func Neg(p Point) Point {
	if p.IsIdentity() {
		return p
	}
	y := new(big.Int).Sub(curveParams.P, p.y)
	return Point{x: new(big.Int).Set(p.x), y: y}
}

func add2(p, q Point) Point {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	x, y := koblitz.Add(p.x, p.y, q.x, q.y)
	return pointFromCoords(x, y)
}

func pointFromCoords(x, y *big.Int) Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return Identity()
	}
	return Point{x: x, y: y}
}

// Equal reports whether p and q represent the same point.
func Equal(p, q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Encode renders p as a 33-byte compressed point: a one-byte parity tag
// (0x02 for even y, 0x03 for odd y) followed by the 32-byte big-endian
// x-coordinate. The identity encodes as 33 zero bytes.
func Encode(p Point) [Size]byte {
	var out [Size]byte
	if p.IsIdentity() {
		return out
	}
	if p.y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xb := p.x.Bytes()
	copy(out[1+(32-len(xb)):], xb)
	return out
}

// EncodeUncompressed renders p as a 65-byte uncompressed point: a 0x04
// tag followed by the 32-byte big-endian x and y coordinates. The
// identity encodes as 65 zero bytes.
func EncodeUncompressed(p Point) [UncompressedSize]byte {
	var out [UncompressedSize]byte
	if p.IsIdentity() {
		return out
	}
	out[0] = 0x04
	xb := p.x.Bytes()
	copy(out[1+(32-len(xb)):33], xb)
	yb := p.y.Bytes()
	copy(out[33+(32-len(yb)):], yb)
	return out
}

// Decode parses a 33-byte compressed point, recovering y via the
// p ≡ 3 (mod 4) square-root identity y = s^((p+1)/4) mod p applied to
// s = x^3 + 7 mod p, then selecting the root matching the parity tag.
// A string of 33 zero bytes decodes to the identity.
func Decode(b []byte) (Point, error) {
	if len(b) != Size {
		return Point{}, ErrLength
	}
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return Identity(), nil
	}
	tag := b[0]
	if tag != 0x02 && tag != 0x03 {
		return Point{}, ErrInvalidPoint
	}
	x := new(big.Int).SetBytes(b[1:])
	p := curveParams.P
	if x.Cmp(p) >= 0 {
		return Point{}, ErrInvalidPoint
	}

	// s = x^3 + 7 mod p
	s := new(big.Int).Exp(x, big.NewInt(3), p)
	s.Add(s, curveParams.B)
	s.Mod(s, p)

	// exponent (p+1)/4, valid since secp256k1's p ≡ 3 (mod 4)
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(s, exp, p)

	check := new(big.Int).Exp(y, big.NewInt(2), p)
	if check.Cmp(s) != 0 {
		return Point{}, ErrInvalidPoint
	}

	wantOdd := tag == 0x03
	if (y.Bit(0) == 1) != wantOdd {
		y.Sub(p, y)
	}
	return Point{x: x, y: y}, nil
}
