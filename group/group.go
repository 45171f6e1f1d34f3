// Package group defines a backend-agnostic prime-order group algebra
// over which generator arithmetic can be expressed without committing
// to one curve. It exists alongside the range-proof engine's hardcoded
// secp256k1 package curve: the proof system itself always runs over
// secp256k1, but the two concrete backends here (secp256k1 via p256k1.go,
// and an RFC 3526 safe-prime multiplicative group via modsafeprime.go)
// let the same generator/commitment arithmetic be exercised and tested
// against an independent group implementation.
package group

import (
	"encoding"
	"encoding/json"
	"math/big"
)

// Element is a point in some prime-order group (additive curve groups)
// or a residue in a prime-order subgroup (multiplicative safe-prime
// groups). All arithmetic methods mutate and return the receiver, so
// callers chain Scale/Add/Negate on a freshly allocated Element rather
// than threading intermediate values by hand.
type Element interface {
	// Add sets the receiver to X + Y and returns it.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to -X and returns it.
	Negate(X Element) Element
	// Scale sets the receiver to s*X and returns it.
	Scale(X Element, s *big.Int) Element
	// BaseScale sets the receiver to s times the group's generator.
	BaseScale(s *big.Int) Element
	// Set copies X into the receiver and returns it.
	Set(X Element) Element
	// SetBytes recovers an element from its byte encoding into the
	// receiver and returns it.
	SetBytes(b []byte) Element
	// MapToGroup derives an element from a message whose discrete
	// logarithm with respect to the generator is not known to anyone.
	MapToGroup(s string) (Element, error)

	// IsEqual reports whether the receiver equals X.
	IsEqual(X Element) bool
	// IsIdentity reports whether the receiver is the group identity.
	IsIdentity() bool

	// GroupOrder returns the order of the group the element belongs to.
	GroupOrder() *big.Int
	// FieldOrder returns the order of the underlying field or modulus.
	FieldOrder() *big.Int

	String() string
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	json.Marshaler
	json.Unmarshaler
}

// Group is a concrete prime-order group backend: a factory for
// Elements plus the two distinguished elements (identity, generator)
// and the orders needed to reduce scalars correctly.
type Group interface {
	// Name identifies the backend, e.g. "secp256k1".
	Name() string

	// Element allocates a new, zero-valued element of this group.
	Element() Element
	// Generator returns the group's distinguished generator.
	Generator() Element
	// Identity returns the group's identity element.
	Identity() Element
	// Random returns a uniformly sampled element (s*Generator for a
	// uniformly sampled scalar s).
	Random() Element

	// P returns the order of the underlying field or modulus.
	P() *big.Int
	// N returns the order of the group.
	N() *big.Int
}
