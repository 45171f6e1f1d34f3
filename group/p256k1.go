package group

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"

	"github.com/zkrange/bulletproofs/curve"
)

// p256k1Group and p256k1Point adapt this package's generic Element/Group
// interfaces onto the secp256k1 implementation in package curve, so that
// the pluggable-backend test sweep in group_test.go exercises the same
// curve arithmetic the range-proof engine itself depends on.
type p256k1Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p256k1Point struct {
	g   *p256k1Group
	val curve.Point
}

func (g *p256k1Group) Name() string {
	return g.name
}

func (g *p256k1Group) P() *big.Int {
	return g.fieldOrder
}

func (g *p256k1Group) N() *big.Int {
	return g.curveOrder
}

func (g *p256k1Group) Generator() Element {
	return &p256k1Point{g: g, val: curve.Generator()}
}

func (g *p256k1Group) Identity() Element {
	return &p256k1Point{g: g, val: curve.Identity()}
}

func (g *p256k1Group) Random() Element {
	r, _ := rand.Int(rand.Reader, g.curveOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *p256k1Group) Element() Element {
	return &p256k1Point{g: g, val: curve.Identity()}
}

func (e *p256k1Point) check(a Element) *p256k1Point {
	ea, ok := a.(*p256k1Point)
	if !ok {
		panic("group: incompatible element type for p256k1 group")
	}
	return ea
}

func (e *p256k1Point) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.val = curve.Add(ca.val, cb.val)
	return e
}

func (e *p256k1Point) Subtract(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.val = curve.Add(ca.val, curve.Neg(cb.val))
	return e
}

func (e *p256k1Point) Negate(a Element) Element {
	ca := e.check(a)
	e.val = curve.Neg(ca.val)
	return e
}

func (e *p256k1Point) IsEqual(b Element) bool {
	cb := e.check(b)
	return curve.Equal(e.val, cb.val)
}

func (e *p256k1Point) Set(a Element) Element {
	ca := e.check(a)
	e.val = ca.val
	return e
}

func (e *p256k1Point) SetBytes(b []byte) Element {
	p, err := curve.Decode(b)
	if err != nil {
		panic(err)
	}
	e.val = p
	return e
}

func (e *p256k1Point) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	e.val = curve.ScalarMult(ca.val, s)
	return e
}

func (e *p256k1Point) BaseScale(s *big.Int) Element {
	e.val = curve.ScalarBaseMult(s)
	return e
}

func (e *p256k1Point) GroupOrder() *big.Int {
	return e.g.curveOrder
}

func (e *p256k1Point) FieldOrder() *big.Int {
	return e.g.fieldOrder
}

// MapToGroup is unsupported for the secp256k1 backend: generator
// derivation goes through package nums instead, which this generic
// interface has no hook for.
func (e *p256k1Point) MapToGroup(s string) (Element, error) {
	return nil, errors.New("group: MapToGroup unsupported for secp256k1, use package nums")
}

func (e *p256k1Point) String() string {
	enc := curve.Encode(e.val)
	return string(enc[:])
}

func (e *p256k1Point) IsIdentity() bool {
	return e.val.IsIdentity()
}

func (e *p256k1Point) MarshalBinary() ([]byte, error) {
	enc := curve.Encode(e.val)
	return enc[:], nil
}

func (e *p256k1Point) UnmarshalBinary(b []byte) error {
	p, err := curve.Decode(b)
	if err != nil {
		return err
	}
	e.val = p
	return nil
}

func (e *p256k1Point) MarshalJSON() ([]byte, error) {
	b, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(b)
}

func (e *p256k1Point) UnmarshalJSON(data []byte) error {
	var b []byte
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	return e.UnmarshalBinary(b)
}

// SecP256k1 returns the secp256k1 group backend.
func SecP256k1() Group {
	return &p256k1Group{
		fieldOrder: curve.FieldPrime(),
		curveOrder: curve.Order(),
		name:       "secp256k1",
	}
}
