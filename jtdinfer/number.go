package jtdinfer

import (
	"math"

	jtd "github.com/jsontypedef/json-typedef-go"
)

// NumType is a preferred numeric type to infer by default. See [Hints] for
// how it steers [InferredNumber.Project].
type NumType int

// The eight JTD numeric types. The narrowest-containing-type scan does not
// follow this order; it uses candidateOrder.
const (
	NumInt8 NumType = iota
	NumUint8
	NumInt16
	NumUint16
	NumInt32
	NumUint32
	NumFloat32
	NumFloat64
)

// candidateOrder is the fallback scan order used by
// [InferredNumber.Project] once the default type fails to contain the
// observed range: narrowest unsigned/signed pairs, widening.
var candidateOrder = []NumType{
	NumUint8, NumInt8, NumUint16, NumInt16, NumUint32, NumInt32,
}

func (t NumType) isFloat() bool {
	return t == NumFloat32 || t == NumFloat64
}

// bounds returns the inclusive range of t. Floats are unbounded for
// containment purposes (any finite observation fits).
func (t NumType) bounds() (min, max float64) {
	switch t {
	case NumInt8:
		return math.MinInt8, math.MaxInt8
	case NumUint8:
		return 0, math.MaxUint8
	case NumInt16:
		return math.MinInt16, math.MaxInt16
	case NumUint16:
		return 0, math.MaxUint16
	case NumInt32:
		return math.MinInt32, math.MaxInt32
	case NumUint32:
		return 0, math.MaxUint32
	case NumFloat32, NumFloat64:
		return -math.MaxFloat64, math.MaxFloat64
	}

	return -math.MaxFloat64, math.MaxFloat64
}

func (t NumType) jtdType() jtd.Type {
	switch t {
	case NumInt8:
		return jtd.TypeInt8
	case NumUint8:
		return jtd.TypeUint8
	case NumInt16:
		return jtd.TypeInt16
	case NumUint16:
		return jtd.TypeUint16
	case NumInt32:
		return jtd.TypeInt32
	case NumUint32:
		return jtd.TypeUint32
	case NumFloat32:
		return jtd.TypeFloat32
	case NumFloat64:
		return jtd.TypeFloat64
	}

	return jtd.TypeFloat64
}

// InferredNumber tracks the numeric range seen so far and whether every
// observation was integral. The zero value is not valid; use
// [NewInferredNumber].
type InferredNumber struct {
	min float64
	max float64
	int bool
}

// NewInferredNumber returns the empty number domain: an inverted range
// (min = +Inf, max = -Inf) that the first [InferredNumber.Observe] call
// overrides, and int = true (vacuously true until a non-integral
// observation narrows it).
func NewInferredNumber() InferredNumber {
	return InferredNumber{
		min: math.Inf(1),
		max: math.Inf(-1),
		int: true,
	}
}

// Observe widens the domain to include x.
func (n InferredNumber) Observe(x float64) InferredNumber {
	return InferredNumber{
		min: math.Min(n.min, x),
		max: math.Max(n.max, x),
		int: n.int && x == math.Trunc(x),
	}
}

// Project returns the narrowest JTD numeric type containing every
// observation, preferring def when it contains the range (a deliberate
// user override; see package doc), then scanning
// [uint8 int8 uint16 int16 uint32 int32] in order, and finally falling
// back to float64.
func (n InferredNumber) Project(def NumType) jtd.Type {
	if n.containedBy(def) {
		return def.jtdType()
	}

	for _, t := range candidateOrder {
		if n.containedBy(t) {
			return t.jtdType()
		}
	}

	return jtd.TypeFloat64
}

func (n InferredNumber) containedBy(t NumType) bool {
	if !n.int && !t.isFloat() {
		return false
	}

	min, max := t.bounds()

	return min <= n.min && n.max <= max
}
