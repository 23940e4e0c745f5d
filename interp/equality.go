package interp

import "math"

// equalResult is a tri-state: two values may be equal, unequal, or simply
// not comparable, which must surface as Nil to the caller rather than
// collapsing to false.
type equalResult int

const (
	equalFalse equalResult = iota
	equalTrue
	equalIncomparable
)

// compareEqual implements the equality contract: same Kind with equal
// payload, NaN != NaN; operands of different Kinds are incomparable rather
// than unequal. A type-pinned (Strong)
// operand on either side is always incomparable, regardless of its Kind or
// the other operand's variant — pinning is a storage property, not a value
// one, so it never participates in equality.
func compareEqual(a, b Value) equalResult {
	if a.Strong() || b.Strong() {
		return equalIncomparable
	}
	if a.Kind() != b.Kind() {
		return equalIncomparable
	}
	switch a.Kind() {
	case KindNil:
		return equalTrue
	case KindNumber:
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return equalFalse
		}
		return boolToResult(x == y)
	case KindString:
		x, _ := asString(a)
		y, _ := asString(b)
		return boolToResult(x == y)
	case KindBoolean:
		x, _ := asBool(a)
		y, _ := asBool(b)
		return boolToResult(x == y)
	case KindCollection:
		ca, oka := a.(*Collection)
		cb, okb := b.(*Collection)
		if !oka || !okb {
			return equalIncomparable
		}
		if len(ca.Elements) != len(cb.Elements) {
			return equalFalse
		}
		for i := range ca.Elements {
			if compareEqual(ca.Elements[i], cb.Elements[i]) != equalTrue {
				return equalFalse
			}
		}
		return equalTrue
	case KindInstance:
		return boolToResult(a.(*Instance) == b.(*Instance))
	case KindClass, KindFunction:
		return equalIncomparable
	default:
		return equalIncomparable
	}
}

func boolToResult(eq bool) equalResult {
	if eq {
		return equalTrue
	}
	return equalFalse
}

// Equal evaluates `==`: Nil when cross-kind (not comparable), Boolean
// otherwise.
func Equal(a, b Value) Value {
	switch compareEqual(a, b) {
	case equalIncomparable:
		return Nil{}
	case equalTrue:
		return Boolean(true)
	default:
		return Boolean(false)
	}
}

// NotEqual evaluates `!=`, the logical inverse of Equal with the same
// tri-state: still Nil when cross-kind.
func NotEqual(a, b Value) Value {
	switch compareEqual(a, b) {
	case equalIncomparable:
		return Nil{}
	case equalTrue:
		return Boolean(false)
	default:
		return Boolean(true)
	}
}
