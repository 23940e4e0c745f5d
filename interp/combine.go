package interp

import (
	"math"

	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// combineAssign implements the assignment / compound-assignment table in
// spec §4.6: given the value currently held at a Place (nil if the place is
// a field being created for the first time) and an operator, it produces
// the new value to write back, enforcing strong-variant pinning along the
// way (spec §4.1, §3).
func combineAssign(current *Value, op token.Type, rhs Value, tok token.Token) (Value, *errors.RuntimeError) {
	if op == token.EQUAL {
		return combineEqual(current, rhs, tok)
	}

	if current == nil || (*current).Kind() == KindNil {
		return nil, errors.NewAssign(tok, "Cannot add/subtract Number from Nil.")
	}
	cur := *current

	switch op {
	case token.PLUS_EQUAL:
		return combinePlus(cur, rhs, tok)
	case token.MINUS_EQUAL:
		return combineMinus(cur, rhs, tok)
	case token.STAR_EQUAL:
		return combineNumericOnly(cur, rhs, tok, func(a, b float64) float64 { return a * b })
	case token.SLASH_EQUAL:
		return combineNumericOnly(cur, rhs, tok, func(a, b float64) float64 { return a / b })
	case token.MOD_EQUAL:
		return combineNumericOnly(cur, rhs, tok, euclideanMod)
	default:
		return nil, errors.NewAssign(tok, "Invalid assign")
	}
}

// combineEqual implements plain `=`: unrestricted unless the current
// binding is a strong variant, in which case the rhs must share its base
// Kind and the result stays strong (spec §4.1).
func combineEqual(current *Value, rhs Value, tok token.Token) (Value, *errors.RuntimeError) {
	if current == nil {
		return rhs, nil
	}
	cur := *current
	if !cur.Strong() {
		return rhs, nil
	}
	if rhs.Kind() != cur.Kind() {
		return nil, errors.NewAssign(tok, "Invalid assign")
	}
	switch cur.Kind() {
	case KindNumber:
		f, _ := asFloat(rhs)
		return StrongNumber(f), nil
	case KindString:
		s, _ := asString(rhs)
		return StrongString(s), nil
	case KindBoolean:
		b, _ := asBool(rhs)
		return StrongBoolean(b), nil
	default:
		return rhs, nil
	}
}

// combinePlus implements `+=`: Collection append, String concatenation
// (stringifying a non-string rhs), or Number addition — a weak Number may
// widen to String when the rhs is a String, but a StrongNumber may not
// (pinning forbids the base-kind change).
func combinePlus(cur, rhs Value, tok token.Token) (Value, *errors.RuntimeError) {
	if c, ok := cur.(*Collection); ok {
		clone := c.Clone().(*Collection)
		clone.Append(rhs)
		return clone, nil
	}

	if cur.Kind() == KindString {
		if cur.Strong() {
			rs, ok := asString(rhs)
			if !ok {
				return nil, errors.NewAssign(tok, "Invalid assign")
			}
			cs, _ := asString(cur)
			return StrongString(cs + rs), nil
		}
		cs, _ := asString(cur)
		if rs, ok := asString(rhs); ok {
			return String(cs + rs), nil
		}
		return String(cs + Render(rhs)), nil
	}

	if cur.Kind() == KindNumber {
		if cur.Strong() {
			f, ok := asFloat(rhs)
			if !ok {
				return nil, errors.NewAssign(tok, "Invalid assign")
			}
			cf, _ := asFloat(cur)
			return StrongNumber(cf + f), nil
		}
		cf, _ := asFloat(cur)
		if f, ok := asFloat(rhs); ok {
			return Number(cf + f), nil
		}
		if s, ok := asString(rhs); ok {
			return String(formatNumber(cf) + s), nil
		}
		return nil, errors.NewType(tok, "Operands must be Numbers Or Strings.")
	}

	return nil, errors.NewType(tok, "Operands must be Numbers Or Strings.")
}

// combineMinus implements `-=`: Collection remove-at-wrap (Nil when the
// removal empties the collection), or Number subtraction.
func combineMinus(cur, rhs Value, tok token.Token) (Value, *errors.RuntimeError) {
	if c, ok := cur.(*Collection); ok {
		n, ok := asFloat(rhs)
		if !ok {
			return nil, errors.NewType(tok, "Index must be a number type.")
		}
		clone := c.Clone().(*Collection)
		if len(clone.Elements) == 0 {
			return Nil{}, nil
		}
		clone.RemoveAt(int(n))
		if len(clone.Elements) == 0 {
			return Nil{}, nil
		}
		return clone, nil
	}
	return combineNumericOnly(cur, rhs, tok, func(a, b float64) float64 { return a - b })
}

// combineNumericOnly implements `-=`/`*=`/`/=`/`%=`'s Number×Number case:
// both operands must be Number-kind (weak or strong); the result stays
// strong iff the current binding is strong.
func combineNumericOnly(cur, rhs Value, tok token.Token, op func(a, b float64) float64) (Value, *errors.RuntimeError) {
	cf, curOk := asFloat(cur)
	if !curOk {
		return nil, errors.NewType(tok, "Operands must be Numbers.")
	}
	rf, rhsOk := asFloat(rhs)
	if !rhsOk {
		return nil, errors.NewType(tok, "Operands must be Numbers.")
	}
	if cur.Strong() {
		return StrongNumber(op(cf, rf)), nil
	}
	return Number(op(cf, rf)), nil
}

func euclideanMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}
