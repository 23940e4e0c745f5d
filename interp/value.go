// Package interp implements the tree-walking evaluator: the environment and
// value model, the callable/class/instance machinery, and the statement and
// expression evaluators that walk an ast.Stmt/ast.Expr tree to completion or
// a runtime error. Values are represented as a tagged union of concrete Go
// types implementing the Value interface, rather than a boxed interface{}.
package interp


// Kind tags the runtime type of a Value, independent of its strong/weak
// variant.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindString
	KindBoolean
	KindCollection
	KindFunction
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindCollection:
		return "Collection"
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	case KindInstance:
		return "Instance"
	default:
		return "Unknown"
	}
}

// Value is the only kind of runtime value the evaluator produces or
// consumes. Every concrete variant is comparable for identity purposes
// except Collection, which carries its elements by value and is cloned on
// every read so that independent bindings never alias (scenario 6).
type Value interface {
	Kind() Kind
	// Strong reports whether this value is one of the three type-pinned
	// literal variants (StrongNumber/StrongString/StrongBoolean).
	Strong() bool
	// Clone returns an independent copy for reference-free kinds
	// (Collection); all other kinds return themselves since they are
	// immutable or intentionally reference-shared (Instance, Class,
	// Function).
	Clone() Value
}

// Nil is the absence of a value.
type Nil struct{}

func (Nil) Kind() Kind    { return KindNil }
func (Nil) Strong() bool  { return false }
func (n Nil) Clone() Value { return n }

// Number is an IEEE-754 double, the weak numeric variant.
type Number float64

func (Number) Kind() Kind     { return KindNumber }
func (Number) Strong() bool   { return false }
func (n Number) Clone() Value { return n }

// StrongNumber is the type-pinned numeric variant: once bound, the name it
// is assigned to rejects non-Number/StrongNumber values.
type StrongNumber float64

func (StrongNumber) Kind() Kind     { return KindNumber }
func (StrongNumber) Strong() bool   { return true }
func (n StrongNumber) Clone() Value { return n }

// String is UTF-8 text, the weak string variant.
type String string

func (String) Kind() Kind     { return KindString }
func (String) Strong() bool   { return false }
func (s String) Clone() Value { return s }

type StrongString string

func (StrongString) Kind() Kind     { return KindString }
func (StrongString) Strong() bool   { return true }
func (s StrongString) Clone() Value { return s }

type Boolean bool

func (Boolean) Kind() Kind     { return KindBoolean }
func (Boolean) Strong() bool   { return false }
func (b Boolean) Clone() Value { return b }

type StrongBoolean bool

func (StrongBoolean) Kind() Kind     { return KindBoolean }
func (StrongBoolean) Strong() bool   { return true }
func (b StrongBoolean) Clone() Value { return b }

// Collection is an ordered, heterogeneous list. It carries value semantics:
// Clone deep-copies the backing slice so that `var a = c` produces a and c
// as independent bindings.
type Collection struct {
	Elements []Value
}

func NewCollection(elements []Value) *Collection {
	return &Collection{Elements: elements}
}

func (*Collection) Kind() Kind   { return KindCollection }
func (*Collection) Strong() bool { return false }

func (c *Collection) Clone() Value {
	elems := make([]Value, len(c.Elements))
	for i, e := range c.Elements {
		elems[i] = e.Clone()
	}
	return &Collection{Elements: elems}
}

// Reverse returns a new Collection with elements in reverse order, the
// operation `!collection` performs.
func (c *Collection) Reverse() *Collection {
	n := len(c.Elements)
	out := make([]Value, n)
	for i, e := range c.Elements {
		out[n-1-i] = e
	}
	return &Collection{Elements: out}
}

// wrapIndex applies Euclidean-remainder wrap-around addressing: well-defined
// for any integer i so long as length > 0.
func wrapIndex(i, length int) int {
	m := i % length
	if m < 0 {
		m += length
	}
	return m
}

// At returns the element at wrap-around index i. Caller must ensure the
// collection is non-empty.
func (c *Collection) At(i int) Value {
	return c.Elements[wrapIndex(i, len(c.Elements))]
}

// SetAt replaces the element at wrap-around index i in place.
func (c *Collection) SetAt(i int, v Value) {
	c.Elements[wrapIndex(i, len(c.Elements))] = v
}

// RemoveAt deletes and returns the element at wrap-around index i.
func (c *Collection) RemoveAt(i int) Value {
	idx := wrapIndex(i, len(c.Elements))
	v := c.Elements[idx]
	c.Elements = append(c.Elements[:idx], c.Elements[idx+1:]...)
	return v
}

func (c *Collection) Append(v Value) {
	c.Elements = append(c.Elements, v)
}

func boolValue(b bool, strong bool) Value {
	if strong {
		return StrongBoolean(b)
	}
	return Boolean(b)
}

func numberValue(n float64, strong bool) Value {
	if strong {
		return StrongNumber(n)
	}
	return Number(n)
}

func stringValue(s string, strong bool) Value {
	if strong {
		return StrongString(s)
	}
	return String(s)
}

// asFloat extracts the IEEE-754 payload of a Number/StrongNumber value.
func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Number:
		return float64(n), true
	case StrongNumber:
		return float64(n), true
	}
	return 0, false
}

func asString(v Value) (string, bool) {
	switch s := v.(type) {
	case String:
		return string(s), true
	case StrongString:
		return string(s), true
	}
	return "", false
}

func asBool(v Value) (bool, bool) {
	switch b := v.(type) {
	case Boolean:
		return bool(b), true
	case StrongBoolean:
		return bool(b), true
	}
	return false, false
}

// IsTruthy reports a value's boolean coercion: Nil and Boolean(false) are
// false, everything else is true.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(x)
	case StrongBoolean:
		return bool(x)
	default:
		return true
	}
}

func typeName(v Value) string {
	return v.Kind().String()
}
