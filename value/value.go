// Package value implements the Value dispatch shim (C6): a tagged
// union over the language's runtime types, each variant carrying a
// pointer to a capability table of polymorphic operators so the
// compiler can emit uniform call sites regardless of the receiver's
// concrete type.
//
// Only Number is fully built out; Bool, Str, List and None are
// implemented to the extent they intersect the numeric core
// (rendering to Str, truthiness, equality dispatch); there is no
// conversion from Str to Number.
// Range, Closure and ExternFn are declared but their bodies panic
// with a precondition-violation diagnostic if exercised.
package value

import (
	"fmt"
	"strconv"

	"github.com/rphle/numerobis-runtime/number"
)

// Kind tags a Value's active variant.
type Kind uint8

const (
	KindNumber Kind = iota
	KindBool
	KindStr
	KindList
	KindRange
	KindClosure
	KindExternFn
	KindNone
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindStr:
		return "Str"
	case KindList:
		return "List"
	case KindRange:
		return "Range"
	case KindClosure:
		return "Closure"
	case KindExternFn:
		return "ExternFn"
	case KindNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Methods is the capability table (vtable) for one Value variant.
// Every operator a dispatcher can call is a field here; nil means the
// variant does not support that operator.
type Methods struct {
	Add      func(self, other Value) (Value, error)
	Eq       func(self, other Value) bool
	Truthy   func(self Value) bool
	Len      func(self Value) (int, error)
	GetItem  func(self Value, idx int) (Value, error)
	GetSlice func(self Value, start, stop, step *int) (Value, error)
	Str      func(self Value) string
}

// Value is the tagged union. The zero Value is None.
type Value struct {
	kind    Kind
	methods *Methods

	num  number.Number
	b    bool
	s    string
	list []Value
}

// Table is the evaluator-table contract Number operations need; it
// is threaded through every call rather than looked up globally.
type Table = number.Table

func unreachable(op string, k Kind) {
	panic(fmt.Sprintf("value: %s: unreachable ABI precondition violation on %s", op, k))
}

// NewNumber wraps n as a Number-kind Value.
func NewNumber(n number.Number) Value {
	return Value{kind: KindNumber, methods: numberMethods, num: n}
}

// Number returns the wrapped number.Number (valid only when Kind() ==
// KindNumber).
func (v Value) Number() number.Number { return v.num }

// NewBool wraps b as a Bool-kind Value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, methods: boolMethods, b: b}
}

// Bool returns the wrapped bool (valid only when Kind() == KindBool).
func (v Value) Bool() bool { return v.b }

// NewStr wraps s as a Str-kind Value.
func NewStr(s string) Value {
	return Value{kind: KindStr, methods: strMethods, s: s}
}

// Str returns the wrapped string (valid only when Kind() == KindStr).
func (v Value) Str() string { return v.s }

// NewList wraps items as a List-kind Value.
func NewList(items []Value) Value {
	return Value{kind: KindList, methods: listMethods, list: items}
}

// List returns the wrapped slice (valid only when Kind() == KindList).
func (v Value) List() []Value { return v.list }

// None is the singleton None value.
var None = Value{kind: KindNone, methods: noneMethods}

// NewRange, NewClosure and NewExternFn construct stub Values whose
// capability tables panic on any operator.
func NewRange() Value    { return Value{kind: KindRange, methods: unimplementedMethods(KindRange)} }
func NewClosure() Value  { return Value{kind: KindClosure, methods: unimplementedMethods(KindClosure)} }
func NewExternFn() Value { return Value{kind: KindExternFn, methods: unimplementedMethods(KindExternFn)} }

// Kind reports v's active variant.
func (v Value) Kind() Kind { return v.kind }

// Add dispatches `+`/`__add__` through v's capability table.
func Add(a, b Value) (Value, error) {
	if a.methods.Add == nil {
		unreachable("Add", a.kind)
	}
	return a.methods.Add(a, b)
}

// Eq dispatches `__eq__`. Mismatched kinds are never equal.
func Eq(a, b Value) bool {
	if a.methods.Eq == nil {
		unreachable("Eq", a.kind)
	}
	return a.methods.Eq(a, b)
}

// Truthy dispatches `__bool__`.
func Truthy(v Value) bool {
	if v.methods.Truthy == nil {
		unreachable("Truthy", v.kind)
	}
	return v.methods.Truthy(v)
}

// Len dispatches `len`.
func Len(v Value) (int, error) {
	if v.methods.Len == nil {
		unreachable("Len", v.kind)
	}
	return v.methods.Len(v)
}

// GetItem dispatches `__getitem__`.
func GetItem(v Value, idx int) (Value, error) {
	if v.methods.GetItem == nil {
		unreachable("GetItem", v.kind)
	}
	return v.methods.GetItem(v, idx)
}

// GetSlice dispatches `__getslice__`.
func GetSlice(v Value, start, stop, step *int) (Value, error) {
	if v.methods.GetSlice == nil {
		unreachable("GetSlice", v.kind)
	}
	return v.methods.GetSlice(v, start, stop, step)
}

// Str dispatches `__str__`.
func Str(v Value) string {
	if v.methods.Str == nil {
		unreachable("Str", v.kind)
	}
	return v.methods.Str(v)
}

func unimplementedMethods(k Kind) *Methods {
	return &Methods{
		Add:      func(self, other Value) (Value, error) { unreachable("Add", k); return Value{}, nil },
		Eq:       func(self, other Value) bool { unreachable("Eq", k); return false },
		Truthy:   func(self Value) bool { unreachable("Truthy", k); return false },
		Len:      func(self Value) (int, error) { unreachable("Len", k); return 0, nil },
		GetItem:  func(self Value, idx int) (Value, error) { unreachable("GetItem", k); return Value{}, nil },
		GetSlice: func(self Value, start, stop, step *int) (Value, error) { unreachable("GetSlice", k); return Value{}, nil },
		Str:      func(self Value) string { unreachable("Str", k); return "" },
	}
}

var numberMethods = &Methods{
	Add: func(self, other Value) (Value, error) {
		if other.kind != KindNumber {
			return Value{}, fmt.Errorf("add: mismatched operand kind %s", other.kind)
		}
		return NewNumber(self.num.Add(other.num)), nil
	},
	Eq: func(self, other Value) bool {
		if other.kind != KindNumber {
			return false
		}
		return self.num.Eq(other.num)
	},
	Truthy: func(self Value) bool { return self.num.Float64() != 0 },
	Str: func(self Value) string {
		// The table-dependent rendering (number.Number.String) needs
		// the compiler's evaluator tables; callers that need unit-aware
		// rendering should call number.Number.String directly. This
		// shim path renders the raw magnitude, used when a Number flows
		// into a generic __str__ call site with no table in scope (e.g.
		// string-concatenation of a dimensionless count).
		if self.num.KindOf() == number.Int64 {
			return strconv.FormatInt(self.num.Int64(), 10)
		}
		return strconv.FormatFloat(self.num.Float64(), 'g', -1, 64)
	},
}

var boolMethods = &Methods{
	Eq: func(self, other Value) bool {
		return other.kind == KindBool && self.b == other.b
	},
	Truthy: func(self Value) bool { return self.b },
	Str: func(self Value) string {
		if self.b {
			return "true"
		}
		return "false"
	},
}

var strMethods = &Methods{
	Eq: func(self, other Value) bool {
		return other.kind == KindStr && self.s == other.s
	},
	Truthy: func(self Value) bool { return len(self.s) > 0 },
	Len:    func(self Value) (int, error) { return len(self.s), nil },
	GetItem: func(self Value, idx int) (Value, error) {
		resolved, ok := NormalizeIndex(idx, len(self.s))
		if !ok {
			return Value{}, fmt.Errorf("string index out of range")
		}
		return NewStr(string(self.s[resolved])), nil
	},
	GetSlice: func(self Value, start, stop, step *int) (Value, error) {
		bounds, empty := NormalizeSlice(len(self.s), start, stop, step)
		if empty {
			return NewStr(""), nil
		}
		var out []byte
		if bounds.Step > 0 {
			for i := bounds.Start; i < bounds.Stop; i += bounds.Step {
				out = append(out, self.s[i])
			}
		} else {
			for i := bounds.Start; i > bounds.Stop; i += bounds.Step {
				out = append(out, self.s[i])
			}
		}
		return NewStr(string(out)), nil
	},
	Str: func(self Value) string { return self.s },
}

var listMethods = &Methods{
	Eq: func(self, other Value) bool {
		if other.kind != KindList || len(self.list) != len(other.list) {
			return false
		}
		for i := range self.list {
			if !Eq(self.list[i], other.list[i]) {
				return false
			}
		}
		return true
	},
	Truthy: func(self Value) bool { return len(self.list) > 0 },
	Len:    func(self Value) (int, error) { return len(self.list), nil },
	GetItem: func(self Value, idx int) (Value, error) {
		resolved, ok := NormalizeIndex(idx, len(self.list))
		if !ok {
			return Value{}, fmt.Errorf("list index out of range")
		}
		return self.list[resolved], nil
	},
	GetSlice: func(self Value, start, stop, step *int) (Value, error) {
		bounds, empty := NormalizeSlice(len(self.list), start, stop, step)
		if empty {
			return NewList(nil), nil
		}
		var out []Value
		if bounds.Step > 0 {
			for i := bounds.Start; i < bounds.Stop; i += bounds.Step {
				out = append(out, self.list[i])
			}
		} else {
			for i := bounds.Start; i > bounds.Stop; i += bounds.Step {
				out = append(out, self.list[i])
			}
		}
		return NewList(out), nil
	},
	Str: func(self Value) string {
		out := "["
		for i, item := range self.list {
			if i > 0 {
				out += ", "
			}
			out += quoteIfStr(item)
		}
		return out + "]"
	},
}

// quoteIfStr renders a list element: quoted if it is itself a Str
// (`"x"` inside a list vs bare `x` at top level).
func quoteIfStr(v Value) string {
	if v.kind == KindStr {
		return strconv.Quote(v.s)
	}
	return Str(v)
}

var noneMethods = &Methods{
	Eq:     func(self, other Value) bool { return other.kind == KindNone },
	Truthy: func(self Value) bool { return false },
	Str:    func(self Value) string { return "none" },
}
