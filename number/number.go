// Package number implements Number (C5): a boxed int64/double that
// carries a unit tree, plus the arithmetic, comparison, conversion
// and string-rendering semantics defined over it.
package number

import (
	"errors"
	"fmt"
	"math"

	"github.com/rphle/numerobis-runtime/unit"
)

// ErrDivisionByZero is returned by Div when both operands are
// Int64-kind and the divisor is the integer zero. Float division by
// zero is not an error; it follows IEEE 754 (±Inf, NaN) like any
// other double arithmetic.
var ErrDivisionByZero = errors.New("division by zero")

// Kind distinguishes the two numeric representations a Number can
// hold.
type Kind int

const (
	Int64 Kind = iota
	Double
)

// Number is an immutable boxed number carrying a unit tree. All
// arithmetic returns a fresh Number; no method mutates its receiver
// or operand.
type Number struct {
	kind Kind
	i    int64
	f    float64
	Unit unit.Node
}

// Int constructs an integer-kind Number.
func Int(v int64, u unit.Node) Number {
	if u == nil {
		u = unit.Identity
	}
	return Number{kind: Int64, i: v, Unit: u}
}

// Float constructs a double-kind Number.
func Float(v float64, u unit.Node) Number {
	if u == nil {
		u = unit.Identity
	}
	return Number{kind: Double, f: v, Unit: u}
}

// KindOf reports whether n is backed by an int64 or a float64.
func (n Number) KindOf() Kind { return n.kind }

// Float64 returns n's value widened to float64 regardless of kind.
func (n Number) Float64() float64 {
	if n.kind == Double {
		return n.f
	}
	return float64(n.i)
}

// Int64 returns n's raw int64 payload (valid only when KindOf() ==
// Int64; callers that need a narrowing conversion from Double should
// go through Float64 and convert explicitly, since a double is never
// implicitly truncated in this direction).
func (n Number) Int64() int64 { return n.i }

func resultKind(a, b Number) Kind {
	if a.kind == Double || b.kind == Double {
		return Double
	}
	return Int64
}

func pack(kind Kind, iv int64, fv float64, u unit.Node) Number {
	if kind == Double {
		return Float(fv, u)
	}
	return Int(iv, u)
}

// Add implements `+`: result unit is the left operand's unit.
func (a Number) Add(b Number) Number {
	k := resultKind(a, b)
	return pack(k, a.i+b.i, a.Float64()+b.Float64(), a.Unit)
}

// Sub implements `−`: result unit is the left operand's unit.
func (a Number) Sub(b Number) Number {
	k := resultKind(a, b)
	return pack(k, a.i-b.i, a.Float64()-b.Float64(), a.Unit)
}

// Mul implements `×`: result unit is One if both operands are One,
// else Product(ua, ub).
func (a Number) Mul(b Number) Number {
	k := resultKind(a, b)
	return pack(k, a.i*b.i, a.Float64()*b.Float64(), mulUnit(a.Unit, b.Unit))
}

func mulUnit(ua, ub unit.Node) unit.Node {
	if isOne(ua) && isOne(ub) {
		return unit.Identity
	}
	return unit.Product{Children: []unit.Node{ua, ub}}
}

func isOne(n unit.Node) bool {
	_, ok := n.(unit.One)
	return ok
}

// Div implements `÷`: integer division truncates; result unit is One
// if both operands are One, else Product(ua, Power(ub, -1)). An
// Int64/Int64 divisor of zero returns ErrDivisionByZero rather than a
// wrong-looking zero result; callers at the ABI boundary are expected
// to turn that into a diagnostic throw.
func (a Number) Div(b Number) (Number, error) {
	k := resultKind(a, b)
	if k == Int64 && b.i == 0 {
		return Number{}, ErrDivisionByZero
	}
	var iv int64
	if b.i != 0 {
		iv = a.i / b.i
	}
	return pack(k, iv, a.Float64()/b.Float64(), divUnit(a.Unit, b.Unit)), nil
}

func divUnit(ua, ub unit.Node) unit.Node {
	if isOne(ua) && isOne(ub) {
		return unit.Identity
	}
	return unit.Product{Children: []unit.Node{ua, unit.Power{Base: ub, Exponent: unit.Scalar{V: -1}}}}
}

// Pow implements `^`. Integer exponents go through math.Pow and are
// cast back rather than computed with overflow-checked integer
// exponentiation; this loses precision for large exponents, a
// deliberate tradeoff (see DESIGN.md). With a dimensionless exponent
// the result unit is Power(ua, Scalar(b)) (One stays One); otherwise
// it is Power(ua, ub).
func (a Number) Pow(b Number) Number {
	k := resultKind(a, b)
	fv := math.Pow(a.Float64(), b.Float64())
	var iv int64
	if k == Int64 {
		iv = int64(fv)
	}
	return pack(k, iv, fv, powUnit(a.Unit, b))
}

func powUnit(ua unit.Node, b Number) unit.Node {
	if isOne(b.Unit) {
		if isOne(ua) {
			return ua
		}
		return unit.Power{Base: ua, Exponent: unit.Scalar{V: b.Float64()}}
	}
	return unit.Power{Base: ua, Exponent: b.Unit}
}

// Mod implements `%` via fmod, cast back for integer operands;
// result unit is the left operand's unit.
func (a Number) Mod(b Number) Number {
	k := resultKind(a, b)
	fv := math.Mod(a.Float64(), b.Float64())
	var iv int64
	if k == Int64 {
		iv = int64(fv)
	}
	return pack(k, iv, fv, a.Unit)
}

// Table is the unit.Table evaluator contract the delta/conversion/
// string paths need; it is passed in by the caller (the embedding program's
// compiler-generated tables), never looked up globally by this
// package.
type Table = unit.Table

// DAdd implements the `⟨+⟩` delta operator: reduce each operand to
// its natural scalar through its own unit (ScalarIn), add as plain
// numbers, then
// re-apply the left unit's Normal evaluation and wrap in the left
// unit.
func (a Number) DAdd(b Number, table Table) Number {
	return a.delta(b, table, func(x, y float64) float64 { return x + y })
}

// DSub implements the `⟨−⟩` delta operator; see DAdd.
func (a Number) DSub(b Number, table Table) Number {
	return a.delta(b, table, func(x, y float64) float64 { return x - y })
}

func (a Number) delta(b Number, table Table, op func(x, y float64) float64) Number {
	av := unit.ScalarIn(a.Unit, a.Float64(), table)
	bv := unit.ScalarIn(b.Unit, b.Float64(), table)
	raw := op(av, bv)
	v := unit.Eval(a.Unit, raw, unit.Normal, table)
	k := resultKind(a, b)
	return pack(k, int64(v), v, a.Unit)
}

// Neg implements unary negation; kind and unit are preserved.
func (a Number) Neg() Number {
	if a.kind == Double {
		return Float(-a.f, a.Unit)
	}
	return Int(-a.i, a.Unit)
}

// Cmp compares a and b: same kind compares via signum of the
// difference; mixed kinds cast the int operand to double. NaN yields
// 0 ("equal"); see DESIGN.md for why this is kept rather than changed
// to "not equal".
func (a Number) Cmp(b Number) int {
	if a.kind == Int64 && b.kind == Int64 {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	}
	x, y := a.Float64(), b.Float64()
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (a Number) Lt(b Number) bool { return a.Cmp(b) < 0 }
func (a Number) Le(b Number) bool { return a.Cmp(b) <= 0 }
func (a Number) Gt(b Number) bool { return a.Cmp(b) > 0 }
func (a Number) Ge(b Number) bool { return a.Cmp(b) >= 0 }
func (a Number) Eq(b Number) bool { return a.Cmp(b) == 0 }

// Convert reduces a to targetUnit. The general conversion formula is
// always applied: base = eval(self.unit, v, Base),
// inv = eval(self.unit, v, Inverted), ratio = inv/base; v' = ratio if
// self's unit is logarithmic, else v' = v*ratio. The resulting Number
// carries targetUnit and preserves a's kind. See DESIGN.md for why
// this runs unconditionally rather than gated on the target unit's
// kind.
func (a Number) Convert(targetUnit unit.Node, table Table) Number {
	v := a.Float64()
	base := unit.Eval(a.Unit, v, unit.Base, table)
	inv := unit.Eval(a.Unit, v, unit.Inverted, table)
	ratio := inv / base
	var vPrime float64
	if unit.IsLogarithmic(a.Unit, table) {
		vPrime = ratio
	} else {
		vPrime = v * ratio
	}
	return pack(a.kind, int64(vPrime), vPrime, targetUnit)
}

// String renders a as "%g v'" where v' is a reduced to its unit's
// natural scalar, followed by " " and the printed unit if non-empty.
func (a Number) String(table Table) string {
	v := unit.ScalarIn(a.Unit, a.Float64(), table)
	unitStr := unit.Print(a.Unit)
	if unitStr == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%g %s", v, unitStr)
}
