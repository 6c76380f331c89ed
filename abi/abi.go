package abi

import (
	"github.com/rphle/numerobis-runtime/diag"
	"github.com/rphle/numerobis-runtime/number"
	"github.com/rphle/numerobis-runtime/unit"
	"github.com/rphle/numerobis-runtime/value"
)

// This file is the embedding ABI surface: the thin exported functions
// a compiled Numerobis program calls into. Each wraps a unit/number/
// value operation and threads the process-wide UnitTable (Units())
// through where evaluation needs it.

// Unit constructors.

func One() unit.Node { return unit.Identity }

func Scalar(v float64) unit.Node { return unit.Scalar{V: v} }

func Ident(name string, id uint16) unit.Node {
	return unit.Identifier{Name: name, ID: id}
}

func Product(children ...unit.Node) unit.Node { return unit.ProductOf(children...) }

func Sum(children ...unit.Node) unit.Node { return unit.SumOf(children...) }

func Expression(child unit.Node) unit.Node { return unit.Expression{Child: child} }

func Neg(child unit.Node) unit.Node { return unit.Neg{Child: child} }

func Power(base, exp unit.Node) unit.Node { return unit.Power{Base: base, Exponent: exp} }

// Number constructors.

func Int(v int64, u unit.Node) value.Value     { return value.NewNumber(number.Int(v, u)) }
func Float(v float64, u unit.Node) value.Value { return value.NewNumber(number.Float(v, u)) }

// Arithmetic dispatchers. Add operates on Value so it can be reached
// uniformly regardless of operand kind; the rest operate directly on
// number.Number since only Number carries unit-aware arithmetic.

func Add(a, b value.Value) (value.Value, error) { return value.Add(a, b) }

func Sub(a, b number.Number) number.Number { return a.Sub(b) }

func Mul(a, b number.Number) number.Number { return a.Mul(b) }

// Div implements integer `÷`: a zero Int64 divisor raises
// CodeDivisionByZero and never returns, the same treatment GetItem
// gives an out-of-range index.
func Div(a, b number.Number, loc diag.Loc, src *diag.Source) number.Number {
	got, err := a.Div(b)
	if err != nil {
		diag.Throw(diag.CodeDivisionByZero, loc, src)
	}
	return got
}

func Pow(a, b number.Number) number.Number { return a.Pow(b) }

func Mod(a, b number.Number) number.Number { return a.Mod(b) }

func DAdd(a, b number.Number) number.Number { return a.DAdd(b, Units()) }

func DSub(a, b number.Number) number.Number { return a.DSub(b, Units()) }

func Lt(a, b number.Number) bool { return a.Lt(b) }
func Le(a, b number.Number) bool { return a.Le(b) }
func Gt(a, b number.Number) bool { return a.Gt(b) }
func Ge(a, b number.Number) bool { return a.Ge(b) }
func NumEq(a, b number.Number) bool { return a.Eq(b) }

func NumNeg(a number.Number) number.Number { return a.Neg() }

// Str renders a number through the process-wide UnitTable.
func Str(a number.Number) string { return a.String(Units()) }

// Convert implements the `->` unit-conversion operator.
func Convert(a number.Number, target unit.Node) number.Number {
	return a.Convert(target, Units())
}

// Indexing.

// GetItem implements indexed access: a failed index raises the
// matching diagnostic and never returns, rather than returning an
// error Go callers could recover from.
func GetItem(v value.Value, idx int, loc diag.Loc, src *diag.Source) value.Value {
	got, err := value.GetItem(v, idx)
	if err != nil {
		code := diag.CodeListIndexOutOfRange
		if v.Kind() == value.KindStr {
			code = diag.CodeStringIndexOutOfRange
		}
		diag.Throw(code, loc, src)
	}
	return got
}

func GetSlice(v value.Value, start, stop, step *int) (value.Value, error) {
	return value.GetSlice(v, start, stop, step)
}

// Len dispatches `len` through v's capability table.
func Len(v value.Value) (int, error) { return value.Len(v) }

// Externs.

func RegisterExtern(name string, fn ExternFn) { Register(name, fn) }

func LookupExtern(name string) (ExternFn, bool) { return Lookup(name) }

// Throw implements the diagnostic throw interface. moduleName is
// looked up in the module registry to find the source
// text for the window/caret rendering; a name with no registered
// module still throws, just without a source window.
func Throw(code diag.Code, loc diag.Loc, moduleName string) {
	diag.Throw(code, loc, LookupModule(moduleName))
}
