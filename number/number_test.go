package number

import (
	"math"
	"testing"

	"github.com/rphle/numerobis-runtime/unit"
	"github.com/stretchr/testify/require"
)

// siTable is a minimal multiplicative evaluator table for the tests
// below: base/inverted/normal are all identity for plain SI
// identifiers, so a bare "m" or "s" behaves like a unitless scalar
// under evaluation while still carrying its unit tree for printing
// and unit-derivation purposes.
type siTable struct{}

func (siTable) BaseUnit(_ uint16, x float64) float64         { return x }
func (siTable) UnitIDEval(_ uint16, x float64) float64       { return x }
func (siTable) UnitIDEvalNormal(_ uint16, x float64) float64 { return x }
func (siTable) IsLogarithmic(_ uint16) bool                  { return false }

var (
	meter  = unit.Identifier{Name: "m", ID: 1}
	second = unit.Identifier{Name: "s", ID: 2}
)

func TestAddIntegers(t *testing.T) {
	a := Int(2, unit.Identity)
	b := Int(3, unit.Identity)
	got := a.Add(b)
	require.Equal(t, Int64, got.KindOf())
	require.Equal(t, int64(5), got.Int64())
}

func TestAddPromotesToDouble(t *testing.T) {
	a := Int(2, unit.Identity)
	b := Float(0.5, unit.Identity)
	got := a.Add(b)
	require.Equal(t, Double, got.KindOf())
	require.Equal(t, 2.5, got.Float64())
}

func TestMulPreservesUnit(t *testing.T) {
	a := Int(3, meter)
	b := Int(4, second)
	got := a.Mul(b)
	require.Equal(t, int64(12), got.Int64())
	require.Equal(t, unit.Product{Children: []unit.Node{meter, second}}, got.Unit)
}

func TestDivInvertsUnit(t *testing.T) {
	a := Int(1, meter)
	b := Int(1, second)
	got, err := a.Div(b)
	require.NoError(t, err)
	want := unit.Product{Children: []unit.Node{
		meter, unit.Power{Base: second, Exponent: unit.Scalar{V: -1}},
	}}
	simplified := unit.Simplify(got.Unit)
	require.Equal(t, unit.Simplify(want), simplified)
}

func TestDivByZeroIntegerErrors(t *testing.T) {
	a := Int(1, unit.Identity)
	b := Int(0, unit.Identity)
	_, err := a.Div(b)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivByZeroFloatIsNotAnError(t *testing.T) {
	a := Float(1, unit.Identity)
	b := Float(0, unit.Identity)
	got, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, math.IsInf(got.Float64(), 1))
}

func TestPowUnit(t *testing.T) {
	a := Int(2, meter)
	b := Int(3, unit.Identity)
	got := a.Pow(b)
	require.Equal(t, unit.Power{Base: meter, Exponent: unit.Scalar{V: 3}}, got.Unit)
}

func TestDeltaAddSameUnit(t *testing.T) {
	a := Int(60, unit.Identity)
	b := Int(60, unit.Identity)
	got := a.DAdd(b, siTable{})
	require.Equal(t, int64(120), got.Int64())
}

func TestCompareMixedKinds(t *testing.T) {
	a := Int(2, unit.Identity)
	b := Float(2.0, unit.Identity)
	require.True(t, a.Eq(b))
}

func TestCompareNaNIsEqual(t *testing.T) {
	nan := Float(nanValue(), unit.Identity)
	other := Int(1, unit.Identity)
	require.Equal(t, 0, nan.Cmp(other))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestConvertCelsiusToKelvin(t *testing.T) {
	// °C is a single affine identifier (is_logarithmic==true): its
	// Base mode is the constant 1 and its Inverted mode carries the
	// +273.15 offset, so ratio = inv(v)/base(v) = v+273.15 and
	// Convert's logarithmic branch returns that ratio directly,
	// giving 273.15 for 0°C converted to Kelvin.
	table := affineCelsiusTable{}
	celsius := unit.Identifier{Name: "°C", ID: 20}
	kelvin := unit.Identifier{Name: "K", ID: 21}
	n := Float(0, celsius)
	got := n.Convert(kelvin, table)
	require.InDelta(t, 273.15, got.Float64(), 1e-9)
}

type affineCelsiusTable struct{}

func (affineCelsiusTable) BaseUnit(id uint16, x float64) float64 {
	return 1
}
func (affineCelsiusTable) UnitIDEval(id uint16, x float64) float64 {
	return x + 273.15
}
func (affineCelsiusTable) UnitIDEvalNormal(id uint16, x float64) float64 {
	return x - 273.15
}
func (affineCelsiusTable) IsLogarithmic(id uint16) bool { return true }
