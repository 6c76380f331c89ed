package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// linearTable models purely multiplicative SI-style units: base,
// inverted and normal modes are all the identity pass-through, and no
// identifier is logarithmic.
type linearTable struct{}

func (linearTable) BaseUnit(_ uint16, x float64) float64         { return x }
func (linearTable) UnitIDEval(_ uint16, x float64) float64       { return x }
func (linearTable) UnitIDEvalNormal(_ uint16, x float64) float64 { return x }
func (linearTable) IsLogarithmic(_ uint16) bool                  { return false }

// dBmTable models a single logarithmic identifier (id 99): the
// base/inverted ratio encodes dBm -> mW conversion, dBm<->dBm round
// trips to 1.
type dBmTable struct{}

func (dBmTable) BaseUnit(id uint16, x float64) float64 {
	if id == 99 {
		return 1
	}
	return x
}
func (dBmTable) UnitIDEval(id uint16, x float64) float64 {
	if id == 99 {
		// dBm -> mW: mW = 10^(dBm/10)
		return pow10(x / 10)
	}
	return x
}
func (dBmTable) UnitIDEvalNormal(id uint16, x float64) float64 {
	return dBmTable{}.UnitIDEval(id, x)
}
func (dBmTable) IsLogarithmic(id uint16) bool { return id == 99 }

func pow10(x float64) float64 {
	return math.Pow(10, x)
}

func TestEvalProductAndSum(t *testing.T) {
	table := linearTable{}
	n := Product{Children: []Node{Scalar{2}, Scalar{3}}}
	require.Equal(t, 6.0, Eval(n, 1, Normal, table))

	s := Sum{Children: []Node{Scalar{2}, Scalar{3}}}
	require.Equal(t, 5.0, Eval(s, 1, Normal, table))
}

func TestEvalEmptyProductAndSum(t *testing.T) {
	table := linearTable{}
	require.Equal(t, 1.0, Eval(Product{}, 42, Normal, table))
	require.Equal(t, 0.0, Eval(Sum{}, 42, Normal, table))
}

func TestIsLogarithmicPropagates(t *testing.T) {
	table := dBmTable{}
	dbm := Identifier{Name: "dBm", ID: 99}
	mps := Identifier{Name: "m", ID: 1}

	require.True(t, IsLogarithmic(dbm, table))
	require.False(t, IsLogarithmic(mps, table))
	require.True(t, IsLogarithmic(Product{Children: []Node{mps, dbm}}, table))
	require.True(t, IsLogarithmic(Power{Base: dbm, Exponent: Scalar{2}}, table))
	require.False(t, IsLogarithmic(Scalar{5}, table))
	require.False(t, IsLogarithmic(One{}, table))
}

func TestScalarInMultiplicativeUnitIsIdentityRatio(t *testing.T) {
	table := linearTable{}
	mps := Identifier{Name: "m", ID: 1}
	require.Equal(t, 7.0, ScalarIn(mps, 7, table))
}

func TestScalarInOneReturnsSelf(t *testing.T) {
	require.Equal(t, 3.5, ScalarIn(One{}, 3.5, linearTable{}))
}
