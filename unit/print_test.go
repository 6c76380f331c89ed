package unit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintOneIsEmpty(t *testing.T) {
	require.Equal(t, "", Print(One{}))
}

func TestPrintScalarIntegral(t *testing.T) {
	require.Equal(t, "3", Print(Scalar{3}))
}

func TestPrintScalarFractional(t *testing.T) {
	require.Equal(t, "3.5", Print(Scalar{3.5}))
}

func TestPrintIdentifier(t *testing.T) {
	require.Equal(t, "m", Print(m))
}

func TestPrintSimpleRatio(t *testing.T) {
	n := Product{Children: []Node{m, Power{Base: s, Exponent: Scalar{-1}}}}
	require.Equal(t, "m/s", Print(n))
}

func TestPrintRatioWithExponent(t *testing.T) {
	n := Product{Children: []Node{m, Power{Base: s, Exponent: Scalar{-2}}}}
	require.Equal(t, "m/s^2", Print(n))
}

func TestPrintMultiFactorDenominator(t *testing.T) {
	kg := Identifier{Name: "kg", ID: 3}
	n := Product{Children: []Node{
		kg,
		Power{Base: m, Exponent: Scalar{-1}},
		Power{Base: s, Exponent: Scalar{-2}},
	}}
	require.Equal(t, "kg/(m*s^2)", Print(n))
}

func TestPrintSum(t *testing.T) {
	// Simplify always prepends the folded scalar accumulator (rule 5),
	// so a Sum's printed scalar term comes first regardless of input
	// order.
	k := Identifier{Name: "K", ID: 10}
	n := Sum{Children: []Node{k, Scalar{273.15}}}
	require.Equal(t, "273.15+K", Print(n))
}

func TestPrintNegCompoundParenthesises(t *testing.T) {
	n := Neg{Child: Sum{Children: []Node{m, s}}}
	require.Equal(t, "-(m+s)", Print(n))
}

func TestPrintPowerElidesExponentOne(t *testing.T) {
	require.Equal(t, "m", Print(Power{Base: m, Exponent: Scalar{1}}))
}
