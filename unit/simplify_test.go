package unit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	m = Identifier{Name: "m", ID: 1}
	s = Identifier{Name: "s", ID: 2}
)

func TestSimplifyIdempotent(t *testing.T) {
	cases := []Node{
		Product{Children: []Node{Scalar{2}, m, Power{Base: m, Exponent: Scalar{-1}}}},
		Sum{Children: []Node{Product{Children: []Node{Scalar{2}, m}}, Product{Children: []Node{Scalar{3}, m}}}},
		Power{Base: Product{Children: []Node{m, s}}, Exponent: Scalar{2}},
	}
	for _, c := range cases {
		once := Simplify(c)
		twice := Simplify(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("simplify not idempotent for %v: -once +twice\n%s", c, diff)
		}
	}
}

func TestSimplifyEmptyProductIsOne(t *testing.T) {
	require.Equal(t, Scalar{V: 1}, Simplify(Product{}))
}

func TestSimplifyEmptySumIsZero(t *testing.T) {
	require.Equal(t, Scalar{V: 0}, Simplify(Sum{}))
}

func TestSimplifyInverseCancellation(t *testing.T) {
	n := Product{Children: []Node{m, Power{Base: m, Exponent: Scalar{-1}}}}
	require.Equal(t, Scalar{V: 1}, Simplify(n))
}

func TestSimplifyExponentAggregation(t *testing.T) {
	n := Product{Children: []Node{m, m, m}}
	require.Equal(t, Power{Base: m, Exponent: Scalar{V: 3}}, Simplify(n))
}

func TestSimplifyDistributesPowerOverProduct(t *testing.T) {
	n := Power{Base: Product{Children: []Node{m, s}}, Exponent: Scalar{2}}
	want := Simplify(Product{Children: []Node{
		Power{Base: m, Exponent: Scalar{2}},
		Power{Base: s, Exponent: Scalar{2}},
	}})
	require.Equal(t, want, Simplify(n))
}

func TestSimplifyFoldsScalars(t *testing.T) {
	n := Product{Children: []Node{Scalar{2}, Scalar{3}, m}}
	require.Equal(t, Product{Children: []Node{Scalar{6}, m}}, Simplify(n))
}

func TestSimplifyLikeTermSum(t *testing.T) {
	n := Sum{Children: []Node{
		Product{Children: []Node{Scalar{2}, m}},
		Product{Children: []Node{Scalar{3}, m}},
	}}
	require.Equal(t, Product{Children: []Node{Scalar{5}, m}}, Simplify(n))
}

func TestSimplifyNegOfOneIsMinusOne(t *testing.T) {
	require.Equal(t, Scalar{V: -1}, Simplify(Neg{Child: One{}}))
}

func TestSimplifyNegOfScalar(t *testing.T) {
	require.Equal(t, Scalar{V: -4}, Simplify(Neg{Child: Scalar{4}}))
}

func TestSimplifyPowerZeroExponent(t *testing.T) {
	require.Equal(t, Scalar{V: 1}, Simplify(Power{Base: m, Exponent: Scalar{0}}))
}

func TestSimplifyPowerOneExponent(t *testing.T) {
	require.Equal(t, m, Simplify(Power{Base: m, Exponent: Scalar{1}}))
}

func TestSimplifyExpressionUnwraps(t *testing.T) {
	require.Equal(t, m, Simplify(Expression{Child: m}))
}

func TestSimplifySumDropsOneAsPlaceholder(t *testing.T) {
	// One is dropped here even though Sum's numeric identity is 0, not
	// 1. Deliberate, not a typo; see DESIGN.md.
	n := Sum{Children: []Node{One{}, Scalar{2}}}
	require.Equal(t, Scalar{V: 2}, Simplify(n))
}
