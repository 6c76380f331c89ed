package unit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductOfEmpty(t *testing.T) {
	n := ProductOf()
	require.Equal(t, Product{}, n)
}

func TestSumOfEmpty(t *testing.T) {
	n := SumOf()
	require.Equal(t, Sum{}, n)
}

func TestIdentityIsOne(t *testing.T) {
	_, ok := Identity.(One)
	require.True(t, ok, "Identity must be the One node")
}

func TestStructurallyEqualOrderInsensitive(t *testing.T) {
	m := Identifier{Name: "m", ID: 1}
	s := Identifier{Name: "s", ID: 2}

	a := Product{Children: []Node{m, s}}
	b := Product{Children: []Node{s, m}}
	require.True(t, StructurallyEqual(a, b))

	c := Product{Children: []Node{m, m}}
	require.False(t, StructurallyEqual(a, c))
}
